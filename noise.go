package arena

import (
	"github.com/chewxy/math32"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distmv"
	"gonum.org/v1/gonum/stat/distuv"
	"gorgonia.org/vecf32"
)

// dirichlet draws one sample from a symmetric Dirichlet distribution of dimension n.
// Every component gets a concentration of alpha/n.
func dirichlet(n int, alpha float64, src rand.Source) []float32 {
	alphas := make([]float64, n)
	for i := range alphas {
		alphas[i] = alpha / float64(n)
	}
	x := distmv.NewDirichlet(alphas, src).Rand(nil)

	retVal := make([]float32, n)
	for i, v := range x {
		retVal[i] = float32(v)
		if math32.IsNaN(retVal[i]) {
			// every gamma draw underflowed to zero.
			return uniform(n)
		}
	}
	return retVal
}

// mix returns (1-weight)*policy + weight*noise. Neither input is modified.
func mix(policy, noise []float32, weight float32) []float32 {
	retVal := make([]float32, len(policy))
	copy(retVal, policy)
	vecf32.Scale(retVal, 1-weight)

	scaled := make([]float32, len(noise))
	copy(scaled, noise)
	vecf32.Scale(scaled, weight)
	vecf32.Add(retVal, scaled)
	return retVal
}

// sample draws an index from the categorical distribution probs.
func sample(probs []float32, src rand.Source) int {
	w := make([]float64, len(probs))
	for i, p := range probs {
		w[i] = float64(p)
	}
	return int(distuv.NewCategorical(w, src).Rand())
}
