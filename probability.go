package arena

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

// tolerance is how far from 1 a sum may drift before it is renormalized.
const tolerance = 1e-6

// Repair turns a vector of non-negative weights into a probability vector. A vector that
// already sums to 1 is returned as is, an all zero vector becomes the uniform distribution,
// and anything else is divided by its sum. The input is never modified.
func Repair(w []float32) ([]float32, error) {
	if len(w) == 0 {
		return nil, errors.Wrap(ErrInvalidWeights, "no weights")
	}

	var sum float64
	for i, v := range w {
		if math32.IsNaN(v) || math32.IsInf(v, 0) || v < 0 {
			return nil, errors.Wrapf(ErrInvalidWeights, "weight %d is %v", i, v)
		}
		sum += float64(v)
	}

	retVal := make([]float32, len(w))
	switch {
	case math.Abs(sum-1) <= tolerance:
		copy(retVal, w)
	case sum == 0:
		retVal = uniform(len(w))
	default:
		for i, v := range w {
			retVal[i] = float32(float64(v) / sum)
		}
	}
	return retVal, nil
}

// uniform returns the uniform distribution over n actions.
func uniform(n int) []float32 {
	retVal := make([]float32, n)
	for i := range retVal {
		retVal[i] = 1 / float32(n)
	}
	return retVal
}
