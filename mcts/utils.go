package mcts

import "github.com/chewxy/math32"

type byMove struct {
	t *MCTS
	l []naughty
}

func (l byMove) Len() int { return len(l.l) }
func (l byMove) Less(i, j int) bool {
	li := l.t.nodeFromNaughty(l.l[i])
	lj := l.t.nodeFromNaughty(l.l[j])
	return li.move < lj.move
}
func (l byMove) Swap(i, j int) {
	l.l[i], l.l[j] = l.l[j], l.l[i]
}

// argmax returns the first index of the largest element.
func argmax(a []float32) int {
	var retVal int
	var max float32 = math32.Inf(-1)
	for i := range a {
		if a[i] > max {
			max = a[i]
			retVal = i
		}
	}
	return retVal
}
