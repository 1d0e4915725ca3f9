package game

import "gorgonia.org/vecf32"

// EncodeTwoPlayerBoard encodes the board from the point of view of toMove:
// its own stones are 1, the opponent's stones are -1 and empty cells are 0.
//
// The prealloc slice is reused if it has the correct length.
func EncodeTwoPlayerBoard(a []Colour, toMove Player, prealloc []float32) []float32 {
	if len(prealloc) != len(a) {
		prealloc = make([]float32, len(a))
	}

	for i := range a {
		switch a[i] {
		case White:
			prealloc[i] = 1
		case Black:
			prealloc[i] = -1
		default:
			prealloc[i] = 0
		}
	}
	if toMove == Player(Black) {
		vecf32.Scale(prealloc, -1)
	}
	return prealloc
}

// DecodeTwoPlayerBoard is the inverse of EncodeTwoPlayerBoard.
func DecodeTwoPlayerBoard(board []float32, toMove Player) []Colour {
	own, other := White, Black
	if toMove == Player(Black) {
		own, other = Black, White
	}
	retVal := make([]Colour, len(board))
	for i, v := range board {
		switch {
		case v > 0:
			retVal[i] = own
		case v < 0:
			retVal[i] = other
		}
	}
	return retVal
}
