package arena

import "github.com/pkg/errors"

// RotateBoard rotates a square m x n board a quarter turn anticlockwise.
func RotateBoard(board []float32, m, n int) ([]float32, error) {
	if m != n {
		return nil, errors.Errorf("Cannot handle m %d, n %d. This function only takes square boards", m, n)
	}
	if len(board) != m*n {
		return nil, errors.Errorf("expected a board of %d cells. Got %d", m*n, len(board))
	}
	rotated := make([]float32, len(board))
	for i := 0; i < m; i++ {
		for j := 0; j < n; j++ {
			// right to top
			rotated[i*n+j] = board[j*n+(m-i-1)]
		}
	}
	return rotated, nil
}

// SquareAugmenter creates the four rotations of examples of a game played on a m x m board
// whose actions are the cells of the board.
func SquareAugmenter(m int) Augmenter {
	return func(a Example) []Example {
		retVal := []Example{a}
		board, policy := a.Board, a.Policy
		for i := 0; i < 3; i++ {
			var err error
			if board, err = RotateBoard(board, m, m); err != nil {
				return retVal[:1]
			}
			if policy, err = RotateBoard(policy, m, m); err != nil {
				return retVal[:1]
			}
			retVal = append(retVal, Example{Board: board, Policy: policy, Value: a.Value})
		}
		return retVal
	}
}
