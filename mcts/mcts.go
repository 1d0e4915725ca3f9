package mcts

import (
	"github.com/gorgonia/arena/game"
	"github.com/pkg/errors"
)

// Oracle is essentially the neural network. The policy is aligned with actions and the value is
// from the point of view of the side to move.
type Oracle interface {
	Evaluate(board []float32, actions []game.Single) (policy []float32, value float32, err error)
}

const (
	noMove game.Single = -1

	// below this temperature the policy is the one-hot argmax of the visits.
	minTemperature float32 = 1e-3
)

var (
	// ErrUnexplored is returned by Policy when the position has not been explored.
	ErrUnexplored = errors.New("position has not been explored")

	// ErrTerminal is returned by Explore when the game has already ended.
	ErrTerminal = errors.New("game has ended")
)
