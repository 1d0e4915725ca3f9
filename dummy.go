package arena

import "github.com/gorgonia/arena/game"

var _ Oracle = UniformOracle{}

// UniformOracle knows nothing about the game: every legal action is equally likely and every position is even.
type UniformOracle struct{}

func (UniformOracle) Evaluate(board []float32, actions []game.Single) (policy []float32, value float32, err error) {
	if len(actions) == 0 {
		return nil, 0, nil
	}
	return uniform(len(actions)), 0, nil
}
