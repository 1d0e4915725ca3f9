package arena

import (
	"github.com/gorgonia/arena/game"
	"github.com/pkg/errors"
)

var _ Oracle = InfererOracle{}

// InfererOracle turns an Inferer, whose policy spans the whole action space of the game,
// into an Oracle by picking out the legal actions and renormalizing.
type InfererOracle struct {
	Inferer
}

func (o InfererOracle) Evaluate(board []float32, actions []game.Single) (policy []float32, value float32, err error) {
	var full []float32
	if full, value, err = o.Infer(board); err != nil {
		return nil, 0, errors.WithMessage(err, "inference failed")
	}

	legal := make([]float32, len(actions))
	for i, a := range actions {
		if a < 0 || int(a) >= len(full) {
			return nil, 0, errors.Wrapf(ErrShapeMismatch, "action %d outside a policy of %d", a, len(full))
		}
		legal[i] = full[a]
	}
	if policy, err = Repair(legal); err != nil {
		return nil, 0, errors.WithMessage(err, "inferer returned a bad policy")
	}
	return policy, value, nil
}

// Close closes the underlying Inferer.
func (o InfererOracle) Close() error {
	if o.Inferer == nil {
		return nil
	}
	return o.Inferer.Close()
}
