package arena

import (
	"github.com/gorgonia/arena/game"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var _ Player = &RandomPlayer{}

// RandomPlayer plays uniformly at random among the legal actions.
type RandomPlayer struct {
	r *rand.Rand
}

// NewRandomPlayer creates a RandomPlayer drawing from src.
func NewRandomPlayer(src rand.Source) *RandomPlayer {
	return &RandomPlayer{r: rand.New(src)}
}

// Decide returns an action drawn from the uniform distribution it reports.
func (p *RandomPlayer) Decide(s game.State, turn int) (game.Single, []float32, error) {
	actions := s.LegalActions()
	if len(actions) == 0 {
		return 0, nil, errors.Wrapf(ErrNoLegalActions, "turn %d", turn)
	}
	return actions[p.r.Intn(len(actions))], uniform(len(actions)), nil
}

// Reset is a no-op. A RandomPlayer has nothing to forget.
func (p *RandomPlayer) Reset() error { return nil }
