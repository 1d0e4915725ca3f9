package arena

import (
	"github.com/gorgonia/arena/game"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// PlayGame plays one game of r between white (who moves first) and black, and returns the
// final reward from white's point of view. Passing the same player twice is self-play.
//
// If mem is not nil, every position is recorded as a Sample before its move is applied, and the
// result is recorded once when the game ends.
//
// PlayGame relies on the rules engine to end the game.
func PlayGame(r game.Rules, white, black Player, mem Memory) (float32, error) {
	s := r.InitialState()
	for turn := 0; ; turn++ {
		if reward, ended := s.TerminalReward(); ended {
			if mem != nil {
				if err := mem.RecordTerminal(reward, turn); err != nil {
					return 0, errors.WithMessage(err, "unable to record the result")
				}
			}
			log.Debug().Int("plies", turn).Float32("reward", reward).Msg("game ended")
			return reward, nil
		}

		whiteToMove := s.WhiteToMove()
		current := black
		if whiteToMove {
			current = white
		}

		action, policy, err := current.Decide(s, turn)
		if err != nil {
			return 0, errors.WithMessagef(err, "player failed to decide on turn %d", turn)
		}

		if mem != nil {
			actions := s.LegalActions()
			if len(actions) != len(policy) {
				return 0, errors.Wrapf(ErrShapeMismatch, "turn %d: %d legal actions, %d probabilities", turn, len(actions), len(policy))
			}
			sample := Sample{
				Board:       s.CanonicalBoard(),
				Actions:     actions,
				Policy:      policy,
				WhiteToMove: whiteToMove,
				Turn:        turn,
			}
			if err = mem.RecordSample(sample); err != nil {
				return 0, errors.WithMessagef(err, "unable to record turn %d", turn)
			}
		}

		log.Debug().Int("turn", turn).Bool("white", whiteToMove).Int32("action", int32(action)).Msg("move")
		if err = s.Apply(action); err != nil {
			return 0, errors.WithMessagef(err, "turn %d", turn)
		}
	}
}
