package arena

import (
	"fmt"
	"strings"

	"github.com/gorgonia/arena/game"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// ColourPolicy decides who plays white in each game of a pit.
type ColourPolicy int

const (
	AlternateColours ColourPolicy = iota // baseline is white in the first game, then colours swap every game
	BaselineWhite
	ContenderWhite
)

func (c ColourPolicy) String() string {
	switch c {
	case AlternateColours:
		return "alternate"
	case BaselineWhite:
		return "baseline-white"
	case ContenderWhite:
		return "contender-white"
	}
	return fmt.Sprintf("ColourPolicy(%d)", int(c))
}

// ParseColourPolicy is the inverse of ColourPolicy.String.
func ParseColourPolicy(s string) (ColourPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "alternate", "":
		return AlternateColours, nil
	case "baseline-white":
		return BaselineWhite, nil
	case "contender-white":
		return ContenderWhite, nil
	}
	return AlternateColours, errors.Errorf("unknown colour policy %q", s)
}

func (c ColourPolicy) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

func (c *ColourPolicy) UnmarshalText(text []byte) (err error) {
	*c, err = ParseColourPolicy(string(text))
	return err
}

// PitConfig configures a pit.
type PitConfig struct {
	Games      int          `yaml:"games"`
	ResetEvery int          `yaml:"reset_every"` // 0 never resets the players
	Colours    ColourPolicy `yaml:"colours"`
}

func (c PitConfig) Validate() error {
	if c.Games <= 0 {
		return errors.Errorf("a pit needs at least one game. Got %d", c.Games)
	}
	if c.ResetEvery < 0 {
		return errors.Errorf("reset cadence must not be negative. Got %d", c.ResetEvery)
	}
	switch c.Colours {
	case AlternateColours, BaselineWhite, ContenderWhite:
	default:
		return errors.Errorf("unknown colour policy %v", c.Colours)
	}
	return nil
}

// Pit plays conf.Games games of r between baseline and contender and returns the contender's mean score.
//
// The score of a game is the reward from the contender's point of view. handler, if not nil, is
// called after every game with the 1-based game number and that score. Both players are reset
// after every conf.ResetEvery games and after the last game. The first failing game aborts the pit.
func Pit(r game.Rules, handler Handler, baseline, contender Player, conf PitConfig) (float32, error) {
	if err := conf.Validate(); err != nil {
		return 0, err
	}

	baselineIsWhite := conf.Colours != ContenderWhite
	var sum float32
	for i := 1; i <= conf.Games; i++ {
		white, black := baseline, contender
		if !baselineIsWhite {
			white, black = contender, baseline
		}

		reward, err := PlayGame(r, white, black, nil)
		if err != nil {
			return 0, errors.WithMessagef(err, "game %d", i)
		}
		score := reward
		if baselineIsWhite {
			score = -reward
		}
		sum += score
		log.Info().Int("game", i).Bool("baselineWhite", baselineIsWhite).Float32("score", score).Msg("pit game played")

		if handler != nil {
			handler(i, score)
		}

		if conf.ResetEvery > 0 && (i%conf.ResetEvery == 0 || i == conf.Games) {
			if err = resetPlayers(baseline, contender); err != nil {
				return 0, errors.WithMessagef(err, "after game %d", i)
			}
		}

		if conf.Colours == AlternateColours {
			baselineIsWhite = !baselineIsWhite
		}
	}

	mean := sum / float32(conf.Games)
	log.Info().Int("games", conf.Games).Float32("mean", mean).Msg("pit done")
	return mean, nil
}

func resetPlayers(baseline, contender Player) error {
	var errs error
	if err := baseline.Reset(); err != nil {
		errs = multierror.Append(errs, errors.WithMessage(err, "unable to reset baseline"))
	}
	if err := contender.Reset(); err != nil {
		errs = multierror.Append(errs, errors.WithMessage(err, "unable to reset contender"))
	}
	return errs
}
