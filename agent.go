package arena

import (
	"io"
	"math"

	"github.com/gorgonia/arena/game"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
)

var _ Player = &SearchPlayer{}

// SearchConfig configures a SearchPlayer.
type SearchConfig struct {
	// Iterations is the number of simulations per move. 0 skips the search and asks the oracle directly.
	Iterations  int      `yaml:"iterations"`
	Temperature Schedule `yaml:"temperature"`

	DirichletAlpha  float64 `yaml:"dirichlet_alpha"`  // nα. Each of the n components gets nα/n
	DirichletWeight float64 `yaml:"dirichlet_weight"` // ϵ. 0 disables noise
}

// DefaultSearchConfig is a noiseless configuration suitable for evaluation games.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		Iterations:  100,
		Temperature: ConstantTemperature(1),
	}
}

// Validate checks the configuration.
func (c SearchConfig) Validate() error {
	if c.Iterations < 0 {
		return errors.Errorf("iterations must not be negative. Got %d", c.Iterations)
	}
	if !(c.DirichletWeight >= 0 && c.DirichletWeight <= 1) {
		return errors.Errorf("dirichlet weight must be in [0, 1]. Got %v", c.DirichletWeight)
	}
	if !(c.DirichletAlpha >= 0) || math.IsInf(c.DirichletAlpha, 1) {
		return errors.Errorf("dirichlet alpha must be a finite non-negative number. Got %v", c.DirichletAlpha)
	}
	if c.DirichletWeight > 0 && c.DirichletAlpha == 0 {
		return errors.New("dirichlet alpha must be positive when noise is enabled")
	}
	return errors.WithMessage(c.Temperature.Validate(), "bad temperature schedule")
}

// SearchPlayer decides on moves by running a search (or asking an oracle directly), then
// sampling from the resulting distribution after temperature and exploration noise.
//
// A SearchPlayer owns its Searcher. Two players must not share one.
type SearchPlayer struct {
	SearchConfig
	search Searcher
	oracle Oracle
	r      *rand.Rand
}

// NewSearchPlayer creates a new SearchPlayer. The searcher is required when conf.Iterations > 0
// and the oracle is required when conf.Iterations == 0.
func NewSearchPlayer(conf SearchConfig, search Searcher, oracle Oracle, src rand.Source) (*SearchPlayer, error) {
	if err := conf.Validate(); err != nil {
		return nil, err
	}
	if conf.Iterations > 0 && search == nil {
		return nil, errors.New("a searcher is required to search")
	}
	if conf.Iterations == 0 && oracle == nil {
		return nil, errors.New("an oracle is required when there are no iterations")
	}
	return &SearchPlayer{
		SearchConfig: conf,
		search:       search,
		oracle:       oracle,
		r:            rand.New(src),
	}, nil
}

// Decide returns the sampled action and the distribution from the search (before any noise is mixed in).
func (p *SearchPlayer) Decide(s game.State, turn int) (game.Single, []float32, error) {
	actions, policy, err := p.policy(s, turn)
	if err != nil {
		return 0, nil, err
	}
	switch {
	case len(actions) == 0 || len(policy) == 0:
		return 0, nil, errors.Wrapf(ErrEmptyPolicy, "turn %d", turn)
	case len(actions) != len(policy):
		return 0, nil, errors.Wrapf(ErrShapeMismatch, "turn %d: %d actions, %d probabilities", turn, len(actions), len(policy))
	}

	explore := policy
	if p.DirichletWeight > 0 {
		noise := dirichlet(len(policy), p.DirichletAlpha, p.r)
		explore = mix(policy, noise, float32(p.DirichletWeight))
	}

	probs, err := Repair(explore)
	if err != nil {
		return 0, nil, errors.WithMessagef(err, "turn %d", turn)
	}
	return actions[sample(probs, p.r)], policy, nil
}

func (p *SearchPlayer) policy(s game.State, turn int) (actions []game.Single, policy []float32, err error) {
	if p.Iterations == 0 {
		if actions = s.LegalActions(); len(actions) == 0 {
			return nil, nil, errors.Wrapf(ErrNoLegalActions, "turn %d", turn)
		}
		if policy, _, err = p.oracle.Evaluate(s.CanonicalBoard(), actions); err != nil {
			return nil, nil, errors.WithMessage(err, "oracle failed")
		}
		return actions, policy, nil
	}

	if err = p.search.Explore(s, p.Iterations); err != nil {
		return nil, nil, errors.WithMessage(err, "search failed")
	}
	if actions, policy, err = p.search.Policy(s, p.Temperature.At(turn)); err != nil {
		return nil, nil, errors.WithMessage(err, "search has no policy")
	}
	return actions, policy, nil
}

// Reset makes the searcher forget everything it learned about earlier positions.
func (p *SearchPlayer) Reset() error {
	if p.search == nil {
		return nil
	}
	return p.search.Reset()
}

// Close releases the searcher and the oracle, if they hold on to anything.
func (p *SearchPlayer) Close() error {
	var errs error
	if c, ok := p.search.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = multierror.Append(errs, errors.WithMessage(err, "unable to close searcher"))
		}
	}
	if c, ok := p.oracle.(io.Closer); ok {
		if err := c.Close(); err != nil {
			errs = multierror.Append(errs, errors.WithMessage(err, "unable to close oracle"))
		}
	}
	return errs
}
