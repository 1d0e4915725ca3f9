package arena

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/exp/rand"
	"gorgonia.org/tensor"
)

var (
	_ Memory = &ReplayMemory{}
	_ Memory = Memories{}
)

// ReplayMemory keeps the examples generated by self-play.
//
// Samples of the game in progress are held back until the result is known, at which point
// each becomes an Example whose value is the result seen by the side that was to move.
type ReplayMemory struct {
	actionSpace int
	maxExamples int
	aug         Augmenter

	pending  []Sample
	examples []Example
	games    int
}

// NewReplayMemory creates a memory for a game with the given action space. A maxExamples of 0
// keeps everything; otherwise the oldest examples are dropped. aug may be nil.
func NewReplayMemory(actionSpace, maxExamples int, aug Augmenter) *ReplayMemory {
	return &ReplayMemory{
		actionSpace: actionSpace,
		maxExamples: maxExamples,
		aug:         aug,
	}
}

// RecordSample holds on to the sample until the game ends. A sample of turn 0 starts a new game:
// the samples of a game that never ended are dropped.
func (m *ReplayMemory) RecordSample(s Sample) error {
	if s.Turn == 0 && len(m.pending) > 0 {
		log.Debug().Int("samples", len(m.pending)).Msg("dropping the samples of an unfinished game")
		m.pending = m.pending[:0]
	}
	if len(s.Actions) != len(s.Policy) {
		return errors.Wrapf(ErrShapeMismatch, "turn %d: %d actions, %d probabilities", s.Turn, len(s.Actions), len(s.Policy))
	}
	for _, a := range s.Actions {
		if a < 0 || int(a) >= m.actionSpace {
			return errors.Errorf("turn %d: action %d is outside the action space of %d", s.Turn, a, m.actionSpace)
		}
	}
	m.pending = append(m.pending, s)
	return nil
}

func (m *ReplayMemory) RecordTerminal(reward float32, length int) error {
	for _, s := range m.pending {
		ex := Example{
			Board:  cloneFloats(s.Board),
			Policy: make([]float32, m.actionSpace),
			Value:  reward,
		}
		if !s.WhiteToMove {
			ex.Value = -reward
		}
		for i, a := range s.Actions {
			ex.Policy[a] = s.Policy[i]
		}

		if m.aug != nil {
			m.examples = append(m.examples, m.aug(ex)...)
		} else {
			m.examples = append(m.examples, ex)
		}
	}
	m.pending = m.pending[:0]
	m.games++

	if m.maxExamples > 0 && len(m.examples) > m.maxExamples {
		drop := len(m.examples) - m.maxExamples
		m.examples = append(m.examples[:0], m.examples[drop:]...)
	}
	return nil
}

// Examples returns the examples of all finished games, oldest first.
func (m *ReplayMemory) Examples() []Example { return m.examples }

// Games returns the number of finished games recorded.
func (m *ReplayMemory) Games() int { return m.games }

func (m *ReplayMemory) Len() int { return len(m.examples) }

// Batches shuffles the examples and lays out as many full batches as possible as tensors:
// boards are (N, boardSize), policies are (N, actionSpace) and values are (N), where N is
// batches*batchSize. Leftover examples are not included.
func (m *ReplayMemory) Batches(batchSize int, src rand.Source) (Xs, Policies, Values *tensor.Dense, batches int, err error) {
	if batchSize <= 0 {
		return nil, nil, nil, 0, errors.Errorf("batch size must be positive. Got %d", batchSize)
	}
	if batches = len(m.examples) / batchSize; batches == 0 {
		return nil, nil, nil, 0, errors.Wrapf(ErrTooFewExamples, "%d examples for a batch size of %d", len(m.examples), batchSize)
	}

	examples := make([]Example, len(m.examples))
	copy(examples, m.examples)
	shuffleExamples(examples, src)

	total := batches * batchSize
	boardSize := len(examples[0].Board)
	XsBacking := make([]float32, 0, total*boardSize)
	PoliciesBacking := make([]float32, 0, total*m.actionSpace)
	ValuesBacking := make([]float32, 0, total)
	for _, ex := range examples[:total] {
		if len(ex.Board) != boardSize {
			return nil, nil, nil, 0, errors.Errorf("boards of different sizes: %d and %d", boardSize, len(ex.Board))
		}
		XsBacking = append(XsBacking, ex.Board...)
		PoliciesBacking = append(PoliciesBacking, ex.Policy...)
		ValuesBacking = append(ValuesBacking, ex.Value)
	}

	Xs = tensor.New(tensor.WithBacking(XsBacking), tensor.WithShape(total, boardSize))
	Policies = tensor.New(tensor.WithBacking(PoliciesBacking), tensor.WithShape(total, m.actionSpace))
	Values = tensor.New(tensor.WithBacking(ValuesBacking), tensor.WithShape(total))
	return Xs, Policies, Values, batches, nil
}

func shuffleExamples(examples []Example, src rand.Source) {
	r := rand.New(src)
	r.Shuffle(len(examples), func(i, j int) {
		examples[i], examples[j] = examples[j], examples[i]
	})
}

// Memories fans every record out to all of its members.
type Memories []Memory

func (ms Memories) RecordSample(s Sample) error {
	var errs error
	for _, m := range ms {
		if err := m.RecordSample(s); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

func (ms Memories) RecordTerminal(reward float32, length int) error {
	var errs error
	for _, m := range ms {
		if err := m.RecordTerminal(reward, length); err != nil {
			errs = multierror.Append(errs, err)
		}
	}
	return errs
}

func cloneFloats(a []float32) []float32 {
	retVal := make([]float32, len(a))
	copy(retVal, a)
	return retVal
}
