package arena

import "github.com/pkg/errors"

var (
	// ErrInvalidWeights is returned when a weight vector has negative or non finite entries.
	ErrInvalidWeights = errors.New("invalid weights")

	// ErrShapeMismatch is returned when a distribution does not line up with its actions.
	ErrShapeMismatch = errors.New("distribution does not match actions")

	// ErrEmptyPolicy is returned when a search has nothing to offer.
	ErrEmptyPolicy = errors.New("empty policy")

	// ErrNoLegalActions is returned when a player is asked to move in a position without moves.
	ErrNoLegalActions = errors.New("no legal actions")

	// ErrTooFewExamples is returned when there are not enough examples for a single batch.
	ErrTooFewExamples = errors.New("too few examples")
)
