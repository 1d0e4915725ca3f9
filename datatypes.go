package arena

import (
	"io"

	"github.com/gorgonia/arena/game"
)

// Player is anything that can decide on a move: a random mover, a raw policy or a search.
type Player interface {
	// Decide returns the action to play in s along with the distribution over the legal actions
	// of s that the player believes in. The distribution is aligned with s.LegalActions().
	Decide(s game.State, turn int) (game.Single, []float32, error)

	// Reset discards any state cached from earlier games.
	Reset() error
}

// Searcher is a tree search engine.
//
// Policy must return its actions in the order given by State.LegalActions.
type Searcher interface {
	Explore(s game.State, iterations int) error
	Policy(s game.State, temperature float32) (actions []game.Single, policy []float32, err error)
	Reset() error
}

// Oracle evaluates a position. The returned policy is aligned with the actions passed in,
// and the value is from the point of view of the side to move.
type Oracle interface {
	Evaluate(board []float32, actions []game.Single) (policy []float32, value float32, err error)
}

// Inferer is anything that can infer given an input. The policy spans the whole action space of the game.
type Inferer interface {
	Infer(a []float32) (policy []float32, value float32, err error)
	io.Closer
}

// Memory receives training samples from games.
type Memory interface {
	RecordSample(s Sample) error
	RecordTerminal(reward float32, length int) error
}

// Handler is called after every game of a pit with the contender's score for that game.
type Handler func(game int, score float32)

// Sample is a position seen during a game.
type Sample struct {
	Board       []float32     // canonical board
	Actions     []game.Single // legal actions
	Policy      []float32     // aligned with Actions
	WhiteToMove bool
	Turn        int
}

// Example is a representation of a training example.
type Example struct {
	Board  []float32
	Policy []float32 // spans the action space
	Value  float32   // from the point of view of the side to move
}

// Augmenter takes an example, and creates more examples from it.
type Augmenter func(a Example) []Example
