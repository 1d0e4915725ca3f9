package game

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrIllegalMove is returned by State.Apply when the move cannot be played.
var ErrIllegalMove = errors.New("illegal move")

type Colour int32

const (
	None Colour = iota
	White
	Black
)

func (cl Colour) Format(s fmt.State, c rune) {
	switch c {
	case 's': // used in board games
		switch cl {
		case None:
			fmt.Fprint(s, "·")
		case White:
			fmt.Fprint(s, "X")
		case Black:
			fmt.Fprint(s, "O")
		}
	default: // used in debug
		switch cl {
		case None:
			fmt.Fprint(s, "None")
		case White:
			fmt.Fprint(s, "White")
		case Black:
			fmt.Fprint(s, "Black")
		}
	}
}

// Player represents a player. It's also a colour. White always moves first.
type Player Colour

func (p Player) Format(s fmt.State, c rune) { Colour(p).Format(s, c) }

// Opponent returns the other side. None has no opponent.
func (p Player) Opponent() Player {
	switch Colour(p) {
	case White:
		return Player(Black)
	case Black:
		return Player(White)
	}
	return Player(None)
}

// Single represents an action as a single number. For board games it is
// typically a cell index, utilized in a rowmajor fashion, or a column.
//		- -1 represents the "pass" move
type Single int32

// IsPass returns true when the action represents a "pass" move
func (c Single) IsPass() bool { return c == -1 }

// PlayerMove is a tuple indicating the player and the move to be made.
type PlayerMove struct {
	Player
	Single
}

func (p PlayerMove) Format(s fmt.State, c rune) { fmt.Fprintf(s, "%v@%d", p.Player, p.Single) }

// Zobrist is a type representing a hash of the position. Only Go and chess
// really use zobrist hashing; other games hash their boards however they like.
type Zobrist uint32

// State is a mutable game position. It is created by Rules.InitialState and
// changed in place by Apply.
type State interface {
	// LegalActions returns the ordered list of legal actions. It is non-empty unless the game has ended.
	LegalActions() []Single

	// CanonicalBoard returns the board encoded from the point of view of the side to move.
	CanonicalBoard() []float32

	WhiteToMove() bool // true if the first mover is to play
	MoveNumber() int   // count of moves so far that led to this point

	// TerminalReward returns the reward from white's point of view. ok is false while the game is still running.
	TerminalReward() (reward float32, ok bool)

	// Apply plays the action for the side to move. The side to move changes as a side effect.
	Apply(a Single) error

	Hash() Zobrist
	Clone() State
}

// Rules is a rules engine. It knows how to set up a fresh game.
type Rules interface {
	InitialState() State
	ActionSpace() int // number of distinct actions the game may ever offer
}

// Sizer is any Rules that knows the rows and columns of its board.
type Sizer interface {
	BoardSize() (int, int)
}
