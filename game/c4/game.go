package c4

import (
	"fmt"
	"hash/fnv"

	"github.com/gorgonia/arena/game"
	"github.com/pkg/errors"
)

var (
	_ game.State = &Game{}
	_ game.Rules = Rules{}
	_ game.Sizer = Rules{}
)

// Rules sets up connect-N games on a board of Rows x Cols.
type Rules struct {
	Rows, Cols, N int
}

// ConnectFour returns the rules of the classic 6x7 connect four.
func ConnectFour() Rules { return Rules{Rows: 6, Cols: 7, N: 4} }

func (r Rules) InitialState() game.State { return New(r.Rows, r.Cols, r.N) }
func (r Rules) ActionSpace() int         { return r.Cols }
func (r Rules) BoardSize() (int, int)    { return r.Rows, r.Cols }

type Game struct {
	b          *Board
	history    []game.PlayerMove
	nextToMove game.Player
}

// New creates a new game with a board of (rows,cols) and N to win (connect4 being 4 to win).
func New(rows, cols, N int) *Game {
	return &Game{
		b:          newBoard(rows, cols, N),
		history:    make([]game.PlayerMove, 0, rows*cols),
		nextToMove: game.Player(game.White),
	}
}

func (g *Game) Board() []game.Colour { return g.b.raw() }
func (g *Game) WhiteToMove() bool    { return g.nextToMove == game.Player(game.White) }
func (g *Game) MoveNumber() int      { return len(g.history) }

// LegalActions returns the columns that still have room.
func (g *Game) LegalActions() []game.Single {
	if _, ended := g.TerminalReward(); ended {
		return nil
	}
	retVal := make([]game.Single, 0, g.b.cols())
	for col := 0; col < g.b.cols(); col++ {
		if g.b.it[0][col] == game.None {
			retVal = append(retVal, game.Single(col))
		}
	}
	return retVal
}

func (g *Game) CanonicalBoard() []float32 {
	return game.EncodeTwoPlayerBoard(g.b.raw(), g.nextToMove, nil)
}

func (g *Game) Apply(a game.Single) error {
	m := game.PlayerMove{Player: g.nextToMove, Single: a}
	if _, ended := g.TerminalReward(); ended {
		return errors.Wrapf(game.ErrIllegalMove, "%v: game has ended", m)
	}
	if err := g.b.apply(m); err != nil {
		return err
	}
	g.history = append(g.history, m)
	g.nextToMove = g.nextToMove.Opponent()
	return nil
}

func (g *Game) TerminalReward() (float32, bool) {
	switch g.b.checkWin() {
	case game.White:
		return 1, true
	case game.Black:
		return -1, true
	}
	return 0, g.b.full()
}

func (g *Game) Hash() game.Zobrist {
	h := fnv.New32a()
	for _, c := range g.b.raw() {
		fmt.Fprintf(h, "%s", c)
	}
	return game.Zobrist(h.Sum32())
}

func (g *Game) Clone() game.State {
	history := make([]game.PlayerMove, len(g.history), cap(g.history))
	copy(history, g.history)
	return &Game{
		b:          g.b.clone(),
		history:    history,
		nextToMove: g.nextToMove,
	}
}

func (g *Game) Format(s fmt.State, c rune) { g.b.Format(s, c) }
