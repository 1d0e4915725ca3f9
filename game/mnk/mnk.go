package mnk

import (
	"fmt"
	"hash/fnv"

	"github.com/gorgonia/arena/game"
	"github.com/pkg/errors"
)

var (
	Cross  = game.Player(game.White)
	Nought = game.Player(game.Black)
)

var (
	_ game.State = &MNK{}
	_ game.Rules = Rules{}
	_ game.Sizer = Rules{}
)

// Rules sets up M,N,K games - a game is played on a MxN board. K in a row to win.
type Rules struct {
	M, N, K int
}

// TicTacToe returns the rules for Tic Tac Toe
func TicTacToe() Rules { return Rules{M: 3, N: 3, K: 3} }

func (r Rules) InitialState() game.State { return New(r.M, r.N, r.K) }
func (r Rules) ActionSpace() int         { return r.M * r.N }
func (r Rules) BoardSize() (int, int)    { return r.M, r.N }

// MNK is a representation of M,N,K games.
type MNK struct {
	board   []game.Colour
	m, n, k int

	nextToMove game.Player
	history    []game.PlayerMove
}

// New creates a new MNK game. Cross moves first.
func New(m, n, k int) *MNK {
	return &MNK{
		board:      make([]game.Colour, m*n),
		history:    make([]game.PlayerMove, 0, m*n),
		m:          m,
		n:          n,
		k:          k,
		nextToMove: Cross,
	}
}

func (g *MNK) Format(s fmt.State, c rune) {
	for i, c := range g.board {
		if i%g.n == 0 {
			fmt.Fprint(s, "⎢ ")
		}
		fmt.Fprintf(s, "%s ", c)
		if (i+1)%g.n == 0 {
			fmt.Fprint(s, "⎥\n")
		}
	}
}

func (g *MNK) WhiteToMove() bool { return g.nextToMove == Cross }
func (g *MNK) MoveNumber() int   { return len(g.history) }

func (g *MNK) Hash() game.Zobrist {
	h := fnv.New32a()
	for _, v := range g.board {
		fmt.Fprintf(h, "%s", v)
	}
	return game.Zobrist(h.Sum32())
}

// LegalActions lists the empty cells in row major order. A finished game has no legal actions.
func (g *MNK) LegalActions() []game.Single {
	if _, ended := g.TerminalReward(); ended {
		return nil
	}
	retVal := make([]game.Single, 0, len(g.board))
	for i, c := range g.board {
		if c == game.None {
			retVal = append(retVal, game.Single(i))
		}
	}
	return retVal
}

func (g *MNK) CanonicalBoard() []float32 {
	return game.EncodeTwoPlayerBoard(g.board, g.nextToMove, nil)
}

func (g *MNK) check(a game.Single) bool {
	if a.IsPass() || a < 0 || int(a) >= len(g.board) {
		return false
	}
	return g.board[int(a)] == game.None
}

func (g *MNK) Apply(a game.Single) error {
	if _, ended := g.TerminalReward(); ended {
		return errors.Wrapf(game.ErrIllegalMove, "%v: game has ended", game.PlayerMove{Player: g.nextToMove, Single: a})
	}
	if !g.check(a) {
		return errors.Wrapf(game.ErrIllegalMove, "%v", game.PlayerMove{Player: g.nextToMove, Single: a})
	}
	g.board[int(a)] = game.Colour(g.nextToMove)
	g.history = append(g.history, game.PlayerMove{Player: g.nextToMove, Single: a})
	g.nextToMove = g.nextToMove.Opponent()
	return nil
}

// TerminalReward is 1 if Cross won, -1 if Nought won and 0 for a full board.
func (g *MNK) TerminalReward() (float32, bool) {
	switch g.winner() {
	case game.White:
		return 1, true
	case game.Black:
		return -1, true
	}
	for _, c := range g.board {
		if c == game.None {
			return 0, false
		}
	}
	return 0, true
}

func (g *MNK) Clone() game.State {
	retVal := &MNK{
		board:      make([]game.Colour, len(g.board)),
		history:    make([]game.PlayerMove, len(g.history), g.m*g.n),
		m:          g.m,
		n:          g.n,
		k:          g.k,
		nextToMove: g.nextToMove,
	}
	copy(retVal.board, g.board)
	copy(retVal.history, g.history)
	return retVal
}

// directions to look for a line: right, down, down-right, down-left
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

func (g *MNK) winner() game.Colour {
	for i := 0; i < g.m; i++ {
		for j := 0; j < g.n; j++ {
			colour := g.board[i*g.n+j]
			if colour == game.None {
				continue
			}
			for _, d := range directions {
				if g.lineFrom(i, j, d[0], d[1], colour) {
					return colour
				}
			}
		}
	}
	return game.None
}

func (g *MNK) lineFrom(row, col, dr, dc int, colour game.Colour) bool {
	for step := 0; step < g.k; step++ {
		r, c := row+step*dr, col+step*dc
		if r < 0 || r >= g.m || c < 0 || c >= g.n {
			return false
		}
		if g.board[r*g.n+c] != colour {
			return false
		}
	}
	return true
}
