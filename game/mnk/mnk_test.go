package mnk

import (
	"testing"

	"github.com/gorgonia/arena/game"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	X = game.Colour(Cross)
	O = game.Colour(Nought)
	Z = game.None
)

func TestTicTacToe(t *testing.T) {
	TTT := New(3, 3, 3)
	TTT.board = []game.Colour{
		X, O, X,
		O, X, O,
		O, O, X,
	}
	if TTT.winner() != X {
		t.Error("expected X to be winner")
	}
	if reward, ended := TTT.TerminalReward(); !ended || reward != 1 {
		t.Errorf("expected game to be ended with reward 1. Got %v %v", reward, ended)
	}

	TTT.board = []game.Colour{
		X, O, O,
		X, O, X,
		O, X, X,
	}
	if TTT.winner() != O {
		t.Error("expected O to be winner")
	}
	if reward, _ := TTT.TerminalReward(); reward != -1 {
		t.Errorf("expected reward -1. Got %v", reward)
	}
}

func TestGomoku(t *testing.T) {
	g := New(7, 7, 5)
	g.board = []game.Colour{
		Z, X, Z, Z, Z, Z, Z,
		Z, Z, X, Z, Z, Z, Z,
		Z, Z, Z, X, Z, Z, Z,
		Z, Z, Z, Z, X, Z, Z,
		Z, Z, Z, Z, Z, X, Z,
		Z, Z, Z, Z, Z, X, Z,
		Z, Z, Z, Z, Z, X, Z,
	}
	if g.winner() != X {
		t.Error("expected X to be winner")
	}

	g.board = []game.Colour{
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, O, Z,
		Z, Z, Z, Z, O, Z, Z,
		Z, Z, Z, O, Z, Z, Z,
		Z, Z, O, Z, Z, Z, Z,
		Z, O, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
	}
	if g.winner() != O {
		t.Error("expected O to be winner")
	}

	// four in a row is not enough
	g.board = []game.Colour{
		X, X, X, X, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
		Z, Z, Z, Z, Z, Z, Z,
	}
	if w := g.winner(); w != Z {
		t.Errorf("expected no winner. Got %v", w)
	}
}

func TestTicTacToeEnded(t *testing.T) {
	cases := []struct {
		board  []game.Colour
		ended  bool
		reward float32
	}{
		{[]game.Colour{
			O, Z, X,
			Z, Z, X,
			Z, O, X,
		}, true, 1},
		{[]game.Colour{
			O, O, O,
			Z, Z, X,
			X, O, X,
		}, true, -1},
		{[]game.Colour{
			Z, Z, X,
			X, O, X,
			O, O, O,
		}, true, -1},
		{[]game.Colour{
			O, Z, X,
			X, O, X,
			O, Z, O,
		}, true, -1},
		{[]game.Colour{
			X, O, X,
			X, O, O,
			O, X, X,
		}, true, 0},
		{[]game.Colour{
			X, O, X,
			Z, Z, Z,
			Z, Z, Z,
		}, false, 0},
	}
	for i, c := range cases {
		TTT := New(3, 3, 3)
		TTT.board = c.board
		reward, ended := TTT.TerminalReward()
		assert.Equal(t, c.ended, ended, "case %d\n%v", i, TTT)
		assert.Equal(t, c.reward, reward, "case %d\n%v", i, TTT)
	}
}

func TestApply(t *testing.T) {
	g := TicTacToe().InitialState().(*MNK)
	assert.True(t, g.WhiteToMove())
	assert.Len(t, g.LegalActions(), 9)

	require.NoError(t, g.Apply(4))
	assert.False(t, g.WhiteToMove())
	assert.Equal(t, 1, g.MoveNumber())
	assert.Equal(t, []game.Single{0, 1, 2, 3, 5, 6, 7, 8}, g.LegalActions())

	err := g.Apply(4)
	require.Error(t, err)
	assert.Equal(t, game.ErrIllegalMove, errors.Cause(err))

	err = g.Apply(9)
	assert.Equal(t, game.ErrIllegalMove, errors.Cause(err))

	// Nought sees Cross' stone as the opponent's.
	board := g.CanonicalBoard()
	assert.Equal(t, float32(-1), board[4])
}

func TestRulesBoardSize(t *testing.T) {
	var r game.Sizer = Rules{M: 3, N: 4, K: 3}
	rows, cols := r.BoardSize()
	assert.Equal(t, 3, rows)
	assert.Equal(t, 4, cols)
	assert.Len(t, Rules{M: 3, N: 4, K: 3}.InitialState().LegalActions(), 12)
}

func TestCloneIsIndependent(t *testing.T) {
	g := New(3, 3, 3)
	require.NoError(t, g.Apply(0))
	c := g.Clone()
	require.NoError(t, c.Apply(1))

	assert.Equal(t, 1, g.MoveNumber())
	assert.Equal(t, 2, c.MoveNumber())
	assert.NotEqual(t, g.Hash(), c.Hash())
	assert.Equal(t, g.Hash(), g.Clone().Hash())
}

func TestEndedGameHasNoMoves(t *testing.T) {
	g := New(3, 3, 3)
	for _, a := range []game.Single{0, 3, 1, 4, 2} {
		require.NoError(t, g.Apply(a))
	}
	reward, ended := g.TerminalReward()
	assert.True(t, ended)
	assert.Equal(t, float32(1), reward)
	assert.Empty(t, g.LegalActions())
	assert.Error(t, g.Apply(8))
}
