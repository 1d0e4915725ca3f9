package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeTwoPlayerBoard(t *testing.T) {
	board := []Colour{White, None, Black, Black}

	white := EncodeTwoPlayerBoard(board, Player(White), nil)
	assert.Equal(t, []float32{1, 0, -1, -1}, white)

	black := EncodeTwoPlayerBoard(board, Player(Black), nil)
	assert.Equal(t, []float32{-1, 0, 1, 1}, black)

	prealloc := make([]float32, 4)
	got := EncodeTwoPlayerBoard(board, Player(White), prealloc)
	assert.Equal(t, &prealloc[0], &got[0], "prealloc should be reused")
}

func TestDecodeTwoPlayerBoard(t *testing.T) {
	board := []Colour{White, None, Black, Black}
	for _, p := range []Player{Player(White), Player(Black)} {
		enc := EncodeTwoPlayerBoard(board, p, nil)
		assert.Equal(t, board, DecodeTwoPlayerBoard(enc, p))
	}
}

func TestOpponent(t *testing.T) {
	assert.Equal(t, Player(Black), Player(White).Opponent())
	assert.Equal(t, Player(White), Player(Black).Opponent())
	assert.Equal(t, Player(None), Player(None).Opponent())
}
