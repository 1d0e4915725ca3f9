package c4

import (
	"fmt"

	"github.com/gorgonia/arena/game"
	"github.com/pkg/errors"
	"gorgonia.org/tensor"
	"gorgonia.org/tensor/native"
)

// Board is a connect-N board. Row 0 is the top row; pieces fall to the highest row index available.
type Board struct {
	data *tensor.Dense
	it   [][]game.Colour
	n    int // how many to be considered a win?
}

func newBoard(rows, cols, n int) *Board {
	backing := make([]game.Colour, rows*cols)
	data := tensor.New(tensor.WithShape(rows, cols), tensor.WithBacking(backing))
	iter, err := native.Matrix(data)
	if err != nil {
		panic(err)
	}
	return &Board{
		data: data,
		it:   iter.([][]game.Colour),
		n:    n,
	}
}

func (b *Board) Format(s fmt.State, c rune) {
	for _, row := range b.it {
		fmt.Fprint(s, "⎢ ")
		for _, col := range row {
			fmt.Fprintf(s, "%s ", col)
		}
		fmt.Fprint(s, "⎥\n")
	}
}

func (b *Board) rows() int { return b.data.Shape()[0] }
func (b *Board) cols() int { return b.data.Shape()[1] }

func (b *Board) raw() []game.Colour { return b.data.Data().([]game.Colour) }

func (b *Board) apply(m game.PlayerMove) error {
	row, col, err := b.check(m.Single)
	if err != nil {
		return err
	}
	b.it[row][col] = game.Colour(m.Player)
	return nil
}

// check returns the cell a piece dropped into column a would land on.
func (b *Board) check(a game.Single) (row, col int, err error) {
	col = int(a)
	if col < 0 || col >= b.cols() {
		return -1, -1, errors.Wrapf(game.ErrIllegalMove, "column %d out of range", col)
	}
	for row = b.rows() - 1; row >= 0; row-- {
		if b.it[row][col] == game.None {
			return row, col, nil
		}
	}
	return -1, -1, errors.Wrapf(game.ErrIllegalMove, "column %d is full", col)
}

func (b *Board) clone() *Board {
	b2 := newBoard(b.rows(), b.cols(), b.n)
	copy(b2.raw(), b.raw())
	return b2
}

// directions to look for a line: right, down, down-right, down-left
var directions = [4][2]int{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

func (b *Board) checkWin() game.Colour {
	rows, cols := b.rows(), b.cols()
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			c := b.it[y][x]
			if c == game.None {
				continue
			}
			for _, d := range directions {
				if b.lineFrom(y, x, d[0], d[1], c) {
					return c
				}
			}
		}
	}
	return game.None
}

func (b *Board) lineFrom(y, x, dy, dx int, c game.Colour) bool {
	rows, cols := b.rows(), b.cols()
	for i := 0; i < b.n; i++ {
		yy, xx := y+i*dy, x+i*dx
		if yy < 0 || yy >= rows || xx < 0 || xx >= cols {
			return false
		}
		if b.it[yy][xx] != c {
			return false
		}
	}
	return true
}

func (b *Board) full() bool {
	for _, c := range b.raw() {
		if c == game.None {
			return false
		}
	}
	return true
}
