package gif

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/gif"
	"io"
	"math"

	"github.com/golang/freetype/truetype"
	"github.com/gorgonia/arena"
	"github.com/gorgonia/arena/game"
	"github.com/pkg/errors"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/math/fixed"
)

var regular *truetype.Font

const (
	dpi             = 144.0
	fontsize        = 12.0
	lineheight      = 1.2
	dummyLongString = `Game Number: 10000, Turn: 100`
	resultDelay     = 300
)

func init() {
	var err error
	if regular, err = truetype.Parse(gomono.TTF); err != nil {
		panic(err)
	}
}

var globPalette = color.Palette{
	color.Gray{0},
	color.Gray{253},
}

var _ arena.Memory = &Encoder{}

// Encoder is an arena.Memory that draws every recorded position as a frame of an animated gif.
// The frames are written out by Flush.
type Encoder struct {
	H, W int
	font.Drawer

	name       string
	rows, cols int
	gameNum    int
	last       arena.Sample

	out *gif.GIF
	io.Writer
	face font.Face

	maxH, maxW  int // maxHeight and maxWidth
	padH, padW  int // padding so everything don't start at the topleft
	initialized bool
}

// NewGifEncoder creates an encoder for a game played on a board of the given size. The image is at most h by w pixels.
func NewGifEncoder(name string, size game.Sizer, h, w int, out io.Writer) *Encoder {
	rows, cols := size.BoardSize()
	return &Encoder{
		H:    -1,
		W:    -1,
		name: name,
		rows: rows,
		cols: cols,
		maxH: h,
		maxW: w,
		padH: 10,
		padW: 10,

		Drawer: font.Drawer{
			Src: image.Black,
		},
		Writer: out,
		out:    &gif.GIF{LoopCount: -1},
	}
}

// Frames returns the number of frames drawn so far.
func (enc *Encoder) Frames() int { return len(enc.out.Image) }

// RecordSample draws the position of the sample.
func (enc *Encoder) RecordSample(s arena.Sample) error {
	if len(s.Board) != enc.rows*enc.cols {
		return errors.Errorf("expected a board of %d x %d. Got %d cells", enc.rows, enc.cols, len(s.Board))
	}
	enc.last = s
	lines := enc.lines(s)
	lines = append(lines, enc.name, fmt.Sprintf("Game Number: %d, Turn: %d", enc.gameNum+1, s.Turn))
	enc.draw(lines, 0)
	return nil
}

// RecordTerminal draws the last position again with the result of the game.
func (enc *Encoder) RecordTerminal(reward float32, length int) error {
	var result string
	switch {
	case reward > 0:
		result = "Winner: White"
	case reward < 0:
		result = "Winner: Black"
	default:
		result = "Draw"
	}
	var lines []string
	if enc.last.Board != nil {
		lines = enc.lines(enc.last)
	}
	enc.gameNum++
	lines = append(lines, enc.name, fmt.Sprintf("Game Number: %d, Turns: %d", enc.gameNum, length), result)
	enc.draw(lines, resultDelay)
	enc.last = arena.Sample{}
	return nil
}

// Flush writes the gif into the writer
func (enc *Encoder) Flush() error {
	if len(enc.out.Image) == 0 {
		return errors.New("nothing to flush")
	}
	return errors.WithStack(gif.EncodeAll(enc.Writer, enc.out))
}

func (enc *Encoder) lines(s arena.Sample) []string {
	toMove := game.Player(game.Black)
	if s.WhiteToMove {
		toMove = game.Player(game.White)
	}
	board := game.DecodeTwoPlayerBoard(s.Board, toMove)

	retVal := make([]string, 0, enc.rows)
	var buf bytes.Buffer
	for i, c := range board {
		if i%enc.cols == 0 {
			fmt.Fprint(&buf, "⎢ ")
		}
		fmt.Fprintf(&buf, "%s ", c)
		if (i+1)%enc.cols == 0 {
			fmt.Fprint(&buf, "⎥")
			retVal = append(retVal, buf.String())
			buf.Reset()
		}
	}
	return retVal
}

func (enc *Encoder) init(oneline string) {
	// lazy init of specifications
	enc.face = truetype.NewFace(regular, &truetype.Options{
		Size:    fontsize,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
	enc.Drawer.Src = image.Black
	enc.Drawer.Face = enc.face

	// first calculate how long the max length will be
	maxW := maxInt(font.MeasureString(enc.Face, oneline).Ceil(), font.MeasureString(enc.Face, dummyLongString).Ceil())
	dy := int(math.Ceil(fontsize * lineheight * dpi / 72))
	w := maxW + 2*enc.padW
	h := (enc.rows+4)*dy + 2*enc.padH // + 4 is for the extra lines: game name, game number, result and the baseline

	w = minInt(w, enc.maxW)
	h = minInt(h, enc.maxH)

	if w == enc.maxW {
		enc.padW = 0
	}
	if h == enc.maxH {
		enc.padH = 0
	}

	enc.H = h
	enc.W = w
	enc.initialized = true
}

func (enc *Encoder) draw(text []string, delay int) {
	if !enc.initialized {
		var oneline string
		if len(text) > 0 {
			oneline = text[0]
		}
		enc.init(oneline)
	}

	bg := image.White
	im := image.NewPaletted(image.Rect(0, 0, enc.W, enc.H), globPalette)
	draw.Draw(im, im.Bounds(), bg, image.Point{}, draw.Src)
	dy := int(math.Ceil(fontsize * lineheight * dpi / 72))
	y := dy
	enc.Dst = im
	for _, s := range text {
		enc.Dot = fixed.P(enc.padW, y+enc.padH)
		enc.DrawString(s)
		y += dy
	}
	enc.out.Image = append(enc.out.Image, im)
	enc.out.Delay = append(enc.out.Delay, delay)
}
