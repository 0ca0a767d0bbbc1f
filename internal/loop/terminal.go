package loop

import (
	"image/color"
	"io"
	"math"
	"unicode/utf8"

	"github.com/tomz197/invaders/internal/draw"
	"github.com/tomz197/invaders/internal/object"
	"github.com/tomz197/invaders/internal/physics"
)

// termText is a text overlay queued until the canvas has been rendered.
type termText struct {
	col, row int
	s        string
}

// termSurface draws onto a half-block canvas and writes the frame through a
// ChunkWriter. Colors are dropped; the terminal output is monochrome.
type termSurface struct {
	canvas *draw.Canvas
	out    *draw.ChunkWriter
	texts  []termText
}

var _ Surface = (*termSurface)(nil)

func newTermSurface(w io.Writer, termWidth, termHeight int) *termSurface {
	ts := &termSurface{
		canvas: draw.NewScaledCanvas(1, 1, object.ScreenWidth, object.ScreenHeight),
		out:    draw.NewChunkWriter(w, 0, 0),
	}
	ts.resize(termWidth, termHeight)
	return ts
}

// resize fits the play field into the terminal, keeping its aspect ratio.
func (ts *termSurface) resize(termWidth, termHeight int) {
	width, height, offCol, offRow := draw.FitAspect(termWidth, termHeight, object.ScreenWidth, object.ScreenHeight)
	ts.canvas.Resize(width, height)
	ts.canvas.SetOffset(offCol, offRow)
	ts.out.SetOffset(offCol, offRow)
}

func (ts *termSurface) FillRect(r physics.Rect, _ color.Color) {
	ts.canvas.FillRect(float64(r.X), float64(r.Y), float64(r.W), float64(r.H))
}

func (ts *termSurface) DrawText(x, y int, s string, _ color.Color) {
	col, row := ts.canvas.LogicalToTerminal(float64(x), float64(y))
	ts.texts = append(ts.texts, termText{col: col, row: row, s: s})
}

// TextWidth converts the column count of s back to logical pixels.
func (ts *termSurface) TextWidth(s string) int {
	scale := ts.canvas.ScaleX()
	if scale <= 0 {
		return 0
	}
	return int(math.Ceil(float64(utf8.RuneCountInString(s)) / scale))
}

// begin starts a new frame.
func (ts *termSurface) begin() {
	ts.canvas.Clear()
	ts.texts = ts.texts[:0]
}

// flush writes the frame: clear, canvas, border, then text on top.
func (ts *termSurface) flush() error {
	draw.ClearScreen(ts.out)
	ts.canvas.Render(ts.out)
	ts.canvas.RenderBorder(ts.out)
	for _, t := range ts.texts {
		ts.out.WriteAt(t.col, t.row, t.s)
	}
	return ts.out.Flush()
}
