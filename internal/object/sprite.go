package object

import (
	"errors"
	"fmt"

	"github.com/tomz197/invaders/internal/physics"
)

var (
	// ErrEmptyGrid is returned for a grid without rows or columns.
	ErrEmptyGrid = errors.New("sprite grid is empty")
	// ErrRaggedGrid is returned when rows differ in length.
	ErrRaggedGrid = errors.New("sprite grid rows differ in length")
	// ErrBadCell is returned for a cell value other than 0 or 1.
	ErrBadCell = errors.New("sprite grid cell must be 0 or 1")
)

// Grid is an immutable rectangular bitmap of 0/1 cells.
type Grid struct {
	cells  []bool // Row-major
	width  int
	height int
}

// NewGrid validates rows and copies them into a Grid.
func NewGrid(rows [][]uint8) (Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	width := len(rows[0])
	cells := make([]bool, 0, width*len(rows))
	for r, row := range rows {
		if len(row) != width {
			return Grid{}, fmt.Errorf("row %d has %d cells, want %d: %w", r, len(row), width, ErrRaggedGrid)
		}
		for c, v := range row {
			if v > 1 {
				return Grid{}, fmt.Errorf("cell (%d,%d) = %d: %w", r, c, v, ErrBadCell)
			}
			cells = append(cells, v == 1)
		}
	}
	return Grid{cells: cells, width: width, height: len(rows)}, nil
}

// MustGrid is like NewGrid but panics on invalid input.
// It is meant for the built-in sprite tables only.
func MustGrid(rows [][]uint8) Grid {
	g, err := NewGrid(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// Width returns the number of columns.
func (g Grid) Width() int {
	return g.width
}

// Height returns the number of rows.
func (g Grid) Height() int {
	return g.height
}

// Filled reports whether the cell at (row, col) is set.
// Out-of-range cells are empty.
func (g Grid) Filled(row, col int) bool {
	if row < 0 || row >= g.height || col < 0 || col >= g.width {
		return false
	}
	return g.cells[row*g.width+col]
}

// Rects returns one rectangle per filled cell for a sprite whose top-left
// corner is at (x, y), each cell being pixel wide and tall.
func (g Grid) Rects(x, y, pixel int) []physics.Rect {
	rects := make([]physics.Rect, 0, len(g.cells))
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			if !g.cells[row*g.width+col] {
				continue
			}
			rects = append(rects, physics.Rect{
				X: x + col*pixel,
				Y: y + row*pixel,
				W: pixel,
				H: pixel,
			})
		}
	}
	return rects
}

// SpriteSet is a named, ordered sequence of animation frames.
// Sets are created once and shared read-only by every entity using them.
type SpriteSet struct {
	name   string
	frames []Grid
}

// NewSpriteSet builds a set from at least one frame.
func NewSpriteSet(name string, frames ...Grid) (*SpriteSet, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("sprite set %q: %w", name, ErrEmptyGrid)
	}
	return &SpriteSet{name: name, frames: append([]Grid(nil), frames...)}, nil
}

// Name returns the set name.
func (s *SpriteSet) Name() string {
	return s.name
}

// Len returns the number of frames.
func (s *SpriteSet) Len() int {
	return len(s.frames)
}

// Frame returns frame i, wrapping out-of-range indices.
func (s *SpriteSet) Frame(i int) Grid {
	n := len(s.frames)
	i %= n
	if i < 0 {
		i += n
	}
	return s.frames[i]
}

// Registry holds the built-in sprite sets.
type Registry struct {
	Ship   *SpriteSet
	Squid  *SpriteSet
	Crab   *SpriteSet
	Saucer *SpriteSet
}

var builtin = &Registry{
	Ship: mustSet("ship", MustGrid([][]uint8{
		{0, 1, 0},
		{1, 1, 1},
		{1, 0, 1},
	})),
	Squid: mustSet("squid",
		MustGrid([][]uint8{
			{1, 1, 1},
			{0, 1, 0},
			{1, 0, 1},
		}),
		MustGrid([][]uint8{
			{1, 1, 1},
			{0, 1, 0},
			{0, 1, 0},
		}),
	),
	Crab: mustSet("crab",
		MustGrid([][]uint8{
			{1, 1, 1, 1},
			{0, 1, 1, 0},
			{0, 1, 1, 0},
		}),
		MustGrid([][]uint8{
			{1, 1, 1, 1},
			{0, 1, 1, 0},
			{1, 0, 0, 1},
		}),
	),
	Saucer: mustSet("saucer",
		MustGrid([][]uint8{
			{0, 1, 1, 1, 1, 0},
			{1, 1, 1, 1, 1, 1},
			{0, 1, 0, 0, 1, 0},
		}),
		MustGrid([][]uint8{
			{0, 1, 1, 1, 1, 0},
			{1, 1, 1, 1, 1, 1},
			{1, 0, 0, 0, 0, 1},
		}),
	),
}

// Sprites returns the built-in registry. It must not be modified.
func Sprites() *Registry {
	return builtin
}

func mustSet(name string, frames ...Grid) *SpriteSet {
	s, err := NewSpriteSet(name, frames...)
	if err != nil {
		panic(err)
	}
	return s
}
