package object

import (
	"errors"
	"testing"
)

func TestNewGridValidation(t *testing.T) {
	tests := []struct {
		name string
		rows [][]uint8
		want error
	}{
		{"empty", nil, ErrEmptyGrid},
		{"empty row", [][]uint8{{}}, ErrEmptyGrid},
		{"ragged", [][]uint8{{1, 0}, {1}}, ErrRaggedGrid},
		{"bad cell", [][]uint8{{1, 2}}, ErrBadCell},
		{"valid", [][]uint8{{1, 0}, {0, 1}}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(tt.rows)
			if !errors.Is(err, tt.want) {
				t.Errorf("NewGrid() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestGridCopiesInput(t *testing.T) {
	rows := [][]uint8{{1, 0}, {0, 1}}
	g := MustGrid(rows)
	rows[0][1] = 1
	if g.Filled(0, 1) {
		t.Error("grid changed after its source rows were modified")
	}
	if g.Filled(-1, 0) || g.Filled(0, 5) {
		t.Error("out-of-range cells must be empty")
	}
}

func TestGridRects(t *testing.T) {
	g := MustGrid([][]uint8{
		{0, 1},
		{1, 1},
	})
	rects := g.Rects(100, 50, 10)
	if len(rects) != 3 {
		t.Fatalf("got %d rects, want 3", len(rects))
	}
	first := rects[0]
	if first.X != 110 || first.Y != 50 || first.W != 10 || first.H != 10 {
		t.Errorf("first rect = %+v", first)
	}
}

func TestNewSpriteSetNeedsFrames(t *testing.T) {
	if _, err := NewSpriteSet("none"); !errors.Is(err, ErrEmptyGrid) {
		t.Errorf("error = %v, want ErrEmptyGrid", err)
	}
}

func TestBuiltinSprites(t *testing.T) {
	reg := Sprites()
	for _, s := range []*SpriteSet{reg.Ship, reg.Squid, reg.Crab, reg.Saucer} {
		if s.Len() == 0 {
			t.Errorf("%s has no frames", s.Name())
		}
		w, h := s.Frame(0).Width(), s.Frame(0).Height()
		for i := 1; i < s.Len(); i++ {
			if s.Frame(i).Width() != w || s.Frame(i).Height() != h {
				t.Errorf("%s frame %d size differs from frame 0", s.Name(), i)
			}
		}
	}
	if reg.Ship.Frame(0).Width() != 3 || reg.Ship.Frame(0).Height() != 3 {
		t.Error("ship should be 3x3")
	}
}

func TestEntityFrameStaysInRange(t *testing.T) {
	e := NewEntity(Sprites().Crab, 0, 0, CrabPoints)
	for i := 0; i < 1001; i++ {
		e.NextFrame()
		if f := e.Frame(); f < 0 || f >= e.Sprite.Len() {
			t.Fatalf("frame %d out of range after %d advances", f, i+1)
		}
	}
	e.SetFrame(-3)
	if f := e.Frame(); f < 0 || f >= e.Sprite.Len() {
		t.Errorf("SetFrame(-3) gave frame %d", f)
	}
}

func TestEntityKillOnce(t *testing.T) {
	e := NewEntity(Sprites().Squid, 0, 0, SquidPoints)
	if !e.Kill() {
		t.Error("first Kill should report true")
	}
	if e.Kill() {
		t.Error("second Kill should report false")
	}
	var d Destructible = e
	if !d.IsDestroyed() {
		t.Error("killed entity should be destroyed")
	}
}
