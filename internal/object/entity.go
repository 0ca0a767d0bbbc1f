package object

import "github.com/tomz197/invaders/internal/physics"

// Entity is a sprite-backed actor: a fleet unit, the bonus unit, or the
// player's ship. The sprite set is shared; everything else is per instance.
type Entity struct {
	Sprite *SpriteSet
	X, Y   int  // Top-left corner in logical pixels
	Alive  bool // False once destroyed; dead entities stay in storage
	Points int  // Score awarded for destroying this entity
	frame  int
}

// NewEntity creates a live entity at (x, y).
func NewEntity(sprite *SpriteSet, x, y, points int) *Entity {
	return &Entity{
		Sprite: sprite,
		X:      x,
		Y:      y,
		Alive:  true,
		Points: points,
	}
}

// Frame returns the current frame index, always in [0, Sprite.Len()).
func (e *Entity) Frame() int {
	return e.frame
}

// SetFrame selects frame i, wrapping it into range.
func (e *Entity) SetFrame(i int) {
	n := e.Sprite.Len()
	i %= n
	if i < 0 {
		i += n
	}
	e.frame = i
}

// NextFrame advances to the following frame, wrapping at the end.
func (e *Entity) NextFrame() {
	e.frame = (e.frame + 1) % e.Sprite.Len()
}

// Grid returns the bitmap of the current frame.
func (e *Entity) Grid() Grid {
	return e.Sprite.Frame(e.frame)
}

// Bounds returns the bounding box of the current frame.
func (e *Entity) Bounds() physics.Rect {
	g := e.Grid()
	return physics.Rect{
		X: e.X,
		Y: e.Y,
		W: g.Width() * PixelSize,
		H: g.Height() * PixelSize,
	}
}

// Move translates the entity.
func (e *Entity) Move(dx, dy int) {
	e.X += dx
	e.Y += dy
}

// Kill marks the entity dead and reports whether this call did it.
func (e *Entity) Kill() bool {
	if !e.Alive {
		return false
	}
	e.Alive = false
	return true
}

// MarkDestroyed implements Destructible.
func (e *Entity) MarkDestroyed() {
	e.Kill()
}

// IsDestroyed implements Destructible.
func (e *Entity) IsDestroyed() bool {
	return !e.Alive
}

// Rects returns the filled cell rectangles of the current frame.
func (e *Entity) Rects() []physics.Rect {
	return e.Grid().Rects(e.X, e.Y, PixelSize)
}
