// Package object defines the simulated entities: sprites, the player, fleet
// units, the bonus unit, and projectiles.
package object

import (
	"github.com/tomz197/invaders/internal/input"
	"github.com/tomz197/invaders/internal/physics"
)

// Play field dimensions in logical pixels.
// Frontends scale this space to whatever surface they draw on.
const (
	ScreenWidth  = 800
	ScreenHeight = 600
	PixelSize    = 10 // Edge length of one sprite cell
)

// Input is an alias for the input package's Input type.
type Input = input.Input

// Screen is the rectangular play field.
type Screen struct {
	Width  int
	Height int
}

// DefaultScreen returns the standard 800x600 play field.
func DefaultScreen() Screen {
	return Screen{Width: ScreenWidth, Height: ScreenHeight}
}

// Contains reports whether any part of r lies inside the screen.
func (s Screen) Contains(r physics.Rect) bool {
	return physics.Intersects(r, physics.Rect{W: s.Width, H: s.Height})
}

// Destructible is implemented by everything a collision can remove.
type Destructible interface {
	// Bounds returns the current collision box.
	Bounds() physics.Rect
	// MarkDestroyed removes the object from play. Calling it again is a no-op.
	MarkDestroyed()
	// IsDestroyed returns true once MarkDestroyed has been called.
	IsDestroyed() bool
}
