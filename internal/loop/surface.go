package loop

import (
	"image/color"

	"github.com/tomz197/invaders/internal/physics"
)

// Surface is something a frame can be drawn on. Coordinates are logical
// pixels in the 800x600 play field; implementations scale as needed.
type Surface interface {
	FillRect(r physics.Rect, c color.Color)
	// DrawText draws s with its top-left corner at (x, y).
	DrawText(x, y int, s string, c color.Color)
	// TextWidth returns the width of s in logical pixels.
	TextWidth(s string) int
}
