// Package physics provides integer rectangle geometry for collision detection.
package physics

// Rect is an axis-aligned rectangle in pixel space.
// It covers [X, X+W) horizontally and [Y, Y+H) vertically.
type Rect struct {
	X, Y int
	W, H int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether two rectangles overlap.
// Rectangles that only touch along an edge do not intersect.
func Intersects(a, b Rect) bool {
	if a.Empty() || b.Empty() {
		return false
	}
	return OverlapsX(a, b) && a.Y < b.Bottom() && b.Y < a.Bottom()
}

// OverlapsX reports whether the horizontal spans of two rectangles overlap.
func OverlapsX(a, b Rect) bool {
	return a.X < b.Right() && b.X < a.Right()
}

// Union returns the smallest rectangle covering both a and b.
// An empty rectangle is ignored.
func Union(a, b Rect) Rect {
	if a.Empty() {
		return b
	}
	if b.Empty() {
		return a
	}
	x := min(a.X, b.X)
	y := min(a.Y, b.Y)
	return Rect{
		X: x,
		Y: y,
		W: max(a.Right(), b.Right()) - x,
		H: max(a.Bottom(), b.Bottom()) - y,
	}
}
