// Package core provides fundamental types and utilities for the flappy platform.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

// Rect is an integer rectangle in screen cells, used by renderers.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Box is an axis-aligned bounding box in playfield units.
// Left/Top are inclusive, Right/Bottom exclusive.
type Box struct {
	Left, Top, Right, Bottom float64
}

// BoxAround returns a box of size w x h centered on (cx, cy).
func BoxAround(cx, cy, w, h float64) Box {
	return Box{
		Left:   cx - w/2,
		Top:    cy - h/2,
		Right:  cx + w/2,
		Bottom: cy + h/2,
	}
}

// Width returns the horizontal extent of the box.
func (b Box) Width() float64 {
	return b.Right - b.Left
}

// Height returns the vertical extent of the box.
func (b Box) Height() float64 {
	return b.Bottom - b.Top
}

// OverlapsX reports whether the horizontal ranges of the two boxes intersect.
// Touching edges do not count as overlap.
func (b Box) OverlapsX(other Box) bool {
	return b.Right > other.Left && b.Left < other.Right
}

// OverlapsY reports whether the vertical ranges of the two boxes intersect.
func (b Box) OverlapsY(other Box) bool {
	return b.Bottom > other.Top && b.Top < other.Bottom
}

// Overlaps is the standard AABB test.
func (b Box) Overlaps(other Box) bool {
	return b.OverlapsX(other) && b.OverlapsY(other)
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
