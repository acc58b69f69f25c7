// Package core provides fundamental types and utilities shared by the game
// and its front-ends. It contains no external dependencies (especially no
// Bubble Tea) to keep game logic pure and testable.
package core

// Rect is an integer rectangle in terminal cell coordinates.
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

// Box is an axis-aligned bounding box in canvas units.
// All collision geometry uses boxes; visual rotation is never applied.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a new box with the given position and dimensions.
func NewBox(x, y, w, h float64) Box {
	return Box{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.H
}

// Center returns the center point of the box.
func (b Box) Center() (float64, float64) {
	return b.X + b.W/2, b.Y + b.H/2
}

// OverlapsX returns true if the horizontal extents overlap (open intervals).
func (b Box) OverlapsX(left, right float64) bool {
	return b.Right() > left && b.X < right
}

// Intersects returns true if this box overlaps another.
// Touching edges do not count as overlap.
func (b Box) Intersects(other Box) bool {
	if !b.OverlapsX(other.X, other.Right()) {
		return false
	}
	return b.Bottom() > other.Y && b.Y < other.Bottom()
}

// Within returns true if the box lies inside [0, w] x [0, h].
func (b Box) Within(w, h float64) bool {
	return b.X >= 0 && b.Y >= 0 && b.Right() <= w && b.Bottom() <= h
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
