// Package core provides fundamental types and utilities for Dino Run.
// It contains no external dependencies (especially no Bubble Tea or Ebiten)
// to keep game logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned rectangle in terminal cells.
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

// Box is an axis-aligned bounding box in world pixels.
// Game entities live in world space; surfaces map it onto their own units.
type Box struct {
	X, Y float64 // Top-left corner
	W, H float64 // Width and height
}

// NewBox creates a box with the given position and dimensions.
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

// Gap returns the signed separation between two boxes on each axis.
// A negative value means the boxes overlap on that axis, zero means the
// edges touch, positive is the distance between them.
func (b Box) Gap(other Box) (dx, dy float64) {
	dx = math.Max(other.X-b.Right(), b.X-other.Right())
	dy = math.Max(other.Y-b.Bottom(), b.Y-other.Bottom())
	return dx, dy
}

// Overlaps reports whether both gaps are negative.
// Touching boxes do not overlap.
func (b Box) Overlaps(other Box) bool {
	dx, dy := b.Gap(other)
	return dx < 0 && dy < 0
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

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
