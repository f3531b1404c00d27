// Package core provides fundamental types and utilities for the lanes game.
// It contains no external dependencies (especially no Bubble Tea or Ebiten) to
// keep game logic pure and testable.
package core

import "math"

// Box is an axis-aligned bounding box in world units.
// Entities live in a continuous world, so positions are floating point.
type Box struct {
	X, Y float64 // Top-left corner position
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

// Intersects returns true if this box overlaps with another.
// Both the x-intervals and the y-intervals must overlap; touching edges do not count.
func (b Box) Intersects(other Box) bool {
	if b.X >= other.Right() || other.X >= b.Right() {
		return false
	}
	if b.Y >= other.Bottom() || other.Y >= b.Bottom() {
		return false
	}
	return true
}

// Rect represents an axis-aligned rectangle in screen cells.
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

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Viewport maps world coordinates onto a grid of screen cells.
type Viewport struct {
	WorldW, WorldH   float64
	ScreenW, ScreenH int
}

// Project converts a world box into the screen rectangle that covers it.
// Boxes always occupy at least one cell so small entities stay visible.
func (v Viewport) Project(b Box) Rect {
	if v.WorldW <= 0 || v.WorldH <= 0 {
		return Rect{}
	}
	sw := float64(v.ScreenW)
	sh := float64(v.ScreenH)

	x := int(math.Floor(b.X * sw / v.WorldW))
	y := int(math.Floor(b.Y * sh / v.WorldH))
	w := Max(1, int(b.W*sw/v.WorldW))
	h := Max(1, int(b.H*sh/v.WorldH))
	return NewRect(x, y, w, h)
}

// ProjectX converts a world x-coordinate into a screen column.
func (v Viewport) ProjectX(x float64) int {
	if v.WorldW <= 0 {
		return 0
	}
	return int(x * float64(v.ScreenW) / v.WorldW)
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
