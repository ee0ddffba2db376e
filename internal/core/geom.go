// Package core provides fundamental types and utilities for the kiosk platform.
// It contains no Bubble Tea dependencies to keep game logic pure and testable.
package core

import "math"

// Rect is an axis-aligned area of screen cells.
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

// Contains returns true if the cell (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ToPercent converts a cell inside r into percentages of its width and height.
// The cell's centre is used so the corners map to just inside 0 and 100.
func (r Rect) ToPercent(x, y int) Point {
	if r.W <= 0 || r.H <= 0 {
		return Point{}
	}
	return Point{
		X: (float64(x-r.X) + 0.5) / float64(r.W) * 100,
		Y: (float64(y-r.Y) + 0.5) / float64(r.H) * 100,
	}
}

// FromPercent maps a percentage position back to the nearest cell inside r.
func (r Rect) FromPercent(p Point) (int, int) {
	x := r.X + int(p.X/100*float64(r.W))
	y := r.Y + int(p.Y/100*float64(r.H))
	return Clamp(x, r.X, r.Right()-1), Clamp(y, r.Y, r.Bottom()-1)
}

// Point is a position in percentages of a display area (0-100 on each axis).
type Point struct {
	X, Y float64
}

// Within reports whether p lies strictly inside the axis-aligned square of
// half-width tol centred on c. This is a square test, not a radius.
func (p Point) Within(c Point, tol float64) bool {
	return math.Abs(c.X-p.X) < tol && math.Abs(c.Y-p.Y) < tol
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

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
