// Package core provides fundamental types and utilities for the brick breaker.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import "math"

// Rect represents an axis-aligned cell rectangle used for drawing.
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

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// Box is a rectangle in continuous play-field coordinates.
// The play field uses the screen's cell grid as its unit.
type Box struct {
	X, Y          float64 // Top-left corner
	Width, Height float64
}

// Right returns the x-coordinate of the right edge.
func (b Box) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the y-coordinate of the bottom edge.
func (b Box) Bottom() float64 {
	return b.Y + b.Height
}

// Center returns the center point of the box.
func (b Box) Center() Vec2 {
	return Vec2{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// ContainsPoint reports whether (x, y) lies strictly inside the box.
func (b Box) ContainsPoint(x, y float64) bool {
	return x > b.X && x < b.Right() && y > b.Y && y < b.Bottom()
}

// Cells converts the box to the cell rectangle that covers it.
func (b Box) Cells() Rect {
	x := int(math.Floor(b.X))
	y := int(math.Floor(b.Y))
	w := int(math.Ceil(b.Right())) - x
	h := int(math.Ceil(b.Bottom())) - y
	return NewRect(x, y, w, h)
}

// Normalize expresses the box as fractions of a width x height surface.
func (b Box) Normalize(width, height float64) Box {
	return Box{
		X:      b.X / width,
		Y:      b.Y / height,
		Width:  b.Width / width,
		Height: b.Height / height,
	}
}

// Rescale converts a normalized box back to surface units.
func (b Box) Rescale(width, height float64) Box {
	return Box{
		X:      b.X * width,
		Y:      b.Y * height,
		Width:  b.Width * width,
		Height: b.Height * height,
	}
}

// Sizer is anything that reports the current play surface dimensions.
type Sizer interface {
	Width() int
	Height() int
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

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
