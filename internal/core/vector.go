package core

import (
	"fmt"
	"math"
)

// Vec2 is a 2D vector in play-field units. Y grows downward.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale returns v multiplied by k.
func (v Vec2) Scale(k float64) Vec2 {
	return Vec2{X: v.X * k, Y: v.Y * k}
}

// InvertX returns v with the X component negated.
func (v Vec2) InvertX() Vec2 {
	return Vec2{X: -v.X, Y: v.Y}
}

// InvertY returns v with the Y component negated.
func (v Vec2) InvertY() Vec2 {
	return Vec2{X: v.X, Y: -v.Y}
}

// Dot returns the dot product of v and o.
func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Length returns the Euclidean length of v.
func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the distance between the points v and o.
func (v Vec2) Distance(o Vec2) float64 {
	return v.Sub(o).Length()
}

// Normalize returns the unit vector pointing along v.
// ok is false for the zero vector, which has no direction.
func (v Vec2) Normalize() (unit Vec2, ok bool) {
	l := v.Length()
	if l == 0 {
		return Vec2{}, false
	}
	return Vec2{X: v.X / l, Y: v.Y / l}, true
}

// Lerp linearly interpolates between v and o by t in [0, 1].
func (v Vec2) Lerp(o Vec2, t float64) Vec2 {
	return Vec2{X: v.X + (o.X-v.X)*t, Y: v.Y + (o.Y-v.Y)*t}
}

// Angle returns the unsigned angle in radians between v and o.
// Returns 0 if either vector is zero.
func (v Vec2) Angle(o Vec2) float64 {
	l := v.Length() * o.Length()
	if l == 0 {
		return 0
	}
	return math.Acos(ClampF(v.Dot(o)/l, -1, 1))
}

// Equals reports whether v and o are within eps of each other on both axes.
func (v Vec2) Equals(o Vec2, eps float64) bool {
	return math.Abs(v.X-o.X) <= eps && math.Abs(v.Y-o.Y) <= eps
}

// String implements fmt.Stringer.
func (v Vec2) String() string {
	return fmt.Sprintf("(%.3f, %.3f)", v.X, v.Y)
}
