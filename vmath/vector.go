package vmath

import "math"

// Vec2 is a point or direction in world units
type Vec2 struct {
	X, Y float64
}

// Add returns a + b
func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }

// Sub returns a - b
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Scale returns v * s
func (v Vec2) Scale(s float64) Vec2 { return Vec2{X: v.X * s, Y: v.Y * s} }

// Length returns the euclidean magnitude
func (v Vec2) Length() float64 { return math.Hypot(v.X, v.Y) }

// Distance returns the euclidean distance between two points
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Normalize returns the unit vector of v, zero vector stays zero
func Normalize(v Vec2) Vec2 {
	l := v.Length()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: v.X / l, Y: v.Y / l}
}

// Toward returns a step of the given length from 'from' toward 'to'
// Coincident points yield a zero step
func Toward(from, to Vec2, step float64) Vec2 {
	return Normalize(to.Sub(from)).Scale(step)
}

// Clamp bounds v to [lo, hi], returning lo when the range is inverted
func Clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampInt bounds v to [lo, hi]
func ClampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
