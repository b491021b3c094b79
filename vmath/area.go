package vmath

import "math/rand"

// Rect is an axis-aligned box anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Min returns the top-left corner
func (r Rect) Min() Vec2 { return Vec2{X: r.X, Y: r.Y} }

// Center returns the center point of the box
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// Contains checks if the point is inside the box (right/bottom edges excluded)
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Overlaps reports strict AABB intersection, touching edges do not overlap
func (r Rect) Overlaps(o Rect) bool {
	return r.X < o.X+o.W &&
		r.X+r.W > o.X &&
		r.Y < o.Y+o.H &&
		r.Y+r.H > o.Y
}

// ClampInto moves the box so it lies inside bounds (box larger than bounds pins to the origin)
func (r Rect) ClampInto(bounds Rect) Rect {
	r.X = Clamp(r.X, bounds.X, bounds.X+bounds.W-r.W)
	r.Y = Clamp(r.Y, bounds.Y, bounds.Y+bounds.H-r.H)
	return r
}

// RandomOrigin returns a random top-left position for a w*h box fully inside bounds
func RandomOrigin(bounds Rect, w, h float64, rng *rand.Rand) Vec2 {
	spanX := bounds.W - w
	spanY := bounds.H - h
	p := Vec2{X: bounds.X, Y: bounds.Y}
	if spanX > 0 {
		p.X += rng.Float64() * spanX
	}
	if spanY > 0 {
		p.Y += rng.Float64() * spanY
	}
	return p
}
