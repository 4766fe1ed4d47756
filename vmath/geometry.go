package vmath

import "math"

// Source is the random source consumed by spawn and particle code
// Satisfied by *math/rand/v2.Rand; tests script their own values
type Source interface {
	Float64() float64
}

// Rect is an axis-aligned rectangle anchored at its top-left corner
type Rect struct {
	X, Y, W, H float64
}

// Center returns the midpoint of the rectangle
func (r Rect) Center() (float64, float64) {
	return r.X + r.W/2, r.Y + r.H/2
}

// Circle is a circle given by its center and radius
type Circle struct {
	X, Y, R float64
}

// Clamp limits v to [lo, hi]. NaN collapses to lo so a bad reading never escapes the range
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// RandRange draws a uniform value in [min, max)
func RandRange(src Source, min, max float64) float64 {
	return src.Float64()*(max-min) + min
}

// Overlaps reports strict AABB overlap; rectangles sharing only an edge do not overlap
func Overlaps(a, b Rect) bool {
	return a.X < b.X+b.W &&
		a.X+a.W > b.X &&
		a.Y < b.Y+b.H &&
		a.Y+a.H > b.Y
}

// RectCircle reports whether the point of r closest to the circle center lies within the radius
func RectCircle(r Rect, c Circle) bool {
	cx := Clamp(c.X, r.X, r.X+r.W)
	cy := Clamp(c.Y, r.Y, r.Y+r.H)
	dx := c.X - cx
	dy := c.Y - cy
	return dx*dx+dy*dy <= c.R*c.R
}

// Finite reports whether v is neither NaN nor infinite
func Finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
