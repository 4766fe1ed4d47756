package input

import "github.com/lixenwraith/skyfire/vmath"

// Intent is the per-tick input snapshot consumed by the simulation. Hosts refresh it
// from their own event sources; the core only reads it
type Intent struct {
	Left        bool
	Right       bool
	Shoot       bool
	PointerDown bool
	PointerX    float64 // field px, clamped to [0, width]
}

// Axis returns -1, 0 or 1 for the digital horizontal direction
func (in Intent) Axis() float64 {
	axis := 0.0
	if in.Left {
		axis--
	}
	if in.Right {
		axis++
	}
	return axis
}

// Firing reports whether either fire source is asserted
func (in Intent) Firing() bool {
	return in.Shoot || in.PointerDown
}

// Sanitize clamps PointerX into the field. A non-finite pointer reading is replaced by
// fallback and the drag is dropped for this tick so a bad coordinate cannot move the ship
func (in Intent) Sanitize(width, fallback float64) Intent {
	if !vmath.Finite(in.PointerX) {
		in.PointerX = vmath.Clamp(fallback, 0, width)
		in.PointerDown = false
		return in
	}
	in.PointerX = vmath.Clamp(in.PointerX, 0, width)
	return in
}
