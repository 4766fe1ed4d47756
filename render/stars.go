package render

import (
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/vmath"
)

// Star is one background dot
type Star struct {
	X, Y   float64
	Radius float64
	Speed  float64
}

// StarField is a two-layer scrolling backdrop. It keeps its own random source and
// never touches session state
type StarField struct {
	Far  []Star
	Near []Star
	src  vmath.Source
}

const (
	farStars  = 80
	nearStars = 35
)

// NewStarField scatters both layers over the field
func NewStarField(src vmath.Source) *StarField {
	sf := &StarField{
		Far:  make([]Star, farStars),
		Near: make([]Star, nearStars),
		src:  src,
	}
	for i := range sf.Far {
		sf.Far[i] = sf.scatter(0.4, 1.2, 10, 30)
	}
	for i := range sf.Near {
		sf.Near[i] = sf.scatter(0.8, 2.0, 40, 80)
	}
	return sf
}

func (sf *StarField) scatter(rMin, rMax, sMin, sMax float64) Star {
	return Star{
		X:      vmath.RandRange(sf.src, 0, constants.FieldWidth),
		Y:      vmath.RandRange(sf.src, 0, constants.FieldHeight),
		Radius: vmath.RandRange(sf.src, rMin, rMax),
		Speed:  vmath.RandRange(sf.src, sMin, sMax),
	}
}

// Advance scrolls every star by one fixed frame step; stars leaving the bottom wrap to the top
func (sf *StarField) Advance() {
	sf.advance(sf.Far)
	sf.advance(sf.Near)
}

func (sf *StarField) advance(stars []Star) {
	for i := range stars {
		st := &stars[i]
		st.Y += st.Speed * constants.StarStepSeconds
		if st.Y > constants.FieldHeight {
			st.Y = 0
			st.X = vmath.RandRange(sf.src, 0, constants.FieldWidth)
		}
	}
}
