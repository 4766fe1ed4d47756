package components

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/vmath"
)

// Particle is a cosmetic explosion fragment. It never collides or scores
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64 // seconds remaining
	Radius float64
	Color  colorful.Color
	Dead   bool
}

// NewParticle draws velocity, lifetime and radius from independent uniform ranges
// Draw order is vx, vy, life, radius
func NewParticle(x, y float64, color colorful.Color, src vmath.Source) *Particle {
	return &Particle{
		X:      x,
		Y:      y,
		VX:     vmath.RandRange(src, constants.ParticleVXMin, constants.ParticleVXMax),
		VY:     vmath.RandRange(src, constants.ParticleVYMin, constants.ParticleVYMax),
		Life:   vmath.RandRange(src, constants.ParticleLifeMin, constants.ParticleLifeMax),
		Radius: vmath.RandRange(src, constants.ParticleRadiusMin, constants.ParticleRadiusMax),
		Color:  color,
	}
}

func (p *Particle) Update(dt float64) {
	p.Life -= dt
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.VY += constants.ParticleGravity * dt
	if p.Life <= 0 {
		p.Dead = true
	}
}

// Alpha is the remaining lifetime clamped to [0, 1], used as opacity
func (p *Particle) Alpha() float64 {
	return vmath.Clamp(p.Life, 0, 1)
}
