package components

import (
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/vmath"
)

// Projectile is a player shot travelling straight up
type Projectile struct {
	X, Y   float64 // center
	Radius float64
	Speed  float64
	Dead   bool
}

// NewProjectile creates a shot centered at x, y
func NewProjectile(x, y float64) *Projectile {
	return &Projectile{
		X:      x,
		Y:      y,
		Radius: constants.ProjectileRadius,
		Speed:  constants.ProjectileSpeed,
	}
}

func (p *Projectile) Update(dt float64) {
	p.Y -= p.Speed * dt
	if p.Y < constants.ProjectileCullY {
		p.Dead = true
	}
}

// Circle returns the collision circle
func (p *Projectile) Circle() vmath.Circle {
	return vmath.Circle{X: p.X, Y: p.Y, R: p.Radius}
}
