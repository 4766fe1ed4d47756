package components

import (
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/input"
	"github.com/lixenwraith/skyfire/vmath"
)

// Player is the single controllable ship. Never removed, only repositioned on reset
type Player struct {
	X, Y          float64 // top-left, field px
	Width, Height float64
	Speed         float64 // px/s
	Cooldown      float64 // seconds until the weapon may fire again, fires at <= 0
}

// NewPlayer creates the ship at its home position
func NewPlayer() *Player {
	p := &Player{
		Width:  constants.PlayerWidth,
		Height: constants.PlayerHeight,
		Speed:  constants.PlayerSpeed,
	}
	p.Home()
	return p
}

// Home returns the ship to bottom-center with a ready weapon
func (p *Player) Home() {
	p.X = (constants.FieldWidth - p.Width) / 2
	p.Y = constants.FieldHeight - p.Height - constants.PlayerBottomGap
	p.Cooldown = 0
}

// Update moves the ship from the intent and reports whether it fired this tick
// The caller owns the projectile collection and spawns at Muzzle when true
func (p *Player) Update(dt float64, in input.Intent) bool {
	p.X += in.Axis() * p.Speed * dt

	// Pointer drag closes a fixed fraction of the gap per tick
	if in.PointerDown {
		p.X += (in.PointerX - (p.X + p.Width/2)) * constants.PointerFollow
	}

	p.X = vmath.Clamp(p.X, constants.PlayerMargin, constants.FieldWidth-p.Width-constants.PlayerMargin)

	p.Cooldown = max(p.Cooldown-dt, 0)
	if in.Firing() && p.Cooldown <= 0 {
		p.Cooldown = constants.FireCooldown
		return true
	}
	return false
}

// Muzzle returns the top-center spawn point for projectiles
func (p *Player) Muzzle() (float64, float64) {
	return p.X + p.Width/2, p.Y
}

// Rect returns the collision box
func (p *Player) Rect() vmath.Rect {
	return vmath.Rect{X: p.X, Y: p.Y, W: p.Width, H: p.Height}
}
