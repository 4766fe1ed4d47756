package systems

import (
	"github.com/lixenwraith/skyfire/components"
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/engine"
)

// MovementSystem advances every entity by dt; the player fires from here
type MovementSystem struct{}

// NewMovementSystem creates a new movement system
func NewMovementSystem() *MovementSystem {
	return &MovementSystem{}
}

func (s *MovementSystem) Priority() int {
	return constants.PriorityMovement
}

func (s *MovementSystem) Update(ctx *engine.GameContext, dt float64) {
	if ctx.Player.Update(dt, ctx.Input) {
		ctx.Projectiles = append(ctx.Projectiles, components.NewProjectile(ctx.Player.Muzzle()))
	}
	for _, b := range ctx.Projectiles {
		b.Update(dt)
	}
	for _, e := range ctx.Enemies {
		e.Update(dt)
	}
	for _, p := range ctx.Particles {
		p.Update(dt)
	}
}
