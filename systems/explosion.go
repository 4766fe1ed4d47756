package systems

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/skyfire/components"
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/engine"
)

var (
	killBurst   = components.MustHex(constants.KillBurstColor)
	damageBurst = components.MustHex(constants.DamageBurstColor)
)

// SpawnExplosion appends a burst of particles centered at x, y
func SpawnExplosion(ctx *engine.GameContext, x, y float64, color colorful.Color) {
	for i := 0; i < constants.ExplosionParticles; i++ {
		ctx.Particles = append(ctx.Particles, components.NewParticle(x, y, color, ctx.Rand))
	}
}
