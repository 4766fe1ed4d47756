package systems

import (
	"github.com/lixenwraith/skyfire/components"
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/engine"
	"github.com/lixenwraith/skyfire/vmath"
)

// CollisionSystem resolves enemy-player and enemy-projectile contacts after movement
// Player contact takes precedence: an enemy that touches the ship this tick is never shot
type CollisionSystem struct{}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem() *CollisionSystem {
	return &CollisionSystem{}
}

func (s *CollisionSystem) Priority() int {
	return constants.PriorityCollision
}

func (s *CollisionSystem) Update(ctx *engine.GameContext, dt float64) {
	player := ctx.Player.Rect()

	for _, e := range ctx.Enemies {
		if vmath.Overlaps(e.Rect(), player) {
			damagePlayer(ctx, e)
			continue
		}

		for _, b := range ctx.Projectiles {
			if b.Dead || e.Dead {
				continue
			}
			if !vmath.RectCircle(e.Rect(), b.Circle()) {
				continue
			}
			b.Dead = true
			if e.Hit() {
				killEnemy(ctx, e)
			}
		}
	}
}

// killEnemy scores a kill and bursts in the kill color
func killEnemy(ctx *engine.GameContext, e *components.Enemy) {
	e.Dead = true
	ctx.State.RegisterKill(e.Score)
	x, y := e.Center()
	SpawnExplosion(ctx, x, y, killBurst)
}

// damagePlayer consumes the enemy, costs a life and bursts in the damage color
func damagePlayer(ctx *engine.GameContext, e *components.Enemy) {
	e.Dead = true
	x, y := e.Center()
	SpawnExplosion(ctx, x, y, damageBurst)
	ctx.State.RegisterDamage()
}
