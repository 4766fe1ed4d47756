package systems

import "github.com/lixenwraith/skyfire/engine"

// Install registers the standard tick pipeline: spawn, movement, collision, cull
func Install(ctx *engine.GameContext) {
	ctx.AddSystem(NewSpawnSystem())
	ctx.AddSystem(NewMovementSystem())
	ctx.AddSystem(NewCollisionSystem())
	ctx.AddSystem(NewCullSystem())
}
