package systems

import (
	"slices"

	"github.com/lixenwraith/skyfire/components"
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/engine"
)

// CullSystem removes entities flagged dead
// It runs last in the tick so no dead entity survives into rendering or the next collision pass
type CullSystem struct{}

// NewCullSystem creates a new cull system
func NewCullSystem() *CullSystem {
	return &CullSystem{}
}

// Priority returns the system's priority (highest value = runs last)
func (s *CullSystem) Priority() int {
	return constants.PriorityCleanup
}

func (s *CullSystem) Update(ctx *engine.GameContext, dt float64) {
	ctx.Projectiles = Compact(ctx.Projectiles)
	ctx.Enemies = Compact(ctx.Enemies)
	ctx.Particles = Compact(ctx.Particles)
}

// Compact drops dead entities in place, preserving the order of survivors
func Compact[T components.Entity](s []T) []T {
	return slices.DeleteFunc(s, func(e T) bool { return e.IsDead() })
}
