package engine

import (
	"log"

	"github.com/lixenwraith/skyfire/components"
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/input"
	"github.com/lixenwraith/skyfire/vmath"
)

// GameContext owns one session: the entity collections, scoring state, spawner state
// and random source. It is written only from the tick driver's goroutine
type GameContext struct {
	Player      *components.Player
	Projectiles []*components.Projectile
	Enemies     []*components.Enemy
	Particles   []*components.Particle

	State SimulationState
	Spawn SpawnState

	// Input is the sanitized intent of the tick in progress
	Input input.Intent

	// Rand drives spawn placement and particle bursts
	Rand vmath.Source

	systems []System
}

// NewGameContext creates an idle session. Register systems before the first tick
func NewGameContext(rng vmath.Source) *GameContext {
	ctx := &GameContext{
		Player: components.NewPlayer(),
		Rand:   rng,
	}
	ctx.Reset()
	return ctx
}

// Start moves idle → running. Ignored while running or after game over until Reset
func (ctx *GameContext) Start() bool {
	return ctx.State.transition(PhaseRunning)
}

// Reset rebuilds a fresh idle session: empty collections, zero score and combo,
// full lives, initial difficulty, spawn timer zero, player at home
func (ctx *GameContext) Reset() {
	log.Printf("session reset (score=%d elapsed=%.1fs)", ctx.State.Score, ctx.State.Elapsed)
	ctx.Projectiles = ctx.Projectiles[:0]
	ctx.Enemies = ctx.Enemies[:0]
	ctx.Particles = ctx.Particles[:0]
	ctx.State = NewSimulationState()
	ctx.Spawn = NewSpawnState()
	ctx.Player.Home()
	ctx.Input = input.Intent{PointerX: constants.FieldWidth / 2}
}

// Begin is the "start" key: resets first when the previous session is over
func (ctx *GameContext) Begin() bool {
	if !ctx.State.Running() && ctx.State.Lives <= 0 {
		ctx.Reset()
	}
	return ctx.Start()
}

// Update advances one tick. No-op unless running
func (ctx *GameContext) Update(dt float64, in input.Intent) {
	if !ctx.State.Running() {
		return
	}
	if !(dt > 0) {
		dt = 0
	}

	ctx.Input = in.Sanitize(constants.FieldWidth, ctx.Input.PointerX)
	ctx.State.Elapsed += dt

	for _, s := range ctx.systems {
		s.Update(ctx, dt)
	}
}
