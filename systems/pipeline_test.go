package systems

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/engine"
	"github.com/lixenwraith/skyfire/input"
)

func TestInstallOrder(t *testing.T) {
	ctx := engine.NewGameContext(rand.New(rand.NewPCG(1, 1)))
	Install(ctx)

	sys := ctx.Systems()
	require.Len(t, sys, 4)
	assert.IsType(t, &SpawnSystem{}, sys[0])
	assert.IsType(t, &MovementSystem{}, sys[1])
	assert.IsType(t, &CollisionSystem{}, sys[2])
	assert.IsType(t, &CullSystem{}, sys[3])
}

func TestFireCreatesOneProjectileAtMuzzle(t *testing.T) {
	ctx := newRunningContext(nil, NewMovementSystem())
	require.Equal(t, 0.0, ctx.Player.Cooldown)

	ctx.Update(0, input.Intent{Shoot: true})

	require.Len(t, ctx.Projectiles, 1)
	b := ctx.Projectiles[0]
	assert.Equal(t, ctx.Player.X+ctx.Player.Width/2, b.X)
	assert.Equal(t, ctx.Player.Y, b.Y)
	assert.Equal(t, 0.18, ctx.Player.Cooldown)

	// Cooldown holds further shots back
	ctx.Update(0.016, input.Intent{Shoot: true})
	assert.Len(t, ctx.Projectiles, 1)
}

func TestMovementAdvancesAllEntities(t *testing.T) {
	ctx := newRunningContext(nil, NewMovementSystem())
	e := SpawnEnemy(ctx)
	SpawnExplosion(ctx, 50, 50, killBurst)
	startY := e.Y
	startLife := ctx.Particles[0].Life

	ctx.Update(0.02, input.Intent{Shoot: true})

	assert.InDelta(t, startY+e.Speed*0.02, e.Y, 1e-9)
	assert.InDelta(t, startLife-0.02, ctx.Particles[0].Life, 1e-9)
	require.Len(t, ctx.Projectiles, 1)
	assert.InDelta(t, ctx.Player.Y-640*0.02, ctx.Projectiles[0].Y, 1e-9, "new shot moves in its first tick")
}

func TestOffscreenEntitiesRemovedBeforeNextTick(t *testing.T) {
	ctx := newRunningContext(nil, NewMovementSystem(), NewCullSystem())
	e := SpawnEnemy(ctx)
	e.Y = constants.FieldHeight + constants.EnemyCullMargin

	ctx.Update(0.016, input.Intent{})
	assert.Empty(t, ctx.Enemies)
}

// TestSessionInvariants plays seeded sessions and checks the documented invariants after every tick
func TestSessionInvariants(t *testing.T) {
	for seed := uint64(1); seed <= 5; seed++ {
		ctx := engine.NewGameContext(rand.New(rand.NewPCG(seed, seed*31)))
		Install(ctx)
		require.True(t, ctx.Begin())

		minX := constants.PlayerMargin
		maxX := constants.FieldWidth - constants.PlayerWidth - constants.PlayerMargin
		lastScore := 0
		lastLives := ctx.State.Lives

		for tick := 0; tick < 20000 && ctx.State.Running(); tick++ {
			in := input.Intent{
				Shoot:       true,
				Left:        (tick/90)%2 == 0,
				Right:       (tick/90)%2 == 1,
				PointerDown: tick%500 > 450,
				PointerX:    float64(tick % 480),
			}
			ctx.Update(1.0/60, in)

			require.GreaterOrEqual(t, ctx.State.Lives, 0)
			require.LessOrEqual(t, ctx.State.Combo, constants.MaxCombo)
			require.GreaterOrEqual(t, ctx.State.Score, lastScore)
			require.GreaterOrEqual(t, ctx.Player.X, minX)
			require.LessOrEqual(t, ctx.Player.X, maxX)
			require.Positive(t, ctx.Spawn.Timer)
			require.LessOrEqual(t, ctx.State.Lives, lastLives)
			for _, e := range ctx.Enemies {
				require.False(t, e.Dead)
				require.Positive(t, e.HP)
			}
			for _, b := range ctx.Projectiles {
				require.False(t, b.Dead)
			}
			for _, p := range ctx.Particles {
				require.False(t, p.Dead)
			}
			lastScore = ctx.State.Score
			lastLives = ctx.State.Lives
		}

		if ctx.State.Lives == 0 {
			assert.Equal(t, engine.PhaseGameOver, ctx.State.Phase)
		}
	}
}
