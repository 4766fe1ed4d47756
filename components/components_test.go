package components

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/input"
)

const eps = 1e-9

func TestPlayerHome(t *testing.T) {
	p := NewPlayer()
	assert.Equal(t, (480.0-42.0)/2, p.X)
	assert.Equal(t, 640.0-42.0-26.0, p.Y)
	assert.Equal(t, 0.0, p.Cooldown)

	p.X, p.Cooldown = 10, 0.1
	p.Home()
	assert.Equal(t, 219.0, p.X)
	assert.Equal(t, 0.0, p.Cooldown)
}

func TestPlayerDigitalMovement(t *testing.T) {
	p := NewPlayer()
	start := p.X

	p.Update(0.01, input.Intent{Right: true})
	assert.InDelta(t, start+3.6, p.X, eps)

	p.Update(0.01, input.Intent{Left: true})
	assert.InDelta(t, start, p.X, eps)

	p.Update(0.01, input.Intent{Left: true, Right: true})
	assert.InDelta(t, start, p.X, eps, "opposing keys cancel")
}

func TestPlayerClampedToField(t *testing.T) {
	minX := constants.PlayerMargin
	maxX := constants.FieldWidth - constants.PlayerWidth - constants.PlayerMargin

	p := NewPlayer()
	for i := 0; i < 200; i++ {
		p.Update(0.033, input.Intent{Left: true})
		require.GreaterOrEqual(t, p.X, minX)
	}
	assert.Equal(t, minX, p.X)

	for i := 0; i < 200; i++ {
		p.Update(0.033, input.Intent{Right: true})
		require.LessOrEqual(t, p.X, maxX)
	}
	assert.Equal(t, maxX, p.X)

	// Extreme pointer targets stay within bounds too
	p.Update(0.033, input.Intent{PointerDown: true, PointerX: 1e9})
	assert.Equal(t, maxX, p.X)
	p.Update(0.033, input.Intent{PointerDown: true, PointerX: -1e9})
	assert.Equal(t, minX, p.X)
}

func TestPlayerPointerFollow(t *testing.T) {
	p := NewPlayer()
	center := p.X + p.Width/2 // 240

	p.Update(0, input.Intent{PointerDown: true, PointerX: center + 100})
	assert.InDelta(t, center+25, p.X+p.Width/2, eps, "closes a quarter of the gap")

	p.Update(0, input.Intent{PointerDown: true, PointerX: center + 100})
	assert.InDelta(t, center+25+18.75, p.X+p.Width/2, eps)

	before := p.X
	p.Update(0, input.Intent{PointerDown: false, PointerX: 0})
	assert.Equal(t, before, p.X, "pointer ignored while not pressed")
}

func TestPlayerFireCooldown(t *testing.T) {
	p := NewPlayer()

	fired := p.Update(0.016, input.Intent{Shoot: true})
	require.True(t, fired)
	assert.Equal(t, constants.FireCooldown, p.Cooldown)

	x, y := p.Muzzle()
	assert.Equal(t, p.X+21, x)
	assert.Equal(t, p.Y, y)

	// Holding fire at 60 Hz for one second yields a capped rate
	shots := 1
	for i := 0; i < 60; i++ {
		if p.Update(1.0/60, input.Intent{Shoot: true}) {
			shots++
		}
	}
	cd := constants.FireCooldown
	assert.LessOrEqual(t, shots, 1+int(1.0/cd)+1)
	assert.GreaterOrEqual(t, shots, 5)

	// Pointer press fires as well
	p.Cooldown = 0
	assert.True(t, p.Update(0.016, input.Intent{PointerDown: true, PointerX: p.X + p.Width/2}))

	// No trigger, no shot
	p.Cooldown = 0
	assert.False(t, p.Update(0.016, input.Intent{}))
	assert.Equal(t, 0.0, p.Cooldown, "cooldown does not go below the ready value when idle")
}

func TestPlayerCooldownFloor(t *testing.T) {
	p := NewPlayer()
	require.True(t, p.Update(0.016, input.Intent{Shoot: true}))

	p.Update(0.2, input.Intent{})
	assert.Equal(t, 0.0, p.Cooldown, "idle tick longer than the cooldown stops at zero")

	for i := 0; i < 50; i++ {
		p.Update(0.033, input.Intent{Shoot: i%3 == 0})
		require.GreaterOrEqual(t, p.Cooldown, 0.0)
	}

	// Ready weapon fires on the next trigger
	p.Update(1, input.Intent{})
	assert.True(t, p.Update(0.001, input.Intent{Shoot: true}))
}

func TestProjectileUpdate(t *testing.T) {
	b := NewProjectile(100, 20)
	b.Update(0.01)
	assert.InDelta(t, 13.6, b.Y, eps)
	assert.False(t, b.Dead)

	b.Y = -9
	b.Update(0.01)
	assert.True(t, b.Dead, "dies once above the cull line")
	assert.True(t, b.IsDead())

	c := b.Circle()
	assert.Equal(t, constants.ProjectileRadius, c.R)
}

func TestEnemyUpdate(t *testing.T) {
	e := NewEnemy(50, 100, constants.WeakHP, constants.WeakScore)
	assert.Equal(t, -constants.EnemyHeight, e.Y)

	e.Update(0.1)
	assert.InDelta(t, -18, e.Y, eps)
	assert.False(t, e.Dead)

	e.Y = constants.FieldHeight + constants.EnemyCullMargin
	e.Update(0.001)
	assert.True(t, e.Dead)
}

func TestEnemyHitAndFlash(t *testing.T) {
	e := NewEnemy(50, 100, constants.ToughHP, constants.ToughScore)

	assert.False(t, e.Hit())
	assert.Equal(t, 2, e.HP)
	assert.True(t, e.Flashing())

	e.Update(0.05)
	assert.True(t, e.Flashing())
	e.Update(0.05)
	assert.False(t, e.Flashing(), "flash decays")

	assert.False(t, e.Hit())
	assert.True(t, e.Hit())
	assert.Equal(t, 0, e.HP)

	cx, cy := e.Center()
	assert.Equal(t, e.X+18, cx)
	assert.Equal(t, e.Y+14, cy)
}

func TestParticleRanges(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 11))
	color := colorful.Color{R: 1}

	var sumVX float64
	const n = 4000
	for i := 0; i < n; i++ {
		p := NewParticle(10, 20, color, rng)
		require.GreaterOrEqual(t, p.VX, constants.ParticleVXMin)
		require.Less(t, p.VX, constants.ParticleVXMax)
		require.GreaterOrEqual(t, p.VY, constants.ParticleVYMin)
		require.Less(t, p.VY, constants.ParticleVYMax)
		require.GreaterOrEqual(t, p.Life, constants.ParticleLifeMin)
		require.Less(t, p.Life, constants.ParticleLifeMax)
		require.GreaterOrEqual(t, p.Radius, constants.ParticleRadiusMin)
		require.Less(t, p.Radius, constants.ParticleRadiusMax)
		sumVX += p.VX
	}
	// Symmetric range: mean horizontal velocity near zero
	assert.Less(t, math.Abs(sumVX/n), 10.0)
}

func TestParticleUpdate(t *testing.T) {
	p := &Particle{X: 0, Y: 0, VX: 100, VY: -100, Life: 0.5}

	p.Update(0.1)
	assert.InDelta(t, 10, p.X, eps)
	assert.InDelta(t, -10, p.Y, eps)
	assert.InDelta(t, -100+constants.ParticleGravity*0.1, p.VY, eps)
	assert.InDelta(t, 0.4, p.Life, eps)
	assert.InDelta(t, 0.4, p.Alpha(), eps)
	assert.False(t, p.Dead)

	p.Update(0.5)
	assert.True(t, p.Dead)
	assert.Equal(t, 0.0, p.Alpha())
}

func TestEntityKinds(t *testing.T) {
	entities := []Entity{NewPlayer(), NewProjectile(0, 0), NewEnemy(0, 0, 1, 10), &Particle{}}
	kinds := []Kind{KindPlayer, KindProjectile, KindEnemy, KindParticle}
	for i, e := range entities {
		assert.Equal(t, kinds[i], e.Kind())
		assert.False(t, e.IsDead())
	}
	assert.Equal(t, "enemy", KindEnemy.String())
}
