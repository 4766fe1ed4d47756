package systems

import (
	"github.com/lixenwraith/skyfire/components"
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/engine"
	"github.com/lixenwraith/skyfire/vmath"
)

// SpawnSystem ramps difficulty and creates enemies on a shrinking interval
type SpawnSystem struct{}

// NewSpawnSystem creates a new spawn system
func NewSpawnSystem() *SpawnSystem {
	return &SpawnSystem{}
}

func (s *SpawnSystem) Priority() int {
	return constants.PrioritySpawn
}

// Update grows difficulty, counts down and spawns at most one enemy per tick
func (s *SpawnSystem) Update(ctx *engine.GameContext, dt float64) {
	ctx.Spawn.Difficulty += dt * constants.DifficultyRate
	ctx.Spawn.Timer -= dt
	if ctx.Spawn.Timer <= 0 {
		SpawnEnemy(ctx)
		ctx.Spawn.Timer = SpawnInterval(ctx.Spawn.Difficulty)
	}
}

// SpawnInterval is max(0.25, 1.2 - difficulty*0.08): non-increasing in difficulty
func SpawnInterval(difficulty float64) float64 {
	return max(constants.SpawnIntervalMin, constants.SpawnIntervalBase-difficulty*constants.SpawnIntervalSlope)
}

// ToughChance is min(0.35, 0.1 + difficulty*0.03)
func ToughChance(difficulty float64) float64 {
	return min(constants.ToughChanceMax, constants.ToughChanceBase+difficulty*constants.ToughChanceSlope)
}

// SpawnEnemy places one enemy at the current difficulty and appends it
// Draw order is x, speed, variant
func SpawnEnemy(ctx *engine.GameContext) *components.Enemy {
	d := ctx.Spawn.Difficulty
	x := vmath.RandRange(ctx.Rand, constants.SpawnEdgeMargin,
		constants.FieldWidth-constants.EnemyWidth-constants.SpawnEdgeMargin)
	speed := vmath.RandRange(ctx.Rand, constants.EnemySpeedMin, constants.EnemySpeedMax) +
		d*constants.EnemySpeedPerDifficulty

	hp, score := constants.WeakHP, constants.WeakScore
	if ctx.Rand.Float64() < ToughChance(d) {
		hp, score = constants.ToughHP, constants.ToughScore
	}

	e := components.NewEnemy(x, speed, hp, score)
	ctx.Enemies = append(ctx.Enemies, e)
	return e
}
