package constants

// --- Session ---
const (
	InitialLives = 3

	// MaxCombo caps the consecutive-kill counter
	MaxCombo = 99

	// ComboBonusFactor scales the post-increment combo into the kill bonus
	ComboBonusFactor = 1.5
)

// --- Difficulty / Spawn ---
const (
	// InitialDifficulty is the difficulty of a fresh session
	InitialDifficulty = 1.0

	// DifficultyRate is the difficulty gained per simulated second
	DifficultyRate = 0.02

	// SpawnIntervalBase and SpawnIntervalSlope define interval = base - difficulty*slope
	SpawnIntervalBase  = 1.2
	SpawnIntervalSlope = 0.08

	// SpawnIntervalMin floors the interval at 4 spawns per second
	SpawnIntervalMin = 0.25

	// SpawnEdgeMargin is the minimum gap between a spawned enemy and the side walls
	SpawnEdgeMargin = 16.0

	EnemySpeedMin = 80.0
	EnemySpeedMax = 140.0

	// EnemySpeedPerDifficulty is added to the base speed per difficulty point
	EnemySpeedPerDifficulty = 12.0

	// Tough chance = min(ToughChanceMax, ToughChanceBase + difficulty*ToughChanceSlope)
	ToughChanceBase  = 0.1
	ToughChanceSlope = 0.03
	ToughChanceMax   = 0.35
)

// Enemy variants
const (
	WeakHP    = 1
	WeakScore = 10

	ToughHP    = 3
	ToughScore = 30
)
