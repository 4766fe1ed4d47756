package constants

// --- Player ---
const (
	PlayerWidth  = 42.0
	PlayerHeight = 42.0

	// PlayerBottomGap is the distance between the player's bottom edge and the field bottom
	PlayerBottomGap = 26.0

	// PlayerSpeed is the horizontal speed under digital input, px/s
	PlayerSpeed = 360.0

	// PlayerMargin keeps the ship off the side walls
	PlayerMargin = 8.0

	// PointerFollow is the fraction of the gap to the pointer closed per tick
	PointerFollow = 0.25

	// FireCooldown is the minimum interval between shots in seconds
	FireCooldown = 0.18
)

// --- Projectile ---
const (
	ProjectileRadius = 4.0
	ProjectileSpeed  = 640.0

	// ProjectileCullY is how far above the field a projectile may travel before it dies
	ProjectileCullY = -10.0
)

// --- Enemy ---
const (
	EnemyWidth  = 36.0
	EnemyHeight = 28.0

	// EnemyCullMargin is how far below the field an enemy may travel before it dies
	EnemyCullMargin = 40.0

	// EnemyFlashDuration is the hit flash shown after a non-lethal or lethal hit
	EnemyFlashDuration = 0.08
)

// --- Particle ---
const (
	ParticleVXMin = -180.0
	ParticleVXMax = 180.0
	ParticleVYMin = -220.0
	ParticleVYMax = 40.0

	ParticleLifeMin = 0.4
	ParticleLifeMax = 0.9

	ParticleRadiusMin = 1.0
	ParticleRadiusMax = 3.2

	// ParticleGravity is the downward acceleration, px/s²
	ParticleGravity = 520.0 * 0.6

	// ExplosionParticles is the burst size for kill and damage events
	ExplosionParticles = 24
)

// Burst colors
const (
	KillBurstColor   = "#ff5d7d"
	DamageBurstColor = "#ffd2dc"
)
