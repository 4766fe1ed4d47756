package components

// Kind tags the closed set of simulated entity variants
type Kind uint8

const (
	KindPlayer Kind = iota
	KindProjectile
	KindEnemy
	KindParticle
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindProjectile:
		return "projectile"
	case KindEnemy:
		return "enemy"
	case KindParticle:
		return "particle"
	}
	return "unknown"
}

// Entity is implemented only by the four variants in this package
type Entity interface {
	Kind() Kind
	IsDead() bool
	entity()
}

func (*Player) entity()     {}
func (*Projectile) entity() {}
func (*Enemy) entity()      {}
func (*Particle) entity()   {}

func (*Player) Kind() Kind     { return KindPlayer }
func (*Projectile) Kind() Kind { return KindProjectile }
func (*Enemy) Kind() Kind      { return KindEnemy }
func (*Particle) Kind() Kind   { return KindParticle }

// IsDead is always false: the player lives for the whole session
func (*Player) IsDead() bool { return false }

func (p *Projectile) IsDead() bool { return p.Dead }
func (e *Enemy) IsDead() bool      { return e.Dead }
func (p *Particle) IsDead() bool   { return p.Dead }
