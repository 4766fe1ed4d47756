package components

import (
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/vmath"
)

// Enemy descends at a constant speed until shot down, collided, or off the bottom
type Enemy struct {
	X, Y          float64 // top-left
	Width, Height float64
	Speed         float64
	HP            int
	Score         int     // base kill value
	Flash         float64 // presentation only: seconds of hit highlight left
	Dead          bool
}

// NewEnemy creates an enemy just above the visible field
func NewEnemy(x, speed float64, hp, score int) *Enemy {
	return &Enemy{
		X:      x,
		Y:      -constants.EnemyHeight,
		Width:  constants.EnemyWidth,
		Height: constants.EnemyHeight,
		Speed:  speed,
		HP:     hp,
		Score:  score,
	}
}

func (e *Enemy) Update(dt float64) {
	e.Y += e.Speed * dt
	if e.Y > constants.FieldHeight+constants.EnemyCullMargin {
		e.Dead = true
	}
	if e.Flash > 0 {
		e.Flash -= dt
	}
}

// Hit applies one point of damage and reports whether the enemy is depleted
func (e *Enemy) Hit() bool {
	e.HP--
	e.Flash = constants.EnemyFlashDuration
	return e.HP <= 0
}

// Flashing reports whether the hit highlight is showing
func (e *Enemy) Flashing() bool {
	return e.Flash > 0
}

// Rect returns the collision box
func (e *Enemy) Rect() vmath.Rect {
	return vmath.Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Center returns the midpoint used for explosion bursts
func (e *Enemy) Center() (float64, float64) {
	return e.Rect().Center()
}
