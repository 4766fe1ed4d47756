package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/skyfire/engine"
	"github.com/lixenwraith/skyfire/vmath"
)

// EnemyView is the drawable state of one enemy
type EnemyView struct {
	Rect     vmath.Rect
	Flashing bool
}

// ParticleView is the drawable state of one particle
type ParticleView struct {
	Circle vmath.Circle
	Color  colorful.Color
	Alpha  float64
}

// Frame is a read-only snapshot of a session taken after the tick and before drawing.
// Layers never see the live collections
type Frame struct {
	Phase   engine.Phase
	Score   int
	Combo   int
	Lives   int
	Elapsed float64

	Player      vmath.Rect
	Projectiles []vmath.Circle
	Enemies     []EnemyView
	Particles   []ParticleView

	Stars *StarField
}

// Snapshot copies the drawable state out of ctx, reusing f's slices
func (f *Frame) Snapshot(ctx *engine.GameContext) {
	f.Phase = ctx.State.Phase
	f.Score = ctx.State.Score
	f.Combo = ctx.State.Combo
	f.Lives = ctx.State.Lives
	f.Elapsed = ctx.State.Elapsed
	f.Player = ctx.Player.Rect()

	f.Projectiles = f.Projectiles[:0]
	for _, b := range ctx.Projectiles {
		if !b.Dead {
			f.Projectiles = append(f.Projectiles, b.Circle())
		}
	}

	f.Enemies = f.Enemies[:0]
	for _, e := range ctx.Enemies {
		if !e.Dead {
			f.Enemies = append(f.Enemies, EnemyView{Rect: e.Rect(), Flashing: e.Flashing()})
		}
	}

	f.Particles = f.Particles[:0]
	for _, p := range ctx.Particles {
		if p.Dead {
			continue
		}
		f.Particles = append(f.Particles, ParticleView{
			Circle: vmath.Circle{X: p.X, Y: p.Y, R: p.Radius},
			Color:  p.Color,
			Alpha:  p.Alpha(),
		})
	}
}
