package render

import (
	"github.com/lixenwraith/skyfire/vmath"
)

// Layer draws one slice of the scene from a frame snapshot
type Layer interface {
	Draw(f *Frame, c Canvas)
}

// LayerFunc adapts a function to Layer
type LayerFunc func(f *Frame, c Canvas)

func (fn LayerFunc) Draw(f *Frame, c Canvas) { fn(f, c) }

// Player body inset and core size, relative to the 42px hitbox
const (
	playerBodySize = 36.0
	playerCoreSize = 24.0
	enemyBodyH     = 24.0
)

func drawBackground(f *Frame, c Canvas) {
	c.Clear(ColorBackground)
	if f.Stars == nil {
		return
	}
	for _, st := range f.Stars.Far {
		c.FillCircle(vmath.Circle{X: st.X, Y: st.Y, R: st.Radius}, ColorStarFar, StarFarAlpha)
	}
	for _, st := range f.Stars.Near {
		c.FillCircle(vmath.Circle{X: st.X, Y: st.Y, R: st.Radius}, ColorStarNear, StarNearAlpha)
	}
}

func drawPlayer(f *Frame, c Canvas) {
	cx, cy := f.Player.Center()
	c.FillRect(centered(cx, cy, playerBodySize, playerBodySize), ColorPlayer)
	c.FillRect(centered(cx, cy, playerCoreSize, playerCoreSize), ColorPlayerCore)
}

func drawProjectiles(f *Frame, c Canvas) {
	for _, b := range f.Projectiles {
		c.FillCircle(b, ColorProjectile, 1)
	}
}

func drawEnemies(f *Frame, c Canvas) {
	for _, e := range f.Enemies {
		cx, cy := e.Rect.Center()
		c.FillRect(centered(cx, cy, e.Rect.W, enemyBodyH), EnemyColor(e.Flashing))
	}
}

func drawParticles(f *Frame, c Canvas) {
	for _, p := range f.Particles {
		c.FillCircle(p.Circle, p.Color, p.Alpha)
	}
}

func drawHUD(f *Frame, c Canvas) {
	score, combo, lives := HUDLabels(f)
	c.HUD(score, combo, lives, ColorHUD)
}

func drawBanner(f *Frame, c Canvas) {
	if lines := BannerLines(f.Phase, f.Score); len(lines) > 0 {
		c.Banner(lines, ColorBanner)
	}
}

func centered(cx, cy, w, h float64) vmath.Rect {
	return vmath.Rect{X: cx - w/2, Y: cy - h/2, W: w, H: h}
}
