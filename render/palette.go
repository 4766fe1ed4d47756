package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/skyfire/components"
	"github.com/lixenwraith/skyfire/constants"
)

// Entity and scene colors
var (
	ColorBackground = components.MustHex("#0b1020")
	ColorPlayer     = components.MustHex("#7bd0ff")
	ColorPlayerCore = components.MustHex("#102850")
	ColorProjectile = components.MustHex("#7bff9f")
	ColorEnemy      = components.MustHex(constants.KillBurstColor)
	ColorEnemyFlash = components.MustHex(constants.DamageBurstColor)

	ColorStarFar  = components.MustHex("#ffffff")
	ColorStarNear = components.MustHex("#a0c8ff")

	ColorHUD    = components.MustHex("#e6f0ff")
	ColorBanner = components.MustHex("#ffffff")
)

// Star layer opacity
const (
	StarFarAlpha  = 0.6
	StarNearAlpha = 0.9 * 0.9
)

// Fade composites fg over bg at the given opacity. Used by hosts without an alpha channel
func Fade(fg, bg colorful.Color, alpha float64) colorful.Color {
	switch {
	case alpha >= 1:
		return fg
	case !(alpha > 0):
		return bg
	}
	return bg.BlendRgb(fg, alpha).Clamped()
}

// EnemyColor returns the body color, flashing while the hit timer runs
func EnemyColor(flashing bool) colorful.Color {
	if flashing {
		return ColorEnemyFlash
	}
	return ColorEnemy
}
