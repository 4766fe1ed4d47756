package render

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/skyfire/vmath"
)

// Anchor is the horizontal alignment of a text run
type Anchor int

const (
	AnchorLeft Anchor = iota
	AnchorCenter
	AnchorRight
)

// Canvas is a drawing surface in field pixel coordinates. Frontends implement it;
// alpha is the opacity in [0, 1]
type Canvas interface {
	Clear(bg colorful.Color)
	FillRect(r vmath.Rect, c colorful.Color)
	FillCircle(c vmath.Circle, col colorful.Color, alpha float64)
	// HUD draws the status labels in the host's status area
	HUD(score, combo, lives string, c colorful.Color)
	// Banner draws centered lines over the middle of the field
	Banner(lines []string, c colorful.Color)
	Present()
}
