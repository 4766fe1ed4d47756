package window

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/render"
	"github.com/lixenwraith/skyfire/vmath"
)

const (
	hudMargin   = 12.0
	hudTop      = 10.0
	lineSpacing = 22.0
	panelPad    = 14.0
)

var hudFace = text.NewGoXFace(basicfont.Face7x13)

// ImageCanvas draws field primitives onto an ebiten image. The target is replaced on every Draw
type ImageCanvas struct {
	dst  *ebiten.Image
	face text.Face
}

// NewImageCanvas creates a canvas with the built-in bitmap face
func NewImageCanvas() *ImageCanvas {
	return &ImageCanvas{face: hudFace}
}

// Target sets the image drawn to by subsequent calls
func (c *ImageCanvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// NRGBA converts a palette color and opacity to an image color
func NRGBA(col colorful.Color, alpha float64) color.NRGBA {
	r, g, b := col.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(vmath.Clamp(alpha, 0, 1)*255 + 0.5)}
}

func (c *ImageCanvas) Clear(bg colorful.Color) {
	c.dst.Fill(NRGBA(bg, 1))
}

func (c *ImageCanvas) FillRect(r vmath.Rect, col colorful.Color) {
	vector.DrawFilledRect(c.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), NRGBA(col, 1), true)
}

func (c *ImageCanvas) FillCircle(circle vmath.Circle, col colorful.Color, alpha float64) {
	if !(alpha > 0) {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(circle.X), float32(circle.Y), float32(circle.R), NRGBA(col, alpha), true)
}

func (c *ImageCanvas) HUD(score, combo, lives string, col colorful.Color) {
	c.text(score, hudMargin, hudTop, text.AlignStart, col)
	c.text(combo, constants.FieldWidth/2, hudTop, text.AlignCenter, col)
	c.text(lives, constants.FieldWidth-hudMargin, hudTop, text.AlignEnd, col)
}

func (c *ImageCanvas) Banner(lines []string, col colorful.Color) {
	h := float64(len(lines))*lineSpacing + panelPad*2
	top := (constants.FieldHeight - h) / 2
	w := 0.0
	for _, line := range lines {
		w = max(w, text.Advance(line, c.face))
	}
	w += panelPad * 2
	panel := NRGBA(render.ColorBackground, 0.8)
	vector.DrawFilledRect(c.dst, float32((constants.FieldWidth-w)/2), float32(top), float32(w), float32(h), panel, false)

	for i, line := range lines {
		c.text(line, constants.FieldWidth/2, top+panelPad+float64(i)*lineSpacing, text.AlignCenter, col)
	}
}

func (c *ImageCanvas) Present() {}

func (c *ImageCanvas) text(s string, x, y float64, align text.Align, col colorful.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.PrimaryAlign = align
	op.ColorScale.ScaleWithColor(NRGBA(col, 1))
	text.Draw(c.dst, s, c.face, op)
}

var _ render.Canvas = (*ImageCanvas)(nil)
