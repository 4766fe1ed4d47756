package terminal

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/skyfire/render"
	"github.com/lixenwraith/skyfire/vmath"
)

// ScreenCanvas draws field primitives into tcell cells. Rectangles paint cell backgrounds,
// circles place a glyph on the cell holding their center
type ScreenCanvas struct {
	screen tcell.Screen
	view   Viewport
	bg     colorful.Color
}

// NewScreenCanvas creates a canvas over screen sized to its current dimensions
func NewScreenCanvas(screen tcell.Screen) *ScreenCanvas {
	c := &ScreenCanvas{screen: screen, bg: render.ColorBackground}
	c.Resize()
	return c
}

// Resize re-reads the screen dimensions
func (c *ScreenCanvas) Resize() {
	cols, rows := c.screen.Size()
	c.view = Viewport{Cols: cols, Rows: rows}
}

// Viewport returns the current mapping
func (c *ScreenCanvas) Viewport() Viewport {
	return c.view
}

// RGB converts a palette color to a tcell truecolor
func RGB(col colorful.Color) tcell.Color {
	r, g, b := col.Clamped().RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

func (c *ScreenCanvas) Clear(bg colorful.Color) {
	c.Resize()
	c.bg = bg
	c.screen.Fill(' ', tcell.StyleDefault.Background(RGB(bg)))
}

func (c *ScreenCanvas) FillRect(r vmath.Rect, col colorful.Color) {
	c0, r0, c1, r1, ok := c.view.Span(r)
	if !ok {
		return
	}
	style := tcell.StyleDefault.Background(RGB(col))
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			c.screen.SetContent(x, y, ' ', nil, style)
		}
	}
}

func (c *ScreenCanvas) FillCircle(circle vmath.Circle, col colorful.Color, alpha float64) {
	x, y, ok := c.view.Cell(circle.X, circle.Y)
	if !ok || !(alpha > 0) {
		return
	}
	// Keep whatever background the cell already has
	_, _, style, _ := c.screen.GetContent(x, y)
	_, cellBg, _ := style.Decompose()
	under := c.bg
	if cellBg != tcell.ColorDefault {
		r, g, b := cellBg.RGB()
		under = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	}
	fg := render.Fade(col, under, alpha)
	c.screen.SetContent(x, y, glyph(circle.R), nil, style.Foreground(RGB(fg)).Background(RGB(under)))
}

// glyph picks a dot size for a radius in pixels
func glyph(r float64) rune {
	switch {
	case r < 1.5:
		return '·'
	case r < 3.5:
		return '•'
	default:
		return '●'
	}
}

func (c *ScreenCanvas) HUD(score, combo, lives string, col colorful.Color) {
	if c.view.Rows <= 0 {
		return
	}
	style := tcell.StyleDefault.Foreground(RGB(col)).Background(RGB(c.bg)).Bold(true)
	c.fillRow(0, style)
	c.text(1, 0, score, style)
	c.text((c.view.Cols-runewidth.StringWidth(combo))/2, 0, combo, style)
	c.text(c.view.Cols-runewidth.StringWidth(lives)-1, 0, lives, style)
}

func (c *ScreenCanvas) Banner(lines []string, col colorful.Color) {
	style := tcell.StyleDefault.Foreground(RGB(col)).Background(RGB(c.bg)).Bold(true)
	top := hudRows + (c.view.FieldRows()-len(lines))/2
	for i, line := range lines {
		w := runewidth.StringWidth(line)
		c.text((c.view.Cols-w)/2, top+i, line, style)
	}
}

func (c *ScreenCanvas) Present() {
	c.screen.Show()
}

func (c *ScreenCanvas) fillRow(y int, style tcell.Style) {
	for x := 0; x < c.view.Cols; x++ {
		c.screen.SetContent(x, y, ' ', nil, style)
	}
}

// text writes s starting at column x, clipping at the screen edges and advancing by rune width
func (c *ScreenCanvas) text(x, y int, s string, style tcell.Style) {
	if y < 0 || y >= c.view.Rows {
		return
	}
	for _, r := range s {
		w := runewidth.RuneWidth(r)
		if x >= 0 && x+w <= c.view.Cols {
			c.screen.SetContent(x, y, r, nil, style)
		}
		x += w
	}
}

var _ render.Canvas = (*ScreenCanvas)(nil)
