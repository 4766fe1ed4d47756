package terminal

import (
	"github.com/lixenwraith/skyfire/constants"
	"github.com/lixenwraith/skyfire/vmath"
)

// hudRows is the number of screen rows reserved above the field
const hudRows = 1

// Viewport maps field pixels onto the screen area below the HUD row
type Viewport struct {
	Cols int
	Rows int // total screen rows including the HUD
}

// FieldRows is the number of rows available to the field
func (v Viewport) FieldRows() int {
	return max(v.Rows-hudRows, 0)
}

// CellSize returns the pixel extent of one cell
func (v Viewport) CellSize() (w, h float64) {
	if v.Cols <= 0 || v.FieldRows() <= 0 {
		return 0, 0
	}
	return constants.FieldWidth / float64(v.Cols), constants.FieldHeight / float64(v.FieldRows())
}

// Cell returns the screen cell containing the field point; ok is false outside the field
func (v Viewport) Cell(x, y float64) (col, row int, ok bool) {
	cw, ch := v.CellSize()
	if cw == 0 || !vmath.Finite(x) || !vmath.Finite(y) {
		return 0, 0, false
	}
	if x < 0 || y < 0 || x >= constants.FieldWidth || y >= constants.FieldHeight {
		return 0, 0, false
	}
	return int(x / cw), int(y/ch) + hudRows, true
}

// Span returns the inclusive cell range covered by a field rectangle, clipped to the field.
// A rectangle inside a single cell still covers that cell
func (v Viewport) Span(r vmath.Rect) (c0, r0, c1, r1 int, ok bool) {
	cw, ch := v.CellSize()
	if cw == 0 {
		return 0, 0, 0, 0, false
	}
	x0 := vmath.Clamp(r.X, 0, constants.FieldWidth)
	y0 := vmath.Clamp(r.Y, 0, constants.FieldHeight)
	x1 := vmath.Clamp(r.X+r.W, 0, constants.FieldWidth)
	y1 := vmath.Clamp(r.Y+r.H, 0, constants.FieldHeight)
	if x1 <= x0 || y1 <= y0 {
		return 0, 0, 0, 0, false
	}
	c0 = int(x0 / cw)
	r0 = int(y0 / ch)
	c1 = min(int((x1-1e-9)/cw), v.Cols-1)
	r1 = min(int((y1-1e-9)/ch), v.FieldRows()-1)
	return c0, r0 + hudRows, c1, r1 + hudRows, true
}

// FieldX returns the field x coordinate of a column's center
func (v Viewport) FieldX(col int) float64 {
	cw, _ := v.CellSize()
	return (float64(col) + 0.5) * cw
}
