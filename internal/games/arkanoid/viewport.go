package arkanoid

import (
	"math"

	"github.com/vovakirdan/tui-arkanoid/internal/core"
	"github.com/vovakirdan/tui-arkanoid/internal/geom"
)

// Viewport maps playfield coordinates onto screen cells.
type Viewport struct {
	field  geom.Rect
	cols   int
	rows   int
	scaleX float64
	scaleY float64
}

// NewViewport fits field into a screen of cols x rows cells.
func NewViewport(field geom.Rect, cols, rows int) Viewport {
	v := Viewport{field: field, cols: cols, rows: rows}
	if field.Width > 0 {
		v.scaleX = float64(cols) / field.Width
	}
	if field.Height > 0 {
		v.scaleY = float64(rows) / field.Height
	}
	return v
}

// Cell returns the cell containing p.
func (v Viewport) Cell(p geom.Point) (x, y int) {
	x = int(math.Floor((p.X - v.field.LowX()) * v.scaleX))
	y = int(math.Floor((p.Y - v.field.LowY()) * v.scaleY))
	return x, y
}

// Rect returns the cells covered by r. Anything with an area gets at least
// one cell, and rectangles along the far edges are pulled back onto the
// screen, so thin borders and the paddle stay visible.
func (v Viewport) Rect(r geom.Rect) core.Rect {
	x0 := int(math.Round((r.LowX() - v.field.LowX()) * v.scaleX))
	x1 := int(math.Round((r.HighX() - v.field.LowX()) * v.scaleX))
	y0 := int(math.Round((r.LowY() - v.field.LowY()) * v.scaleY))
	y1 := int(math.Round((r.HighY() - v.field.LowY()) * v.scaleY))

	x0 = core.Clamp(x0, 0, max(v.cols-1, 0))
	y0 = core.Clamp(y0, 0, max(v.rows-1, 0))
	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}
