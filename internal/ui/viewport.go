package ui

import "math"

// Viewport maps logical court coordinates onto terminal cells. The court
// fills every row between the scoreboard (row 0) and the status bar
// (last row).
type Viewport struct {
	Cols, Rows    int
	ScaleX        float64
	ScaleY        float64
	SurfaceHeight int
}

const courtTop = 1

func NewViewport(screenW, screenH, surfaceW, surfaceH int) Viewport {
	rows := screenH - 2
	if rows < 1 {
		rows = 1
	}
	return Viewport{
		Cols:          screenW,
		Rows:          rows,
		ScaleX:        float64(screenW) / float64(surfaceW),
		ScaleY:        float64(rows) / float64(surfaceH),
		SurfaceHeight: surfaceH,
	}
}

// Col returns the screen column holding surface x
func (v Viewport) Col(x float64) int {
	return int(math.Floor(x * v.ScaleX))
}

// Row returns the screen row holding surface y
func (v Viewport) Row(y float64) int {
	return int(math.Floor(y*v.ScaleY)) + courtTop
}

// ColSpan returns the first and last columns covered by [x0, x1)
func (v Viewport) ColSpan(x0, x1 float64) (int, int) {
	first := v.Col(x0)
	last := int(math.Ceil(x1*v.ScaleX)) - 1
	if last < first {
		last = first
	}
	return first, last
}

// RowSpan returns the first and last rows covered by [y0, y1)
func (v Viewport) RowSpan(y0, y1 float64) (int, int) {
	first := v.Row(y0)
	last := int(math.Ceil(y1*v.ScaleY)) - 1 + courtTop
	if last < first {
		last = first
	}
	return first, last
}

// CellCenter returns the surface coordinates of the middle of a cell
func (v Viewport) CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) / v.ScaleX, (float64(row-courtTop) + 0.5) / v.ScaleY
}

// SurfaceY maps a screen row back to a surface y coordinate. Rows outside
// the court map past its edges; the game clamps them.
func (v Viewport) SurfaceY(row int) float64 {
	_, y := v.CellCenter(0, row)
	return y
}

// InCourt reports whether a cell lies in the drawable court area
func (v Viewport) InCourt(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= courtTop && row < courtTop+v.Rows
}
