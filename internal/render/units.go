package render

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// Units maps design units (dp) to terminal cells. Cells are roughly twice as
// tall as they are wide, so DPPerRow is usually twice DPPerCol.
type Units struct {
	DPPerCol float64
	DPPerRow float64
}

// DefaultUnits renders a 48dp square as 6×3 cells.
var DefaultUnits = Units{DPPerCol: 8, DPPerRow: 16}

// Normalize replaces non-positive scales with the defaults.
func (u Units) Normalize() Units {
	if u.DPPerCol <= 0 {
		u.DPPerCol = DefaultUnits.DPPerCol
	}
	if u.DPPerRow <= 0 {
		u.DPPerRow = DefaultUnits.DPPerRow
	}
	return u
}

// Cols converts a width in dp to whole columns, rounding to nearest.
func (u Units) Cols(dp float64) int {
	return int(math.Round(dp / u.Normalize().DPPerCol))
}

// Rows converts a height in dp to whole rows, rounding to nearest.
func (u Units) Rows(dp float64) int {
	return int(math.Round(dp / u.Normalize().DPPerRow))
}

// Cell returns the cell containing the dp point (x, y).
func (u Units) Cell(x, y float64) (int, int) {
	n := u.Normalize()
	return int(math.Floor(x / n.DPPerCol)), int(math.Floor(y / n.DPPerRow))
}

// CellCenter returns the dp coordinates of the centre of cell (x, y).
func (u Units) CellCenter(x, y int) (float64, float64) {
	n := u.Normalize()
	return (float64(x) + 0.5) * n.DPPerCol, (float64(y) + 0.5) * n.DPPerRow
}

// DefaultBackground approximates a dark terminal background.
var DefaultBackground = colorful.Color{R: 0.07, G: 0.07, B: 0.09}

// Blend mixes fg over bg with the given opacity in linear RGB, which is how
// a compositor would apply alpha.
func Blend(fg, bg colorful.Color, alpha float64) colorful.Color {
	switch {
	case alpha >= 1:
		return fg
	case alpha <= 0:
		return bg
	}
	return bg.BlendLinearRgb(fg, alpha).Clamped()
}
