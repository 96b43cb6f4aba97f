package render

import (
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = colorful.Color{R: 1}

func countFilled(c *Canvas) int {
	n := 0
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			if c.At(x, y).Filled {
				n++
			}
		}
	}
	return n
}

func TestUnits(t *testing.T) {
	u := DefaultUnits
	assert.Equal(t, 6, u.Cols(48))
	assert.Equal(t, 3, u.Rows(48))
	assert.Equal(t, 19, u.Cols(150))
	x, y := u.CellCenter(0, 0)
	assert.Equal(t, 4.0, x)
	assert.Equal(t, 8.0, y)

	cx, cy := u.Cell(23, 47)
	assert.Equal(t, 2, cx)
	assert.Equal(t, 2, cy)
	w, h := NewCanvas(4, 2, u).SizeDP()
	assert.Equal(t, 32.0, w)
	assert.Equal(t, 32.0, h)

	zero := Units{}
	assert.Equal(t, u.Cols(64), zero.Cols(64), "zero units fall back to defaults")
}

func TestBlend(t *testing.T) {
	bg := colorful.Color{}
	assert.Equal(t, red, Blend(red, bg, 1))
	assert.Equal(t, bg, Blend(red, bg, 0))
	half := Blend(red, bg, 0.5)
	assert.Greater(t, half.R, 0.0)
	assert.Less(t, half.R, 1.0)
	assert.Zero(t, half.G)
}

func TestCanvas_FillRectClips(t *testing.T) {
	c := NewCanvas(4, 3, DefaultUnits)
	c.FillRect(-2, 1, 10, 10, red, 1)
	assert.Equal(t, 8, countFilled(c))
	assert.False(t, c.At(0, 0).Filled)
	assert.True(t, c.At(3, 2).Filled)
	assert.Equal(t, Cell{}, c.At(9, 9))
}

func TestCanvas_PaintBlendsOverExisting(t *testing.T) {
	c := NewCanvas(1, 1, DefaultUnits)
	c.Paint(0, 0, colorful.Color{B: 1}, 1)
	c.Paint(0, 0, red, 0.5)
	cell := c.At(0, 0)
	assert.Greater(t, cell.BG.R, 0.0)
	assert.Greater(t, cell.BG.B, 0.0)

	c.Paint(0, 0, red, 0)
	assert.Equal(t, cell, c.At(0, 0), "zero alpha paints nothing")
}

func TestCanvas_RotatedSquareKeepsArea(t *testing.T) {
	u := Units{DPPerCol: 1, DPPerRow: 1}
	upright := NewCanvas(40, 40, u)
	upright.FillRotatedRect(20, 20, 16, 16, 0, red, 1)
	assert.Equal(t, 256, countFilled(upright))

	quarter := NewCanvas(40, 40, u)
	quarter.FillRotatedRect(20, 20, 16, 16, 90, red, 1)
	assert.Equal(t, 256, countFilled(quarter), "a quarter turn maps the square onto itself")

	diag := NewCanvas(40, 40, u)
	diag.FillRotatedRect(20, 20, 16, 16, 45, red, 1)
	assert.InDelta(t, 256, countFilled(diag), 40)
	assert.True(t, diag.At(20, 9).Filled, "a diamond reaches further up than the square")
	assert.False(t, diag.At(12, 12).Filled, "and loses its corners")
}

func TestCanvas_Ellipse(t *testing.T) {
	u := Units{DPPerCol: 1, DPPerRow: 1}
	c := NewCanvas(21, 21, u)
	c.FillEllipse(10.5, 10.5, 10, 10, red, 1)
	assert.True(t, c.At(10, 10).Filled)
	assert.False(t, c.At(0, 0).Filled)
	assert.InDelta(t, 314, countFilled(c), 20)

	c2 := NewCanvas(5, 5, u)
	c2.FillEllipse(2, 2, 0, 3, red, 1)
	assert.Zero(t, countFilled(c2))
}

func TestCanvas_TextAndString(t *testing.T) {
	c := NewCanvas(10, 2, DefaultUnits)
	c.FillRect(0, 0, 10, 1, red, 1)
	c.CenterText(0, "Spin", colorful.Color{R: 1, G: 1, B: 1}, 1)
	c.Text(8, 1, "overflow", red, 1)

	cell := c.At(3, 0)
	assert.Equal(t, 'S', cell.Rune)
	assert.True(t, cell.Filled, "text keeps the painted background")
	assert.Equal(t, red, cell.BG)

	lines := strings.Split(c.String(), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Spin")
	assert.Contains(t, lines[1], "ov")
	assert.NotContains(t, lines[1], "ove")
}

func TestCanvas_EmptyCanvasRendersSpaces(t *testing.T) {
	c := NewCanvas(3, 1, DefaultUnits)
	assert.Equal(t, "   ", c.String())
	assert.Equal(t, "", NewCanvas(0, 0, DefaultUnits).String())
}
