package render

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"animplay/internal/ui/textutil"
)

// Cell is one terminal cell. A cell that was never painted has Filled false
// and renders as a plain space on the terminal's own background.
type Cell struct {
	Rune   rune
	FG, BG colorful.Color
	Filled bool
	HasFG  bool
}

// Canvas is a grid of cells addressed in columns (x) and rows (y).
type Canvas struct {
	W, H  int
	Units Units
	// Background is what translucent shapes blend toward.
	Background colorful.Color
	cells      []Cell
}

// NewCanvas returns an empty w×h canvas.
func NewCanvas(w, h int, units Units) *Canvas {
	w, h = max(w, 0), max(h, 0)
	return &Canvas{
		W:          w,
		H:          h,
		Units:      units,
		Background: DefaultBackground,
		cells:      make([]Cell, w*h),
	}
}

// At returns the cell at (x, y). Out of range coordinates return a zero Cell.
func (c *Canvas) At(x, y int) Cell {
	if !c.inside(x, y) {
		return Cell{}
	}
	return c.cells[y*c.W+x]
}

// SizeDP returns the canvas extent in dp.
func (c *Canvas) SizeDP() (w, h float64) {
	n := c.Units.Normalize()
	return float64(c.W) * n.DPPerCol, float64(c.H) * n.DPPerRow
}

func (c *Canvas) inside(x, y int) bool {
	return x >= 0 && y >= 0 && x < c.W && y < c.H
}

// Paint fills one cell's background, blending toward whatever is under it.
func (c *Canvas) Paint(x, y int, col colorful.Color, alpha float64) {
	if !c.inside(x, y) || alpha <= 0 {
		return
	}
	cell := &c.cells[y*c.W+x]
	under := c.Background
	if cell.Filled {
		under = cell.BG
	}
	cell.BG = Blend(col, under, alpha)
	cell.Filled = true
	if cell.Rune == 0 {
		cell.Rune = ' '
	}
}

// FillRect paints the rectangle with top-left (x, y) in cells.
func (c *Canvas) FillRect(x, y, w, h int, col colorful.Color, alpha float64) {
	for row := max(y, 0); row < min(y+h, c.H); row++ {
		for cx := max(x, 0); cx < min(x+w, c.W); cx++ {
			c.Paint(cx, row, col, alpha)
		}
	}
}

// FillRotatedRect paints a w×h (dp) rectangle centred at (cx, cy) (dp)
// rotated by deg degrees clockwise. A cell is painted when its centre falls
// inside the shape.
func (c *Canvas) FillRotatedRect(cx, cy, w, h, deg float64, col colorful.Color, alpha float64) {
	rad := deg * math.Pi / 180
	sin, cos := math.Sincos(-rad)
	hw, hh := w/2, h/2
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			px, py := c.Units.CellCenter(x, y)
			dx, dy := px-cx, py-cy
			rx := dx*cos - dy*sin
			ry := dx*sin + dy*cos
			if math.Abs(rx) <= hw && math.Abs(ry) <= hh {
				c.Paint(x, y, col, alpha)
			}
		}
	}
}

// FillEllipse paints an ellipse with radii rx, ry (dp) centred at (cx, cy) (dp).
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, col colorful.Color, alpha float64) {
	if rx <= 0 || ry <= 0 {
		return
	}
	for y := 0; y < c.H; y++ {
		for x := 0; x < c.W; x++ {
			px, py := c.Units.CellCenter(x, y)
			dx, dy := (px-cx)/rx, (py-cy)/ry
			if dx*dx+dy*dy <= 1 {
				c.Paint(x, y, col, alpha)
			}
		}
	}
}

// Text writes s starting at (x, y). Characters keep the background already
// painted beneath them. Wide runes take two cells.
func (c *Canvas) Text(x, y int, s string, fg colorful.Color, alpha float64) {
	if alpha <= 0 {
		return
	}
	for _, r := range s {
		w := textutil.Width(string(r))
		if c.inside(x, y) {
			cell := &c.cells[y*c.W+x]
			under := c.Background
			if cell.Filled {
				under = cell.BG
			}
			cell.Rune = r
			cell.FG = Blend(fg, under, alpha)
			cell.HasFG = true
			// Wide runes cover the next cell; blank it so the row keeps its width.
			if w == 2 && c.inside(x+1, y) {
				c.cells[y*c.W+x+1].Rune = -1
			}
		}
		x += max(w, 1)
	}
}

// CenterText writes s centred on row y.
func (c *Canvas) CenterText(y int, s string, fg colorful.Color, alpha float64) {
	s = textutil.Truncate(s, c.W)
	c.Text((c.W-textutil.Width(s))/2, y, s, fg, alpha)
}

// Lines renders each row as a styled string.
func (c *Canvas) Lines() []string {
	lines := make([]string, c.H)
	for y := 0; y < c.H; y++ {
		lines[y] = c.renderRow(y)
	}
	return lines
}

// String renders the canvas as newline-joined rows.
func (c *Canvas) String() string {
	return strings.Join(c.Lines(), "\n")
}

// renderRow groups runs of identically styled cells to keep escape codes short.
func (c *Canvas) renderRow(y int) string {
	var b strings.Builder
	var run strings.Builder
	var runStyle lipgloss.Style
	var runKey string
	flush := func() {
		if run.Len() == 0 {
			return
		}
		if runKey == "" {
			b.WriteString(run.String())
		} else {
			b.WriteString(runStyle.Render(run.String()))
		}
		run.Reset()
	}
	for x := 0; x < c.W; x++ {
		cell := c.cells[y*c.W+x]
		if cell.Rune == -1 {
			continue
		}
		key, style := cellStyle(cell)
		if key != runKey {
			flush()
			runKey, runStyle = key, style
		}
		r := cell.Rune
		if r == 0 {
			r = ' '
		}
		run.WriteRune(r)
	}
	flush()
	return b.String()
}

func cellStyle(cell Cell) (string, lipgloss.Style) {
	if !cell.Filled && !cell.HasFG {
		return "", lipgloss.Style{}
	}
	style := lipgloss.NewStyle()
	key := ""
	if cell.Filled {
		hex := cell.BG.Clamped().Hex()
		style = style.Background(lipgloss.Color(hex))
		key += "b" + hex
	}
	if cell.HasFG {
		hex := cell.FG.Clamped().Hex()
		style = style.Foreground(lipgloss.Color(hex))
		key += "f" + hex
	}
	return key, style
}
