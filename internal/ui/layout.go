package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Layout arranges panels and defines focus order.
type Layout interface {
	Panels() []Panel
	FocusOrder() []string // Tab order for focus
}

// Rect is a region in terminal cells.
type Rect struct {
	X, Y, W, H int
}

// FlowLayout places panels left to right, wrapping to a new row when the
// next panel would not fit. Bounds reflect the most recent Render.
type FlowLayout struct {
	Gap    int
	panels []Panel
	rects  map[string]Rect
}

// Ensure FlowLayout implements Layout.
var _ Layout = (*FlowLayout)(nil)

// NewFlowLayout lays out views in the given order, keyed by id.
func NewFlowLayout(ids []string, views []View) *FlowLayout {
	l := &FlowLayout{Gap: 1, rects: make(map[string]Rect, len(ids))}
	for i, id := range ids {
		l.panels = append(l.panels, Panel{
			ID:     id,
			View:   views[i],
			Bounds: l.boundsOf(id),
		})
	}
	return l
}

func (l *FlowLayout) boundsOf(id string) BoundsFunc {
	return func(width, height int) (x, y, w, h int) {
		r := l.rects[id]
		return r.X, r.Y, r.W, r.H
	}
}

// Panels implements Layout.
func (l *FlowLayout) Panels() []Panel {
	return l.panels
}

// FocusOrder implements Layout.
func (l *FlowLayout) FocusOrder() []string {
	order := make([]string, len(l.panels))
	for i, p := range l.panels {
		order[i] = p.ID
	}
	return order
}

// Bounds returns where the panel id was last drawn.
func (l *FlowLayout) Bounds(id string) (Rect, bool) {
	r, ok := l.rects[id]
	return r, ok
}

// HitTest returns the ID of the panel drawn at (x, y), or "".
func (l *FlowLayout) HitTest(x, y int) string {
	for _, p := range l.panels {
		if p.Contains(0, 0, x, y) {
			return p.ID
		}
	}
	return ""
}

// Render draws every panel within width and records their bounds.
func (l *FlowLayout) Render(width int) string {
	var rows []string
	var row []string
	x, y, rowH := 0, 0, 0
	flush := func() {
		if len(row) == 0 {
			return
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, row...))
		y += rowH
		row, x, rowH = nil, 0, 0
	}
	for _, p := range l.panels {
		block := p.View.View()
		w, h := lipgloss.Width(block), lipgloss.Height(block)
		if x > 0 && width > 0 && x+l.Gap+w > width {
			flush()
		}
		if x > 0 {
			row = append(row, strings.Repeat(" ", l.Gap))
			x += l.Gap
		}
		l.rects[p.ID] = Rect{X: x, Y: y, W: w, H: h}
		row = append(row, block)
		x += w
		rowH = max(rowH, h)
	}
	flush()
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
