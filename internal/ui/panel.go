package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"animplay/internal/demo"
	"animplay/internal/ui/textutil"
)

// BoundsFunc returns the panel's position and size given terminal dimensions.
// Returns x, y, width, height.
type BoundsFunc func(width, height int) (x, y, w, h int)

// Panel hosts a View and knows its bounds within a layout.
type Panel struct {
	ID     string
	View   View
	Bounds BoundsFunc
}

// Contains reports whether the cell (x, y) falls inside the panel when the
// layout is width×height.
func (p Panel) Contains(width, height, x, y int) bool {
	if p.Bounds == nil {
		return false
	}
	px, py, pw, ph := p.Bounds(width, height)
	return x >= px && y >= py && x < px+pw && y < py+ph
}

// panelChrome is the horizontal space taken by the border and padding.
const panelChrome = 4

// panelMinWidth keeps panels from reflowing as status text changes length.
const panelMinWidth = 28

// DemoPanel is the View hosting a single demo inside a bordered box.
type DemoPanel struct {
	Demo    demo.Demo
	Focused bool
	// MaxWidth bounds the panel including its border; 0 means unbounded.
	MaxWidth int
}

// Ensure DemoPanel implements View.
var _ View = (*DemoPanel)(nil)

// Init implements View.
func (p *DemoPanel) Init() tea.Cmd {
	return nil
}

// Update implements View. Demo state only changes through taps and frames,
// which the screen delivers directly.
func (p *DemoPanel) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		p.MaxWidth = msg.Width
	}
	return p, nil
}

// View implements View.
func (p *DemoPanel) View() string {
	inner := 0
	if p.MaxWidth > 0 {
		inner = max(p.MaxWidth-panelChrome, 1)
	}
	fit := func(s string) string {
		if inner == 0 {
			return s
		}
		return textutil.Truncate(s, inner)
	}
	title := Styles.PanelTitle.Render(fit(p.Demo.Title()))
	body := p.Demo.View(inner)
	status := Styles.Status.Render(fit(p.Demo.Status()))
	content := lipgloss.JoinVertical(lipgloss.Left, title, body, status)

	style := Styles.Panel
	if p.Focused {
		style = Styles.PanelFocused
	}
	minWidth := panelMinWidth
	if inner > 0 {
		minWidth = min(minWidth, inner)
	}
	if textutil.StyledWidth(content) < minWidth {
		style = style.Width(minWidth + 2)
	}
	return style.Render(content)
}
