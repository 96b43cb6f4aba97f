// Package demo holds the playground widgets. Each demo owns a little UI
// state (a flag, a counter, a page key) and the motion values driven by it,
// and draws itself onto a render.Canvas.
package demo

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"animplay/internal/motion"
	"animplay/internal/render"
)

// Action is what a tap asks a demo to do.
type Action int

const (
	// Primary is a plain tap (enter or a mouse click).
	Primary Action = iota
	// Increment and Decrement drive counter demos (+ and -).
	Increment
	Decrement
)

// String implements fmt.Stringer.
func (a Action) String() string {
	switch a {
	case Primary:
		return "primary"
	case Increment:
		return "increment"
	case Decrement:
		return "decrement"
	default:
		return "unknown"
	}
}

// Demo is one interactive widget.
type Demo interface {
	// Name is the stable identifier used in the catalog and in traces.
	Name() string
	Title() string
	// Tap applies a and reports whether the demo handled it.
	Tap(a Action) bool
	// Step advances animations by dt and reports whether any is still
	// running afterwards.
	Step(dt time.Duration) bool
	// Animating reports whether the demo needs frames right now.
	Animating() bool
	// View renders the demo in at most width columns.
	View(width int) string
	// Status is a one-line description of the current state.
	Status() string
}

// Palette matches the stock colors the widgets were designed with.
var (
	Red      = motion.MustHex("#ff0000")
	Green    = motion.MustHex("#00ff00")
	Blue     = motion.MustHex("#0000ff")
	Black    = motion.MustHex("#000000")
	White    = motion.MustHex("#ffffff")
	Magenta  = motion.MustHex("#ff00ff")
	Gray     = motion.MustHex("#888888")
	DarkGray = motion.MustHex("#444444")
	Cyan     = motion.MustHex("#00ffff")
	Purple   = motion.MustHex("#6650a4")
)

var (
	buttonStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(lipgloss.Color("#444444")).
			Padding(0, 2)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Underline(true)
)

// button renders a flat push button.
func button(label string) string {
	return buttonStyle.Render(label)
}

type base struct {
	name  string
	title string
	units render.Units
}

func (b base) Name() string  { return b.name }
func (b base) Title() string { return b.title }

// canvas returns a canvas of wDP×hDP clipped to width columns.
func (b base) canvas(wDP, hDP float64, width int) *render.Canvas {
	cols := b.units.Cols(wDP)
	if width > 0 {
		cols = min(cols, width)
	}
	return render.NewCanvas(max(cols, 1), max(b.units.Rows(hDP), 1), b.units)
}

// box paints a w×h (dp) box centred on the canvas, rotated deg degrees, with
// label centred on its middle row.
func box(c *render.Canvas, w, h, deg float64, fill colorful.Color, alpha float64, label string) {
	cw, ch := c.SizeDP()
	c.FillRotatedRect(cw/2, ch/2, w, h, deg, fill, alpha)
	if label != "" && w > 0 && h > 0 {
		_, row := c.Units.Cell(cw/2, ch/2)
		c.CenterText(row, label, White, alpha)
	}
}

// stack joins blocks vertically, left aligned.
func stack(blocks ...string) string {
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

func choose[T any](cond bool, yes, no T) T {
	if cond {
		return yes
	}
	return no
}
