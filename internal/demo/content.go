package demo

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"

	"animplay/internal/motion"
	"animplay/internal/render"
	"animplay/internal/ui/textutil"
)

// Counter slides the old count out and the new one in, upward when the count
// grows and downward when it shrinks.
type Counter struct {
	base
	Count   int
	content *motion.Content[int]
}

// NewCounter returns a counter at zero.
func NewCounter(units render.Units) *Counter {
	d := &Counter{base: base{name: "counter", title: "Animated content: counter", units: units}}
	d.content = motion.NewContent(0, counterTransform, d.measure)
	return d
}

func counterTransform(initial, target int) motion.ContentTransform {
	in, out := motion.SlideDirection(initial, target)
	return motion.ContentTransform{
		Enter: motion.SlideVertical(in, nil).Plus(motion.FadeInOut(nil)),
		Exit:  motion.SlideVertical(out, nil).Plus(motion.FadeInOut(nil)),
		// The digits slide past the container's edges.
		Size: &motion.SizeTransform{Clip: false},
	}
}

func (d *Counter) measure(n int) motion.Size {
	u := d.units.Normalize()
	return motion.Size{W: float64(textutil.Width(strconv.Itoa(n))) * u.DPPerCol, H: u.DPPerRow}
}

// Tap implements Demo. Primary and Increment add one, Decrement subtracts one.
func (d *Counter) Tap(a Action) bool {
	switch a {
	case Primary, Increment:
		d.Count++
	case Decrement:
		d.Count--
	default:
		return false
	}
	d.content.SetTarget(d.Count)
	return true
}

// Step and Animating implement Demo.
func (d *Counter) Step(dt time.Duration) bool { return d.content.Step(dt) }
func (d *Counter) Animating() bool            { return d.content.IsRunning() }

// Layers returns what is currently drawn, outgoing first.
func (d *Counter) Layers() []motion.Layer[int] { return d.content.Layers() }

// View implements Demo. The buttons stack vertically when the row does not fit.
func (d *Counter) View(width int) string {
	layers := d.content.Layers()
	cols := max(d.units.Cols(d.content.Size().W), 1)
	for _, l := range layers {
		cols = max(cols, textutil.Width(strconv.Itoa(l.Value)))
	}
	// One row for the number plus one above and below for the slide.
	c := render.NewCanvas(cols, 3, d.units)
	for _, l := range layers {
		a := l.Appearance
		if a.Hidden() {
			continue
		}
		row := 1 + int(math.Round(a.OffsetFrac))
		if d.content.Clip() && row != 1 {
			continue
		}
		c.CenterText(row, strconv.Itoa(l.Value), White, a.Alpha)
	}
	row := lipgloss.JoinHorizontal(lipgloss.Center, button("Add"), " ", c.String(), " ", button("Minus"))
	if textutil.StyledWidth(row) > width && width > 0 {
		return stack(button("Add"), c.String(), button("Minus"))
	}
	return row
}

// Status implements Demo.
func (d *Counter) Status() string {
	if d.content.IsRunning() {
		return fmt.Sprintf("count=%d (from %d)", d.Count, d.content.Initial())
	}
	return fmt.Sprintf("count=%d", d.Count)
}

// SizeTransform swaps an arrow for a paragraph on a colored surface. The
// surface resizes one axis at a time: width first when expanding, height
// first when shrinking.
type SizeTransform struct {
	base
	Expanded bool
	content  *motion.Content[bool]
}

const (
	expandedText  = "Here's the expanded content to view all features of the animated content! it looks amazing"
	collapsedIcon = "▼"
	// Columns the expanded text wraps at, excluding the surface padding.
	expandedWrap  = 36
	iconDP        = 24
)

// NewSizeTransform returns the demo collapsed to its arrow.
func NewSizeTransform(units render.Units) *SizeTransform {
	d := &SizeTransform{base: base{name: "size-transform", title: "Animated content: size transform", units: units}}
	d.content = motion.NewContent(false, sizeTransform, d.measure)
	return d
}

func sizeTransform(_, expanding bool) motion.ContentTransform {
	half := 150 * time.Millisecond
	return motion.ContentTransform{
		Enter: motion.FadeInOut(motion.Tween{Duration: half, Delay: half}),
		Exit:  motion.FadeInOut(motion.Tween{Duration: half}),
		Size: &motion.SizeTransform{
			Clip: true,
			Specs: func(initial, target motion.Size, _ bool) (motion.Spec, motion.Spec) {
				if expanding {
					return axisKeyframes(target.W), axisKeyframes(initial.H)
				}
				return axisKeyframes(initial.W), axisKeyframes(target.H)
			},
		},
	}
}

// axisKeyframes holds at v for the midpoint of a 300ms resize.
func axisKeyframes(v float64) motion.Keyframes {
	return motion.Keyframes{
		Duration: 300 * time.Millisecond,
		Frames:   []motion.Keyframe{{At: 150 * time.Millisecond, Value: v}},
	}
}

func (d *SizeTransform) measure(expanded bool) motion.Size {
	u := d.units.Normalize()
	if !expanded {
		return motion.Size{W: iconDP, H: iconDP}
	}
	lines := textutil.Wrap(expandedText, expandedWrap)
	widest := 0
	for _, l := range lines {
		widest = max(widest, textutil.Width(l))
	}
	return motion.Size{W: float64(widest+2) * u.DPPerCol, H: float64(len(lines)) * u.DPPerRow}
}

// Tap implements Demo. Primary toggles between the arrow and the paragraph.
func (d *SizeTransform) Tap(a Action) bool {
	if a != Primary {
		return false
	}
	d.Expanded = !d.Expanded
	d.content.SetTarget(d.Expanded)
	return true
}

// Step and Animating implement Demo.
func (d *SizeTransform) Step(dt time.Duration) bool { return d.content.Step(dt) }
func (d *SizeTransform) Animating() bool            { return d.content.IsRunning() }

// Size returns the current surface size in dp.
func (d *SizeTransform) Size() motion.Size { return d.content.Size() }

// View implements Demo. The surface is clipped to its animated size.
func (d *SizeTransform) View(width int) string {
	sz := d.content.Size()
	cols := max(d.units.Cols(sz.W), 1)
	if width > 0 {
		cols = min(cols, width)
	}
	c := render.NewCanvas(cols, max(d.units.Rows(sz.H), 1), d.units)
	c.FillRect(0, 0, c.W, c.H, Purple, 1)
	for _, l := range d.content.Layers() {
		a := l.Appearance
		if a.Hidden() {
			continue
		}
		if l.Value {
			for i, line := range textutil.Wrap(expandedText, expandedWrap) {
				c.Text(1, i, line, White, a.Alpha)
			}
			continue
		}
		c.CenterText((c.H-1)/2, collapsedIcon, White, a.Alpha)
	}
	return c.String()
}

// Status implements Demo.
func (d *SizeTransform) Status() string {
	sz := d.content.Size()
	return fmt.Sprintf("expanded=%t size=%.0fx%.0fdp", d.Expanded, sz.W, sz.H)
}

// Crossfade toggles between two pages, fading one out while the other fades in.
type Crossfade struct {
	base
	Page    string
	content *motion.Content[string]
}

// NewCrossfade returns the demo showing page A.
func NewCrossfade(units render.Units) *Crossfade {
	return &Crossfade{
		base:    base{name: "crossfade", title: "Crossfade", units: units},
		Page:    "A",
		content: motion.NewCrossfade("A", motion.Tween{}),
	}
}

// Tap implements Demo. Primary flips to the other page.
func (d *Crossfade) Tap(a Action) bool {
	if a != Primary {
		return false
	}
	d.Page = choose(d.Page == "A", "B", "A")
	d.content.SetTarget(d.Page)
	return true
}

// Step and Animating implement Demo.
func (d *Crossfade) Step(dt time.Duration) bool { return d.content.Step(dt) }
func (d *Crossfade) Animating() bool            { return d.content.IsRunning() }

// Layers returns what is currently drawn, outgoing first.
func (d *Crossfade) Layers() []motion.Layer[string] { return d.content.Layers() }

// View implements Demo.
func (d *Crossfade) View(width int) string {
	c := d.canvas(256, 96, width)
	_, h := c.SizeDP()
	_, mid := c.Units.Cell(0, h/2)
	for _, l := range d.content.Layers() {
		a := l.Appearance
		c.FillRect(0, 0, c.W, c.H, choose(l.Value == "A", Magenta, Gray), a.Alpha)
		c.CenterText(mid, "Page "+l.Value, Black, a.Alpha)
	}
	return stack(button("Toggle"), "", c.String())
}

// Status implements Demo.
func (d *Crossfade) Status() string {
	if d.content.IsRunning() {
		return fmt.Sprintf("page=%s (from %s)", d.Page, d.content.Initial())
	}
	return "page=" + d.Page
}
