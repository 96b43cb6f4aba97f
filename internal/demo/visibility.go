package demo

import (
	"fmt"
	"math"
	"strings"
	"time"

	"animplay/internal/motion"
	"animplay/internal/render"
	"animplay/internal/ui/textutil"
)

// VisibilityState shows a greeting that starts appearing as soon as the demo
// is opened. The status line names the current phase and is the tap target.
type VisibilityState struct {
	base
	vis *motion.Visibility
}

const greeting = "Hello, world!"

// NewVisibilityState returns the greeting already starting to appear.
func NewVisibilityState(units render.Units) *VisibilityState {
	fade := motion.FadeInOut(nil)
	d := &VisibilityState{
		base: base{name: "visibility-state", title: "Visibility: observed state", units: units},
		vis: motion.NewVisibility(false,
			fade.Plus(motion.ExpandShrink(nil)),
			fade.Plus(motion.ExpandShrink(nil))),
	}
	d.vis.SetTarget(true)
	return d
}

// State exposes the underlying visibility for inspection.
func (d *VisibilityState) State() *motion.Visibility { return d.vis }

// Tap implements Demo. Primary reverses the greeting, even mid-transition.
func (d *VisibilityState) Tap(a Action) bool {
	if a != Primary {
		return false
	}
	d.vis.Toggle()
	return true
}

// Step and Animating implement Demo.
func (d *VisibilityState) Step(dt time.Duration) bool { return d.vis.Step(dt) }
func (d *VisibilityState) Animating() bool            { return !d.vis.IsIdle() }

// View implements Demo.
func (d *VisibilityState) View(width int) string {
	cols := textutil.Width(greeting)
	if width > 0 {
		cols = min(cols, width)
	}
	c := render.NewCanvas(cols, 1, d.units)
	if app := d.vis.Appearance(); !app.Hidden() && app.HeightFrac >= 0.5 {
		c.Text(0, 0, greeting, White, app.Alpha)
	}
	return stack(c.String(), labelStyle.Render(d.vis.Status()))
}

// Status implements Demo. It is one of Appearing, Visible, Disappearing or
// Invisible.
func (d *VisibilityState) Status() string { return d.vis.Status() }

// EnterExit keeps a dark backdrop on screen while a red banner inside it
// slides in from above or back out.
type EnterExit struct {
	base
	Visible bool
	vis     *motion.Visibility
}

const (
	bannerW   = 256
	bannerH   = 64
	backdropH = 128
)

// NewEnterExit returns the banner shown.
func NewEnterExit(units render.Units) *EnterExit {
	slide := motion.SlideVertical(-0.5, nil)
	return &EnterExit{
		base:    base{name: "enter-exit", title: "Visibility: child enter/exit", units: units},
		Visible: true,
		vis:     motion.NewVisibility(true, slide, slide),
	}
}

// Tap implements Demo. Primary shows or hides the banner.
func (d *EnterExit) Tap(a Action) bool {
	if a != Primary {
		return false
	}
	d.Visible = !d.Visible
	d.vis.SetTarget(d.Visible)
	return true
}

// Step and Animating implement Demo.
func (d *EnterExit) Step(dt time.Duration) bool { return d.vis.Step(dt) }
func (d *EnterExit) Animating() bool            { return !d.vis.IsIdle() }

// Offset returns the banner's vertical offset as a fraction of its height.
func (d *EnterExit) Offset() float64 { return d.vis.Appearance().OffsetFrac }

// View implements Demo.
func (d *EnterExit) View(width int) string {
	c := d.canvas(bannerW, backdropH, width)
	// The backdrop itself has no transition; it stays until the banner is done.
	if d.vis.Visible() {
		w, h := c.SizeDP()
		c.FillRotatedRect(w/2, h/2, w, h, 0, DarkGray, 1)
		top := (h-bannerH)/2 + d.vis.Appearance().OffsetFrac*bannerH
		c.FillRotatedRect(w/2, top+bannerH/2, bannerW, bannerH, 0, Red, 1)
	}
	return stack(button(choose(d.Visible, "Hide", "Show")), c.String())
}

// Status implements Demo.
func (d *EnterExit) Status() string {
	return fmt.Sprintf("visible=%t %s", d.Visible, d.vis.Status())
}

// Visibility fades, expands and scales a box in and out on a button press.
type Visibility struct {
	base
	Visible bool
	vis     *motion.Visibility
}

const visibilityBox = 100

// NewVisibility returns the box hidden.
func NewVisibility(units render.Units) *Visibility {
	enter := motion.FadeInOut(nil).
		Plus(motion.ExpandShrink(nil)).
		Plus(motion.ScaleInOut(0, nil))
	return &Visibility{
		base: base{name: "visibility", title: "Visibility: fade, expand and scale", units: units},
		vis:  motion.NewVisibility(false, enter, enter),
	}
}

// State exposes the underlying visibility for inspection.
func (d *Visibility) State() *motion.Visibility { return d.vis }

// Tap implements Demo. Primary shows or hides the box.
func (d *Visibility) Tap(a Action) bool {
	if a != Primary {
		return false
	}
	d.Visible = !d.Visible
	d.vis.SetTarget(d.Visible)
	return true
}

// Step and Animating implement Demo.
func (d *Visibility) Step(dt time.Duration) bool { return d.vis.Step(dt) }
func (d *Visibility) Animating() bool            { return !d.vis.IsIdle() }

// View implements Demo. Only the button shows while the box is hidden.
func (d *Visibility) View(width int) string {
	btn := button(choose(d.Visible, "Hide", "Show"))
	app := d.vis.Appearance()
	if app.Hidden() {
		return btn
	}
	// The expand effect reveals the scaled box from the top; the layout slot
	// grows with it.
	slot := visibilityBox * app.HeightFrac
	rows := max(int(math.Ceil(slot/d.units.Normalize().DPPerRow)), 1)
	c := d.canvas(visibilityBox, visibilityBox, width)
	s := visibilityBox * app.Scale
	box(c, s, s, 0, Magenta, app.Alpha, choose(app.Scale >= 0.5, "Visible!", ""))
	lines := strings.Split(c.String(), "\n")
	return stack(btn, strings.Join(lines[:min(rows, len(lines))], "\n"))
}

// Status implements Demo.
func (d *Visibility) Status() string {
	return fmt.Sprintf("visible=%t %s", d.Visible, d.vis.Status())
}
