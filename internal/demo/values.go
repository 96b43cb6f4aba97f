package demo

import (
	"fmt"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"animplay/internal/motion"
	"animplay/internal/render"
)

// SpacerBox grows and recolors a plain box from one transition.
type SpacerBox struct {
	base
	Selected bool
	tr       *motion.Transition[bool]
	color    *motion.Color
	size     *motion.Float
}

// NewSpacerBox returns an unselected 48dp red box.
func NewSpacerBox(units render.Units) *SpacerBox {
	d := &SpacerBox{base: base{name: "spacer-box", title: "Transition: spacer box", units: units}}
	d.tr = motion.NewTransition(false)
	d.color = d.tr.Color(nil, func(s bool) colorful.Color { return choose(s, Green, Red) })
	d.size = d.tr.Float(nil, func(s bool) float64 { return choose(s, 64.0, 48.0) })
	return d
}

// Tap implements Demo. Primary toggles the selection.
func (d *SpacerBox) Tap(a Action) bool {
	if a != Primary {
		return false
	}
	d.Selected = !d.Selected
	d.tr.SetTarget(d.Selected)
	return true
}

// Step and Animating implement Demo.
func (d *SpacerBox) Step(dt time.Duration) bool { return d.tr.Step(dt) }
func (d *SpacerBox) Animating() bool            { return d.tr.IsRunning() }

// Size returns the current edge length in dp.
func (d *SpacerBox) Size() float64 { return d.size.Value() }

// View implements Demo.
func (d *SpacerBox) View(width int) string {
	c := d.canvas(64, 64, width)
	s := d.size.Value()
	// Anchored top-left, so growth pushes right and down.
	c.FillRotatedRect(s/2, s/2, s, s, 0, d.color.Value(), 1)
	return c.String()
}

// Status implements Demo.
func (d *SpacerBox) Status() string {
	return fmt.Sprintf("selected=%t size=%.0fdp", d.Selected, d.size.Value())
}

// Alpha fades a red panel between fully and half opaque.
type Alpha struct {
	base
	Enabled bool
	alpha   *motion.FloatState
}

// NewAlpha returns the panel enabled and fully opaque.
func NewAlpha(units render.Units) *Alpha {
	return &Alpha{
		base:    base{name: "alpha", title: "Animate as state: alpha", units: units},
		Enabled: true,
		alpha:   motion.NewFloatState(1, nil),
	}
}

// Tap implements Demo. Primary toggles between opaque and half opaque.
func (d *Alpha) Tap(a Action) bool {
	if a != Primary {
		return false
	}
	d.Enabled = !d.Enabled
	d.alpha.Set(choose(d.Enabled, 1.0, 0.5))
	return true
}

// Step and Animating implement Demo.
func (d *Alpha) Step(dt time.Duration) bool { return d.alpha.Step(dt) }
func (d *Alpha) Animating() bool            { return d.alpha.IsRunning() }

// Value returns the current opacity.
func (d *Alpha) Value() float64 { return d.alpha.Value() }

// View implements Demo.
func (d *Alpha) View(width int) string {
	c := d.canvas(192, 64, width)
	w, h := c.SizeDP()
	box(c, w, h, 0, Red, d.alpha.Value(), "")
	return c.String()
}

// Status implements Demo.
func (d *Alpha) Status() string {
	return fmt.Sprintf("enabled=%t alpha=%.2f", d.Enabled, d.alpha.Value())
}

// ColorSize recolors a disc with a tween and scales it with a bouncy spring.
type ColorSize struct {
	base
	Clicked bool
	color   *motion.ColorState
	scale   *motion.FloatState
}

const colorSizeDiameter = 120

// NewColorSize returns a black disc at scale 1. Color tweens over 500ms;
// scale uses an underdamped spring so the disc visibly bounces.
func NewColorSize(units render.Units) *ColorSize {
	return &ColorSize{
		base:  base{name: "color-size", title: "Animate as state: color and scale", units: units},
		color: motion.NewColorState(Black, motion.TweenFor(500*time.Millisecond)),
		scale: motion.NewFloatState(1, motion.Spring{DampingRatio: 0.3, Stiffness: 500}),
	}
}

// Tap implements Demo. Primary toggles between black at 1x and blue at 1.5x.
func (d *ColorSize) Tap(a Action) bool {
	if a != Primary {
		return false
	}
	d.Clicked = !d.Clicked
	d.color.Set(choose(d.Clicked, Blue, Black))
	d.scale.Set(choose(d.Clicked, 1.5, 1.0))
	return true
}

// Step implements Demo.
func (d *ColorSize) Step(dt time.Duration) bool {
	return motion.StepAll(dt, d.color, d.scale)
}

// Animating implements Demo.
func (d *ColorSize) Animating() bool { return d.color.IsRunning() || d.scale.IsRunning() }

// Scale returns the current scale factor.
func (d *ColorSize) Scale() float64 { return d.scale.Value() }

// Color returns the current fill color.
func (d *ColorSize) Color() colorful.Color { return d.color.Value() }

// View implements Demo.
func (d *ColorSize) View(width int) string {
	// Room for the largest overshoot of the spring.
	c := d.canvas(colorSizeDiameter*1.8, colorSizeDiameter*1.8, width)
	w, h := c.SizeDP()
	r := colorSizeDiameter / 2 * d.scale.Value()
	c.FillEllipse(w/2, h/2, r, r, d.color.Value(), 1)
	_, row := c.Units.Cell(w/2, h/2)
	c.CenterText(row, "Click Me", White, 1)
	return c.String()
}

// Status implements Demo. It includes the spring velocity in scale units
// per second.
func (d *ColorSize) Status() string {
	return fmt.Sprintf("clicked=%t scale=%.2f (%+.1f/s) color=%s",
		d.Clicked, d.scale.Value(), d.scale.Velocity(), d.color.Value().Hex())
}

// TransitionBox drives color and size from a single selected flag.
type TransitionBox struct {
	base
	Selected bool
	tr       *motion.Transition[bool]
	color    *motion.Color
	size     *motion.Float
}

// NewTransitionBox returns an unselected 100dp black box.
func NewTransitionBox(units render.Units) *TransitionBox {
	d := &TransitionBox{base: base{name: "transition", title: "Transition: color and size", units: units}}
	d.tr = motion.NewTransition(false)
	d.color = d.tr.Color(nil, func(s bool) colorful.Color { return choose(s, Blue, Black) })
	d.size = d.tr.Float(nil, func(s bool) float64 { return choose(s, 150.0, 100.0) })
	return d
}

// Tap implements Demo. Primary toggles the selection.
func (d *TransitionBox) Tap(a Action) bool {
	if a != Primary {
		return false
	}
	d.Selected = !d.Selected
	d.tr.SetTarget(d.Selected)
	return true
}

// Step and Animating implement Demo.
func (d *TransitionBox) Step(dt time.Duration) bool { return d.tr.Step(dt) }
func (d *TransitionBox) Animating() bool            { return d.tr.IsRunning() }

// Size returns the current edge length in dp.
func (d *TransitionBox) Size() float64 { return d.size.Value() }

// View implements Demo.
func (d *TransitionBox) View(width int) string {
	c := d.canvas(150, 150, width)
	s := d.size.Value()
	box(c, s, s, 0, d.color.Value(), 1, "Toggle")
	return c.String()
}

// Status implements Demo.
func (d *TransitionBox) Status() string {
	return fmt.Sprintf("selected=%t size=%.0fdp", d.Selected, d.size.Value())
}

// Spin rotates a box forever. Taps are ignored.
type Spin struct {
	base
	rotation *motion.Infinite
}

// NewSpin returns a box that turns once every two seconds.
func NewSpin(units render.Units) *Spin {
	return &Spin{
		base: base{name: "spin", title: "Infinite transition: rotation", units: units},
		rotation: motion.NewInfinite(0, 360,
			motion.Tween{Duration: 2000 * time.Millisecond, Easing: motion.Linear}, motion.Restart),
	}
}

// Tap implements Demo. The box keeps spinning whatever happens, so taps are
// never handled.
func (d *Spin) Tap(Action) bool { return false }

// Step and Animating implement Demo.
func (d *Spin) Step(dt time.Duration) bool { return d.rotation.Step(dt) }
func (d *Spin) Animating() bool            { return true }

// Rotation returns the current angle in degrees, in [0, 360).
func (d *Spin) Rotation() float64 { return d.rotation.Value() }

// View implements Demo.
func (d *Spin) View(width int) string {
	// The diagonal of a 100dp square.
	c := d.canvas(142, 142, width)
	box(c, 100, 100, d.rotation.Value(), Cyan, 1, "Spin")
	return c.String()
}

// Status implements Demo.
func (d *Spin) Status() string {
	return fmt.Sprintf("rotation=%3.0f°", d.rotation.Value())
}

// Keyframes scales a box up through a fixed midpoint and back down with a
// plain tween.
type Keyframes struct {
	base
	On    bool
	value *motion.Float
}

// NewKeyframes returns the box collapsed to zero.
func NewKeyframes(units render.Units) *Keyframes {
	return &Keyframes{
		base:  base{name: "keyframes", title: "Animatable: keyframes", units: units},
		value: motion.NewFloat(0),
	}
}

// Tap implements Demo. Turning on grows the box through a 0.5 keyframe at
// the midpoint; turning off shrinks it back with a plain tween.
func (d *Keyframes) Tap(a Action) bool {
	if a != Primary {
		return false
	}
	d.On = !d.On
	if d.On {
		d.value.AnimateTo(1, motion.Keyframes{
			Duration: 1000 * time.Millisecond,
			Frames:   []motion.Keyframe{{At: 500 * time.Millisecond, Value: 0.5}},
		})
	} else {
		d.value.AnimateTo(0, motion.TweenFor(1000*time.Millisecond))
	}
	return true
}

// Step and Animating implement Demo.
func (d *Keyframes) Step(dt time.Duration) bool { return d.value.Step(dt) }
func (d *Keyframes) Animating() bool            { return d.value.IsRunning() }

// Value returns the box size as a fraction of 100dp.
func (d *Keyframes) Value() float64 { return d.value.Value() }

// View implements Demo.
func (d *Keyframes) View(width int) string {
	c := d.canvas(100, 100, width)
	s := 100 * d.value.Value()
	box(c, s, s, 0, Gray, 1, choose(s >= 48, "Animate", ""))
	if s < 48 {
		// Too small to carry its label; keep the target findable.
		_, h := c.SizeDP()
		_, row := c.Units.Cell(0, h/2)
		c.CenterText(row, "Animate", Gray, 1)
	}
	return c.String()
}

// Status implements Demo.
func (d *Keyframes) Status() string {
	return fmt.Sprintf("animating=%t value=%.2f", d.On, d.value.Value())
}
