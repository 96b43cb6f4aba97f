package motion

import "time"

// Effect is a bit set of enter/exit effects that can be combined.
type Effect uint8

const (
	Fade Effect = 1 << iota
	ExpandVertically
	Scale
	SlideVertically
)

// EnterExit describes how content appears or disappears. Progress 1 is
// fully shown and 0 fully hidden; the same description is used for both
// directions.
type EnterExit struct {
	Effects Effect
	// InitialScale is the scale at progress 0 when Scale is set.
	InitialScale float64
	// SlideOffset is the vertical offset at progress 0 as a fraction of the
	// content height. Negative is above.
	SlideOffset float64
	// Spec drives progress. nil uses a critically damped, medium-low spring.
	Spec Spec
}

// EnterExitNone shows or hides content in a single frame.
var EnterExitNone = EnterExit{}

var defaultVisibilitySpec = Spring{DampingRatio: DampingNoBouncy, Stiffness: StiffnessMediumLow}

// Plus merges two descriptions; o's non-zero fields win.
func (e EnterExit) Plus(o EnterExit) EnterExit {
	e.Effects |= o.Effects
	if o.Effects&Scale != 0 {
		e.InitialScale = o.InitialScale
	}
	if o.Effects&SlideVertically != 0 {
		e.SlideOffset = o.SlideOffset
	}
	if o.Spec != nil {
		e.Spec = o.Spec
	}
	return e
}

// FadeInOut fades between transparent and opaque.
func FadeInOut(spec Spec) EnterExit {
	return EnterExit{Effects: Fade, Spec: spec}
}

// ExpandShrink grows or shrinks the visible height from the top.
func ExpandShrink(spec Spec) EnterExit {
	return EnterExit{Effects: ExpandVertically, Spec: spec}
}

// ScaleInOut scales from initial to full size.
func ScaleInOut(initial float64, spec Spec) EnterExit {
	return EnterExit{Effects: Scale, InitialScale: initial, Spec: spec}
}

// SlideVertical slides from offset (fraction of height) into place.
func SlideVertical(offset float64, spec Spec) EnterExit {
	return EnterExit{Effects: SlideVertically, SlideOffset: offset, Spec: spec}
}

// Appearance is how content should be drawn at a given progress.
type Appearance struct {
	Alpha      float64 // 0 transparent, 1 opaque
	HeightFrac float64 // visible fraction of the content height
	Scale      float64
	OffsetFrac float64 // vertical offset as a fraction of the content height
}

// Hidden reports whether nothing of the content would be visible.
func (a Appearance) Hidden() bool {
	return a.Alpha <= 0 || a.HeightFrac <= 0 || a.Scale <= 0
}

// Identity is fully shown content.
var Identity = Appearance{Alpha: 1, HeightFrac: 1, Scale: 1}

// At returns the appearance for progress p.
func (e EnterExit) At(p float64) Appearance {
	a := Identity
	if e.Effects&Fade != 0 {
		a.Alpha = clampUnit(p)
	}
	if e.Effects&ExpandVertically != 0 {
		a.HeightFrac = clampUnit(p)
	}
	if e.Effects&Scale != 0 {
		a.Scale = Lerp(e.InitialScale, 1, p)
	}
	if e.Effects&SlideVertically != 0 {
		a.OffsetFrac = Lerp(e.SlideOffset, 0, p)
	}
	return a
}

func (e EnterExit) spec() Spec {
	if e.Effects == 0 {
		return Snap{}
	}
	if e.Spec == nil {
		return defaultVisibilitySpec
	}
	return e.Spec
}

// Visibility animates content in and out. CurrentState is what the content
// has settled at; TargetState is what was last requested. The two differ
// only while an enter or exit is in flight.
type Visibility struct {
	CurrentState bool
	TargetState  bool
	Enter        EnterExit
	Exit         EnterExit
	progress     *Float
}

// NewVisibility returns a settled Visibility.
func NewVisibility(visible bool, enter, exit EnterExit) *Visibility {
	p := 0.0
	if visible {
		p = 1
	}
	return &Visibility{
		CurrentState: visible,
		TargetState:  visible,
		Enter:        enter,
		Exit:         exit,
		progress:     NewFloat(p),
	}
}

// SetTarget requests that content become visible or hidden.
func (v *Visibility) SetTarget(visible bool) {
	if visible == v.TargetState && v.progress.Target() == boolToUnit(visible) {
		return
	}
	v.TargetState = visible
	if visible {
		v.progress.AnimateTo(1, v.Enter.spec())
	} else {
		v.progress.AnimateTo(0, v.Exit.spec())
	}
	v.settle()
}

// Toggle flips the target relative to the current settled state.
func (v *Visibility) Toggle() {
	v.SetTarget(!v.CurrentState)
}

// IsIdle reports whether no enter or exit is in flight.
func (v *Visibility) IsIdle() bool {
	return !v.progress.IsRunning() && v.CurrentState == v.TargetState
}

// Progress is 0 when fully hidden and 1 when fully shown.
func (v *Visibility) Progress() float64 { return v.progress.Value() }

// Visible reports whether the content takes part in layout at all.
func (v *Visibility) Visible() bool {
	return v.TargetState || v.progress.IsRunning() || v.CurrentState
}

// Appearance returns how the content should be drawn now.
func (v *Visibility) Appearance() Appearance {
	if !v.Visible() {
		return Appearance{}
	}
	if v.TargetState {
		return v.Enter.At(v.progress.Value())
	}
	return v.Exit.At(v.progress.Value())
}

// Status describes the phase for display.
func (v *Visibility) Status() string {
	idle := v.IsIdle()
	switch {
	case idle && v.CurrentState:
		return "Visible"
	case !idle && v.CurrentState:
		return "Disappearing"
	case idle && !v.CurrentState:
		return "Invisible"
	default:
		return "Appearing"
	}
}

// Step advances the enter or exit animation.
func (v *Visibility) Step(dt time.Duration) bool {
	v.progress.Step(dt)
	v.settle()
	return !v.IsIdle()
}

func (v *Visibility) settle() {
	if !v.progress.IsRunning() {
		v.CurrentState = v.TargetState
	}
}

func boolToUnit(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
