package motion

import (
	"math"
	"time"
)

// Spec describes how an animated value travels to its target.
// Implementations: Tween, Spring, Keyframes.
type Spec interface {
	spec()
}

// Tween animates over a fixed Duration after an optional Delay.
type Tween struct {
	Duration time.Duration
	Delay    time.Duration
	Easing   Easing // nil means FastOutSlowIn
}

// DefaultDuration is used when a Tween leaves Duration at zero.
const DefaultDuration = 300 * time.Millisecond

// TweenFor returns a Tween with default easing.
func TweenFor(d time.Duration) Tween {
	return Tween{Duration: d}
}

func (Tween) spec() {}

func (t Tween) easing() Easing {
	if t.Easing == nil {
		return FastOutSlowIn
	}
	return t.Easing
}

func (t Tween) duration() time.Duration {
	if t.Duration <= 0 {
		return DefaultDuration
	}
	return t.Duration
}

// Spring animates with a damped harmonic oscillator. Unit mass; the angular
// frequency is sqrt(Stiffness). DampingRatio < 1 overshoots and bounces;
// zero values fall back to DefaultSpring.
type Spring struct {
	DampingRatio float64
	Stiffness    float64
}

// Common spring parameters.
const (
	DampingNoBouncy     = 1.0
	DampingLowBouncy    = 0.75
	DampingMediumBouncy = 0.5
	DampingHighBouncy   = 0.2

	StiffnessHigh      = 10_000.0
	StiffnessMedium    = 1_500.0
	StiffnessMediumLow = 400.0
	StiffnessLow       = 200.0
	StiffnessVeryLow   = 50.0
)

// DefaultSpring is a critically damped spring of medium stiffness.
var DefaultSpring = Spring{DampingRatio: DampingNoBouncy, Stiffness: StiffnessMedium}

func (Spring) spec() {}

func (s Spring) angularFrequency() float64 {
	k := s.Stiffness
	if k <= 0 {
		k = StiffnessMedium
	}
	return math.Sqrt(k)
}

func (s Spring) damping() float64 {
	if s.DampingRatio <= 0 {
		return DampingNoBouncy
	}
	return s.DampingRatio
}

// Keyframe pins Value at offset At from the start of a Keyframes animation.
type Keyframe struct {
	At     time.Duration
	Value  float64
	Easing Easing // easing of the segment that starts at this frame; nil is Linear
}

// Keyframes interpolates linearly (or per-frame Easing) through fixed points.
// The start value is wherever the animation currently is; the last point is
// the target at Duration.
type Keyframes struct {
	Duration time.Duration
	Frames   []Keyframe
}

func (Keyframes) spec() {}

// Snap jumps straight to the target.
type Snap struct{}

func (Snap) spec() {}
