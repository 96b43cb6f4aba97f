package motion

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// FloatState is a Float bound to a fixed Spec that only restarts its
// animation when the requested target actually changes. It is the
// "animate this value as state" shape: callers set the desired value on
// every frame or tap and the state handles the rest.
type FloatState struct {
	*Float
	spec Spec
}

// NewFloatState returns a FloatState resting at initial.
func NewFloatState(initial float64, spec Spec) *FloatState {
	return &FloatState{Float: NewFloat(initial), spec: spec}
}

// Set animates toward v unless v is already the target.
func (s *FloatState) Set(v float64) {
	if v == s.Target() {
		return
	}
	s.AnimateTo(v, s.spec)
}

// ColorState is the color counterpart of FloatState.
type ColorState struct {
	*Color
	spec Spec
}

// NewColorState returns a ColorState resting at initial.
func NewColorState(initial colorful.Color, spec Spec) *ColorState {
	return &ColorState{Color: NewColor(initial), spec: spec}
}

// Set animates toward c unless c is already the target.
func (s *ColorState) Set(c colorful.Color) {
	if c == s.Target() {
		return
	}
	s.AnimateTo(c, s.spec)
}

// Stepper is anything advanced once per frame.
type Stepper interface {
	Step(dt time.Duration) bool
}

// StepAll advances every stepper and reports whether any is still running.
// All steppers are advanced even after one reports true.
func StepAll(dt time.Duration, steppers ...Stepper) bool {
	running := false
	for _, s := range steppers {
		if s.Step(dt) {
			running = true
		}
	}
	return running
}
