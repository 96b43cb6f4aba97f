package motion

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Transition drives several values from one piece of state. Each channel
// maps the state to a value; SetTarget retargets every channel together so
// they start on the same frame. Current catches up to Target once every
// channel has settled.
type Transition[S comparable] struct {
	current S
	target  S
	floats  []floatChannel[S]
	colors  []colorChannel[S]
}

type floatChannel[S comparable] struct {
	value *Float
	spec  Spec
	fn    func(S) float64
}

type colorChannel[S comparable] struct {
	value *Color
	spec  Spec
	fn    func(S) colorful.Color
}

// NewTransition returns a settled Transition at initial.
func NewTransition[S comparable](initial S) *Transition[S] {
	return &Transition[S]{current: initial, target: initial}
}

// Float declares a float channel. A nil spec uses DefaultSpring.
func (t *Transition[S]) Float(spec Spec, fn func(S) float64) *Float {
	v := NewFloat(fn(t.target))
	t.floats = append(t.floats, floatChannel[S]{value: v, spec: spec, fn: fn})
	return v
}

// Color declares a color channel. A nil spec uses DefaultSpring.
func (t *Transition[S]) Color(spec Spec, fn func(S) colorful.Color) *Color {
	v := NewColor(fn(t.target))
	t.colors = append(t.colors, colorChannel[S]{value: v, spec: spec, fn: fn})
	return v
}

// Current returns the state the transition last settled at.
func (t *Transition[S]) Current() S { return t.current }

// Target returns the state being animated to.
func (t *Transition[S]) Target() S { return t.target }

// SetTarget retargets every channel. Setting the current target is a no-op.
func (t *Transition[S]) SetTarget(s S) {
	if s == t.target {
		return
	}
	t.target = s
	for _, ch := range t.floats {
		ch.value.AnimateTo(ch.fn(s), ch.spec)
	}
	for _, ch := range t.colors {
		ch.value.AnimateTo(ch.fn(s), ch.spec)
	}
	t.settle()
}

// IsRunning reports whether any channel is still moving.
func (t *Transition[S]) IsRunning() bool {
	for _, ch := range t.floats {
		if ch.value.IsRunning() {
			return true
		}
	}
	for _, ch := range t.colors {
		if ch.value.IsRunning() {
			return true
		}
	}
	return false
}

// Step advances every channel.
func (t *Transition[S]) Step(dt time.Duration) bool {
	for _, ch := range t.floats {
		ch.value.Step(dt)
	}
	for _, ch := range t.colors {
		ch.value.Step(dt)
	}
	t.settle()
	return t.IsRunning()
}

func (t *Transition[S]) settle() {
	if !t.IsRunning() {
		t.current = t.target
	}
}
