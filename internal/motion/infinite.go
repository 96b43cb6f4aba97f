package motion

import (
	"time"

	"github.com/tanema/gween"
)

// RepeatMode selects what an infinite animation does at the end of a cycle.
type RepeatMode int

const (
	// Restart jumps back to the start value.
	Restart RepeatMode = iota
	// Reverse plays the next cycle backwards.
	Reverse
)

func (m RepeatMode) String() string {
	switch m {
	case Restart:
		return "restart"
	case Reverse:
		return "reverse"
	default:
		return "unknown"
	}
}

// Infinite repeats a tween forever. It never becomes idle.
type Infinite struct {
	from, to float64
	duration time.Duration
	mode     RepeatMode
	tween    *gween.Tween
	elapsed  time.Duration
	value    float64
}

// NewInfinite loops from -> to using spec, repeating per mode.
func NewInfinite(from, to float64, spec Tween, mode RepeatMode) *Infinite {
	d := spec.duration()
	return &Infinite{
		from:     from,
		to:       to,
		duration: d,
		mode:     mode,
		tween:    gween.New(float32(from), float32(to), float32(d.Seconds()), spec.easing()),
		value:    from,
	}
}

// Value returns the current value.
func (i *Infinite) Value() float64 { return i.value }

// Step advances the loop. It always reports true.
func (i *Infinite) Step(dt time.Duration) bool {
	if dt <= 0 {
		return true
	}
	i.elapsed += dt
	// Keep elapsed bounded; two cycles preserve Reverse parity.
	if period := 2 * i.duration; i.elapsed >= period {
		i.elapsed %= period
	}
	t := i.elapsed % i.duration
	if i.mode == Reverse && (i.elapsed/i.duration)%2 == 1 {
		t = i.duration - t
	}
	v, _ := i.tween.Set(float32(t.Seconds()))
	i.value = float64(v)
	return true
}
