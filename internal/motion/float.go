package motion

import (
	"math"
	"sort"
	"time"

	"github.com/charmbracelet/harmonica"
	"github.com/tanema/gween"
)

// springStep is the largest integration step handed to harmonica. Frames
// longer than this are split so slow terminals do not destabilize springs.
const springStep = time.Second / 120

// A spring rests once it is within restFraction of its span (never less
// than restFraction absolute) and its speed per second is under
// restVelocityFactor times that distance.
const (
	restFraction       = 0.001
	restVelocityFactor = 10
)

type animKind int

const (
	kindIdle animKind = iota
	kindTimed
	kindSpring
)

type segment struct {
	start, end time.Duration
	tween      *gween.Tween
}

// Float is a single animated scalar. Call AnimateTo to set a new target and
// Step once per frame to advance it. The zero value is idle at 0.
type Float struct {
	value    float64
	target   float64
	velocity float64
	kind     animKind

	// timed animations (Tween, Keyframes)
	segments []segment
	elapsed  time.Duration
	delay    time.Duration
	total    time.Duration

	// springs
	spring   Spring
	restEps  float64
	osc      harmonica.Spring
	oscDelta time.Duration
}

// NewFloat returns an idle Float resting at v.
func NewFloat(v float64) *Float {
	return &Float{value: v, target: v}
}

// Value returns the current animated value.
func (f *Float) Value() float64 { return f.value }

// Target returns the value the animation is heading to.
func (f *Float) Target() float64 { return f.target }

// Velocity returns the current velocity in units per second. Only springs
// track velocity; timed animations report zero.
func (f *Float) Velocity() float64 { return f.velocity }

// IsRunning reports whether the value is still moving.
func (f *Float) IsRunning() bool { return f.kind != kindIdle }

// SnapTo stops any animation and jumps to v.
func (f *Float) SnapTo(v float64) {
	f.value = v
	f.target = v
	f.velocity = 0
	f.kind = kindIdle
	f.segments = nil
}

// Stop freezes the value where it is.
func (f *Float) Stop() {
	f.SnapTo(f.value)
}

// AnimateTo starts animating from the current value toward target. A nil
// spec uses DefaultSpring. Retargeting mid-flight starts from the current
// value; springs also keep their current velocity.
func (f *Float) AnimateTo(target float64, spec Spec) {
	if spec == nil {
		spec = DefaultSpring
	}
	f.target = target
	f.elapsed = 0
	f.delay = 0
	f.segments = nil

	switch s := spec.(type) {
	case Snap:
		f.SnapTo(target)
	case Tween:
		d := s.duration()
		f.velocity = 0
		f.delay = s.Delay
		f.total = d
		f.segments = []segment{{
			start: 0,
			end:   d,
			tween: gween.New(float32(f.value), float32(target), float32(d.Seconds()), s.easing()),
		}}
		f.kind = kindTimed
	case Keyframes:
		f.velocity = 0
		f.segments, f.total = keyframeSegments(f.value, target, s)
		f.kind = kindTimed
	case Spring:
		f.spring = s
		f.restEps = restFraction * math.Max(1, math.Abs(target-f.value))
		f.oscDelta = 0
		if f.atRest() {
			f.SnapTo(target)
			return
		}
		f.kind = kindSpring
	}
}

func keyframeSegments(from, to float64, k Keyframes) ([]segment, time.Duration) {
	frames := make([]Keyframe, 0, len(k.Frames))
	for _, fr := range k.Frames {
		if fr.At > 0 {
			frames = append(frames, fr)
		}
	}
	sort.SliceStable(frames, func(i, j int) bool { return frames[i].At < frames[j].At })

	total := k.Duration
	if total <= 0 {
		total = DefaultDuration
		if n := len(frames); n > 0 && frames[n-1].At > total {
			total = frames[n-1].At
		}
	}

	points := []Keyframe{{At: 0, Value: from}}
	for _, fr := range frames {
		if fr.At < total {
			points = append(points, fr)
		}
	}
	points = append(points, Keyframe{At: total, Value: to})

	segs := make([]segment, 0, len(points)-1)
	for i := 0; i+1 < len(points); i++ {
		a, b := points[i], points[i+1]
		if b.At <= a.At {
			continue
		}
		easing := a.Easing
		if easing == nil {
			easing = Linear
		}
		segs = append(segs, segment{
			start: a.At,
			end:   b.At,
			tween: gween.New(float32(a.Value), float32(b.Value), float32((b.At - a.At).Seconds()), easing),
		})
	}
	return segs, total
}

// Step advances the animation by dt and reports whether it is still running.
// dt <= 0 is a no-op.
func (f *Float) Step(dt time.Duration) bool {
	if dt <= 0 {
		return f.IsRunning()
	}
	switch f.kind {
	case kindTimed:
		f.stepTimed(dt)
	case kindSpring:
		f.stepSpring(dt)
	}
	return f.IsRunning()
}

func (f *Float) stepTimed(dt time.Duration) {
	f.elapsed += dt
	t := f.elapsed - f.delay
	if t < 0 {
		return
	}
	if t >= f.total {
		f.SnapTo(f.target)
		return
	}
	for _, seg := range f.segments {
		if t < seg.end {
			v, _ := seg.tween.Set(float32((t - seg.start).Seconds()))
			f.value = float64(v)
			return
		}
	}
}

func (f *Float) stepSpring(dt time.Duration) {
	for dt > 0 {
		step := min(dt, springStep)
		dt -= step
		if step != f.oscDelta {
			f.osc = harmonica.NewSpring(step.Seconds(), f.spring.angularFrequency(), f.spring.damping())
			f.oscDelta = step
		}
		f.value, f.velocity = f.osc.Update(f.value, f.velocity, f.target)
		if f.atRest() {
			f.SnapTo(f.target)
			return
		}
	}
}

func (f *Float) atRest() bool {
	eps := f.restEps
	if eps == 0 {
		eps = restFraction
	}
	return math.Abs(f.value-f.target) < eps && math.Abs(f.velocity) < eps*restVelocityFactor
}

// Lerp linearly interpolates between a and b.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
