package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ms = time.Millisecond

func TestFloat_TweenReachesTargetExactly(t *testing.T) {
	f := NewFloat(0)
	f.AnimateTo(1, Tween{Duration: 300 * ms})
	require.True(t, f.IsRunning())

	f.Step(150 * ms)
	assert.Greater(t, f.Value(), 0.0)
	assert.Less(t, f.Value(), 1.0)
	assert.True(t, f.IsRunning())

	running := f.Step(150 * ms)
	assert.False(t, running)
	assert.Equal(t, 1.0, f.Value())
}

func TestFloat_TweenStaysWithinSpan(t *testing.T) {
	f := NewFloat(48)
	f.AnimateTo(64, Tween{Duration: 500 * ms})
	for f.IsRunning() {
		f.Step(16 * ms)
		assert.GreaterOrEqual(t, f.Value(), 48.0-1e-4)
		assert.LessOrEqual(t, f.Value(), 64.0+1e-4)
	}
	assert.Equal(t, 64.0, f.Value())
}

func TestFloat_TweenDelayHoldsStartValue(t *testing.T) {
	f := NewFloat(0)
	f.AnimateTo(1, Tween{Duration: 150 * ms, Delay: 150 * ms})

	f.Step(100 * ms)
	assert.Equal(t, 0.0, f.Value())
	assert.True(t, f.IsRunning())

	f.Step(200 * ms)
	assert.Equal(t, 1.0, f.Value())
	assert.False(t, f.IsRunning())
}

func TestFloat_LinearTweenMidpoint(t *testing.T) {
	f := NewFloat(0)
	f.AnimateTo(360, Tween{Duration: 2 * time.Second, Easing: Linear})
	f.Step(time.Second)
	assert.InDelta(t, 180, f.Value(), 1e-3)
}

func TestFloat_Keyframes(t *testing.T) {
	f := NewFloat(0)
	f.AnimateTo(1, Keyframes{
		Duration: 1000 * ms,
		Frames:   []Keyframe{{At: 500 * ms, Value: 0.5}},
	})

	f.Step(250 * ms)
	assert.InDelta(t, 0.25, f.Value(), 1e-4)

	f.Step(250 * ms)
	assert.InDelta(t, 0.5, f.Value(), 1e-6)

	f.Step(250 * ms)
	assert.InDelta(t, 0.75, f.Value(), 1e-4)

	f.Step(250 * ms)
	assert.Equal(t, 1.0, f.Value())
	assert.False(t, f.IsRunning())
}

func TestFloat_KeyframesIgnoreFramesOutsideDuration(t *testing.T) {
	f := NewFloat(0)
	f.AnimateTo(10, Keyframes{
		Duration: 100 * ms,
		Frames: []Keyframe{
			{At: 0, Value: 99},
			{At: 500 * ms, Value: 99},
		},
	})
	f.Step(50 * ms)
	assert.InDelta(t, 5, f.Value(), 1e-3)
}

func TestFloat_SpringOvershootsThenSettles(t *testing.T) {
	f := NewFloat(1)
	f.AnimateTo(1.5, Spring{DampingRatio: 0.3, Stiffness: 500})

	peak := f.Value()
	for i := 0; i < 300 && f.IsRunning(); i++ {
		f.Step(16 * ms)
		peak = max(peak, f.Value())
	}
	assert.Greater(t, peak, 1.5, "an underdamped spring should overshoot")
	assert.False(t, f.IsRunning())
	assert.Equal(t, 1.5, f.Value())
}

func TestFloat_CriticallyDampedSpringDoesNotOvershoot(t *testing.T) {
	f := NewFloat(100)
	f.AnimateTo(150, DefaultSpring)
	for i := 0; i < 300 && f.IsRunning(); i++ {
		f.Step(16 * ms)
		assert.LessOrEqual(t, f.Value(), 150.0+1e-6)
	}
	assert.Equal(t, 150.0, f.Value())
}

func TestFloat_SpringAtTargetIsIdle(t *testing.T) {
	f := NewFloat(3)
	f.AnimateTo(3, nil)
	assert.False(t, f.IsRunning())
}

func TestFloat_SpringRestThresholdScalesWithSpan(t *testing.T) {
	f := NewFloat(0)
	f.AnimateTo(100, Spring{})
	require.InDelta(t, 0.1, f.restEps, 1e-12, "0.001 of a 100 unit span")

	f.value, f.velocity = 99.95, 0.5
	assert.True(t, f.atRest(), "inside 0.1 with speed under 1/s")
	f.velocity = 1.5
	assert.False(t, f.atRest(), "still moving faster than 10x the position bound")
	f.value, f.velocity = 99.8, 0
	assert.False(t, f.atRest(), "too far from the target")

	small := NewFloat(0)
	small.AnimateTo(0.5, Spring{})
	assert.InDelta(t, 0.001, small.restEps, 1e-12, "spans under 1 use the absolute floor")
}

func TestFloat_RetargetStartsFromCurrentValue(t *testing.T) {
	f := NewFloat(0)
	f.AnimateTo(1, Tween{Duration: 100 * ms, Easing: Linear})
	f.Step(50 * ms)
	mid := f.Value()
	require.InDelta(t, 0.5, mid, 1e-3)

	f.AnimateTo(0, Tween{Duration: 100 * ms, Easing: Linear})
	assert.Equal(t, mid, f.Value(), "retarget must not jump")
	f.Step(50 * ms)
	assert.InDelta(t, 0.25, f.Value(), 1e-3)
}

func TestFloat_NonPositiveStepIsNoOp(t *testing.T) {
	f := NewFloat(0)
	f.AnimateTo(1, Tween{Duration: 100 * ms})
	f.Step(0)
	f.Step(-time.Second)
	assert.Equal(t, 0.0, f.Value())
	assert.True(t, f.IsRunning())
}

func TestFloat_SnapAndStop(t *testing.T) {
	f := NewFloat(0)
	f.AnimateTo(1, Snap{})
	assert.Equal(t, 1.0, f.Value())
	assert.False(t, f.IsRunning())

	f.AnimateTo(0, Tween{Duration: 100 * ms, Easing: Linear})
	f.Step(25 * ms)
	f.Stop()
	assert.False(t, f.IsRunning())
	assert.InDelta(t, 0.75, f.Value(), 1e-3)
	assert.Equal(t, f.Value(), f.Target())
}

func TestEasing_Endpoints(t *testing.T) {
	for name, e := range map[string]Easing{
		"FastOutSlowIn":   FastOutSlowIn,
		"LinearOutSlowIn": LinearOutSlowIn,
		"FastOutLinearIn": FastOutLinearIn,
		"Linear":          Linear,
	} {
		t.Run(name, func(t *testing.T) {
			assert.InDelta(t, 0, e(0, 0, 1, 1), 1e-6)
			assert.InDelta(t, 1, e(1, 0, 1, 1), 1e-6)
			prev := float32(0)
			for i := 1; i <= 20; i++ {
				v := e(float32(i)/20, 0, 1, 1)
				assert.GreaterOrEqual(t, v, prev-1e-5)
				prev = v
			}
		})
	}
}

func TestEasing_FastOutSlowInFrontLoaded(t *testing.T) {
	assert.Greater(t, FastOutSlowIn(0.5, 0, 1, 1), float32(0.7))
}

func TestClock(t *testing.T) {
	c := Clock{FPS: 50, TimeScale: 2}
	assert.Equal(t, 20*ms, c.Interval())
	assert.Equal(t, 10*ms, c.Advance(20*ms))
	assert.Equal(t, time.Duration(0), c.Advance(-ms))
	assert.Equal(t, maxFrameGap/2, c.Advance(time.Hour))

	assert.Equal(t, time.Second/30, Clock{}.Interval())
	assert.Equal(t, 20*ms, Clock{}.Advance(20*ms))
}
