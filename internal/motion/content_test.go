package motion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibility_StatusSequence(t *testing.T) {
	enter := FadeInOut(Tween{Duration: 100 * ms}).Plus(ExpandShrink(nil))
	exit := FadeInOut(Tween{Duration: 100 * ms})
	v := NewVisibility(false, enter, exit)
	assert.Equal(t, "Invisible", v.Status())
	assert.False(t, v.Visible())

	v.SetTarget(true)
	assert.Equal(t, "Appearing", v.Status())
	assert.True(t, v.Visible())

	v.Step(100 * ms)
	assert.Equal(t, "Visible", v.Status())
	assert.True(t, v.CurrentState)

	v.Toggle()
	assert.Equal(t, "Disappearing", v.Status())
	assert.True(t, v.CurrentState, "current state holds until the exit settles")
	assert.False(t, v.TargetState)

	v.Step(50 * ms)
	a := v.Appearance()
	assert.Greater(t, a.Alpha, 0.0)
	assert.Less(t, a.Alpha, 1.0)

	v.Step(50 * ms)
	assert.Equal(t, "Invisible", v.Status())
	assert.False(t, v.Visible())
	assert.True(t, v.Appearance().Hidden())
}

func TestVisibility_NoneSnaps(t *testing.T) {
	v := NewVisibility(true, EnterExitNone, EnterExitNone)
	v.SetTarget(false)
	assert.True(t, v.IsIdle())
	assert.False(t, v.CurrentState)
	v.SetTarget(true)
	assert.Equal(t, Identity, v.Appearance())
}

func TestVisibility_ReverseMidFlight(t *testing.T) {
	spec := Tween{Duration: 100 * ms, Easing: Linear}
	v := NewVisibility(false, FadeInOut(spec), FadeInOut(spec))
	v.SetTarget(true)
	v.Step(50 * ms)
	v.SetTarget(false)
	assert.InDelta(t, 0.5, v.Progress(), 1e-3)
	assert.Equal(t, "Appearing", v.Status(), "never became visible")
	v.Step(100 * ms)
	assert.Equal(t, "Invisible", v.Status())
}

func TestEnterExit_Combined(t *testing.T) {
	e := FadeInOut(nil).Plus(ExpandShrink(nil)).Plus(ScaleInOut(0, nil)).Plus(SlideVertical(-0.5, nil))
	zero := e.At(0)
	assert.Equal(t, Appearance{Alpha: 0, HeightFrac: 0, Scale: 0, OffsetFrac: -0.5}, zero)
	assert.True(t, zero.Hidden())
	assert.Equal(t, Identity, e.At(1))

	half := e.At(0.5)
	assert.InDelta(t, 0.5, half.Alpha, 1e-9)
	assert.InDelta(t, -0.25, half.OffsetFrac, 1e-9)
}

func counterSpec(initial, target int) ContentTransform {
	in, out := SlideDirection(initial, target)
	spec := Tween{Duration: 100 * ms, Easing: Linear}
	return ContentTransform{
		Enter: SlideVertical(in, spec).Plus(FadeInOut(spec)),
		Exit:  SlideVertical(out, spec).Plus(FadeInOut(spec)),
		Size:  &SizeTransform{Clip: false},
	}
}

func TestSlideDirection(t *testing.T) {
	in, out := SlideDirection(0, 1)
	assert.Equal(t, 1.0, in, "increase: incoming starts below")
	assert.Equal(t, -1.0, out, "increase: outgoing leaves upward")

	in, out = SlideDirection(1, 0)
	assert.Equal(t, -1.0, in)
	assert.Equal(t, 1.0, out)

	in, _ = SlideDirection(2, 2)
	assert.Equal(t, -1.0, in, "no increase slides down")
}

func TestContent_CounterLayers(t *testing.T) {
	c := NewContent(0, counterSpec, nil)
	layers := c.Layers()
	require.Len(t, layers, 1)
	assert.Equal(t, 0, layers[0].Value)

	c.SetTarget(1)
	assert.False(t, c.Clip())
	c.Step(50 * ms)
	layers = c.Layers()
	require.Len(t, layers, 2)
	out, in := layers[0], layers[1]
	assert.Equal(t, 0, out.Value)
	assert.Equal(t, 1, in.Value)
	assert.True(t, in.Incoming)
	assert.InDelta(t, -0.5, out.Appearance.OffsetFrac, 1e-3, "outgoing moves up")
	assert.InDelta(t, 0.5, in.Appearance.OffsetFrac, 1e-3, "incoming rises from below")

	c.Step(50 * ms)
	assert.False(t, c.IsRunning())
	assert.Equal(t, 1, c.Initial())
	layers = c.Layers()
	require.Len(t, layers, 1)
	assert.Equal(t, Identity, layers[0].Appearance)
}

func TestContent_DecrementSlidesDown(t *testing.T) {
	c := NewContent(5, counterSpec, nil)
	c.SetTarget(4)
	c.Step(50 * ms)
	layers := c.Layers()
	require.Len(t, layers, 2)
	assert.Greater(t, layers[0].Appearance.OffsetFrac, 0.0)
	assert.Less(t, layers[1].Appearance.OffsetFrac, 0.0)
}

func TestContent_SizeTransformKeyframes(t *testing.T) {
	sizes := map[bool]Size{false: {W: 24, H: 24}, true: {W: 300, H: 60}}
	spec := func(initial, target bool) ContentTransform {
		return ContentTransform{
			Enter: FadeInOut(Tween{Duration: 150 * ms, Delay: 150 * ms}),
			Exit:  FadeInOut(Tween{Duration: 150 * ms}),
			Size: &SizeTransform{Clip: true, Specs: func(from, to Size, expanding bool) (Spec, Spec) {
				if expanding {
					return Keyframes{Duration: 300 * ms, Frames: []Keyframe{{At: 150 * ms, Value: to.W}}},
						Keyframes{Duration: 300 * ms, Frames: []Keyframe{{At: 150 * ms, Value: from.H}}}
				}
				return Keyframes{Duration: 300 * ms, Frames: []Keyframe{{At: 150 * ms, Value: from.W}}},
					Keyframes{Duration: 300 * ms, Frames: []Keyframe{{At: 150 * ms, Value: to.H}}}
			}},
		}
	}
	c := NewContent(false, spec, func(b bool) Size { return sizes[b] })
	assert.Equal(t, sizes[false], c.Size())

	c.SetTarget(true)
	c.Step(150 * ms)
	assert.InDelta(t, 300, c.Size().W, 1e-3, "width expands first")
	assert.InDelta(t, 24, c.Size().H, 1e-3)
	layers := c.Layers()
	require.Len(t, layers, 2)
	assert.InDelta(t, 0, layers[0].Appearance.Alpha, 1e-3, "outgoing faded out")
	assert.InDelta(t, 0, layers[1].Appearance.Alpha, 1e-3, "incoming waits for its delay")

	c.Step(150 * ms)
	assert.False(t, c.IsRunning())
	assert.Equal(t, sizes[true], c.Size())

	c.SetTarget(false)
	c.Step(150 * ms)
	assert.InDelta(t, 300, c.Size().W, 1e-3, "shrinking keeps width first")
	assert.InDelta(t, 24, c.Size().H, 1e-3, "height shrinks first")
}

func TestCrossfade_AlphasSumToOne(t *testing.T) {
	c := NewCrossfade("A", Tween{})
	c.SetTarget("B")
	for range 5 {
		c.Step(40 * ms)
		layers := c.Layers()
		require.Len(t, layers, 2)
		assert.Equal(t, "A", layers[0].Value)
		assert.Equal(t, "B", layers[1].Value)
		assert.InDelta(t, 1, layers[0].Appearance.Alpha+layers[1].Appearance.Alpha, 1e-3)
	}
	c.Step(time.Second)
	assert.Equal(t, []Layer[string]{{Value: "B", Appearance: Identity, Incoming: true}}, c.Layers())
}

func TestCrossfade_RetargetMidFade(t *testing.T) {
	c := NewCrossfade("A", Tween{Duration: 100 * ms})
	c.SetTarget("B")
	c.Step(50 * ms)
	before := c.Layers()
	require.Len(t, before, 2)
	alphaA, alphaB := before[0].Appearance.Alpha, before[1].Appearance.Alpha
	require.Greater(t, alphaA, 0.0)
	require.Greater(t, alphaB, 0.0)

	c.SetTarget("A")
	layers := c.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, "B", layers[0].Value)
	assert.Equal(t, "A", layers[1].Value)
	assert.InDelta(t, alphaB, layers[0].Appearance.Alpha, 1e-3, "B fades out from where it was")
	assert.InDelta(t, alphaA, layers[1].Appearance.Alpha, 1e-3, "A comes back from where it was")

	c.Step(20 * ms)
	layers = c.Layers()
	require.Len(t, layers, 2)
	assert.Less(t, layers[0].Appearance.Alpha, alphaB)
	assert.Greater(t, layers[1].Appearance.Alpha, alphaA)

	c.Step(time.Second)
	assert.Equal(t, []Layer[string]{{Value: "A", Appearance: Identity, Incoming: true}}, c.Layers())
}

func TestCrossfade_RetargetToThirdValue(t *testing.T) {
	c := NewCrossfade("A", Tween{Duration: 100 * ms})
	c.SetTarget("B")
	c.Step(50 * ms)
	alphaB := c.Layers()[1].Appearance.Alpha

	c.SetTarget("C")
	layers := c.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, "B", layers[0].Value)
	assert.InDelta(t, alphaB, layers[0].Appearance.Alpha, 1e-3)
	assert.Equal(t, "C", layers[1].Value)
	assert.InDelta(t, 0, layers[1].Appearance.Alpha, 1e-3)
}
