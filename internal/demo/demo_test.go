package demo

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"animplay/internal/render"
	"animplay/internal/ui/textutil"
)

const frame = 16 * time.Millisecond

// settle steps d until it stops animating, failing after ten seconds of
// simulated time.
func settle(t *testing.T, d Demo) {
	t.Helper()
	for elapsed := time.Duration(0); d.Animating(); elapsed += frame {
		if elapsed > 10*time.Second {
			t.Fatalf("%s still animating after %v: %s", d.Name(), elapsed, d.Status())
		}
		d.Step(frame)
	}
}

func TestSpacerBox_TapTogglesAndGrows(t *testing.T) {
	d := NewSpacerBox(render.DefaultUnits)
	assert.Equal(t, 48.0, d.Size())
	require.True(t, d.Tap(Primary))
	assert.True(t, d.Selected)
	assert.True(t, d.Animating())
	settle(t, d)
	assert.InDelta(t, 64, d.Size(), 0.05)

	d.Tap(Primary)
	settle(t, d)
	assert.False(t, d.Selected)
	assert.InDelta(t, 48, d.Size(), 0.05)
	assert.False(t, d.Tap(Increment), "only a plain tap toggles")
}

func TestAlpha_HalfOpacityWhenDisabled(t *testing.T) {
	d := NewAlpha(render.DefaultUnits)
	assert.True(t, d.Enabled)
	d.Tap(Primary)
	settle(t, d)
	assert.False(t, d.Enabled)
	assert.InDelta(t, 0.5, d.Value(), 0.01)
}

func TestColorSize_SpringOvershoots(t *testing.T) {
	d := NewColorSize(render.DefaultUnits)
	d.Tap(Primary)
	peak := 0.0
	for i := 0; i < 300 && d.Animating(); i++ {
		d.Step(10 * time.Millisecond)
		peak = max(peak, d.Scale())
	}
	assert.Greater(t, peak, 1.5, "low damping overshoots")
	assert.False(t, d.Animating())
	assert.InDelta(t, 1.5, d.Scale(), 0.01)
	assert.Equal(t, Blue, d.Color())
}

func TestColorSize_StatusShowsSpringVelocity(t *testing.T) {
	d := NewColorSize(render.DefaultUnits)
	assert.Equal(t, "clicked=false scale=1.00 (+0.0/s) color=#000000", d.Status())

	d.Tap(Primary)
	d.Step(frame)
	assert.Greater(t, d.scale.Velocity(), 0.0, "growing toward 1.5")
	assert.Contains(t, d.Status(), "clicked=true")
	assert.NotContains(t, d.Status(), "(+0.0/s)")

	settle(t, d)
	assert.Contains(t, d.Status(), "scale=1.50 (+0.0/s)")
}

func TestTransitionBox_SizeFollowsSelection(t *testing.T) {
	d := NewTransitionBox(render.DefaultUnits)
	d.Tap(Primary)
	settle(t, d)
	assert.InDelta(t, 150, d.Size(), 0.2)
	assert.Contains(t, d.View(80), "Toggle")
}

func TestSpin_RotatesForever(t *testing.T) {
	d := NewSpin(render.DefaultUnits)
	assert.False(t, d.Tap(Primary), "spin ignores taps")
	d.Step(time.Second)
	assert.InDelta(t, 180, d.Rotation(), 0.05)
	d.Step(time.Second)
	assert.InDelta(t, 0, d.Rotation(), 0.05, "restart wraps to the start value")
	assert.True(t, d.Animating())
}

func TestKeyframes_PassesMidpointAtHalfTime(t *testing.T) {
	d := NewKeyframes(render.DefaultUnits)
	d.Tap(Primary)
	d.Step(500 * time.Millisecond)
	assert.InDelta(t, 0.5, d.Value(), 1e-3)
	d.Step(500 * time.Millisecond)
	assert.InDelta(t, 1, d.Value(), 1e-3)
	assert.False(t, d.Animating())

	d.Tap(Primary)
	d.Step(time.Second)
	assert.InDelta(t, 0, d.Value(), 1e-3)
}

func TestVisibilityState_StatusSequence(t *testing.T) {
	d := NewVisibilityState(render.DefaultUnits)
	assert.Equal(t, "Appearing", d.Status(), "starts appearing immediately")
	settle(t, d)
	assert.Equal(t, "Visible", d.Status())
	assert.Contains(t, d.View(40), greeting)

	d.Tap(Primary)
	assert.Equal(t, "Disappearing", d.Status())
	settle(t, d)
	assert.Equal(t, "Invisible", d.Status())
	assert.NotContains(t, d.View(40), greeting)
}

func TestEnterExit_BannerSlidesAboveOnExit(t *testing.T) {
	d := NewEnterExit(render.DefaultUnits)
	assert.Zero(t, d.Offset())
	assert.Contains(t, d.View(80), "Hide")

	d.Tap(Primary)
	d.Step(frame * 4)
	assert.Less(t, d.Offset(), 0.0)
	assert.Greater(t, d.Offset(), -0.5)
	settle(t, d)
	assert.False(t, d.Visible)
	assert.Contains(t, d.View(80), "Show")
}

func TestVisibility_ShowsThenHides(t *testing.T) {
	d := NewVisibility(render.DefaultUnits)
	hidden := d.View(80)
	assert.NotContains(t, hidden, "Visible!")
	assert.Equal(t, 1, strings.Count(hidden, "\n")+1, "only the button while hidden")

	d.Tap(Primary)
	assert.Equal(t, "Appearing", d.State().Status())
	settle(t, d)
	assert.Contains(t, d.View(80), "Visible!")
	assert.Contains(t, d.View(80), "Hide")
}

func TestCounter_DirectionFollowsChange(t *testing.T) {
	d := NewCounter(render.DefaultUnits)
	require.True(t, d.Tap(Increment))
	assert.Equal(t, 1, d.Count)
	d.Step(frame)
	layers := d.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, 0, layers[0].Value)
	assert.Equal(t, 1, layers[1].Value)
	assert.Greater(t, layers[1].Appearance.OffsetFrac, 0.0, "larger number enters from below")
	assert.Less(t, layers[0].Appearance.OffsetFrac, 0.0, "old number leaves upward")
	settle(t, d)

	d.Tap(Decrement)
	d.Tap(Decrement)
	assert.Equal(t, -1, d.Count)
	d.Step(frame)
	layers = d.Layers()
	require.Len(t, layers, 2)
	assert.Less(t, layers[1].Appearance.OffsetFrac, 0.0, "smaller number enters from above")
	assert.Greater(t, layers[0].Appearance.OffsetFrac, 0.0)
	settle(t, d)
	assert.Len(t, d.Layers(), 1)
	assert.Equal(t, "count=-1", d.Status())
}

func TestSizeTransform_ExpandsWidthFirst(t *testing.T) {
	d := NewSizeTransform(render.DefaultUnits)
	collapsed := d.Size()
	expanded := d.measure(true)
	require.Greater(t, expanded.W, collapsed.W)
	require.Greater(t, expanded.H, collapsed.H)

	d.Tap(Primary)
	d.Step(150 * time.Millisecond)
	assert.InDelta(t, expanded.W, d.Size().W, 0.5)
	assert.InDelta(t, collapsed.H, d.Size().H, 0.5)
	d.Step(150 * time.Millisecond)
	assert.Equal(t, expanded, d.Size())
	assert.Contains(t, d.View(80), "expanded content")

	d.Tap(Primary)
	d.Step(150 * time.Millisecond)
	assert.InDelta(t, expanded.W, d.Size().W, 0.5, "shrinking keeps width first")
	assert.InDelta(t, collapsed.H, d.Size().H, 0.5)
	settle(t, d)
	assert.Contains(t, d.View(80), collapsedIcon)
}

func TestCrossfade_AlphasSumToOne(t *testing.T) {
	d := NewCrossfade(render.DefaultUnits)
	assert.Contains(t, d.View(80), "Page A")
	d.Tap(Primary)
	assert.Equal(t, "B", d.Page)
	d.Step(150 * time.Millisecond)
	layers := d.Layers()
	require.Len(t, layers, 2)
	assert.Equal(t, "A", layers[0].Value)
	assert.InDelta(t, 1, layers[0].Appearance.Alpha+layers[1].Appearance.Alpha, 1e-3)
	settle(t, d)
	assert.Contains(t, d.View(80), "Page B")
	assert.Equal(t, "page=B", d.Status())
}

func TestDemos_ViewFitsWidth(t *testing.T) {
	c := NewCatalog(render.DefaultUnits)
	for _, name := range demoOrder {
		t.Run(name, func(t *testing.T) {
			d := factories[name](render.DefaultUnits)
			d.Tap(Primary)
			d.Step(100 * time.Millisecond)
			for _, line := range strings.Split(d.View(40), "\n") {
				assert.LessOrEqual(t, textutil.StyledWidth(line), 40, "line %q", line)
			}
			assert.NotEmpty(t, d.Status())
			assert.Equal(t, name, d.Name())
		})
	}
	assert.NotEmpty(t, c.Names())
}
