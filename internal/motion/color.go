package motion

import (
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

// Color animates between two colors in CIE L*a*b* space, which keeps the
// midpoint of e.g. red and green from turning muddy brown.
type Color struct {
	from, to colorful.Color
	progress *Float
}

// NewColor returns an idle Color resting at c.
func NewColor(c colorful.Color) *Color {
	return &Color{from: c, to: c, progress: NewFloat(1)}
}

// Value returns the current color, clamped to the RGB gamut.
func (c *Color) Value() colorful.Color {
	p := c.progress.Value()
	if p >= 1 && !c.progress.IsRunning() {
		return c.to
	}
	return c.from.BlendLab(c.to, p).Clamped()
}

// Target returns the color being animated to.
func (c *Color) Target() colorful.Color { return c.to }

// IsRunning reports whether the color is still changing.
func (c *Color) IsRunning() bool { return c.progress.IsRunning() }

// AnimateTo blends from the current color toward target.
func (c *Color) AnimateTo(target colorful.Color, spec Spec) {
	c.from = c.Value()
	c.to = target
	c.progress.SnapTo(0)
	c.progress.AnimateTo(1, spec)
}

// SnapTo jumps to target without animating.
func (c *Color) SnapTo(target colorful.Color) {
	c.from, c.to = target, target
	c.progress.SnapTo(1)
}

// Step advances the blend; see Float.Step.
func (c *Color) Step(dt time.Duration) bool {
	return c.progress.Step(dt)
}

// MustHex parses a #rrggbb color and panics on malformed input. Intended for
// package-level palette constants.
func MustHex(s string) colorful.Color {
	c, err := colorful.Hex(s)
	if err != nil {
		panic(err)
	}
	return c
}
