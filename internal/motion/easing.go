package motion

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Easing maps elapsed time t (of duration d) to a value between begin b and
// begin+change c. It is gween's easing signature so any ease.* function fits.
type Easing = ease.TweenFunc

// Linear is constant-speed easing.
var Linear Easing = ease.Linear

// FastOutSlowIn accelerates quickly and settles slowly. It is the default
// easing for tweens, matching cubic-bezier(0.4, 0.0, 0.2, 1.0).
var FastOutSlowIn = BezierEasing(0.4, 0.0, 0.2, 1.0)

// LinearOutSlowIn is used for incoming elements.
var LinearOutSlowIn = BezierEasing(0.0, 0.0, 0.2, 1.0)

// FastOutLinearIn is used for outgoing elements.
var FastOutLinearIn = BezierEasing(0.4, 0.0, 1.0, 1.0)

// BezierEasing returns a gween easing function following the cubic bezier with
// control points (x1,y1) and (x2,y2); the curve runs from (0,0) to (1,1).
func BezierEasing(x1, y1, x2, y2 float64) Easing {
	curve := cubicBezier(x1, y1, x2, y2)
	return func(t, b, c, d float32) float32 {
		if d <= 0 {
			return b + c
		}
		return b + c*float32(curve(float64(t/d)))
	}
}

func cubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		u := t
		// Newton-Raphson first, bisection if the slope flattens out.
		for range 8 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return sampleCurve(y1, y2, clampUnit(u))
			}
			dx := sampleCurveDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for range 16 {
			x := sampleCurve(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return sampleCurve(y1, y2, u)
	}
}

func sampleCurve(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func sampleCurveDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
