package motion

import "time"

// Clock sets the frame cadence and converts wall time into animation time.
type Clock struct {
	FPS int
	// TimeScale stretches animation time; 2 plays at half speed.
	TimeScale float64
}

// Interval is the wall-clock time between frames.
func (c Clock) Interval() time.Duration {
	fps := c.FPS
	if fps <= 0 {
		fps = 30
	}
	return time.Second / time.Duration(fps)
}

// Advance converts elapsed wall time into animation time. Gaps longer than
// maxFrameGap (a suspended terminal, a debugger) are clamped so animations
// resume instead of jumping to their end.
func (c Clock) Advance(wall time.Duration) time.Duration {
	if wall <= 0 {
		return 0
	}
	wall = min(wall, maxFrameGap)
	scale := c.TimeScale
	if scale <= 0 {
		scale = 1
	}
	return time.Duration(float64(wall) / scale)
}

const maxFrameGap = 250 * time.Millisecond
