// Package motion adapts the animation runtime (gween tweens, harmonica
// springs, go-colorful blending) to the shapes the playground screens use:
//
//   - Float / Color: a single animated value with AnimateTo and Step
//   - FloatState / ColorState: restart only when the requested value changes
//   - Transition: several channels driven by one piece of state
//   - Visibility: enter/exit animation with a settled and a target state
//   - Content / NewCrossfade: swap between values with per-change transforms
//   - Infinite: a tween that loops forever
//
// Nothing here owns a goroutine or a timer. The caller advances values once
// per frame with Step, passing animation time from a Clock.
package motion
