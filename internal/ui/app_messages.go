package ui

import "time"

// OpenScreenMsg is sent when the user opens a screen from the gallery.
type OpenScreenMsg struct {
	Name string
}

// CloseScreenMsg returns from the current screen to the gallery (esc or SPC g).
type CloseScreenMsg struct{}

// RestartScreenMsg reopens the current screen with fresh state (SPC r).
type RestartScreenMsg struct{}

// ToggleSlowMotionMsg toggles slow motion on the animation clock (SPC s).
type ToggleSlowMotionMsg struct{}

// ShowHelpMsg pushes the key help overlay (?).
type ShowHelpMsg struct{}

// DismissOverlayMsg is sent when the user closes the top overlay.
type DismissOverlayMsg struct{}

// FrameMsg advances animations by one frame. Gen ties the tick to the frame
// loop that scheduled it; ticks from a stopped loop or a closed screen are
// dropped.
type FrameMsg struct {
	Gen int
	At  time.Time
}
