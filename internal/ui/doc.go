// Package ui is the Bubble Tea front end of animplay.
//
// Core abstractions:
//   - View: A screen or major UI region with its own model, update, view (Elm-style)
//   - Panel: A bounded region within a layout that hosts a View (one per demo)
//   - Layout: Arranges panels; FlowLayout wraps them to the terminal width
//   - FocusManager: Tracks and rotates focus across panels
//   - ViewStack: Stack-based navigation (gallery below, open screen above)
//   - Overlay: Modal or popup views with dismiss key (key help)
//
// ScreenView owns the frame loop. It schedules FrameMsg ticks only while a
// demo is animating, so an idle screen costs nothing.
package ui
