package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"animplay/internal/motion"
)

// handleWindowSize records the terminal size and fans it out to every view
// and overlay so hidden views are sized correctly when they resurface.
func (a *appModelAdapter) handleWindowSize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	a.width, a.height = msg.Width, msg.Height
	a.Overlays.Broadcast(msg)
	return a, a.Views.Broadcast(msg)
}

// handleOpenScreen builds a fresh screen and pushes it over the gallery.
// An unknown name leaves the current view in place and reports the error.
func (a *appModelAdapter) handleOpenScreen(name string) (tea.Model, tea.Cmd) {
	s, err := a.Catalog.Open(name)
	if err != nil {
		log.Printf("ui.handleOpenScreen: %v", err)
		a.Err = err
		return a, nil
	}
	if a.Screen != nil {
		a.closeScreen()
	}
	a.Err = nil
	v := NewScreenView(s, a.effectiveClock(), a.Tracer)
	v.SlowMotion = a.SlowMotion
	v.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
	a.Screen = v
	a.Views.Push(v)
	a.Mode = ModeScreen
	a.Gallery.Select(s.Name)
	return a, v.Init()
}

// handleCloseScreen drops the screen and its state; reopening starts fresh.
func (a *appModelAdapter) handleCloseScreen() (tea.Model, tea.Cmd) {
	if a.Screen == nil {
		return a, nil
	}
	a.closeScreen()
	return a, nil
}

// closeScreen pops the screen; the stack closes it.
func (a *appModelAdapter) closeScreen() {
	a.Views.Pop()
	a.Screen = nil
	a.Mode = ModeGallery
}

// handleRestartScreen reopens the current screen with fresh state.
func (a *appModelAdapter) handleRestartScreen() (tea.Model, tea.Cmd) {
	if a.Screen == nil {
		return a, nil
	}
	return a.handleOpenScreen(a.Screen.Screen.Name)
}

// handleToggleSlowMotion flips slow motion. The open screen picks up the new
// clock on its next frame.
func (a *appModelAdapter) handleToggleSlowMotion() (tea.Model, tea.Cmd) {
	a.SlowMotion = !a.SlowMotion
	log.Printf("ui.handleToggleSlowMotion: slow=%v scale=%g", a.SlowMotion, a.effectiveClock().TimeScale)
	if a.Screen != nil {
		a.Screen.Clock = a.effectiveClock()
		a.Screen.SlowMotion = a.SlowMotion
	}
	return a, nil
}

func (a *AppModel) effectiveClock() motion.Clock {
	c := a.Clock
	if a.SlowMotion {
		scale := c.TimeScale
		if scale <= 0 {
			scale = 1
		}
		c.TimeScale = scale * a.SlowFactor
	}
	return c
}
