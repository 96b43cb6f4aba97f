package ui

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"animplay/internal/demo"
	"animplay/internal/motion"
	"animplay/internal/telemetry"
)

// DefaultSlowFactor is how much SPC s slows the clock on top of the
// configured time scale.
const DefaultSlowFactor = 4.0

// Options configures NewAppModel.
type Options struct {
	Catalog *demo.Catalog
	Tracer  *telemetry.Tracer // nil disables tracing
	Clock   motion.Clock
	// InitialScreen is opened at startup when set; otherwise the gallery shows.
	InitialScreen string
	// SlowFactor multiplies the time scale while slow motion is on.
	SlowFactor float64
}

// AppModel is the root model. The gallery sits at the bottom of Views and
// an open screen is pushed on top of it; Overlays (help) receive input first.
type AppModel struct {
	Mode       AppMode
	Views      ViewStack
	Overlays   OverlayStack
	KeyHandler *KeyHandler
	Gallery    *GalleryView
	Screen     *ScreenView

	Catalog    *demo.Catalog
	Tracer     *telemetry.Tracer
	Clock      motion.Clock
	SlowMotion bool
	SlowFactor float64

	// Err is the last user-facing error (e.g. an unknown screen name).
	// Cleared by the next key press.
	Err error

	initialScreen string
	width, height int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	if opts.SlowFactor <= 0 {
		opts.SlowFactor = DefaultSlowFactor
	}
	a := &AppModel{
		Mode:          ModeGallery,
		KeyHandler:    NewKeyHandler(defaultKeybinds()),
		Gallery:       NewGalleryView(opts.Catalog.Entries()),
		Catalog:       opts.Catalog,
		Tracer:        opts.Tracer,
		Clock:         opts.Clock,
		SlowFactor:    opts.SlowFactor,
		initialScreen: opts.InitialScreen,
	}
	a.Views.Push(a.Gallery)
	return a
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	if a.initialScreen != "" {
		name := a.initialScreen
		a.initialScreen = ""
		_, cmd := a.handleOpenScreen(name)
		return cmd
	}
	return a.currentView().Init()
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return a.handleWindowSize(msg)
	case OpenScreenMsg:
		return a.handleOpenScreen(msg.Name)
	case CloseScreenMsg:
		return a.handleCloseScreen()
	case RestartScreenMsg:
		return a.handleRestartScreen()
	case ToggleSlowMotionMsg:
		return a.handleToggleSlowMotion()
	case ShowHelpMsg:
		if a.Overlays.Len() == 0 {
			h := NewHelpView(a.KeyHandler.Registry, a.Mode)
			h.Update(tea.WindowSizeMsg{Width: a.width, Height: a.height})
			a.Overlays.Push(Overlay{View: h, Dismiss: []string{"esc", "?"}})
		}
		return a, nil
	case DismissOverlayMsg:
		a.Overlays.Pop()
		return a, nil
	case FrameMsg:
		// Frames keep flowing under overlays so animations finish.
		if a.Screen == nil {
			return a, nil
		}
		_, cmd := a.Screen.Update(msg)
		return a, cmd
	case tea.KeyMsg:
		a.Err = nil
		if top, ok := a.Overlays.Peek(); ok {
			if top.IsDismissKey(msg.String()) {
				a.Overlays.Pop()
				return a, nil
			}
			cmd, _ := a.Overlays.UpdateTop(msg)
			return a, cmd
		}
		// Keybind system (leader key, SPC-prefixed commands)
		if a.KeyHandler != nil {
			if consumed, keyCmd := a.KeyHandler.Handle(msg); consumed {
				return a, keyCmd
			}
		}
		// App-level navigation
		if a.Mode == ModeScreen && msg.String() == "esc" {
			return a.handleCloseScreen()
		}
		if a.Mode == ModeGallery && msg.String() == "enter" {
			if name := a.Gallery.SelectedName(); name != "" {
				return a, openScreenCmd(name)
			}
			return a, nil
		}
	case tea.MouseMsg:
		if a.Overlays.Len() > 0 {
			return a, nil
		}
	}

	v, cmd := a.currentView().Update(msg)
	a.setCurrentView(v)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	base := a.currentView().View()
	if a.Err != nil {
		base += "\n" + Styles.Error.Render(a.Err.Error())
	}
	if top, ok := a.Overlays.Peek(); ok {
		if a.width > 0 && a.height > 0 {
			return lipgloss.Place(a.width, a.height, lipgloss.Center, lipgloss.Center, top.View.View())
		}
		return base + "\n" + top.View.View()
	}
	if a.KeyHandler != nil && a.KeyHandler.LeaderWaiting {
		base += "\n" + RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return base
}

func (a *appModelAdapter) currentView() View {
	if v := a.Views.Peek(); v != nil {
		return v
	}
	return a.Gallery
}

func (a *appModelAdapter) setCurrentView(v View) {
	a.Views.Replace(v)
}

// Shutdown closes the open screen so its trace span ends. Call after the
// program exits.
func (m *AppModel) Shutdown() {
	if m.Screen != nil {
		m.Views.Pop()
		m.Screen = nil
	}
	log.Printf("ui.AppModel: shutdown")
}
