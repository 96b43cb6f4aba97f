package ui

import tea "github.com/charmbracelet/bubbletea"

// View is the unit of composition; implements Bubble Tea's Init/Update/View.
// The gallery, an open screen, each demo panel and the help overlay are Views.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// Closer is implemented by views that hold resources past their last
// frame (a running frame loop, an open trace span). The view stack closes
// them when they are popped.
type Closer interface {
	Close()
}
