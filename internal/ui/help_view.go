package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Keys the gallery and screen views handle themselves. Shown in the help
// overlay next to the registry bindings.
var (
	galleryKeys = []key.Binding{
		key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "next screen")),
		key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "previous screen")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open screen")),
	}
	screenKeys = []key.Binding{
		key.NewBinding(key.WithKeys("tab", "j"), key.WithHelp("tab/j", "focus next")),
		key.NewBinding(key.WithKeys("shift+tab", "k"), key.WithHelp("S-tab/k", "focus previous")),
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1-9", "focus demo N")),
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter/click", "tap")),
		key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "increment")),
		key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "decrement")),
		key.NewBinding(key.WithKeys("pgup", "pgdown"), key.WithHelp("pgup/pgdn", "scroll")),
		key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to gallery")),
	}
)

// HelpView is the overlay listing every key available in a mode.
type HelpView struct {
	keys  *KeyMap
	help  help.Model
	title string
}

// Ensure HelpView implements View.
var _ View = (*HelpView)(nil)

// NewHelpView builds the help overlay for mode.
func NewHelpView(reg *KeybindRegistry, mode AppMode) *HelpView {
	extra := galleryKeys
	if mode == ModeScreen {
		extra = screenKeys
	}
	m := newHelpModel()
	m.ShowAll = true
	return &HelpView{
		keys:  NewKeyMap(reg, mode, extra...),
		help:  m,
		title: "Keys: " + mode.String(),
	}
}

// Init implements View.
func (h *HelpView) Init() tea.Cmd {
	return nil
}

// Update implements View. Esc and ? are the overlay's dismiss keys; q
// closes it too instead of quitting.
func (h *HelpView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h.help.Width = msg.Width
	case tea.KeyMsg:
		if msg.String() == "q" {
			return h, func() tea.Msg { return DismissOverlayMsg{} }
		}
	}
	return h, nil
}

// View implements View.
func (h *HelpView) View() string {
	body := lipgloss.JoinVertical(lipgloss.Left,
		Styles.Title.Render(h.title),
		"",
		h.help.View(h.keys),
		"",
		Styles.Hint.Render("esc or ? to close"),
	)
	return Styles.Box.Render(body)
}
