package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"animplay/internal/demo"
)

// screenItem implements list.Item for a catalog entry.
type screenItem struct {
	demo.Entry
}

func (s screenItem) FilterValue() string { return s.Name }
func (s screenItem) Title() string       { return s.Entry.Title }
func (s screenItem) Description() string {
	if len(s.Demos) == 1 {
		return s.Name
	}
	return fmt.Sprintf("%s  %d demos: %s", s.Name, len(s.Demos), strings.Join(s.Demos, ", "))
}

// GalleryView lists every screen in the catalog.
type GalleryView struct {
	list    list.Model
	Entries []demo.Entry
}

// Ensure GalleryView implements View.
var _ View = (*GalleryView)(nil)

// NewGalleryView creates a gallery over entries, selecting the first.
func NewGalleryView(entries []demo.Entry) *GalleryView {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = screenItem{Entry: e}
	}
	l := list.New(items, NewCompactListDelegate(), 0, 0)
	l.Title = "Screens"
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	return &GalleryView{list: l, Entries: entries}
}

// Selected returns the index of the highlighted screen.
func (g *GalleryView) Selected() int {
	return g.list.Index()
}

// SelectedName returns the highlighted screen's name, or "" when empty.
func (g *GalleryView) SelectedName() string {
	if len(g.Entries) == 0 {
		return ""
	}
	return g.Entries[g.list.Index()].Name
}

// Select highlights the screen called name. Returns false if absent.
func (g *GalleryView) Select(name string) bool {
	for i, e := range g.Entries {
		if e.Name == name {
			g.list.Select(i)
			return true
		}
	}
	return false
}

// Init implements View.
func (g *GalleryView) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (g *GalleryView) Update(msg tea.Msg) (View, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		g.list.SetWidth(msg.Width)
		g.list.SetHeight(msg.Height - 3) // Reserve space for header and hint
		return g, nil
	}
	// list.Model handles j/k/g/G navigation natively. Enter is handled by
	// app.go at the application level.
	var cmd tea.Cmd
	g.list, cmd = g.list.Update(msg)
	return g, cmd
}

// View implements View.
func (g *GalleryView) View() string {
	// Set default dimensions if not set (for tests)
	if g.list.Width() == 0 {
		g.list.SetWidth(80)
	}
	if g.list.Height() == 0 {
		g.list.SetHeight(2 * len(g.Entries))
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("animplay: %d screens", len(g.Entries))) + "\n")
	b.WriteString(Styles.Hint.Render("j/k select · enter open · ? help · [SPC] commands") + "\n\n")
	b.WriteString(g.list.View())
	return b.String()
}
