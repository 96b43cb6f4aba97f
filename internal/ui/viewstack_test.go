package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type closingView struct {
	blockView
	closed *int
}

func (c closingView) Close() { *c.closed++ }

func TestViewStack_PopClosesCloser(t *testing.T) {
	var closed int
	var s ViewStack
	s.Push(blockView{1, 1, "g"})
	s.Push(closingView{blockView{1, 1, "s"}, &closed})

	s.Pop()
	if closed != 1 {
		t.Errorf("expected Close on pop, got %d calls", closed)
	}
	s.Pop()
	if s.Pop() != nil || s.Peek() != nil {
		t.Error("empty stack should return nil")
	}
	if closed != 1 {
		t.Errorf("non-closer pop should not close, got %d calls", closed)
	}
}

type sizeRecorder struct {
	width *int
}

func (r sizeRecorder) Init() tea.Cmd { return nil }
func (r sizeRecorder) Update(msg tea.Msg) (View, tea.Cmd) {
	if m, ok := msg.(tea.WindowSizeMsg); ok {
		*r.width = m.Width
	}
	return r, nil
}
func (r sizeRecorder) View() string { return "" }

func TestStacks_Broadcast(t *testing.T) {
	var below, above, overlay int
	var views ViewStack
	views.Push(sizeRecorder{&below})
	views.Push(sizeRecorder{&above})
	var overlays OverlayStack
	overlays.Push(Overlay{View: sizeRecorder{&overlay}, Dismiss: []string{"esc"}})

	msg := tea.WindowSizeMsg{Width: 77, Height: 10}
	views.Broadcast(msg)
	overlays.Broadcast(msg)
	if below != 77 || above != 77 || overlay != 77 {
		t.Errorf("broadcast missed a view: below=%d above=%d overlay=%d", below, above, overlay)
	}

	top, _ := overlays.Peek()
	if !top.IsDismissKey("esc") || top.IsDismissKey("q") {
		t.Error("unexpected dismiss keys")
	}
}
