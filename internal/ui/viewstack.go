package ui

import tea "github.com/charmbracelet/bubbletea"

// ViewStack manages a stack of views for navigation (push/pop). The gallery
// is the bottom entry; an open screen sits above it.
type ViewStack struct {
	Stack []View
}

// Push adds a view to the top of the stack.
func (s *ViewStack) Push(v View) {
	s.Stack = append(s.Stack, v)
}

// Pop removes and returns the top view, closing it if it is a Closer.
// Returns nil if the stack is empty.
func (s *ViewStack) Pop() View {
	if len(s.Stack) == 0 {
		return nil
	}
	top := s.Stack[len(s.Stack)-1]
	s.Stack = s.Stack[:len(s.Stack)-1]
	if c, ok := top.(Closer); ok {
		c.Close()
	}
	return top
}

// Peek returns the top view without removing it.
func (s *ViewStack) Peek() View {
	if len(s.Stack) == 0 {
		return nil
	}
	return s.Stack[len(s.Stack)-1]
}

// Replace swaps the top view for v, as returned from its Update.
func (s *ViewStack) Replace(v View) {
	if len(s.Stack) == 0 || v == nil {
		return
	}
	s.Stack[len(s.Stack)-1] = v
}

// Broadcast sends msg to every view, bottom first, so views under the top
// stay in sync (e.g. window size). Commands are batched.
func (s *ViewStack) Broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(s.Stack))
	for i, v := range s.Stack {
		var cmd tea.Cmd
		s.Stack[i], cmd = v.Update(msg)
		cmds = append(cmds, cmd)
	}
	return tea.Batch(cmds...)
}

// Len returns the number of views in the stack.
func (s *ViewStack) Len() int {
	return len(s.Stack)
}
