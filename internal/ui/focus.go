package ui

// FocusManager tracks and rotates focus across the demo panels of a screen.
type FocusManager struct {
	Current  string   // ID of the currently focused panel
	Order    []string // Tab order for focus rotation
	OnChange func(from, to string)
}

// NewFocusManager focuses the first ID in order.
func NewFocusManager(order []string) *FocusManager {
	f := &FocusManager{Order: order}
	if len(order) > 0 {
		f.Current = order[0]
	}
	return f
}

// Index returns the position of the focused panel in Order, or -1.
func (f *FocusManager) Index() int {
	for i, id := range f.Order {
		if id == f.Current {
			return i
		}
	}
	return -1
}

// Next advances focus to the next panel in order, wrapping at the end.
// Returns the new current focus ID.
func (f *FocusManager) Next() string {
	if len(f.Order) == 0 {
		return ""
	}
	return f.moveTo((f.Index() + 1) % len(f.Order))
}

// Prev moves focus to the previous panel in order, wrapping at the start.
func (f *FocusManager) Prev() string {
	if len(f.Order) == 0 {
		return ""
	}
	idx := f.Index() - 1
	if idx < 0 {
		idx = len(f.Order) - 1
	}
	return f.moveTo(idx)
}

// SetFocus sets focus to the given panel ID.
// Returns true if the ID exists in order.
func (f *FocusManager) SetFocus(id string) bool {
	for i, o := range f.Order {
		if o == id {
			f.moveTo(i)
			return true
		}
	}
	return false
}

func (f *FocusManager) moveTo(idx int) string {
	from := f.Current
	f.Current = f.Order[idx]
	if f.OnChange != nil && from != f.Current {
		f.OnChange(from, f.Current)
	}
	return f.Current
}
