package ui

// AppMode represents the top-level application mode: browsing the gallery or
// playing with one screen.
type AppMode int

const (
	ModeGallery AppMode = iota
	ModeScreen
)

func (m AppMode) String() string {
	switch m {
	case ModeGallery:
		return "Gallery"
	case ModeScreen:
		return "Screen"
	default:
		return "Unknown"
	}
}
