package demo

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"

	"animplay/internal/render"
)

// ErrUnknownScreen is returned (wrapped) when a screen name cannot be resolved.
var ErrUnknownScreen = errors.New("unknown screen")

// DefaultScreen is opened when no screen is named.
const DefaultScreen = "crossfade"

// Screen is an ordered set of demos shown together.
type Screen struct {
	Name  string
	Title string
	Demos []Demo
}

// Step advances every demo and reports whether any still animates.
func (s *Screen) Step(dt time.Duration) bool {
	running := false
	for _, d := range s.Demos {
		d.Step(dt)
		if d.Animating() {
			running = true
		}
	}
	return running
}

// Animating reports whether any demo needs frames.
func (s *Screen) Animating() bool {
	for _, d := range s.Demos {
		if d.Animating() {
			return true
		}
	}
	return false
}

// Entry describes a screen without building it.
type Entry struct {
	Name  string
	Title string
	Demos []string
}

type factory func(render.Units) Demo

type screenDef struct {
	name  string
	title string
	demos []string
}

var factories = map[string]factory{
	"spacer-box":       func(u render.Units) Demo { return NewSpacerBox(u) },
	"visibility-state": func(u render.Units) Demo { return NewVisibilityState(u) },
	"enter-exit":       func(u render.Units) Demo { return NewEnterExit(u) },
	"alpha":            func(u render.Units) Demo { return NewAlpha(u) },
	"counter":          func(u render.Units) Demo { return NewCounter(u) },
	"size-transform":   func(u render.Units) Demo { return NewSizeTransform(u) },
	"crossfade":        func(u render.Units) Demo { return NewCrossfade(u) },
	"color-size":       func(u render.Units) Demo { return NewColorSize(u) },
	"transition":       func(u render.Units) Demo { return NewTransitionBox(u) },
	"visibility":       func(u render.Units) Demo { return NewVisibility(u) },
	"spin":             func(u render.Units) Demo { return NewSpin(u) },
	"keyframes":        func(u render.Units) Demo { return NewKeyframes(u) },
}

// Demo names in the order single-demo screens are listed.
var demoOrder = []string{
	"spacer-box",
	"visibility-state",
	"enter-exit",
	"alpha",
	"counter",
	"size-transform",
	"color-size",
	"transition",
	"visibility",
	"spin",
	"keyframes",
}

// Catalog resolves screen names and builds fresh screens.
type Catalog struct {
	units render.Units
	defs  []screenDef
}

// NewCatalog returns the built-in catalog. Demos draw with units.
func NewCatalog(units render.Units) *Catalog {
	c := &Catalog{units: units.Normalize()}
	c.defs = append(c.defs,
		screenDef{name: "crossfade", title: "Crossfade", demos: []string{"crossfade"}},
		screenDef{name: "example-app", title: "Animation examples", demos: []string{
			"color-size", "transition", "visibility", "spin", "keyframes",
		}},
	)
	for _, name := range demoOrder {
		d := factories[name](c.units)
		c.defs = append(c.defs, screenDef{name: name, title: d.Title(), demos: []string{name}})
	}
	return c
}

// Entries lists every screen in display order.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, len(c.defs))
	for i, def := range c.defs {
		out[i] = Entry{Name: def.name, Title: def.title, Demos: append([]string(nil), def.demos...)}
	}
	return out
}

// Names lists every screen name in display order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.defs))
	for i, def := range c.defs {
		out[i] = def.name
	}
	return out
}

// Resolve maps name to a screen name: an exact match first, then a unique
// prefix. Anything else is ErrUnknownScreen, with the closest name suggested.
func (c *Catalog) Resolve(name string) (string, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return DefaultScreen, nil
	}
	var prefixed []string
	for _, def := range c.defs {
		if def.name == name {
			return name, nil
		}
		if strings.HasPrefix(def.name, name) {
			prefixed = append(prefixed, def.name)
		}
	}
	switch len(prefixed) {
	case 1:
		return prefixed[0], nil
	case 0:
		return "", fmt.Errorf("%w %q (did you mean %q?)", ErrUnknownScreen, name, c.Suggest(name))
	default:
		sort.Strings(prefixed)
		return "", fmt.Errorf("%w %q: ambiguous, matches %s", ErrUnknownScreen, name, strings.Join(prefixed, ", "))
	}
}

// Suggest returns the screen name closest to name by edit distance.
func (c *Catalog) Suggest(name string) string {
	best, bestDist := "", -1
	for _, def := range c.defs {
		d := levenshtein.ComputeDistance(name, def.name)
		if bestDist < 0 || d < bestDist {
			best, bestDist = def.name, d
		}
	}
	return best
}

// Open builds a fresh screen. Every call returns new demo state.
func (c *Catalog) Open(name string) (*Screen, error) {
	resolved, err := c.Resolve(name)
	if err != nil {
		return nil, err
	}
	for _, def := range c.defs {
		if def.name != resolved {
			continue
		}
		s := &Screen{Name: def.name, Title: def.title}
		for _, dn := range def.demos {
			s.Demos = append(s.Demos, factories[dn](c.units))
		}
		return s, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownScreen, name)
}
