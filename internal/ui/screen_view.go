package ui

import (
	"context"
	"fmt"
	"log"
	"strings"
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"animplay/internal/demo"
	"animplay/internal/motion"
	"animplay/internal/telemetry"
	"animplay/internal/ui/textutil"
)

// ScreenView hosts one screen of demos. It owns the frame loop: frames are
// scheduled only while some demo animates, and at most one tick is in
// flight at a time.
type ScreenView struct {
	Screen     *demo.Screen
	Focus      *FocusManager
	Layout     *FlowLayout
	Clock      motion.Clock
	SlowMotion bool
	Tracer     *telemetry.Tracer
	ID         string // screen instance ID, used in traces
	Taps       int

	panels    map[string]*DemoPanel
	gen       int
	ticking   bool
	lastFrame time.Time
	now       func() time.Time

	width, height int
	yOffset       int
	bodyTop       int // first terminal row of the panel area in the last View
}

// Ensure ScreenView implements View.
var _ View = (*ScreenView)(nil)

// frameGen numbers frame loops across every ScreenView, so a tick scheduled
// by a closed or rebuilt screen never matches the loop of its successor.
var frameGen atomic.Int64

func nextFrameGen() int {
	return int(frameGen.Add(1))
}

// NewScreenView wraps s. tracer may be nil.
func NewScreenView(s *demo.Screen, clock motion.Clock, tracer *telemetry.Tracer) *ScreenView {
	ids := make([]string, len(s.Demos))
	views := make([]View, len(s.Demos))
	panels := make(map[string]*DemoPanel, len(s.Demos))
	for i, d := range s.Demos {
		p := &DemoPanel{Demo: d}
		ids[i] = d.Name()
		views[i] = p
		panels[d.Name()] = p
	}
	v := &ScreenView{
		Screen: s,
		Focus:  NewFocusManager(ids),
		Layout: NewFlowLayout(ids, views),
		Clock:  clock,
		Tracer: tracer,
		panels: panels,
		now:    time.Now,
	}
	v.ID = tracer.ScreenOpened(context.Background(), s.Name, len(s.Demos))
	log.Printf("ui.ScreenView: opened %s (%s)", s.Name, v.ID)
	return v
}

// Init implements View. Screens that animate on their own (a spinner, a
// greeting that fades in on open) start the frame loop immediately.
func (v *ScreenView) Init() tea.Cmd {
	if v.Screen.Animating() {
		return v.startFrames()
	}
	return nil
}

// Focused returns the demo with focus.
func (v *ScreenView) Focused() demo.Demo {
	if p, ok := v.panels[v.Focus.Current]; ok {
		return p.Demo
	}
	return nil
}

// Ticking reports whether a frame is scheduled.
func (v *ScreenView) Ticking() bool {
	return v.ticking
}

// Close stops the frame loop and ends the screen's trace span.
func (v *ScreenView) Close() {
	v.gen = nextFrameGen()
	v.ticking = false
	v.Tracer.ScreenClosed(v.ID, v.Taps)
	log.Printf("ui.ScreenView: closed %s after %d taps", v.Screen.Name, v.Taps)
}

func (v *ScreenView) startFrames() tea.Cmd {
	if v.ticking {
		return nil
	}
	v.ticking = true
	v.gen = nextFrameGen()
	v.lastFrame = v.now()
	return v.tick()
}

func (v *ScreenView) tick() tea.Cmd {
	gen := v.gen
	return tea.Tick(v.Clock.Interval(), func(t time.Time) tea.Msg {
		return FrameMsg{Gen: gen, At: t}
	})
}

// Update implements View.
func (v *ScreenView) Update(msg tea.Msg) (View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.width, v.height = msg.Width, msg.Height
		return v, nil
	case FrameMsg:
		return v, v.frame(msg)
	case tea.KeyMsg:
		return v, v.handleKey(msg.String())
	case tea.MouseMsg:
		return v, v.handleMouse(msg)
	}
	return v, nil
}

func (v *ScreenView) frame(msg FrameMsg) tea.Cmd {
	if !v.ticking || msg.Gen != v.gen {
		return nil
	}
	dt := v.Clock.Advance(msg.At.Sub(v.lastFrame))
	v.lastFrame = msg.At
	if v.Screen.Step(dt) {
		return v.tick()
	}
	v.ticking = false
	return nil
}

func (v *ScreenView) handleKey(s string) tea.Cmd {
	switch s {
	case "tab", "j", "down", "l", "right":
		v.Focus.Next()
	case "shift+tab", "k", "up", "h", "left":
		v.Focus.Prev()
	case "enter":
		return v.Tap(demo.Primary)
	case "+", "=":
		return v.Tap(demo.Increment)
	case "-", "_":
		return v.Tap(demo.Decrement)
	case "pgdown":
		v.yOffset += max(v.viewportHeight()/2, 1)
	case "pgup":
		v.yOffset = max(v.yOffset-max(v.viewportHeight()/2, 1), 0)
	default:
		if len(s) == 1 && s[0] >= '1' && s[0] <= '9' {
			if idx := int(s[0] - '1'); idx < len(v.Focus.Order) {
				v.Focus.SetFocus(v.Focus.Order[idx])
			}
		}
	}
	return nil
}

func (v *ScreenView) handleMouse(msg tea.MouseMsg) tea.Cmd {
	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		v.yOffset += 2
	case msg.Button == tea.MouseButtonWheelUp:
		v.yOffset = max(v.yOffset-2, 0)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		id := v.Layout.HitTest(msg.X, msg.Y-v.bodyTop+v.yOffset)
		if id == "" {
			return nil
		}
		v.Focus.SetFocus(id)
		return v.Tap(demo.Primary)
	}
	return nil
}

// Tap delivers a to the focused demo and starts frames if it began animating.
func (v *ScreenView) Tap(a demo.Action) tea.Cmd {
	d := v.Focused()
	if d == nil {
		return nil
	}
	handled := d.Tap(a)
	v.Taps++
	v.Tracer.RecordTap(context.Background(), v.ID, telemetry.Tap{
		Demo:    d.Name(),
		Action:  a.String(),
		Handled: handled,
		Status:  d.Status(),
	})
	if !handled {
		return nil
	}
	log.Printf("ui.ScreenView: tap %s %s -> %s", d.Name(), a, d.Status())
	if d.Animating() {
		return v.startFrames()
	}
	return nil
}

func (v *ScreenView) viewportHeight() int {
	if v.height <= 0 {
		return 0
	}
	return max(v.height-v.bodyTop-1, 1)
}

// View implements View.
func (v *ScreenView) View() string {
	var b strings.Builder
	title := Styles.Title.Render(v.Screen.Title)
	if v.SlowMotion {
		title += " " + Styles.Badge.Render(fmt.Sprintf("slow ×%g", v.Clock.TimeScale))
	}
	b.WriteString(title + "\n")
	hint := "tab focus · enter tap · +/- count · esc gallery · SPC commands · ? help"
	if v.width > 0 {
		hint = textutil.Truncate(hint, v.width)
	}
	b.WriteString(Styles.Hint.Render(hint) + "\n\n")
	v.bodyTop = 3

	for id, p := range v.panels {
		p.Focused = id == v.Focus.Current
		p.MaxWidth = v.width
	}
	body := strings.Split(v.Layout.Render(v.width), "\n")

	if h := v.viewportHeight(); h > 0 && len(body) > h {
		v.scrollToFocus(h)
		v.yOffset = min(v.yOffset, len(body)-h)
		body = body[v.yOffset : v.yOffset+h]
	} else {
		v.yOffset = 0
	}
	b.WriteString(lipgloss.JoinVertical(lipgloss.Left, body...))
	return b.String()
}

// scrollToFocus moves the viewport the least amount that shows the focused
// panel's top edge and as much of it as fits.
func (v *ScreenView) scrollToFocus(height int) {
	r, ok := v.Layout.Bounds(v.Focus.Current)
	if !ok {
		return
	}
	if r.Y+r.H > v.yOffset+height {
		v.yOffset = r.Y + r.H - height
	}
	if r.Y < v.yOffset {
		v.yOffset = r.Y
	}
}
