package motion

import "time"

// Size is a width/height pair in design units (dp).
type Size struct {
	W, H float64
}

// SizeTransform animates the container between the sizes of the outgoing and
// incoming content. Specs returns one Spec per axis; nil uses DefaultSpring
// for both. Clip false lets sliding content draw outside the container.
type SizeTransform struct {
	Clip  bool
	Specs func(initial, target Size, expanding bool) (w, h Spec)
}

// ContentTransform pairs how new content enters with how old content exits.
type ContentTransform struct {
	Enter EnterExit
	Exit  EnterExit
	Size  *SizeTransform
}

// TransitionSpec picks a ContentTransform for a change from initial to target.
type TransitionSpec[T comparable] func(initial, target T) ContentTransform

// Content swaps between values of T, animating the outgoing value out and
// the incoming value in according to a TransitionSpec chosen per change.
type Content[T comparable] struct {
	initial   T
	target    T
	spec      TransitionSpec[T]
	transform ContentTransform
	enter     *Float // 0 -> 1
	exit      *Float // 1 -> 0

	measure func(T) Size
	width   *Float
	height  *Float
}

// NewContent returns settled Content showing v. measure may be nil when no
// SizeTransform is used.
func NewContent[T comparable](v T, spec TransitionSpec[T], measure func(T) Size) *Content[T] {
	c := &Content[T]{
		initial: v,
		target:  v,
		spec:    spec,
		enter:   NewFloat(1),
		exit:    NewFloat(0),
		measure: measure,
	}
	if measure != nil {
		sz := measure(v)
		c.width = NewFloat(sz.W)
		c.height = NewFloat(sz.H)
	}
	return c
}

// Initial returns the outgoing value (equal to Target when settled).
func (c *Content[T]) Initial() T { return c.initial }

// Target returns the incoming value.
func (c *Content[T]) Target() T { return c.target }

// SetTarget starts a change to v. Changing to the current target is a no-op.
// A change during an in-flight change replaces the incoming value; the value
// that was incoming becomes the outgoing one and fades out from where it got
// to. Going back to the outgoing value picks it up at its current progress.
func (c *Content[T]) SetTarget(v T) {
	if v == c.target {
		return
	}
	outgoing, incoming := c.enter.Value(), 0.0
	if v == c.initial && c.initial != c.target {
		incoming = c.exit.Value()
	}
	c.initial = c.target
	c.target = v
	if c.spec != nil {
		c.transform = c.spec(c.initial, c.target)
	} else {
		c.transform = ContentTransform{
			Enter: FadeInOut(nil),
			Exit:  FadeInOut(nil),
		}
	}
	c.enter.SnapTo(incoming)
	c.enter.AnimateTo(1, c.transform.Enter.spec())
	c.exit.SnapTo(outgoing)
	c.exit.AnimateTo(0, c.transform.Exit.spec())

	if c.measure != nil {
		from := c.Size()
		to := c.measure(v)
		var ws, hs Spec
		if st := c.transform.Size; st != nil && st.Specs != nil {
			ws, hs = st.Specs(from, to, to.W*to.H >= from.W*from.H)
		}
		c.width.AnimateTo(to.W, ws)
		c.height.AnimateTo(to.H, hs)
	}
}

// IsRunning reports whether a change is in flight.
func (c *Content[T]) IsRunning() bool {
	running := c.enter.IsRunning() || c.exit.IsRunning()
	if c.measure != nil {
		running = running || c.width.IsRunning() || c.height.IsRunning()
	}
	return running
}

// Step advances the change.
func (c *Content[T]) Step(dt time.Duration) bool {
	steppers := []Stepper{c.enter, c.exit}
	if c.measure != nil {
		steppers = append(steppers, c.width, c.height)
	}
	StepAll(dt, steppers...)
	if !c.IsRunning() {
		c.initial = c.target
	}
	return c.IsRunning()
}

// Size returns the current container size. Without a measure func it is zero.
func (c *Content[T]) Size() Size {
	if c.measure == nil {
		return Size{}
	}
	return Size{W: c.width.Value(), H: c.height.Value()}
}

// Clip reports whether content should be clipped to Size.
func (c *Content[T]) Clip() bool {
	if c.transform.Size == nil {
		return true
	}
	return c.transform.Size.Clip
}

// Layer is one value to draw with its appearance.
type Layer[T comparable] struct {
	Value      T
	Appearance Appearance
	Incoming   bool
}

// Layers returns what to draw, outgoing first. When settled there is a
// single fully shown layer.
func (c *Content[T]) Layers() []Layer[T] {
	if !c.IsRunning() || c.initial == c.target {
		return []Layer[T]{{Value: c.target, Appearance: Identity, Incoming: true}}
	}
	// Exit progress runs 1 -> 0, so SlideOffset is where outgoing content ends up.
	return []Layer[T]{
		{Value: c.initial, Appearance: c.transform.Exit.At(c.exit.Value())},
		{Value: c.target, Appearance: c.transform.Enter.At(c.enter.Value()), Incoming: true},
	}
}

// NewCrossfade returns Content that fades the outgoing value out while the
// incoming fades in over spec (a zero Tween means 300ms).
func NewCrossfade[T comparable](v T, spec Tween) *Content[T] {
	return NewContent(v, func(T, T) ContentTransform {
		return ContentTransform{Enter: FadeInOut(spec), Exit: FadeInOut(spec)}
	}, nil)
}

// SlideDirection returns the vertical slide pair for a numeric change: an
// increase slides everything up (incoming from below), a decrease slides
// everything down (incoming from above). Offsets are fractions of height.
func SlideDirection(initial, target int) (enterOffset, exitOffset float64) {
	if target > initial {
		return 1, -1
	}
	return -1, 1
}
