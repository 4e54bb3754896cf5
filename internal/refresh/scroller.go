package refresh

// Scroller owns the header and footer attached to one Surface and
// forwards the surface's signals to them. The host calls OffsetChanged,
// ContentSizeChanged and GestureChanged as the surface changes, then
// drains Loop.
type Scroller struct {
	surface Surface
	header  *Header
	footer  *Footer
	loop    *Loop
	anim    Animator
}

// ScrollerOption configures a Scroller.
type ScrollerOption func(*Scroller)

// WithAnimator sets the animator attached controls run their transitions
// on. The default is Immediate.
func WithAnimator(a Animator) ScrollerOption {
	return func(sc *Scroller) {
		if a != nil {
			sc.anim = a
		}
	}
}

// WithLoop shares an existing task queue with the Scroller.
func WithLoop(l *Loop) ScrollerOption {
	return func(sc *Scroller) {
		if l != nil {
			sc.loop = l
		}
	}
}

// NewScroller binds a Scroller to surface.
func NewScroller(surface Surface, opts ...ScrollerOption) *Scroller {
	sc := &Scroller{
		surface: surface,
		loop:    &Loop{},
		anim:    Immediate{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(sc)
		}
	}
	return sc
}

// Surface returns the bound surface.
func (sc *Scroller) Surface() Surface { return sc.surface }

// Loop returns the task queue the host must drain after each event.
func (sc *Scroller) Loop() *Loop { return sc.loop }

// Header returns the attached header, or nil.
func (sc *Scroller) Header() *Header { return sc.header }

// Footer returns the attached footer, or nil.
func (sc *Scroller) Footer() *Footer { return sc.footer }

// SetHeader attaches h, detaching any previous header. A header attached
// to another Scroller moves here. Passing nil removes the header.
func (sc *Scroller) SetHeader(h *Header) {
	if h == sc.header {
		return
	}
	if sc.header != nil {
		sc.header.detach()
	}
	sc.header = h
	if h != nil {
		h.attach(sc)
	}
}

// SetFooter attaches f, detaching any previous footer. Passing nil removes
// the footer.
func (sc *Scroller) SetFooter(f *Footer) {
	if f == sc.footer {
		return
	}
	if sc.footer != nil {
		sc.footer.detach()
	}
	sc.footer = f
	if f != nil {
		f.attach(sc)
	}
}

// AttachHeader builds a header calling onRefresh and attaches it.
func (sc *Scroller) AttachHeader(onRefresh func(), opts ...Option) *Header {
	h := NewHeader(onRefresh, opts...)
	sc.SetHeader(h)
	return h
}

// AttachFooter builds a footer calling onRefresh and attaches it.
func (sc *Scroller) AttachFooter(onRefresh func(), opts ...Option) *Footer {
	f := NewFooter(onRefresh, opts...)
	sc.SetFooter(f)
	return f
}

// RemoveHeader detaches the header, if any.
func (sc *Scroller) RemoveHeader() { sc.SetHeader(nil) }

// RemoveFooter detaches the footer, if any.
func (sc *Scroller) RemoveFooter() { sc.SetFooter(nil) }

// OffsetChanged forwards a content offset change.
func (sc *Scroller) OffsetChanged(prev, cur Point) {
	for _, c := range sc.controls() {
		if c.observing() {
			c.offsetChanged(prev, cur)
		}
	}
}

// ContentSizeChanged forwards a content size change. Hidden and disabled
// controls still receive it.
func (sc *Scroller) ContentSizeChanged(prev, cur Size) {
	for _, c := range sc.controls() {
		if c.surface != nil {
			c.contentSizeChanged(prev, cur)
		}
	}
}

// GestureChanged forwards a drag gesture phase change.
func (sc *Scroller) GestureChanged(prev, cur GesturePhase) {
	for _, c := range sc.controls() {
		if c.observing() {
			c.gestureChanged(prev, cur)
		}
	}
}

// IsRefreshing reports whether either control is refreshing.
func (sc *Scroller) IsRefreshing() bool {
	return (sc.header != nil && sc.header.IsRefreshing()) ||
		(sc.footer != nil && sc.footer.IsRefreshing())
}

func (sc *Scroller) controls() []*control {
	out := make([]*control, 0, 2)
	if sc.header != nil {
		out = append(out, &sc.header.control)
	}
	if sc.footer != nil {
		out = append(out, &sc.footer.control)
	}
	return out
}

// release detaches c from sc because c is moving to another Scroller.
func (sc *Scroller) release(c *control) {
	switch {
	case sc.header != nil && &sc.header.control == c:
		sc.header.detach()
		sc.header = nil
	case sc.footer != nil && &sc.footer.control == c:
		sc.footer.detach()
		sc.footer = nil
	}
}
