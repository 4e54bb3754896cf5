package refresh

// Footer is the load-more control placed below the content.
type Footer struct {
	control
}

// NewFooter returns a detached footer that calls onRefresh each time it
// enters the refreshing state.
func NewFooter(onRefresh func(), opts ...Option) *Footer {
	return &Footer{control: newControl(RoleFooter, DefaultFooterHeight, onRefresh, opts)}
}

// IsRefreshing reports whether a load is running.
func (f *Footer) IsRefreshing() bool {
	return f.state == StateRefreshing
}

// EndRefreshing returns the footer to idle. completion runs on the loop.
func (f *Footer) EndRefreshing(completion func()) {
	if f.surface == nil {
		return
	}
	f.onEnd = completion
	f.setState(StateIdle)
}

// EndRefreshingWithNoMoreData parks the footer in the terminal
// no-more-data state. No trigger fires until ResetNoMoreData.
func (f *Footer) EndRefreshingWithNoMoreData() {
	if f.surface == nil {
		return
	}
	f.setState(StateNoMoreData)
}

// ResetNoMoreData returns the footer to idle so triggers fire again.
func (f *Footer) ResetNoMoreData() {
	if f.surface == nil {
		return
	}
	f.setState(StateIdle)
}

// AutomaticallyRefresh reports whether scrolling near the end loads more.
func (f *Footer) AutomaticallyRefresh() bool { return f.autoRefresh }

// SetAutomaticallyRefresh toggles the offset-driven trigger.
func (f *Footer) SetAutomaticallyRefresh(v bool) { f.autoRefresh = v }

// TriggerAutomaticallyRefreshPercent returns the fraction of the footer
// that must be revealed before an automatic load starts.
func (f *Footer) TriggerAutomaticallyRefreshPercent() float64 { return f.triggerPercent }

// SetTriggerAutomaticallyRefreshPercent sets the automatic trigger fraction.
func (f *Footer) SetTriggerAutomaticallyRefreshPercent(p float64) { f.triggerPercent = p }

// Tap begins a load when the footer is idle, as when its label is tapped.
func (f *Footer) Tap() {
	if f.state != StateIdle {
		return
	}
	f.BeginRefreshing(nil)
}

// SetHidden hides or shows the footer. Each edge moves the surface's
// bottom inset by the footer height exactly once; hiding also resets the
// state to idle.
func (f *Footer) SetHidden(hidden bool) {
	last := f.hidden
	f.hidden = hidden
	switch {
	case !last && hidden:
		if f.surface != nil {
			f.setState(StateIdle)
		}
		f.adjustBottomInset(-f.height)
	case last && !hidden:
		f.adjustBottomInset(f.height)
		if f.surface != nil {
			f.y = f.surface.ContentSize().H
		}
	}
}

// UnmarshalJSON always fails with ErrNotSerializable.
func (f *Footer) UnmarshalJSON([]byte) error { return ErrNotSerializable }

// UnmarshalText always fails with ErrNotSerializable.
func (f *Footer) UnmarshalText([]byte) error { return ErrNotSerializable }

// GobDecode always fails with ErrNotSerializable.
func (f *Footer) GobDecode([]byte) error { return ErrNotSerializable }

func (c *control) footerOffsetChanged(prev, cur Point) {
	s := c.surface
	if c.state != StateIdle || !c.autoRefresh || c.y == 0 || s == nil {
		return
	}
	inset := s.ContentInset()
	content := s.ContentSize()
	size := s.Size()
	if inset.Top+content.H <= size.H {
		return
	}
	if cur.Y < content.H-size.H+c.height*c.triggerPercent+inset.Bottom-c.height {
		return
	}
	// Only while moving toward the end; a release bounce moves back.
	if !(cur.Y > prev.Y) {
		return
	}
	c.BeginRefreshing(nil)
}

func (c *control) footerGestureChanged(phase GesturePhase) {
	s := c.surface
	if c.state != StateIdle || s == nil || phase != GestureEnded {
		return
	}
	inset := s.ContentInset()
	content := s.ContentSize()
	size := s.Size()
	offsetY := s.ContentOffset().Y

	if inset.Top+content.H <= size.H {
		if offsetY >= -inset.Top {
			c.BeginRefreshing(nil)
		}
		return
	}
	if offsetY >= content.H+inset.Bottom-size.H {
		c.BeginRefreshing(nil)
	}
}
