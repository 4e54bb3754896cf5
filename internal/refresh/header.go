package refresh

import "math"

// Header is the pull-down-to-refresh control shown above the content.
type Header struct {
	control
}

// NewHeader returns a detached header that calls onRefresh each time it
// enters the refreshing state.
func NewHeader(onRefresh func(), opts ...Option) *Header {
	return &Header{control: newControl(RoleHeader, DefaultHeaderHeight, onRefresh, opts)}
}

// IsRefreshing reports whether a refresh is running or about to run.
func (h *Header) IsRefreshing() bool {
	return h.state == StateRefreshing || h.state == StateWillRefresh
}

// EndRefreshing schedules the return to idle on the loop so a caller inside
// a gesture or refresh callback never re-enters layout. completion runs
// once the top inset has been restored. A later BeginRefreshing issued
// before the loop drains wins.
func (h *Header) EndRefreshing(completion func()) {
	if h.surface == nil {
		return
	}
	h.onEnd = completion
	h.intent++
	intent := h.intent
	h.post(func() {
		if h.intent != intent {
			return
		}
		h.setState(StateIdle)
	})
}

// UnmarshalJSON always fails with ErrNotSerializable.
func (h *Header) UnmarshalJSON([]byte) error { return ErrNotSerializable }

// UnmarshalText always fails with ErrNotSerializable.
func (h *Header) UnmarshalText([]byte) error { return ErrNotSerializable }

// GobDecode always fails with ErrNotSerializable.
func (h *Header) GobDecode([]byte) error { return ErrNotSerializable }

func (c *control) headerOffsetChanged(cur Point) {
	s := c.surface
	if s == nil {
		return
	}

	if c.state == StateRefreshing {
		if !s.InWindow() {
			return
		}
		// Keep sticky section headers from sliding under the control.
		top := math.Max(-cur.Y, c.originalInset.Top)
		top = math.Min(top, c.height+c.originalInset.Top)
		c.setTopInset(top)
		return
	}

	// The host may have changed the inset, e.g. during a navigation push.
	// A running restore still owns the top inset, so its value is not the
	// host's until the animation lands.
	if !c.restoring {
		c.originalInset = s.ContentInset()
	}

	happenOffsetY := -c.originalInset.Top
	if cur.Y > happenOffsetY {
		return
	}

	normalToPullingOffsetY := happenOffsetY - c.height
	percent := (happenOffsetY - cur.Y) / c.height

	switch {
	case s.IsDragging():
		c.percent = percent
		if c.state == StateIdle && cur.Y < normalToPullingOffsetY {
			c.setState(StatePulling)
		} else if c.state == StatePulling && cur.Y > normalToPullingOffsetY {
			c.setState(StateIdle)
		}
	case c.state == StatePulling:
		c.BeginRefreshing(nil)
	case percent < 1:
		c.percent = percent
	}
}

// revealTopInset runs on entry to refreshing: on the next loop turn it
// animates the top inset open by the header height and scrolls the header
// into view, then fires the refresh callbacks.
func (c *control) revealTopInset() {
	gen := c.gen
	c.post(func() {
		s := c.surface
		if c.gen != gen || s == nil {
			return
		}
		c.insetGen++
		c.restoring = false
		fromTop := s.ContentInset().Top
		fromY := s.ContentOffset().Y
		top := c.originalInset.Top + c.height

		c.animate(func(t float64) {
			if c.gen != gen || c.surface != s {
				return
			}
			c.setTopInset(lerp(fromTop, top, t))
			offset := s.ContentOffset()
			offset.Y = lerp(fromY, -top, t)
			s.SetContentOffset(offset)
		}, func() {
			if c.gen != gen {
				return
			}
			c.fireRefreshCallbacks()
		})
	})
}

// restoreTopInset runs on refreshing -> idle and gives back the inset the
// header borrowed, recorded in insetTopDelta. Only a later reveal or a
// detach interrupts it; pulling state changes do not.
func (c *control) restoreTopInset() {
	s := c.surface
	if s == nil {
		c.percent = 0
		c.fireEndCallback()
		return
	}
	gen := c.gen
	c.insetGen++
	ig := c.insetGen
	c.restoring = true
	fromTop := s.ContentInset().Top
	delta := c.insetTopDelta

	c.animate(func(t float64) {
		if c.insetGen != ig || c.surface != s {
			return
		}
		c.setTopInset(lerp(fromTop, fromTop+delta, t))
	}, func() {
		if c.insetGen == ig {
			c.restoring = false
		}
		if c.gen == gen {
			c.percent = 0
		}
		c.fireEndCallback()
	})
}

// setTopInset writes the surface's top inset and keeps insetTopDelta equal
// to the distance back to the original inset.
func (c *control) setTopInset(top float64) {
	inset := c.surface.ContentInset()
	inset.Top = top
	c.surface.SetContentInset(inset)
	c.insetTopDelta = c.originalInset.Top - top
}
