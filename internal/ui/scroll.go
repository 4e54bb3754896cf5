package ui

import (
	"math"

	"github.com/five82/refresher/internal/refresh"
)

const (
	// rubberBand scales input that pushes past either end of the list.
	rubberBand = 0.5
	// settleRate is the share of the overscroll recovered per frame.
	settleRate = 0.35
	// maxSyncPasses bounds the forward/drain cycle in sync.
	maxSyncPasses = 8
)

// drag moves the list by delta rows as part of a drag gesture. The gesture
// ends once input has been quiet for dragQuiet.
func (m *Model) drag(delta float64) {
	s := m.surface
	if !s.dragging {
		m.setGesture(true, refresh.GestureBegan)
	} else if s.phase == refresh.GestureBegan {
		m.setGesture(true, refresh.GestureChanged)
	}

	next := s.offset.Y + delta
	if (delta < 0 && next < s.minOffset()) || (delta > 0 && next > s.maxOffset()) {
		next = s.offset.Y + delta*rubberBand
	}
	slack := 2*m.header.Height() + 1
	next = math.Max(next, s.minOffset()-slack)
	next = math.Min(next, s.maxOffset()+slack)
	s.offset.Y = next

	if m.send != nil {
		send := m.send
		m.throttle.Throttle(dragEndID, dragQuiet, func() { send(dragEndMsg{}) })
	}
}

// endDrag finishes the current drag gesture.
func (m *Model) endDrag() {
	if !m.surface.dragging {
		return
	}
	m.throttle.Cancel(dragEndID)
	m.setGesture(false, refresh.GestureEnded)
}

func (m *Model) setGesture(dragging bool, phase refresh.GesturePhase) {
	s := m.surface
	prev := s.phase
	s.dragging = dragging
	s.phase = phase
	if prev != phase {
		m.scroller.GestureChanged(prev, phase)
	}
}

// scrollTo moves the list without a gesture, clamped to the resting range.
func (m *Model) scrollTo(y float64) {
	s := m.surface
	y = math.Max(y, s.minOffset())
	y = math.Min(y, s.maxOffset())
	s.offset.Y = y
}

// bounce eases an overscrolled list back into range once nothing holds it
// there: no finger and no control animation.
func (m *Model) bounce() {
	s := m.surface
	if s.dragging || m.timeline.Active() {
		return
	}
	over := s.overscroll()
	switch {
	case over == 0:
		return
	case math.Abs(over) < 0.05:
		s.offset.Y -= over
	default:
		s.offset.Y -= over * settleRate
	}
}

// sync forwards surface changes to the scroller and drains the loop until
// neither produces more work.
func (m *Model) sync() {
	for i := 0; i < maxSyncPasses; i++ {
		changed := false
		if cur := m.surface.content; cur != m.synced.content {
			prev := m.synced.content
			m.synced.content = cur
			m.scroller.ContentSizeChanged(prev, cur)
			changed = true
		}
		if cur := m.surface.offset; cur != m.synced.offset {
			prev := m.synced.offset
			m.synced.offset = cur
			m.scroller.OffsetChanged(prev, cur)
			changed = true
		}
		if m.scroller.Loop().Drain() == 0 && !changed {
			return
		}
	}
}
