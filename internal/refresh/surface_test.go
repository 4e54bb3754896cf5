package refresh

import (
	"math"
	"testing"
	"time"
)

// fakeSurface records writes and never reports them back, like a host
// that only forwards user-driven scrolling.
type fakeSurface struct {
	offset   Point
	content  Size
	inset    Insets
	size     Size
	dragging bool
	phase    GesturePhase
	bounce   bool
	inWindow bool
}

func (s *fakeSurface) ContentOffset() Point            { return s.offset }
func (s *fakeSurface) SetContentOffset(p Point)        { s.offset = p }
func (s *fakeSurface) ContentSize() Size               { return s.content }
func (s *fakeSurface) ContentInset() Insets            { return s.inset }
func (s *fakeSurface) SetContentInset(in Insets)       { s.inset = in }
func (s *fakeSurface) Size() Size                      { return s.size }
func (s *fakeSurface) IsDragging() bool                { return s.dragging }
func (s *fakeSurface) GesturePhase() GesturePhase      { return s.phase }
func (s *fakeSurface) SetAlwaysBounceVertical(on bool) { s.bounce = on }
func (s *fakeSurface) InWindow() bool                  { return s.inWindow }

type harness struct {
	t        *testing.T
	surface  *fakeSurface
	scroller *Scroller
	timeline *Timeline
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	s := &fakeSurface{size: Size{W: 320, H: 600}, inWindow: true}
	tl := &Timeline{}
	return &harness{
		t:        t,
		surface:  s,
		scroller: NewScroller(s, WithAnimator(tl)),
		timeline: tl,
	}
}

func (h *harness) scrollTo(y float64) {
	prev := h.surface.offset
	h.surface.offset.Y = y
	h.scroller.OffsetChanged(prev, h.surface.offset)
	h.scroller.Loop().Drain()
}

func (h *harness) beginDrag() {
	prev := h.surface.phase
	h.surface.dragging = true
	h.surface.phase = GestureBegan
	h.scroller.GestureChanged(prev, h.surface.phase)
	h.scroller.Loop().Drain()
}

func (h *harness) endDrag() {
	prev := h.surface.phase
	h.surface.dragging = false
	h.surface.phase = GestureEnded
	h.scroller.GestureChanged(prev, h.surface.phase)
	h.scroller.Loop().Drain()
}

func (h *harness) setContentHeight(height float64) {
	prev := h.surface.content
	h.surface.content = Size{W: h.surface.size.W, H: height}
	h.scroller.ContentSizeChanged(prev, h.surface.content)
	h.scroller.Loop().Drain()
}

// settle runs the frame clock and the loop until both are idle.
func (h *harness) settle() {
	h.t.Helper()
	h.scroller.Loop().Drain()
	for i := 0; i < 1000; i++ {
		if !h.timeline.Active() && h.scroller.Loop().Len() == 0 {
			return
		}
		h.timeline.Advance(16 * time.Millisecond)
		h.scroller.Loop().Drain()
	}
	h.t.Fatalf("surface did not settle")
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
