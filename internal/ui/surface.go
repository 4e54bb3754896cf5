package ui

import "github.com/five82/refresher/internal/refresh"

// termSurface is the scrollable list area as the refresh controls see it.
// One unit is one terminal row. Writes are not reported back; the model
// diffs the surface after each update and forwards the changes.
type termSurface struct {
	offset   refresh.Point
	content  refresh.Size
	inset    refresh.Insets
	size     refresh.Size
	dragging bool
	phase    refresh.GesturePhase
	bounce   bool
	inWindow bool
}

func (s *termSurface) ContentOffset() refresh.Point       { return s.offset }
func (s *termSurface) SetContentOffset(p refresh.Point)   { s.offset = p }
func (s *termSurface) ContentSize() refresh.Size          { return s.content }
func (s *termSurface) ContentInset() refresh.Insets       { return s.inset }
func (s *termSurface) SetContentInset(in refresh.Insets)  { s.inset = in }
func (s *termSurface) Size() refresh.Size                 { return s.size }
func (s *termSurface) IsDragging() bool                   { return s.dragging }
func (s *termSurface) GesturePhase() refresh.GesturePhase { return s.phase }
func (s *termSurface) SetAlwaysBounceVertical(on bool)    { s.bounce = on }
func (s *termSurface) InWindow() bool                     { return s.inWindow }

// minOffset is the resting offset at the top of the content.
func (s *termSurface) minOffset() float64 {
	return -s.inset.Top
}

// maxOffset is the resting offset at the end of the content.
func (s *termSurface) maxOffset() float64 {
	limit := s.content.H + s.inset.Bottom - s.size.H
	if limit < s.minOffset() {
		return s.minOffset()
	}
	return limit
}

// overscroll returns how far the offset sits outside the resting range;
// negative above the top, positive past the end.
func (s *termSurface) overscroll() float64 {
	switch y := s.offset.Y; {
	case y < s.minOffset():
		return y - s.minOffset()
	case y > s.maxOffset():
		return y - s.maxOffset()
	default:
		return 0
	}
}
