package refresh

// Surface is the host scroll view a Scroller drives.
//
// Reads must be cheap and side-effect free. Writes from the controls are
// plain assignments; the host decides whether they are reported back
// through Scroller.OffsetChanged.
type Surface interface {
	ContentOffset() Point
	SetContentOffset(Point)
	ContentSize() Size
	ContentInset() Insets
	SetContentInset(Insets)
	// Size is the visible extent of the surface.
	Size() Size
	IsDragging() bool
	GesturePhase() GesturePhase
	SetAlwaysBounceVertical(bool)
	// InWindow reports whether the surface is part of a rendered tree.
	InWindow() bool
}
