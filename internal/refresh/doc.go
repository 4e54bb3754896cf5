// Package refresh implements pull-to-refresh and load-more controls for a
// vertically scrolling surface.
//
// # Overview
//
// A Scroller is bound to one host Surface and owns at most one Header and
// one Footer. The host reports three kinds of change to the Scroller:
//
//   - OffsetChanged: the content offset moved
//   - ContentSizeChanged: the content grew or shrank
//   - GestureChanged: the drag gesture changed phase
//
// The controls turn those observations into state transitions
// (idle, pulling, refreshing, no-more-data) and write the surface's
// content inset and offset so the content stays put while a control
// animates in and out.
//
// # Execution model
//
// Everything runs on the host's UI goroutine. Refresh and completion
// callbacks are never invoked from inside a signal; they are posted to the
// Scroller's Loop, which the host drains after each event:
//
//	sc.OffsetChanged(prev, cur)
//	sc.Loop().Drain()
//
// Transitions that take time go through an Animator. Timeline is driven by
// the host's frame clock; Immediate completes inline. Deferred work is
// tagged with the control's state generation and drops its side effects
// once a newer transition has happened.
//
// # Usage
//
//	sc := refresh.NewScroller(surface, refresh.WithAnimator(&timeline))
//	header := sc.AttachHeader(func() { go reload() })
//	footer := sc.AttachFooter(func() { go loadMore() })
//	...
//	header.EndRefreshing(nil)
//	footer.EndRefreshingWithNoMoreData()
package refresh
