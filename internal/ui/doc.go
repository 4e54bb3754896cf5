// Package ui hosts the refresh controls in a Bubble Tea terminal program.
//
// # Surface
//
// termSurface implements refresh.Surface with one unit per terminal row.
// The list shows feed items at rows 0..n-1; the header sits above row 0
// and the footer directly below the last item, so both are revealed by
// scrolling past the ends exactly as on a touch screen.
//
// # Gestures
//
// Terminals have no touch drag, so scrolling input stands in for one:
//
//   - k/j and the mouse wheel move the list and start a drag on the first
//     event; further events continue it
//   - the drag ends once input has been quiet for 150ms, via a timer in a
//     debounce.Registry that sends dragEndMsg into the program
//   - moving past either end is damped, and once the drag ends the list
//     eases back into range each frame
//
// Page, top and bottom keys scroll without a drag, so they can trigger the
// footer's automatic load but never a pull-to-refresh.
//
// # Update Cycle
//
// After every message the model diffs the surface against what the
// scroller last saw, forwards offset and content size changes, and drains
// the scroller's loop until no work remains. A 16ms frame tick advances
// the refresh.Timeline that runs the controls' inset animations and
// springs the rendered offset toward the real one with harmonica.
//
// Refresh callbacks queue fetch commands; fetch results update the
// state.Store from the command goroutine, and the resulting fetchDoneMsg
// ends the header or footer refresh on the UI goroutine.
//
// # Mouse
//
// The footer title is a bubblezone zone. Clicking it calls Footer.Tap.
package ui
