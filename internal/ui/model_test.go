package ui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/refresher/internal/config"
	"github.com/five82/refresher/internal/feed"
	"github.com/five82/refresher/internal/prefs"
	"github.com/five82/refresher/internal/refresh"
)

type failingFetcher struct{}

func (failingFetcher) Fetch(context.Context, int, int) (feed.Page, error) {
	return feed.Page{}, errors.New("connection refused")
}

// driver runs the model the way the program would, minus the real clock:
// frames advance 16ms each and fetch commands run inline.
type driver struct {
	t         *testing.T
	m         *Model
	now       time.Time
	prefsPath string
}

func newDriver(t *testing.T, fetcher feed.Fetcher, pageSize int) *driver {
	t.Helper()
	cfg := config.Default()
	cfg.PageSize = pageSize
	cfg.Animation = 48 * time.Millisecond
	cfg.Latency = 0

	path := filepath.Join(t.TempDir(), "prefs.toml")
	d := &driver{
		t: t,
		m: New(Options{
			Fetcher:   fetcher,
			Config:    cfg,
			Prefs:     prefs.Default(),
			PrefsPath: path,
		}),
		now:       time.Unix(1700000000, 0),
		prefsPath: path,
	}
	d.m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	d.settle()
	return d
}

func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func (d *driver) press(k string, times int) {
	for i := 0; i < times; i++ {
		d.m.handleKey(keyMsg(k))
		d.m.sync()
		d.runPending()
	}
}

func (d *driver) release() {
	d.m.endDrag()
	d.m.sync()
	d.runPending()
}

func (d *driver) frame() {
	d.now = d.now.Add(frameInterval)
	d.m.handleFrame(d.now)
	d.m.sync()
	d.runPending()
}

func (d *driver) runPending() {
	d.t.Helper()
	for len(d.m.pending) > 0 {
		cmds := d.m.pending
		d.m.pending = nil
		for _, cmd := range cmds {
			msg, ok := cmd().(fetchDoneMsg)
			if !ok {
				d.t.Fatalf("pending command did not produce a fetch result")
			}
			d.m.handleFetchDone(msg)
			d.m.sync()
		}
	}
}

func (d *driver) settle() {
	d.t.Helper()
	for i := 0; i < 1000; i++ {
		if !d.m.timeline.Active() &&
			d.m.surface.overscroll() == 0 &&
			d.m.scroller.Loop().Len() == 0 &&
			len(d.m.pending) == 0 {
			return
		}
		d.frame()
	}
	d.t.Fatalf("model did not settle")
}

func TestModel_StartupLoadsFirstPage(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(3, 0), 30)
	m := d.m

	if len(m.snapshot.Items) != 30 || m.snapshot.Refreshes != 1 {
		t.Fatalf("snapshot = %d items, %d reloads; want 30 and 1", len(m.snapshot.Items), m.snapshot.Refreshes)
	}
	if m.header.State() != refresh.StateIdle {
		t.Fatalf("header state = %v, want idle", m.header.State())
	}
	if m.surface.inset.Top != 0 || m.surface.offset.Y != 0 {
		t.Fatalf("inset top %v offset %v, want both 0", m.surface.inset.Top, m.surface.offset.Y)
	}
	if m.footer.Hidden() || m.surface.inset.Bottom != 1 {
		t.Fatalf("footer hidden=%v bottom inset=%v, want visible and 1", m.footer.Hidden(), m.surface.inset.Bottom)
	}
	if m.surface.size.H != 22 {
		t.Fatalf("list rows = %v, want 22", m.surface.size.H)
	}
}

func TestModel_PullDownReloads(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(3, 0), 30)
	m := d.m

	d.press("k", 8)
	if m.header.State() != refresh.StatePulling {
		t.Fatalf("header state after pull = %v, want pulling (offset %v)", m.header.State(), m.surface.offset.Y)
	}
	d.release()
	d.settle()

	if m.snapshot.Refreshes != 2 {
		t.Fatalf("reloads = %d, want 2", m.snapshot.Refreshes)
	}
	if m.header.State() != refresh.StateIdle || m.surface.inset.Top != 0 {
		t.Fatalf("header state %v inset %v, want idle and 0", m.header.State(), m.surface.inset.Top)
	}
}

func TestModel_ShortPullSnapsBack(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(3, 0), 30)
	m := d.m

	d.press("k", 3)
	d.release()
	d.settle()

	if m.snapshot.Refreshes != 1 || m.surface.offset.Y != 0 {
		t.Fatalf("reloads %d offset %v, want 1 and 0", m.snapshot.Refreshes, m.surface.offset.Y)
	}
}

func TestModel_WheelDrivesPull(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(3, 0), 30)
	m := d.m

	for i := 0; i < 4; i++ {
		m.handleMouse(tea.MouseMsg{Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
		m.sync()
	}
	if m.header.State() != refresh.StatePulling {
		t.Fatalf("header state = %v, want pulling", m.header.State())
	}
	m.Update(dragEndMsg{})
	d.settle()
	if m.snapshot.Refreshes != 2 {
		t.Fatalf("reloads = %d, want 2", m.snapshot.Refreshes)
	}
}

func TestModel_ScrollToEndLoadsMoreUntilExhausted(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(2, 0), 30)
	m := d.m

	d.press("G", 1)
	d.settle()
	if len(m.snapshot.Items) != 60 || m.snapshot.Loads != 1 {
		t.Fatalf("items %d loads %d, want 60 and 1", len(m.snapshot.Items), m.snapshot.Loads)
	}
	if m.footer.State() != refresh.StateNoMoreData {
		t.Fatalf("footer state = %v, want no-more-data", m.footer.State())
	}
	if m.footer.View().Y != 60 {
		t.Fatalf("footer y = %v, want 60", m.footer.View().Y)
	}

	d.press("G", 1)
	d.press("m", 1)
	d.settle()
	if m.snapshot.Loads != 1 {
		t.Fatalf("loads = %d after no-more-data, want 1", m.snapshot.Loads)
	}

	d.press("R", 1)
	if m.footer.State() != refresh.StateIdle {
		t.Fatalf("footer state after reset = %v, want idle", m.footer.State())
	}
}

func TestModel_ReloadClearsNoMoreData(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(2, 0), 30)
	m := d.m

	d.press("G", 1)
	d.settle()
	if m.footer.State() != refresh.StateNoMoreData {
		t.Fatalf("footer state = %v, want no-more-data", m.footer.State())
	}

	d.press("r", 1)
	d.settle()
	if m.footer.State() != refresh.StateIdle {
		t.Fatalf("footer state after reload = %v, want idle", m.footer.State())
	}
	if len(m.snapshot.Items) != 30 || m.snapshot.Page != 1 {
		t.Fatalf("items %d page %d, want 30 and 1", len(m.snapshot.Items), m.snapshot.Page)
	}
	if m.surface.offset.Y > m.surface.maxOffset() {
		t.Fatalf("offset %v beyond end %v after shrink", m.surface.offset.Y, m.surface.maxOffset())
	}
}

func TestModel_TapLoadsMore(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(3, 0), 30)
	d.press("m", 1)
	d.settle()
	if d.m.snapshot.Loads != 1 || len(d.m.snapshot.Items) != 60 {
		t.Fatalf("loads %d items %d, want 1 and 60", d.m.snapshot.Loads, len(d.m.snapshot.Items))
	}
}

func TestModel_ShortListLoadsOnRelease(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(3, 0), 10)
	m := d.m

	d.press("j", 1)
	if m.footer.State() != refresh.StateIdle {
		t.Fatalf("footer loaded before release: %v", m.footer.State())
	}
	d.release()
	d.settle()
	if m.snapshot.Loads != 1 || len(m.snapshot.Items) != 20 {
		t.Fatalf("loads %d items %d, want 1 and 20", m.snapshot.Loads, len(m.snapshot.Items))
	}
}

func TestModel_AutoLoadToggle(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(3, 0), 30)
	d.press("a", 1)
	d.press("G", 1)
	d.settle()
	if d.m.snapshot.Loads != 0 {
		t.Fatalf("loads = %d with auto load off, want 0", d.m.snapshot.Loads)
	}
}

func TestModel_FetchErrorKeepsControlsUsable(t *testing.T) {
	d := newDriver(t, failingFetcher{}, 30)
	m := d.m

	if m.header.State() != refresh.StateIdle {
		t.Fatalf("header state = %v, want idle after failure", m.header.State())
	}
	if m.snapshot.LastError == nil {
		t.Fatalf("LastError = nil, want the fetch error")
	}
	if !m.footer.Hidden() {
		t.Fatalf("footer visible with no items")
	}
	if view := m.View(); !strings.Contains(view, "connection refused") {
		t.Fatalf("view does not show the error:\n%s", view)
	}

	d.press("r", 1)
	d.settle()
	if !m.snapshot.IsOffline() {
		t.Fatalf("two failures did not mark the feed offline")
	}
}

func TestModel_ViewShowsItemsAndStatus(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(3, 0), 30)
	for i := 0; i < 60; i++ {
		d.frame()
	}
	view := d.m.View()

	for _, want := range []string{"refresher", "30 items", "Item 1", "reloads 1"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}
	if strings.Contains(view, "Pull down to refresh") {
		t.Fatalf("header visible at rest:\n%s", view)
	}
}

func TestModel_ViewShowsHeaderWhilePulling(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(3, 0), 30)
	d.press("k", 8)
	for i := 0; i < 60; i++ {
		d.frame()
	}
	if view := d.m.View(); !strings.Contains(view, "Release to refresh") {
		t.Fatalf("pulling header not rendered:\n%s", view)
	}
}

func TestModel_CycleThemeSavesPrefs(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(1, 0), 5)
	d.press("T", 1)
	if d.m.theme.Name != "Kanagawa" {
		t.Fatalf("theme = %q, want Kanagawa", d.m.theme.Name)
	}
	if got := prefs.Load(d.prefsPath).Theme; got != "Kanagawa" {
		t.Fatalf("saved theme = %q, want Kanagawa", got)
	}

	d.press("h", 1)
	if !prefs.Load(d.prefsPath).HideHelp {
		t.Fatalf("hide_help not saved")
	}
	if d.m.surface.size.H != 23 {
		t.Fatalf("list rows without help = %v, want 23", d.m.surface.size.H)
	}
}

func TestModel_DragEndArrivesAfterQuietPeriod(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(1, 0), 30)
	got := make(chan tea.Msg, 4)
	d.m.send = func(msg tea.Msg) { got <- msg }

	d.press("j", 3)
	if !d.m.surface.dragging {
		t.Fatalf("key scroll did not start a drag")
	}
	select {
	case msg := <-got:
		if _, ok := msg.(dragEndMsg); !ok {
			t.Fatalf("sent %T, want dragEndMsg", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("drag end never sent")
	}
	d.m.Update(dragEndMsg{})
	if d.m.surface.dragging || d.m.surface.phase != refresh.GestureEnded {
		t.Fatalf("drag still active after dragEndMsg")
	}
}

func TestModel_QuitStopsThrottle(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(1, 0), 5)
	_, cmd := d.m.Update(keyMsg("q"))
	if cmd == nil {
		t.Fatalf("quit returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Fatalf("quit command did not quit")
	}
	if d.m.throttle.Throttle("x", time.Millisecond, func() {}) {
		t.Fatalf("throttle still accepts work after quit")
	}
}

func TestModel_HelpOverlayClosesOnAnyKey(t *testing.T) {
	d := newDriver(t, feed.NewGenerator(1, 0), 5)

	d.m.Update(keyMsg("?"))
	view := d.m.View()
	for _, want := range []string{"Keyboard Shortcuts", "Refresh", "load more"} {
		if !strings.Contains(view, want) {
			t.Fatalf("help overlay missing %q:\n%s", want, view)
		}
	}

	d.m.Update(keyMsg("q"))
	if d.m.showHelp {
		t.Fatalf("help still open")
	}
	if !d.m.throttle.Throttle("x", time.Hour, func() {}) {
		t.Fatalf("closing help with q also quit")
	}
	d.m.throttle.Cancel("x")
}
