package ui

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/five82/refresher/internal/config"
	"github.com/five82/refresher/internal/debounce"
	"github.com/five82/refresher/internal/feed"
	"github.com/five82/refresher/internal/prefs"
	"github.com/five82/refresher/internal/refresh"
	"github.com/five82/refresher/internal/state"
)

// Options configures the UI.
type Options struct {
	Context   context.Context
	Fetcher   feed.Fetcher
	Store     *state.Store
	Config    config.Config
	Prefs     prefs.Prefs
	PrefsPath string
}

const (
	frameInterval = 16 * time.Millisecond
	maxFrameStep  = 100 * time.Millisecond
	dragQuiet     = 150 * time.Millisecond
	dragEndID     = "drag-end"
	footerZoneID  = "footer"
	wheelStep     = 2.0
)

type fetchKind int

const (
	fetchReload fetchKind = iota
	fetchMore
)

func (k fetchKind) String() string {
	if k == fetchReload {
		return "reload"
	}
	return "load more"
}

// Messages

type frameMsg time.Time

type dragEndMsg struct{}

type fetchDoneMsg struct {
	kind fetchKind
	page int
	err  error
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	fetcher   feed.Fetcher
	store     *state.Store
	cfg       config.Config
	prefs     prefs.Prefs
	prefsPath string
	send      func(tea.Msg)

	// Refresh controls and the surface they observe
	surface  *termSurface
	scroller *refresh.Scroller
	timeline *refresh.Timeline
	header   *refresh.Header
	footer   *refresh.Footer
	throttle *debounce.Registry
	synced   struct {
		offset  refresh.Point
		content refresh.Size
	}
	pending []tea.Cmd
	logged  map[refresh.Role]refresh.State

	// Rendered scroll position, sprung toward the surface offset
	spring    harmonica.Spring
	viewY     float64
	viewVel   float64
	lastFrame time.Time

	// UI state
	keys     keyMap
	help     help.Model
	spinner  spinner.Model
	theme    Theme
	snapshot state.Snapshot
	width    int
	height   int
	ready    bool
	showHelp bool
}

// New creates the root model with its header and footer attached.
func New(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	store := opts.Store
	if store == nil {
		store = &state.Store{}
	}
	cfg := opts.Config
	if cfg.PageSize <= 0 {
		cfg = config.Default()
	}
	fetcher := opts.Fetcher
	if fetcher == nil {
		fetcher = feed.NewGenerator(cfg.MaxPages, cfg.Latency)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &Model{
		ctx:       ctx,
		fetcher:   fetcher,
		store:     store,
		cfg:       cfg,
		prefs:     opts.Prefs,
		prefsPath: opts.PrefsPath,
		surface:   &termSurface{},
		timeline:  &refresh.Timeline{},
		throttle:  &debounce.Registry{},
		logged:    make(map[refresh.Role]refresh.State),
		spring:    harmonica.NewSpring(harmonica.FPS(60), 12.0, 0.9),
		keys:      DefaultKeyMap(),
		help:      help.New(),
		spinner:   sp,
		theme:     GetTheme(opts.Prefs.Theme),
	}

	m.scroller = refresh.NewScroller(m.surface, refresh.WithAnimator(m.timeline))
	m.header = m.scroller.AttachHeader(m.onHeaderRefresh,
		refresh.WithHeight(cfg.HeaderHeight),
		refresh.WithAnimationDuration(cfg.Animation),
		refresh.WithLayout(m.logTransition),
	)
	m.footer = m.scroller.AttachFooter(m.onFooterRefresh,
		refresh.WithHeight(cfg.FooterHeight),
		refresh.WithAnimationDuration(cfg.Animation),
		refresh.WithLayout(m.logTransition),
	)
	m.footer.SetAutomaticallyRefresh(cfg.AutoRefresh)
	m.footer.SetTriggerAutomaticallyRefreshPercent(cfg.TriggerPercent)
	// Nothing to load more of until the first page arrives.
	m.footer.SetHidden(true)

	zone.NewGlobal()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, frameCmd())
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layout()
		if !m.ready {
			m.ready = true
			m.surface.inWindow = true
			m.header.BeginRefreshing(nil)
		}

	case tea.KeyMsg:
		if m.showHelp {
			m.showHelp = false
			return m, nil
		}
		if key.Matches(msg, m.keys.Quit) {
			m.throttle.Stop()
			return m, tea.Quit
		}
		m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)

	case frameMsg:
		m.handleFrame(time.Time(msg))
		cmds = append(cmds, frameCmd())

	case dragEndMsg:
		m.endDrag()

	case fetchDoneMsg:
		m.handleFetchDone(msg)

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.sync()
	cmds = append(cmds, m.pending...)
	m.pending = nil
	return m, tea.Batch(cmds...)
}

func (m *Model) handleKey(msg tea.KeyMsg) {
	page := m.surface.size.H - 1
	switch {
	case key.Matches(msg, m.keys.Up):
		m.drag(-1)
	case key.Matches(msg, m.keys.Down):
		m.drag(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollTo(m.surface.offset.Y - page)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollTo(m.surface.offset.Y + page)
	case key.Matches(msg, m.keys.Top):
		m.scrollTo(m.surface.minOffset())
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(m.surface.maxOffset())
	case key.Matches(msg, m.keys.Refresh):
		m.header.BeginRefreshing(nil)
	case key.Matches(msg, m.keys.LoadMore):
		m.footer.Tap()
	case key.Matches(msg, m.keys.ResetNoMore):
		m.footer.ResetNoMoreData()
	case key.Matches(msg, m.keys.ToggleAuto):
		m.footer.SetAutomaticallyRefresh(!m.footer.AutomaticallyRefresh())
	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.prefs.Theme = m.theme.Name
		m.savePrefs()
	case key.Matches(msg, m.keys.ToggleHelp):
		m.showHelp = true
	case key.Matches(msg, m.keys.HideHelp):
		m.prefs.HideHelp = !m.prefs.HideHelp
		m.savePrefs()
		m.layout()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	if msg.Action != tea.MouseActionPress && msg.Action != tea.MouseActionRelease {
		return
	}
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.drag(-wheelStep)
	case tea.MouseButtonWheelDown:
		m.drag(wheelStep)
	case tea.MouseButtonLeft:
		if msg.Action != tea.MouseActionRelease {
			return
		}
		if z := zone.Get(footerZoneID); z != nil && z.InBounds(msg) {
			m.footer.Tap()
		}
	}
}

func (m *Model) handleFrame(now time.Time) {
	dt := now.Sub(m.lastFrame)
	if m.lastFrame.IsZero() || dt <= 0 || dt > maxFrameStep {
		dt = frameInterval
	}
	m.lastFrame = now

	m.timeline.Advance(dt)
	m.bounce()
	m.viewY, m.viewVel = m.spring.Update(m.viewY, m.viewVel, m.surface.offset.Y)
}

func (m *Model) onHeaderRefresh() {
	log.Printf("refresh: reloading feed")
	m.pending = append(m.pending, m.fetchCmd(fetchReload, 1))
}

func (m *Model) onFooterRefresh() {
	if m.header.IsRefreshing() {
		// The reload in flight replaces every page.
		m.footer.EndRefreshing(nil)
		return
	}
	next := m.store.Snapshot().NextPage()
	log.Printf("refresh: loading page %d", next)
	m.pending = append(m.pending, m.fetchCmd(fetchMore, next))
}

func (m *Model) handleFetchDone(msg fetchDoneMsg) {
	m.applySnapshot()
	snap := m.snapshot

	if msg.err != nil {
		log.Printf("refresh: %s of page %d failed: %v", msg.kind, msg.page, msg.err)
	}

	switch msg.kind {
	case fetchReload:
		count := len(snap.Items)
		m.header.EndRefreshing(func() {
			log.Printf("refresh: reload settled with %d items", count)
		})
		if msg.err != nil {
			return
		}
		switch {
		case snap.Exhausted:
			m.footer.EndRefreshingWithNoMoreData()
		case m.footer.State() == refresh.StateNoMoreData:
			m.footer.ResetNoMoreData()
		}

	case fetchMore:
		if msg.err == nil && snap.Exhausted {
			m.footer.EndRefreshingWithNoMoreData()
			return
		}
		m.footer.EndRefreshing(nil)
	}
}

// applySnapshot copies the store into the model and resizes the content.
func (m *Model) applySnapshot() {
	m.snapshot = m.store.Snapshot()
	m.surface.content = refresh.Size{W: m.surface.size.W, H: float64(len(m.snapshot.Items))}
	m.footer.SetHidden(len(m.snapshot.Items) == 0)
}

func (m *Model) fetchCmd(kind fetchKind, page int) tea.Cmd {
	ctx, fetcher, store, size := m.ctx, m.fetcher, m.store, m.cfg.PageSize
	return func() tea.Msg {
		p, err := fetcher.Fetch(ctx, page, size)
		if kind == fetchReload {
			store.Replace(p, err)
		} else {
			store.Append(p, err)
		}
		return fetchDoneMsg{kind: kind, page: page, err: err}
	}
}

func (m *Model) logTransition(v refresh.View) {
	prev, seen := m.logged[v.Role]
	if seen && prev == v.State {
		return
	}
	m.logged[v.Role] = v.State
	log.Printf("%s: %s -> %s", v.Role, prev, v.State)
}

func (m *Model) savePrefs() {
	if err := prefs.Save(m.prefsPath, m.prefs); err != nil {
		log.Printf("prefs: %v", err)
	}
}

// layout sizes the list area to what is left after the status line and
// the help bar.
func (m *Model) layout() {
	m.help.Width = m.width
	rows := m.height - 1
	if !m.prefs.HideHelp {
		rows -= lipgloss.Height(m.help.View(m.keys))
	}
	if rows < 1 {
		rows = 1
	}
	m.surface.size = refresh.Size{W: float64(m.width), H: float64(rows)}
	m.surface.content.W = float64(m.width)
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(m.ctx))
	m.send = p.Send
	_, err := p.Run()
	m.throttle.Stop()
	if errors.Is(err, tea.ErrProgramKilled) && m.ctx.Err() != nil {
		return nil
	}
	return err
}
