package refresh

import (
	"errors"
	"time"
)

const (
	// DefaultHeaderHeight is the layout height of a header control.
	DefaultHeaderHeight = 54.0
	// DefaultFooterHeight is the layout height of a footer control.
	DefaultFooterHeight = 44.0
)

// ErrNotSerializable is returned by every decode entry point of Header and
// Footer. A control only exists through its constructor and a Scroller.
var ErrNotSerializable = errors.New("refresh: controls have no serialized form")

// View is the visual state a host renders for a control.
type View struct {
	Role    Role
	State   State
	Title   string
	Percent float64
	Height  float64
	Alpha   float64
	// Y is the control's vertical position in content coordinates.
	Y      float64
	Hidden bool
}

// Option configures a Header or Footer at construction.
type Option func(*control)

// WithHeight overrides the default layout height.
func WithHeight(h float64) Option {
	return func(c *control) {
		if h > 0 {
			c.height = h
		}
	}
}

// WithAnimationDuration overrides DefaultAnimationDuration.
func WithAnimationDuration(d time.Duration) Option {
	return func(c *control) {
		if d >= 0 {
			c.duration = d
		}
	}
}

// WithLayout registers fn to receive the control's View whenever the
// control requests a layout pass.
func WithLayout(fn func(View)) Option {
	return func(c *control) { c.layout = fn }
}

// control is the state shared by headers and footers. Role-specific
// behavior is selected by switching on role rather than by overriding.
type control struct {
	role  Role
	built bool

	state   State
	percent float64
	height  float64
	alpha   float64
	hidden  bool
	enabled bool
	titles  map[State]string

	ignoredInsetTop float64

	owner         *Scroller
	surface       Surface
	originalInset Insets

	onRefresh func()
	onBegin   func()
	onEnd     func()

	// gen increments on every effective state change. Deferred work
	// captures it and drops its side effect once superseded.
	gen    uint64
	// intent increments on every Begin/EndRefreshing call.
	intent uint64

	loop     *Loop
	anim     Animator
	duration time.Duration
	layout   func(View)

	// header
	insetTopDelta float64
	// insetGen increments whenever an inset reveal or restore starts;
	// restoring is set while a restore animation owns the top inset.
	insetGen  uint64
	restoring bool

	// footer
	autoRefresh    bool
	triggerPercent float64
	y              float64
}

func newControl(role Role, height float64, onRefresh func(), opts []Option) control {
	c := control{
		role:      role,
		built:     true,
		state:     StateIdle,
		height:    height,
		alpha:     1,
		enabled:   true,
		titles:    make(map[State]string),
		onRefresh: onRefresh,
		duration:  DefaultAnimationDuration,
	}
	for state, title := range defaultTitles[role] {
		c.titles[state] = title
	}
	if role == RoleFooter {
		c.autoRefresh = true
		c.triggerPercent = 1
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&c)
		}
	}
	return c
}

// State returns the current lifecycle state.
func (c *control) State() State { return c.state }

// Percent returns how far the control has been revealed; 1 is fully shown.
func (c *control) Percent() float64 { return c.percent }

// Height returns the control's layout height.
func (c *control) Height() float64 { return c.height }

// Alpha returns the control's opacity.
func (c *control) Alpha() float64 { return c.alpha }

// SetAlpha sets the control's opacity, clamped to [0, 1].
func (c *control) SetAlpha(a float64) {
	switch {
	case a < 0:
		a = 0
	case a > 1:
		a = 1
	}
	c.alpha = a
}

// Hidden reports whether the control is hidden.
func (c *control) Hidden() bool { return c.hidden }

// SetHidden hides or shows the control. Hidden controls still track
// content size but ignore offset and gesture signals.
func (c *control) SetHidden(hidden bool) { c.hidden = hidden }

// Enabled reports whether the control reacts to offset and gesture signals.
func (c *control) Enabled() bool { return c.enabled }

// SetEnabled toggles interaction.
func (c *control) SetEnabled(enabled bool) { c.enabled = enabled }

// IgnoredContentInsetTop returns the extra top inset the control sits above.
func (c *control) IgnoredContentInsetTop() float64 { return c.ignoredInsetTop }

// SetIgnoredContentInsetTop shifts the header's resting position up by v.
func (c *control) SetIgnoredContentInsetTop(v float64) { c.ignoredInsetTop = v }

// SetTitle overrides the label shown for state.
func (c *control) SetTitle(state State, title string) {
	if c.titles == nil {
		c.titles = make(map[State]string)
	}
	c.titles[state] = title
}

// Attached reports whether the control is bound to a surface.
func (c *control) Attached() bool { return c.surface != nil }

// View returns a snapshot of the control's visual state.
func (c *control) View() View {
	v := View{
		Role:    c.role,
		State:   c.state,
		Title:   c.titles[c.state],
		Percent: c.percent,
		Height:  c.height,
		Alpha:   c.alpha,
		Hidden:  c.hidden,
	}
	switch c.role {
	case RoleHeader:
		v.Y = -c.height - c.ignoredInsetTop
	case RoleFooter:
		v.Y = c.y
	}
	return v
}

// BeginRefreshing reveals the control and enters the refreshing state.
// completion runs after the refreshing callback. No-op while detached.
func (c *control) BeginRefreshing(completion func()) {
	if c.surface == nil {
		return
	}
	c.intent++
	c.onBegin = completion

	from := c.alpha
	c.animate(func(t float64) { c.alpha = lerp(from, 1, t) }, nil)

	c.percent = 1
	if c.surface.InWindow() {
		c.setState(StateRefreshing)
		return
	}
	if c.state != StateRefreshing {
		c.setState(StateRefreshing)
		c.display()
	}
}

func (c *control) attach(sc *Scroller) {
	if !c.built {
		panic("refresh: " + c.role.String() + " used without its constructor")
	}
	if c.owner != nil && c.owner != sc {
		c.owner.release(c)
	}
	c.owner = sc
	c.loop = sc.loop
	c.anim = sc.anim
	c.surface = sc.surface
	if c.surface == nil {
		return
	}
	c.surface.SetAlwaysBounceVertical(true)
	c.originalInset = c.surface.ContentInset()

	if c.role == RoleFooter {
		if !c.hidden {
			c.adjustBottomInset(c.height)
		}
		c.y = c.surface.ContentSize().H
	}
}

// detach gives back any inset the control borrowed and drops its queued
// work. A refresh in flight is abandoned and the control returns to idle.
func (c *control) detach() {
	if c.surface != nil {
		switch c.role {
		case RoleHeader:
			if c.insetTopDelta != 0 {
				inset := c.surface.ContentInset()
				inset.Top += c.insetTopDelta
				c.surface.SetContentInset(inset)
				c.insetTopDelta = 0
			}
		case RoleFooter:
			if !c.hidden {
				c.adjustBottomInset(-c.height)
			}
		}
	}
	if c.state == StateRefreshing || c.state == StateWillRefresh {
		c.state = StateIdle
		c.percent = 0
	}
	c.gen++
	c.intent++
	c.insetGen++
	c.restoring = false
	c.owner = nil
	c.surface = nil
}

func (c *control) observing() bool {
	return c.surface != nil && c.enabled && !c.hidden
}

func (c *control) offsetChanged(prev, cur Point) {
	switch c.role {
	case RoleHeader:
		c.headerOffsetChanged(cur)
	case RoleFooter:
		c.footerOffsetChanged(prev, cur)
	}
}

func (c *control) contentSizeChanged(_, cur Size) {
	if c.role == RoleFooter && c.surface != nil {
		c.y = cur.H
	}
}

func (c *control) gestureChanged(_, cur GesturePhase) {
	if c.role == RoleFooter {
		c.footerGestureChanged(cur)
	}
}

// setState applies next and runs its entry side effects. Setting the
// current state again does nothing.
func (c *control) setState(next State) {
	prev := c.state
	if prev == next {
		return
	}
	c.state = next
	c.gen++
	c.requestLayout()

	switch {
	case c.role == RoleHeader && prev == StateRefreshing && next == StateIdle:
		c.restoreTopInset()
	case c.role == RoleHeader && next == StateRefreshing:
		c.revealTopInset()
	case c.role == RoleFooter && next == StateRefreshing:
		c.fireRefreshCallbacks()
	case c.role == RoleFooter && prev == StateRefreshing && (next == StateIdle || next == StateNoMoreData):
		c.fireEndCallback()
	}
}

func (c *control) fireRefreshCallbacks() {
	gen := c.gen
	c.post(func() {
		if c.gen != gen {
			return
		}
		if fn := c.onRefresh; fn != nil {
			fn()
		}
		if fn := c.onBegin; fn != nil {
			fn()
		}
	})
}

func (c *control) fireEndCallback() {
	c.post(func() {
		if c.surface == nil {
			return
		}
		if fn := c.onEnd; fn != nil {
			fn()
		}
	})
}

func (c *control) requestLayout() {
	c.post(c.display)
}

func (c *control) display() {
	if c.layout != nil {
		c.layout(c.View())
	}
}

func (c *control) post(fn func()) {
	if c.loop == nil {
		return
	}
	c.loop.Post(fn)
}

func (c *control) animate(step func(float64), done func()) {
	anim := c.anim
	if anim == nil {
		anim = Immediate{}
	}
	anim.Animate(c.duration, step, done)
}

func (c *control) adjustBottomInset(delta float64) {
	if c.surface == nil {
		return
	}
	inset := c.surface.ContentInset()
	inset.Bottom += delta
	c.surface.SetContentInset(inset)
}
