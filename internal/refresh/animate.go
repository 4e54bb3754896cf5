package refresh

import "time"

// DefaultAnimationDuration is the length of inset and alpha transitions.
const DefaultAnimationDuration = 250 * time.Millisecond

// Animator runs a timed transition. step receives eased progress in [0, 1]
// and is always called with exactly 1 before done. done always runs once.
type Animator interface {
	Animate(d time.Duration, step func(t float64), done func())
}

// Immediate applies every animation synchronously at its final value.
type Immediate struct{}

// Animate implements Animator.
func (Immediate) Animate(_ time.Duration, step func(float64), done func()) {
	if step != nil {
		step(1)
	}
	if done != nil {
		done()
	}
}

// Timeline is a frame-driven Animator. The host calls Advance from its
// frame clock on the UI goroutine.
type Timeline struct {
	running []*animation
}

type animation struct {
	duration time.Duration
	elapsed  time.Duration
	step     func(float64)
	done     func()
}

// Animate implements Animator. Non-positive durations complete inline.
func (tl *Timeline) Animate(d time.Duration, step func(float64), done func()) {
	if step == nil {
		step = func(float64) {}
	}
	if done == nil {
		done = func() {}
	}
	if d <= 0 {
		step(1)
		done()
		return
	}
	tl.running = append(tl.running, &animation{duration: d, step: step, done: done})
}

// Active reports whether any animation is still in flight.
func (tl *Timeline) Active() bool {
	return len(tl.running) > 0
}

// Advance moves every running animation forward by dt. Animations started
// from inside a step or done callback begin on the next call.
func (tl *Timeline) Advance(dt time.Duration) {
	if len(tl.running) == 0 {
		return
	}
	current := tl.running
	tl.running = nil

	var finished []*animation
	for _, a := range current {
		a.elapsed += dt
		progress := float64(a.elapsed) / float64(a.duration)
		if progress >= 1 {
			a.step(1)
			finished = append(finished, a)
			continue
		}
		a.step(easeInOut(progress))
		tl.running = append(tl.running, a)
	}
	for _, a := range finished {
		a.done()
	}
}

func easeInOut(t float64) float64 {
	switch {
	case t <= 0:
		return 0
	case t >= 1:
		return 1
	}
	return t * t * (3 - 2*t)
}
