// Package debounce provides a per-owner registry of one-shot timers keyed
// by identifier. Scheduling an identifier again replaces its pending
// timer, so only the last call within a quiet period fires.
package debounce

import (
	"sync"
	"time"
)

// Registry holds pending timers for one owner. The zero value is ready to
// use. Stop the registry when the owner goes away.
type Registry struct {
	mu      sync.Mutex
	timers  map[string]*entry
	seq     uint64
	stopped bool
}

type entry struct {
	timer *time.Timer
	seq   uint64
}

// Throttle runs fn on its own goroutine after d unless id is scheduled
// again first. It reports false when the registry has been stopped.
func (r *Registry) Throttle(id string, d time.Duration, fn func()) bool {
	if fn == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.stopped {
		return false
	}
	if r.timers == nil {
		r.timers = make(map[string]*entry)
	}
	if prev, ok := r.timers[id]; ok {
		prev.timer.Stop()
	}

	r.seq++
	e := &entry{seq: r.seq}
	e.timer = time.AfterFunc(d, func() {
		r.mu.Lock()
		cur, ok := r.timers[id]
		if !ok || cur.seq != e.seq {
			r.mu.Unlock()
			return
		}
		delete(r.timers, id)
		r.mu.Unlock()
		fn()
	})
	r.timers[id] = e
	return true
}

// Cancel drops the pending timer for id and reports whether one existed.
func (r *Registry) Cancel(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	e, ok := r.timers[id]
	if !ok {
		return false
	}
	e.timer.Stop()
	delete(r.timers, id)
	return true
}

// Pending reports whether id has a timer waiting to fire.
func (r *Registry) Pending(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.timers[id]
	return ok
}

// Stop cancels every pending timer. Later calls to Throttle are refused.
func (r *Registry) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, e := range r.timers {
		e.timer.Stop()
		delete(r.timers, id)
	}
	r.stopped = true
}
