package refresh

// Loop is the task queue of the UI-owning goroutine. Controls post
// deferred work here instead of running it inside an observation callback;
// the host drains it once it has finished handling the current event.
//
// A Loop is not safe for concurrent use.
type Loop struct {
	queue []func()
}

// Post appends fn to the queue. Nil functions are ignored.
func (l *Loop) Post(fn func()) {
	if l == nil || fn == nil {
		return
	}
	l.queue = append(l.queue, fn)
}

// Len returns the number of pending tasks.
func (l *Loop) Len() int {
	if l == nil {
		return 0
	}
	return len(l.queue)
}

// Drain runs queued tasks in FIFO order, including tasks posted while
// draining, and returns how many ran.
func (l *Loop) Drain() int {
	if l == nil {
		return 0
	}
	ran := 0
	for len(l.queue) > 0 {
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		fn()
		ran++
	}
	l.queue = nil
	return ran
}
