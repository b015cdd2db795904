package field

import (
	"context"
	"sync"
	"time"
)

// Scheduler is a request-next-frame primitive. fn receives the host's frame
// timestamp. The returned cancel drops the request if it has not fired.
type Scheduler interface {
	RequestFrame(fn func(now time.Duration)) (cancel func())
}

// Loop calls frame once per display frame until stopped.
type Loop struct {
	sched Scheduler
	frame func(dt time.Duration)

	mu      sync.Mutex
	last    time.Duration
	hasLast bool
	cancel  func()
	started bool
	stopped bool
	done    chan struct{}
}

// NewLoop returns a stopped loop driving frame from s.
func NewLoop(s Scheduler, frame func(dt time.Duration)) *Loop {
	return &Loop{sched: s, frame: frame, done: make(chan struct{})}
}

// Start runs the first frame right away and keeps rescheduling. Calling it
// more than once does nothing.
func (l *Loop) Start() {
	l.mu.Lock()
	if l.started || l.stopped {
		l.mu.Unlock()
		return
	}
	l.started = true
	l.mu.Unlock()

	l.frame(0)
	l.schedule()
}

func (l *Loop) schedule() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.cancel = l.sched.RequestFrame(l.tick)
}

func (l *Loop) tick(now time.Duration) {
	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	var dt time.Duration
	if l.hasLast {
		dt = now - l.last
	}
	l.last, l.hasLast = now, true
	l.cancel = nil
	l.mu.Unlock()

	l.frame(dt)
	l.schedule()
}

// Stop cancels the pending frame. No frame starts after Stop returns.
func (l *Loop) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stopped {
		return
	}
	l.stopped = true
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	close(l.done)
}

// Done is closed once the loop is stopped.
func (l *Loop) Done() <-chan struct{} { return l.done }

// Run starts the loop and blocks until ctx is done or the loop is stopped.
func (l *Loop) Run(ctx context.Context) error {
	l.Start()
	select {
	case <-ctx.Done():
		l.Stop()
		return ctx.Err()
	case <-l.done:
		return nil
	}
}

// FrameQueue is a Scheduler for hosts that own their frame clock (a ticker,
// a game engine Update). The host calls Fire once per frame.
type FrameQueue struct {
	pending func(time.Duration)
	seq     uint64
}

func (q *FrameQueue) RequestFrame(fn func(now time.Duration)) func() {
	q.seq++
	seq := q.seq
	q.pending = fn
	return func() {
		if q.seq == seq {
			q.pending = nil
		}
	}
}

// Fire runs the pending frame callback, if any.
func (q *FrameQueue) Fire(now time.Duration) bool {
	fn := q.pending
	if fn == nil {
		return false
	}
	q.pending = nil
	fn(now)
	return true
}

// Pending reports whether a frame was requested and not yet fired.
func (q *FrameQueue) Pending() bool { return q.pending != nil }
