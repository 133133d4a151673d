// Package eventloop provides the deferred-delivery queue the focus
// protocol depends on: events posted to the loop are delivered later,
// in FIFO order, from the loop's own goroutine rather than from inside
// the caller's stack.
package eventloop

import (
	"sync"

	"github.com/elizafairlady/go-libgui/event"
)

// Target receives events dispatched by the loop.
type Target interface {
	Event(e event.Event)
}

type posted struct {
	target Target
	ev     event.Event
}

// Loop is a FIFO queue of posted events. Post may be called from any
// goroutine; DispatchPending must be called from the single UI
// goroutine.
type Loop struct {
	mu    sync.Mutex
	queue []posted
	wake  chan struct{}
}

// New returns an empty loop.
func New() *Loop {
	return &Loop{wake: make(chan struct{}, 1)}
}

// Post enqueues e for later delivery to target. Posts with a nil
// target are dropped.
func (l *Loop) Post(target Target, e event.Event) {
	if target == nil {
		return
	}
	l.mu.Lock()
	l.queue = append(l.queue, posted{target, e})
	l.mu.Unlock()
	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// funcTarget adapts a deferred function call to the Target interface.
type funcTarget func()

func (f funcTarget) Event(event.Event) { f() }

// PostFunc enqueues f to run during a later DispatchPending, after
// everything already queued. It lets other goroutines hand work to
// the UI goroutine.
func (l *Loop) PostFunc(f func()) {
	if f == nil {
		return
	}
	l.Post(funcTarget(f), &event.Generic{Type: event.Invalid})
}

// Wake returns a channel that receives after Post enqueues work.
// Signals are coalesced: one receive may cover several posts, so the
// receiver should always drain with DispatchPending.
func (l *Loop) Wake() <-chan struct{} {
	return l.wake
}

// Pending returns the number of queued events.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

// DispatchPending delivers every queued event in posting order and
// returns how many were delivered. Events posted by handlers during
// dispatch are queued behind the current batch and delivered in the
// same call.
func (l *Loop) DispatchPending() int {
	n := 0
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return n
		}
		p := l.queue[0]
		l.queue = l.queue[1:]
		l.mu.Unlock()

		p.target.Event(p.ev)
		n++
	}
}
