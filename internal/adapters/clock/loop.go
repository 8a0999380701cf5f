// Package clock provides the event loop the time bar runs on and the
// tick scheduler that drives playback.
package clock

import (
	"context"
	"sync"

	"go.trai.ch/zerr"
)

const queueSize = 64

// ErrLoopStopped is returned when work is posted to a loop that is no longer running.
var ErrLoopStopped = zerr.New("event loop stopped")

// Loop runs posted functions one at a time on the goroutine that calls Run.
// Everything that touches a time bar is posted here, so the time bar itself
// needs no locking.
type Loop struct {
	queue chan func()
	done  chan struct{}
	once  sync.Once
}

// NewLoop creates a loop that is not yet running.
func NewLoop() *Loop {
	return &Loop{
		queue: make(chan func(), queueSize),
		done:  make(chan struct{}),
	}
}

// Post queues fn for execution. It reports false once the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do runs fn on the loop and waits for it to return.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return ErrLoopStopped
	}

	select {
	case <-finished:
		return nil
	case <-l.done:
		return ErrLoopStopped
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run dispatches queued functions until ctx is canceled.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case fn := <-l.queue:
			fn()
		}
	}
}

// Done is closed once Run has returned.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

func (l *Loop) stop() {
	l.once.Do(func() { close(l.done) })
}
