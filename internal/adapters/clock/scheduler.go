package clock

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/jonboulle/clockwork"
)

// TickerScheduler delivers ticks from a clock onto a Loop.
type TickerScheduler struct {
	clock clockwork.Clock
	loop  *Loop
}

// NewTickerScheduler creates a scheduler posting to loop.
func NewTickerScheduler(clock clockwork.Clock, loop *Loop) *TickerScheduler {
	return &TickerScheduler{clock: clock, loop: loop}
}

// Every posts fn to the loop once per interval. A tick that is still queued
// when cancel runs is dropped, so fn never runs after cancel returns on the loop.
func (s *TickerScheduler) Every(interval time.Duration, fn func()) func() {
	ticker := s.clock.NewTicker(interval)
	stop := make(chan struct{})

	var (
		once    sync.Once
		stopped atomic.Bool
	)

	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-s.loop.Done():
				return
			case <-ticker.Chan():
				s.loop.Post(func() {
					if !stopped.Load() {
						fn()
					}
				})
			}
		}
	}()

	return func() {
		once.Do(func() {
			stopped.Store(true)
			close(stop)
		})
	}
}
