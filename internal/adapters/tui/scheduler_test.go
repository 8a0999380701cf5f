package tui_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/timebar/internal/adapters/tui"
)

func TestScheduler_FireRearms(t *testing.T) {
	s := tui.NewScheduler()

	calls := 0
	s.Every(time.Millisecond, func() { calls++ })
	assert.NotNil(t, s.Pending())
	assert.Nil(t, s.Pending(), "pending commands are handed out once")

	s.Fire(tui.TickMsg{ID: 0})
	s.Fire(tui.TickMsg{ID: 0})
	assert.Equal(t, 2, calls)
	assert.NotNil(t, s.Pending())
}

func TestScheduler_CancelStopsTicks(t *testing.T) {
	s := tui.NewScheduler()

	calls := 0
	var cancel func()
	cancel = s.Every(time.Millisecond, func() {
		calls++
		cancel()
	})
	_ = s.Pending()

	s.Fire(tui.TickMsg{ID: 0})
	assert.Equal(t, 1, calls)
	assert.Nil(t, s.Pending(), "a task canceled from its own tick is not re-armed")

	s.Fire(tui.TickMsg{ID: 0})
	assert.Equal(t, 1, calls)
	assert.Zero(t, s.Active())

	cancel()
}

func TestScheduler_UnknownTick(t *testing.T) {
	s := tui.NewScheduler()
	s.Fire(tui.TickMsg{ID: 42})
	assert.Nil(t, s.Pending())
}
