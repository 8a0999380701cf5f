// Package tui implements the interactive terminal time bar.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/timebar/internal/core/ports"
)

var _ ports.TickScheduler = (*Scheduler)(nil)

// TickMsg delivers one scheduler tick to the model.
type TickMsg struct {
	ID int
}

type timer struct {
	interval time.Duration
	fn       func()
}

// Scheduler runs periodic tasks as bubbletea messages, so every tick is
// handled on the program's update loop. It must only be used from Update.
type Scheduler struct {
	next   int
	timers map[int]timer
	queued []tea.Cmd
}

// NewScheduler creates an empty scheduler.
func NewScheduler() *Scheduler {
	return &Scheduler{timers: make(map[int]timer)}
}

// Every registers fn to run once per interval. The first tick is armed by
// the next call to Pending.
func (s *Scheduler) Every(interval time.Duration, fn func()) func() {
	id := s.next
	s.next++
	s.timers[id] = timer{interval: interval, fn: fn}
	s.queued = append(s.queued, tick(id, interval))

	return func() { delete(s.timers, id) }
}

// Fire runs the task behind msg and re-arms it unless it was canceled.
func (s *Scheduler) Fire(msg TickMsg) {
	t, ok := s.timers[msg.ID]
	if !ok {
		return
	}
	t.fn()
	if _, ok := s.timers[msg.ID]; ok {
		s.queued = append(s.queued, tick(msg.ID, t.interval))
	}
}

// Pending returns the commands arming every tick scheduled since the last call.
func (s *Scheduler) Pending() tea.Cmd {
	cmds := s.queued
	s.queued = nil
	return tea.Batch(cmds...)
}

// Active returns the number of registered tasks.
func (s *Scheduler) Active() int {
	return len(s.timers)
}

func tick(id int, interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return TickMsg{ID: id}
	})
}
