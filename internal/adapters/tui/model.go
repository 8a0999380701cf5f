package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/timebar/internal/engine/timebar"
)

const (
	// Margin is the number of columns left of the track.
	Margin = 2
	// TrackRow is the screen row the track is drawn on.
	TrackRow = 1

	defaultTrackWidth = 60
	minTrackWidth     = 10
)

// Model is the bubbletea model of the interactive time bar. It translates
// terminal columns into time bar pointer coordinates.
type Model struct {
	bar   *timebar.TimeBar
	sched *Scheduler

	// Width is the number of track columns.
	Width int
	// Outcome is the result of the latest filter pass.
	Outcome *timebar.Outcome
	// Err is the latest error returned by the time bar.
	Err error

	dragging bool
}

// NewModel creates a model driving bar. sched must be the scheduler bar
// plays with, so that ticks come back through Update.
func NewModel(bar *timebar.TimeBar, sched *Scheduler) *Model {
	m := &Model{
		bar:   bar,
		sched: sched,
		Width: defaultTrackWidth,
	}
	bar.OnFilter(func(o timebar.Outcome) { m.Outcome = &o })
	return m
}

// Init arms any tick scheduled before the program started.
func (m *Model) Init() tea.Cmd {
	return m.sched.Pending()
}

// Update handles keys, mouse gestures, resizes and scheduler ticks.
//
//nolint:cyclop // one case per input kind
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			m.bar.Pause()
			return m, tea.Quit
		case "left", "h":
			m.setErr(m.bar.Nudge(-m.step()))
		case "right", "l":
			m.setErr(m.bar.Nudge(m.step()))
		case " ", "p":
			m.setErr(m.bar.TogglePlay())
		}

	case tea.MouseMsg:
		m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.Width = max(msg.Width-2*Margin, minTrackWidth)

	case TickMsg:
		m.sched.Fire(msg)
	}

	return m, m.sched.Pending()
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft || msg.Y != TrackRow {
			return
		}
		x, y := m.pointer(msg.X)
		m.dragging = m.bar.PointerDown(x, y)
	case tea.MouseActionMotion:
		if m.dragging {
			x, y := m.pointer(msg.X)
			m.bar.PointerMove(x, y)
		}
	case tea.MouseActionRelease:
		if m.dragging {
			m.bar.PointerUp()
			m.dragging = false
		}
	}
}

// pointer maps a terminal column to time bar surface coordinates on the
// middle of the track. A column holding a handle maps exactly onto it.
func (m *Model) pointer(col int) (x, y float64) {
	l := m.bar.Layout()
	y = l.Track.Y + l.Track.Height/2

	value := m.bar.Value()
	cell := col - Margin
	switch {
	case m.sliderType() && cell == m.column(value.Start):
		return l.XAt(value.Start), y
	case m.sliderType() && cell == m.column(value.End):
		return l.XAt(value.End), y
	}

	pos := (float64(cell) + 0.5) / float64(m.Width)
	return l.XAt(min(max(pos, 0), 1)), y
}

// column returns the track column holding the normalized position pos.
func (m *Model) column(pos float64) int {
	return min(max(int(pos*float64(m.Width)), 0), m.Width-1)
}

// step returns the width of one record on the track.
func (m *Model) step() float64 {
	n := m.bar.Series().Len()
	if n == 0 {
		return 0
	}
	return 1 / float64(n)
}

func (m *Model) sliderType() bool {
	return m.bar.Type().UsesSlider()
}

func (m *Model) setErr(err error) {
	if err != nil {
		m.Err = err
	}
}

// Summary describes the latest filter pass.
func (m *Model) Summary() string {
	if m.Outcome == nil {
		return "waiting for the first filter pass"
	}
	o := m.Outcome
	if o.Mode != timebar.ModeFiltered {
		return fmt.Sprintf("%s [%s .. %s]", o.Mode, o.Dates.Min, o.Dates.Max)
	}
	return fmt.Sprintf("%d nodes, %d edges [%s .. %s]", o.Nodes, o.Edges, o.Dates.Min, o.Dates.Max)
}
