package tui_test

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/timebar/internal/adapters/drawing"
	"go.trai.ch/timebar/internal/adapters/graph"
	"go.trai.ch/timebar/internal/adapters/tui"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/engine/timebar"
)

const trackWidth = 40

func newModel(t *testing.T) (*tui.Model, *timebar.TimeBar, *tui.Scheduler) {
	t.Helper()

	series := make(domain.Series, 10)
	snap := domain.GraphSnapshot{}
	for i := range series {
		date := fmt.Sprintf("2020-%02d", i+1)
		series[i] = domain.Record{Date: date, Value: float64(i)}
		snap.Nodes = append(snap.Nodes, domain.Node{ID: fmt.Sprint(i), Date: date})
	}

	cfg := domain.DefaultConfig()
	cfg.Trend.Data = series

	sched := tui.NewScheduler()
	g := graph.New(snap, domain.RendererSVG)
	bar := timebar.New(cfg, g,
		timebar.WithSurfaceFactory(drawing.NewSurface),
		timebar.WithScheduler(sched),
	)
	require.NoError(t, bar.Init(context.Background()))

	m := tui.NewModel(bar, sched)
	g.Render()

	updated, _ := m.Update(tea.WindowSizeMsg{Width: trackWidth + 2*tui.Margin, Height: 10})
	return updated.(*tui.Model), bar, sched
}

func TestModel_View(t *testing.T) {
	m, _, _ := newModel(t)

	view := m.View()
	assert.Contains(t, view, "timebar trend")
	assert.Contains(t, view, "2020-02")
	assert.Contains(t, view, "2020-10")
	assert.Contains(t, view, "9 nodes, 0 edges [2020-02 .. 2020-10]")
	assert.Equal(t, trackWidth, m.Width)
}

func TestModel_ArrowKeysNudge(t *testing.T) {
	m, bar, _ := newModel(t)

	m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.InDelta(t, 0, bar.Value().Start, 1e-9)
	assert.InDelta(t, 0.8, bar.Value().End, 1e-9)

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 1.0, bar.Value().End)
	assert.Equal(t, "2020-10", bar.Labels().Max)
}

func TestModel_SpaceTogglesPlayback(t *testing.T) {
	m, bar, sched := newModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	require.True(t, bar.Playing())
	assert.NotNil(t, cmd)
	assert.Equal(t, 1, sched.Active())
	assert.Contains(t, m.View(), "playing")

	before := bar.Value()
	_, cmd = m.Update(tui.TickMsg{ID: 0})
	assert.Greater(t, bar.Value().Start, before.Start)
	assert.NotNil(t, cmd, "the tick is re-armed while playing")

	m.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.False(t, bar.Playing())
	assert.Zero(t, sched.Active())
}

func TestModel_MouseDragMovesHandle(t *testing.T) {
	m, bar, _ := newModel(t)

	startCol := tui.Margin + int(0.1*trackWidth)
	m.Update(tea.MouseMsg{X: startCol, Y: tui.TrackRow, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: tui.Margin + 20, Y: tui.TrackRow, Action: tea.MouseActionMotion})
	m.Update(tea.MouseMsg{X: tui.Margin + 20, Y: tui.TrackRow, Action: tea.MouseActionRelease})

	assert.InDelta(t, 20.5/trackWidth, bar.Value().Start, 1e-9)
	assert.InDelta(t, 0.9, bar.Value().End, 1e-9)
}

func TestModel_MouseOutsideTrackIsIgnored(t *testing.T) {
	m, bar, _ := newModel(t)

	before := bar.Value()
	m.Update(tea.MouseMsg{X: tui.Margin + 5, Y: tui.TrackRow + 2, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m.Update(tea.MouseMsg{X: tui.Margin + 30, Y: tui.TrackRow + 2, Action: tea.MouseActionMotion})
	assert.Equal(t, before, bar.Value())
}

func TestModel_Quit(t *testing.T) {
	m, _, _ := newModel(t)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}
