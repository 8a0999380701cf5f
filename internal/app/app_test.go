package app_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/timebar/internal/adapters/config"
	"go.trai.ch/timebar/internal/adapters/drawing"
	"go.trai.ch/timebar/internal/adapters/snapshot"
	"go.trai.ch/timebar/internal/adapters/telemetry"
	"go.trai.ch/timebar/internal/app"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
	"go.trai.ch/timebar/internal/core/ports/mocks"
	"go.trai.ch/timebar/internal/engine/timebar"
	"go.uber.org/mock/gomock"
)

const monthCount = 10

// writeFixtures writes a ten month trend configuration and a graph with one
// node per month chained by edges.
func writeFixtures(t *testing.T, controller string) (configPath, graphPath string) {
	t.Helper()
	dir := t.TempDir()

	var cfg strings.Builder
	cfg.WriteString("trend:\n  data:\n")
	graph := domain.GraphSnapshot{}
	for i := range monthCount {
		date := fmt.Sprintf("2020-%02d", i+1)
		fmt.Fprintf(&cfg, "    - {date: %q, value: %d}\n", date, i*10)
		graph.Nodes = append(graph.Nodes, domain.Node{ID: fmt.Sprintf("n%d", i), Date: date})
		if i > 0 {
			graph.Edges = append(graph.Edges, domain.Edge{
				Source: fmt.Sprintf("n%d", i-1),
				Target: fmt.Sprintf("n%d", i),
			})
		}
	}
	cfg.WriteString(controller)

	configPath = filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(configPath, []byte(cfg.String()), domain.FilePerm))

	graphPath = filepath.Join(dir, "graph.json")
	require.NoError(t, snapshot.NewStore().Save(graphPath, graph))
	return configPath, graphPath
}

func newApp(t *testing.T, scheduler ports.TickScheduler) (*app.App, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	bars := timebar.NewFactory(log, telemetry.NewNoOpTracer(), scheduler, drawing.NewSurface)
	a := app.New(config.NewLoader(log), snapshot.NewStore(), log, bars, nil)
	return a, log
}

func loadSnapshot(t *testing.T, path string) domain.GraphSnapshot {
	t.Helper()
	snap, err := snapshot.NewStore().Load(path)
	require.NoError(t, err)
	return snap
}

func TestApp_Filter_DefaultRange(t *testing.T) {
	configPath, graphPath := writeFixtures(t, "")
	a, log := newApp(t, nil)
	log.EXPECT().Info("filtered 2020-02 .. 2020-10: 9 nodes, 8 edges")

	out := filepath.Join(t.TempDir(), "out.json")
	outcome, err := a.Filter(context.Background(), app.FilterOptions{
		Source:  app.Source{ConfigPath: configPath, GraphPath: graphPath},
		OutPath: out,
	})
	require.NoError(t, err)

	assert.Equal(t, timebar.ModeFiltered, outcome.Mode)
	assert.Equal(t, domain.DateRange{Min: "2020-02", Max: "2020-10"}, outcome.Dates)

	snap := loadSnapshot(t, out)
	assert.Len(t, snap.Nodes, 9)
	assert.Len(t, snap.Edges, 8)
	assert.Equal(t, "n1", snap.Nodes[0].ID)
}

func TestApp_Filter_ExplicitRangeToStdout(t *testing.T) {
	configPath, graphPath := writeFixtures(t, "")
	a, log := newApp(t, nil)
	log.EXPECT().Info("filtered 2020-01 .. 2020-06: 6 nodes, 5 edges")

	var stdout bytes.Buffer
	a.WithStdout(&stdout)

	outcome, err := a.Filter(context.Background(), app.FilterOptions{
		Source: app.Source{ConfigPath: configPath, GraphPath: graphPath},
		Range:  &domain.NormalizedRange{Start: 0, End: 0.5},
	})
	require.NoError(t, err)
	assert.Equal(t, 6, outcome.Nodes)

	snap, err := snapshot.NewStore().Decode(&stdout)
	require.NoError(t, err)
	assert.Len(t, snap.Nodes, 6)
	assert.Equal(t, "2020-06", snap.Nodes[5].Date)
}

func TestApp_Filter_InvalidRange(t *testing.T) {
	a, _ := newApp(t, nil)

	_, err := a.Filter(context.Background(), app.FilterOptions{
		Range: &domain.NormalizedRange{Start: 0.8, End: 0.2},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrInvalidRange.Error())
}

func TestApp_Filter_RendersBar(t *testing.T) {
	configPath, graphPath := writeFixtures(t, "")
	a, log := newApp(t, nil)
	log.EXPECT().Info(gomock.Any())

	dir := t.TempDir()
	render := filepath.Join(dir, "bar.svg")
	_, err := a.Filter(context.Background(), app.FilterOptions{
		Source:     app.Source{ConfigPath: configPath, GraphPath: graphPath},
		OutPath:    filepath.Join(dir, "out.json"),
		RenderPath: render,
	})
	require.NoError(t, err)

	data, err := os.ReadFile(render)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
}

func TestApp_Filter_UnsupportedRenderFormat(t *testing.T) {
	configPath, graphPath := writeFixtures(t, "")
	a, _ := newApp(t, nil)

	_, err := a.Filter(context.Background(), app.FilterOptions{
		Source:     app.Source{ConfigPath: configPath, GraphPath: graphPath},
		RenderPath: filepath.Join(t.TempDir(), "bar.gif"),
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnsupportedRenderFormat.Error())
}

func TestApp_Filter_MissingGraph(t *testing.T) {
	configPath, _ := writeFixtures(t, "")
	a, _ := newApp(t, nil)

	_, err := a.Filter(context.Background(), app.FilterOptions{
		Source: app.Source{ConfigPath: configPath, GraphPath: filepath.Join(t.TempDir(), "missing.json")},
	})
	require.Error(t, err)
	assert.ErrorContains(t, err, "failed to load graph")
}

func TestApp_Play_RunsToEnd(t *testing.T) {
	configPath, graphPath := writeFixtures(t, "controller:\n  speed: 9\n  frameInterval: 100ms\n")
	a, log := newApp(t, nil)

	logs := &chanLog{ch: make(chan string, 256)}
	log.EXPECT().Info(gomock.Any()).Do(logs.add).AnyTimes()

	fake := clockwork.NewFakeClock()
	a.WithClock(fake)

	out := filepath.Join(t.TempDir(), "out.json")
	done := make(chan struct{})
	var (
		outcome timebar.Outcome
		playErr error
	)
	go func() {
		defer close(done)
		outcome, playErr = a.Play(context.Background(), app.PlayOptions{
			Source:  app.Source{ConfigPath: configPath, GraphPath: graphPath},
			OutPath: out,
		})
	}()

	fake.BlockUntil(1)
	for running := true; running; {
		select {
		case <-done:
			running = false
		default:
			fake.Advance(100 * time.Millisecond)
			time.Sleep(time.Millisecond)
		}
	}

	require.NoError(t, playErr)
	assert.Equal(t, domain.DateRange{Min: "2020-03", Max: "2020-10"}, outcome.Dates)

	snap := loadSnapshot(t, out)
	assert.Len(t, snap.Nodes, 8)
	assert.Equal(t, "n2", snap.Nodes[0].ID)

	lines := logs.lines()
	require.NotEmpty(t, lines)
	assert.Equal(t, "2020-02 .. 2020-10: 9 nodes, 8 edges", lines[0])
	assert.Equal(t, "2020-03 .. 2020-10: 8 nodes, 7 edges", lines[len(lines)-1])
}

func TestApp_Play_StopsOnCancel(t *testing.T) {
	configPath, graphPath := writeFixtures(t, "controller:\n  loop: true\n")
	a, log := newApp(t, nil)
	log.EXPECT().Info(gomock.Any()).AnyTimes()

	fake := clockwork.NewFakeClock()
	a.WithClock(fake)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	out := filepath.Join(t.TempDir(), "out.json")
	go func() {
		_, err := a.Play(ctx, app.PlayOptions{
			Source:  app.Source{ConfigPath: configPath, GraphPath: graphPath},
			OutPath: out,
		})
		done <- err
	}()

	fake.BlockUntil(1)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("play did not stop after cancel")
	}
	assert.FileExists(t, out)
}

func TestApp_Interactive_QuitWritesSnapshot(t *testing.T) {
	configPath, graphPath := writeFixtures(t, "")
	a, _ := newApp(t, nil)
	a.WithTerminalCheck(func() bool { return true })
	a.WithTeaOptions(tea.WithInput(strings.NewReader("q")), tea.WithOutput(io.Discard))

	out := filepath.Join(t.TempDir(), "out.json")
	outcome, err := a.Interactive(context.Background(), app.InteractiveOptions{
		Source:  app.Source{ConfigPath: configPath, GraphPath: graphPath},
		OutPath: out,
	})
	require.NoError(t, err)

	assert.Equal(t, 9, outcome.Nodes)
	assert.Len(t, loadSnapshot(t, out).Nodes, 9)
}

func TestApp_Interactive_RequiresTerminal(t *testing.T) {
	a, _ := newApp(t, nil)
	a.WithTerminalCheck(func() bool { return false })

	_, err := a.Interactive(context.Background(), app.InteractiveOptions{})
	require.ErrorIs(t, err, domain.ErrNotATerminal)
}

// chanLog collects log lines written from the event loop goroutine.
type chanLog struct {
	ch chan string
}

func (c *chanLog) add(msg string) {
	c.ch <- msg
}

func (c *chanLog) lines() []string {
	var out []string
	for {
		select {
		case l := <-c.ch:
			out = append(out, l)
		default:
			return out
		}
	}
}
