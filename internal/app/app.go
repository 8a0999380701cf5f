// Package app implements the application layer for timebar.
package app

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/timebar/internal/adapters/detector"
	"go.trai.ch/timebar/internal/adapters/drawing"
	"go.trai.ch/timebar/internal/adapters/graph"
	"go.trai.ch/timebar/internal/adapters/watcher"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
	"go.trai.ch/timebar/internal/engine/timebar"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	store        ports.SnapshotStore
	logger       ports.Logger
	bars         *timebar.Factory
	newWatcher   watcher.Factory
	clock        clockwork.Clock
	stdout       io.Writer
	interactive  func() bool
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	store ports.SnapshotStore,
	log ports.Logger,
	bars *timebar.Factory,
	newWatcher watcher.Factory,
) *App {
	return &App{
		configLoader: loader,
		store:        store,
		logger:       log,
		bars:         bars,
		newWatcher:   newWatcher,
		clock:        clockwork.NewRealClock(),
		stdout:       os.Stdout,
		interactive:  detector.Interactive,
	}
}

// WithClock replaces the clock driving playback.
// This is primarily used for testing with a fake clock.
func (a *App) WithClock(c clockwork.Clock) *App {
	a.clock = c
	return a
}

// WithStdout sets where snapshots go when no output file is given.
func (a *App) WithStdout(w io.Writer) *App {
	a.stdout = w
	return a
}

// WithTerminalCheck replaces the check run before an interactive session.
func (a *App) WithTerminalCheck(check func() bool) *App {
	a.interactive = check
	return a
}

// WithTeaOptions adds bubbletea program options to the App.
// This is primarily used for testing to disable input/output.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// Source names the files a time bar session reads.
type Source struct {
	// ConfigPath is the time bar configuration. Empty searches upwards for
	// domain.ConfigFileName.
	ConfigPath string
	// GraphPath is the JSON graph snapshot to filter.
	GraphPath string
}

// session is one time bar lifetime over one graph.
type session struct {
	cfg    *domain.Config
	graph  *graph.Graph
	bar    *timebar.TimeBar
	last   timebar.Outcome
	passes int
}

// open loads src and initializes a time bar over it without rendering the
// graph, so callers can subscribe before the first filter pass.
func (a *App) open(ctx context.Context, src Source, renderPath string, opts ...timebar.Option) (*session, error) {
	cfg, err := a.configLoader.Load(src.ConfigPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	if renderPath != "" {
		kind, err := drawing.KindForPath(renderPath)
		if err != nil {
			return nil, zerr.With(err, "path", renderPath)
		}
		cfg.Renderer = kind
	}

	snap, err := a.store.Load(src.GraphPath)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load graph")
	}

	s := &session{cfg: cfg, graph: graph.New(snap, cfg.Renderer)}
	s.bar = a.bars.New(*cfg, s.graph, opts...)
	s.bar.OnFilter(func(o timebar.Outcome) {
		s.last = o
		s.passes++
	})

	if err := s.bar.Init(ctx); err != nil {
		return nil, zerr.Wrap(err, "failed to initialize time bar")
	}
	return s, nil
}

// start signals that the host graph has rendered, which runs the first
// filter pass over the default range.
func (s *session) start() {
	s.graph.Render()
}

// writeSnapshot saves the live graph to path, or encodes it to stdout when
// path is empty or "-".
func (a *App) writeSnapshot(s *session, path string) error {
	snap := s.graph.Save()
	if path == "" || path == "-" {
		return a.store.Encode(a.stdout, snap)
	}
	return a.store.Save(path, snap)
}

// renderBar encodes the time bar to path.
func renderBar(s *session, path string) error {
	//nolint:gosec // Path is chosen by the user
	f, err := os.Create(path)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}

	if err := s.bar.Render(f); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRenderFailed.Error()), "path", path)
	}
	return nil
}

func describe(o timebar.Outcome) string {
	if o.Mode != timebar.ModeFiltered {
		return fmt.Sprintf("%s .. %s handled by %s", o.Dates.Min, o.Dates.Max, o.Mode)
	}
	return fmt.Sprintf("%s .. %s: %d nodes, %d edges", o.Dates.Min, o.Dates.Max, o.Nodes, o.Edges)
}
