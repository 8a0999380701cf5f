package app

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"go.trai.ch/timebar/internal/adapters/watcher"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// WatchOptions configures a watch session. OutPath must name a file.
type WatchOptions struct {
	FilterOptions
	// Window is the debounce window. Zero uses watcher.DefaultDebounceWindow.
	Window time.Duration
}

// Watch runs a filter pass and repeats it whenever the configuration or the
// graph changes, until ctx is canceled. A failed pass is logged and the
// session keeps watching.
func (a *App) Watch(ctx context.Context, opts WatchOptions) error {
	if opts.OutPath == "" || opts.OutPath == "-" {
		return domain.ErrWatchOutputRequired
	}

	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = domain.ConfigFileName
	}
	watched := []string{configPath, opts.GraphPath}
	if sameFile(opts.OutPath, opts.GraphPath) {
		return zerr.With(domain.ErrWatchOverwritesGraph, "path", opts.OutPath)
	}

	pass := func() {
		if _, err := a.Filter(ctx, opts.FilterOptions); err != nil {
			a.logger.Error(err)
		}
	}
	pass()

	w, err := a.newWatcher()
	if err != nil {
		return zerr.Wrap(err, "failed to create watcher")
	}
	if err := w.Start(ctx, watched...); err != nil {
		return zerr.Wrap(err, "failed to start watcher")
	}

	window := opts.Window
	if window <= 0 {
		window = watcher.DefaultDebounceWindow
	}

	passes := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(window, func(paths []string) {
		select {
		case passes <- paths:
		default:
		}
	})

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		<-gctx.Done()
		return w.Stop()
	})

	g.Go(func() error {
		for event := range w.Events() {
			debouncer.Add(event.Path)
		}
		return nil
	})

	g.Go(func() error {
		for {
			select {
			case <-gctx.Done():
				return nil
			case paths := <-passes:
				a.logger.Info("changed: " + strings.Join(paths, ", "))
				pass()
			}
		}
	})

	return g.Wait()
}

func sameFile(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	return errA == nil && errB == nil && absA == absB
}
