package app

import (
	"context"

	"go.trai.ch/timebar/internal/adapters/clock"
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/engine/timebar"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// PlayOptions configures a playback run.
type PlayOptions struct {
	Source
	// OutPath receives the snapshot left by the last tick.
	OutPath string
	// From overrides the range playback starts from.
	From *domain.NormalizedRange
}

// Play runs the play controller until playback ends or ctx is canceled and
// writes the graph as the last tick left it. Looping playback only ends with ctx.
func (a *App) Play(ctx context.Context, opts PlayOptions) (timebar.Outcome, error) {
	if opts.From != nil && !opts.From.Valid() {
		return timebar.Outcome{}, zerr.With(zerr.With(domain.ErrInvalidRange, "start", opts.From.Start), "end", opts.From.End)
	}

	g, gctx := errgroup.WithContext(ctx)
	playCtx, stop := context.WithCancel(gctx)
	defer stop()

	loop := clock.NewLoop()
	sched := clock.NewTickerScheduler(a.clock, loop)

	g.Go(func() error {
		return loop.Run(playCtx)
	})

	var s *session
	var setupErr error
	err := loop.Do(playCtx, func() {
		s, setupErr = a.open(ctx, opts.Source, "", timebar.WithScheduler(sched))
		if setupErr != nil {
			return
		}

		last := domain.DateRange{}
		s.bar.OnFilter(func(o timebar.Outcome) {
			if o.Dates == last {
				return
			}
			last = o.Dates
			a.logger.Info(describe(o))
		})
		s.bar.OnStateChange(func(state domain.SelectionState) {
			if state == domain.StateIdle {
				stop()
			}
		})

		s.start()
		if opts.From != nil {
			setupErr = s.bar.SetRange(*opts.From)
			if setupErr != nil {
				return
			}
		}
		setupErr = s.bar.Play()
	})
	if err == nil {
		err = setupErr
	}
	if err != nil {
		stop()
		_ = g.Wait()
		return timebar.Outcome{}, err
	}

	<-playCtx.Done()
	if err := g.Wait(); err != nil {
		return timebar.Outcome{}, err
	}

	// The loop has stopped, so the time bar is no longer touched concurrently.
	s.bar.Pause()
	defer s.bar.Destroy()

	if err := a.writeSnapshot(s, opts.OutPath); err != nil {
		return timebar.Outcome{}, err
	}
	return s.last, nil
}
