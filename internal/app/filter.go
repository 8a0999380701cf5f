package app

import (
	"context"

	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/engine/timebar"
	"go.trai.ch/zerr"
)

// FilterOptions configures a single filter pass.
type FilterOptions struct {
	Source
	// OutPath receives the filtered snapshot. Empty or "-" writes to stdout.
	OutPath string
	// RenderPath, when set, receives the drawn time bar as .svg or .png.
	RenderPath string
	// Range replaces the configured default range after the first pass.
	Range *domain.NormalizedRange
}

// Filter runs the first filter pass over the configured default range, or
// over Range when given, and writes the filtered graph.
func (a *App) Filter(ctx context.Context, opts FilterOptions) (timebar.Outcome, error) {
	if opts.Range != nil && !opts.Range.Valid() {
		return timebar.Outcome{}, zerr.With(zerr.With(domain.ErrInvalidRange, "start", opts.Range.Start), "end", opts.Range.End)
	}

	s, err := a.open(ctx, opts.Source, opts.RenderPath)
	if err != nil {
		return timebar.Outcome{}, err
	}
	defer s.bar.Destroy()

	s.start()
	if opts.Range != nil {
		if err := s.bar.SetRange(*opts.Range); err != nil {
			return timebar.Outcome{}, err
		}
	}

	if s.passes > 0 {
		a.logger.Info("filtered " + describe(s.last))
	}

	if err := a.writeSnapshot(s, opts.OutPath); err != nil {
		return timebar.Outcome{}, err
	}

	if opts.RenderPath != "" {
		if err := renderBar(s, opts.RenderPath); err != nil {
			return timebar.Outcome{}, err
		}
	}

	return s.last, nil
}
