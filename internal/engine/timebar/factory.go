package timebar

import (
	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
)

// Factory builds time bars sharing one set of adapters.
type Factory struct {
	logger    ports.Logger
	tracer    ports.Tracer
	scheduler ports.TickScheduler
	surfaces  ports.SurfaceFactory
}

// NewFactory creates a Factory. A nil scheduler leaves playback unavailable
// unless a time bar is given one with WithScheduler.
func NewFactory(
	logger ports.Logger,
	tracer ports.Tracer,
	scheduler ports.TickScheduler,
	surfaces ports.SurfaceFactory,
) *Factory {
	return &Factory{
		logger:    logger,
		tracer:    tracer,
		scheduler: scheduler,
		surfaces:  surfaces,
	}
}

// New creates a time bar over graph with the factory's adapters applied
// first, so opts can override any of them.
func (f *Factory) New(cfg domain.Config, graph ports.GraphDataSource, opts ...Option) *TimeBar {
	base := []Option{
		WithLogger(f.logger),
		WithTracer(f.tracer),
		WithSurfaceFactory(f.surfaces),
	}
	if f.scheduler != nil {
		base = append(base, WithScheduler(f.scheduler))
	}
	return New(cfg, graph, append(base, opts...)...)
}
