package app

import (
	"context"

	"go.trai.ch/timebar/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/timebar/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

// EnableTracing installs a span logging tracer provider. The returned func
// flushes and shuts it down.
func (c *Components) EnableTracing() func(context.Context) error {
	return telemetry.Setup(c.Logger)
}
