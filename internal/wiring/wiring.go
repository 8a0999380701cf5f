// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/timebar/internal/adapters/clock"
	_ "go.trai.ch/timebar/internal/adapters/config"
	_ "go.trai.ch/timebar/internal/adapters/drawing"
	_ "go.trai.ch/timebar/internal/adapters/logger"
	_ "go.trai.ch/timebar/internal/adapters/snapshot"
	_ "go.trai.ch/timebar/internal/adapters/telemetry"
	_ "go.trai.ch/timebar/internal/adapters/watcher"
	// Register app and engine nodes.
	_ "go.trai.ch/timebar/internal/app"
	_ "go.trai.ch/timebar/internal/engine/timebar"
)
