// Package ports defines the core interfaces for the application.
package ports

import "go.trai.ch/timebar/internal/core/domain"

// Handler receives the payload of an emitted event.
type Handler func(payload any)

// GraphDataSource is the narrow view of the host graph the time bar consumes.
//
//go:generate go run go.uber.org/mock/mockgen -source=graph.go -destination=mocks/mock_graph.go -package=mocks
type GraphDataSource interface {
	// On subscribes handler to the named graph event, e.g. domain.EventAfterRender.
	On(event string, handler Handler)

	// Save returns a full snapshot of the graph's current data.
	Save() domain.GraphSnapshot

	// ChangeData replaces the graph's live data with snapshot.
	ChangeData(snapshot domain.GraphSnapshot)

	// RendererKind reports the backend the graph renders with.
	RendererKind() domain.RendererKind
}

// EventEmitter is implemented by hosts that let other components broadcast
// events on their bus. The time bar re-emits domain.EventValueChange through it.
type EventEmitter interface {
	Emit(event string, payload any)
}
