// Package graph provides an in-memory host graph with an event bus.
package graph

import (
	"sync"

	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
)

// EventAfterChangeData is emitted after ChangeData replaced the live data.
const EventAfterChangeData = "afterchangedata"

// Graph is an in-memory graph holding one live snapshot.
// It implements ports.GraphDataSource and ports.EventEmitter.
type Graph struct {
	mu       sync.RWMutex
	data     domain.GraphSnapshot
	renderer domain.RendererKind
	handlers map[string][]ports.Handler
	changes  int
}

// New creates a graph with data as its live snapshot.
func New(data domain.GraphSnapshot, renderer domain.RendererKind) *Graph {
	return &Graph{
		data:     data.Clone(),
		renderer: renderer,
		handlers: make(map[string][]ports.Handler),
	}
}

// On registers handler for the named event.
func (g *Graph) On(event string, handler ports.Handler) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handlers[event] = append(g.handlers[event], handler)
}

// Off removes every handler registered for the named event.
func (g *Graph) Off(event string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.handlers, event)
}

// Emit invokes the handlers registered for event in registration order.
// Handlers run outside the lock and may call back into the graph.
func (g *Graph) Emit(event string, payload any) {
	g.mu.RLock()
	handlers := append([]ports.Handler(nil), g.handlers[event]...)
	g.mu.RUnlock()

	for _, h := range handlers {
		h(payload)
	}
}

// Save returns a copy of the live snapshot.
func (g *Graph) Save() domain.GraphSnapshot {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.data.Clone()
}

// ChangeData replaces the live snapshot and emits EventAfterChangeData.
func (g *Graph) ChangeData(snapshot domain.GraphSnapshot) {
	g.mu.Lock()
	g.data = snapshot.Clone()
	g.changes++
	g.mu.Unlock()

	g.Emit(EventAfterChangeData, snapshot)
}

// RendererKind reports the backend the graph renders with.
func (g *Graph) RendererKind() domain.RendererKind {
	return g.renderer
}

// Render marks the graph as rendered and emits domain.EventAfterRender.
func (g *Graph) Render() {
	g.Emit(domain.EventAfterRender, nil)
}

// Changes returns how many times ChangeData was called.
func (g *Graph) Changes() int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.changes
}
