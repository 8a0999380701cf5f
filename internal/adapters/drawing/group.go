package drawing

import (
	"slices"
	"sync"

	"go.trai.ch/timebar/internal/core/domain"
	"go.trai.ch/timebar/internal/core/ports"
)

// Group is an ordered set of named shapes with its own event listeners.
type Group struct {
	name string

	mu       sync.RWMutex
	shapes   []domain.Shape
	index    map[string]int
	handlers map[string][]ports.Handler
}

func newGroup(name string) *Group {
	return &Group{
		name:     name,
		index:    make(map[string]int),
		handlers: make(map[string][]ports.Handler),
	}
}

// Name returns the group name.
func (g *Group) Name() string {
	return g.name
}

// SetShape adds shape, or replaces the shape with the same name in place.
func (g *Group) SetShape(shape domain.Shape) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if i, ok := g.index[shape.Name]; ok {
		g.shapes[i] = shape
		return
	}
	g.index[shape.Name] = len(g.shapes)
	g.shapes = append(g.shapes, shape)
}

// Shape returns the shape with the given name.
func (g *Group) Shape(name string) (domain.Shape, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	i, ok := g.index[name]
	if !ok {
		return domain.Shape{}, false
	}
	return g.shapes[i], true
}

// Shapes returns all shapes in draw order.
func (g *Group) Shapes() []domain.Shape {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return slices.Clone(g.shapes)
}

// On registers handler for the named event.
func (g *Group) On(event string, handler ports.Handler) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.handlers[event] = append(g.handlers[event], handler)
}

// Off removes every handler registered for the named event.
func (g *Group) Off(event string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	delete(g.handlers, event)
}

// Emit invokes the handlers registered for the named event.
func (g *Group) Emit(event string, payload any) {
	g.mu.RLock()
	handlers := slices.Clone(g.handlers[event])
	g.mu.RUnlock()

	for _, h := range handlers {
		h(payload)
	}
}

// Listeners returns the number of handlers registered for event.
func (g *Group) Listeners(event string) int {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return len(g.handlers[event])
}
