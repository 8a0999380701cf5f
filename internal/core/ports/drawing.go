package ports

import (
	"io"

	"go.trai.ch/timebar/internal/core/domain"
)

// DrawingSurface is a backend that receives shapes and encodes them.
// Coordinates and styles are computed by the caller; the surface only draws.
type DrawingSurface interface {
	// Kind reports which renderer backs the surface.
	Kind() domain.RendererKind

	// Size returns the surface width and height.
	Size() (width, height float64)

	// AddGroup creates a named group. Groups are drawn in creation order.
	AddGroup(name string) Group

	// Render encodes every group to w.
	Render(w io.Writer) error
}

// Group is an ordered set of named shapes with its own event listeners.
type Group interface {
	// Name returns the group name.
	Name() string

	// SetShape adds shape, or replaces the shape with the same name in place.
	SetShape(shape domain.Shape)

	// Shape returns the shape with the given name.
	Shape(name string) (domain.Shape, bool)

	// Shapes returns all shapes in draw order.
	Shapes() []domain.Shape

	// On registers handler for the named event.
	On(event string, handler Handler)

	// Off removes every handler registered for the named event.
	Off(event string)

	// Emit invokes the handlers registered for the named event.
	Emit(event string, payload any)
}

// SurfaceFactory builds a drawing surface for the given renderer kind and size.
type SurfaceFactory func(kind domain.RendererKind, width, height float64) DrawingSurface
