package drawing

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/timebar/internal/core/ports"
)

// NodeID is the unique identifier for the surface factory Graft node.
const NodeID graft.ID = "adapter.drawing"

func init() {
	graft.Register(graft.Node[ports.SurfaceFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SurfaceFactory, error) {
			return NewSurface, nil
		},
	})
}
