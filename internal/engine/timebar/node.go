package timebar

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/timebar/internal/adapters/clock"     //nolint:depguard // Wired in engine wiring
	"go.trai.ch/timebar/internal/adapters/drawing"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/timebar/internal/adapters/logger"    //nolint:depguard // Wired in engine wiring
	"go.trai.ch/timebar/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/timebar/internal/core/ports"
)

// NodeID is the unique identifier for the time bar factory Graft node.
const NodeID graft.ID = "engine.timebar"

func init() {
	graft.Register(graft.Node[*Factory]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
			telemetry.TracerNodeID,
			clock.SchedulerNodeID,
			drawing.NodeID,
		},
		Run: func(ctx context.Context) (*Factory, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			scheduler, err := graft.Dep[ports.TickScheduler](ctx)
			if err != nil {
				return nil, err
			}

			surfaces, err := graft.Dep[ports.SurfaceFactory](ctx)
			if err != nil {
				return nil, err
			}

			return NewFactory(log, tracer, scheduler, surfaces), nil
		},
	})
}
