package clock

import (
	"context"

	"github.com/grindlemire/graft"
	"github.com/jonboulle/clockwork"
	"go.trai.ch/timebar/internal/core/ports"
)

const (
	// LoopNodeID is the unique identifier for the event loop Graft node.
	LoopNodeID graft.ID = "adapter.clock_loop"
	// SchedulerNodeID is the unique identifier for the tick scheduler Graft node.
	SchedulerNodeID graft.ID = "adapter.clock_scheduler"
)

func init() {
	graft.Register(graft.Node[*Loop]{
		ID:        LoopNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Loop, error) {
			return NewLoop(), nil
		},
	})

	graft.Register(graft.Node[ports.TickScheduler]{
		ID:        SchedulerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{LoopNodeID},
		Run: func(ctx context.Context) (ports.TickScheduler, error) {
			loop, err := graft.Dep[*Loop](ctx)
			if err != nil {
				return nil, err
			}
			return NewTickerScheduler(clockwork.NewRealClock(), loop), nil
		},
	})
}
