package telemetry

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/arxiv/internal/adapters/logger"
	"go.trai.ch/arxiv/internal/core/ports"
)

// TracerNodeID is the unique identifier for the telemetry adapter Graft node.
const TracerNodeID graft.ID = "adapter.telemetry"

func init() {
	graft.Register(graft.Node[ports.Tracer]{
		ID:        TracerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.Tracer, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			InstallProvider(log)
			return NewOTelTracer("arxiv"), nil
		},
	})
}
