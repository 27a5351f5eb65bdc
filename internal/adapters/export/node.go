package export

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/arxiv/internal/adapters/config"
	"go.trai.ch/arxiv/internal/adapters/logger"
	"go.trai.ch/arxiv/internal/adapters/telemetry"
	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/arxiv/internal/core/ports"
)

// NodeID is the unique identifier for the export client Graft node.
const NodeID graft.ID = "adapter.export"

func init() {
	graft.Register(graft.Node[ports.Searcher]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.Searcher, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}

			return NewClient(cfg, log, tracer), nil
		},
	})
}
