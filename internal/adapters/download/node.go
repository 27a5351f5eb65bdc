package download

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/arxiv/internal/adapters/config"
	"go.trai.ch/arxiv/internal/adapters/logger"
	"go.trai.ch/arxiv/internal/adapters/telemetry"
	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/arxiv/internal/core/ports"
)

// NodeID is the unique identifier for the downloader Graft node.
const NodeID graft.ID = "adapter.download"

func init() {
	graft.Register(graft.Node[ports.Downloader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (ports.Downloader, error) {
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

			return NewDownloader(cfg, log, tracer), nil
		},
	})
}
