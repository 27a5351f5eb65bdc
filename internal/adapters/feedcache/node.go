package feedcache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/arxiv/internal/adapters/config"
	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/arxiv/internal/core/ports"
)

// NodeID is the unique identifier for the feed cache Graft node.
const NodeID graft.ID = "adapter.feedcache"

func init() {
	graft.Register(graft.Node[ports.FeedCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
		},
		Run: func(ctx context.Context) (ports.FeedCache, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.CacheDir, cfg.CacheTTL)
		},
	})
}
