package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/arxiv/internal/adapters/config"
	"go.trai.ch/arxiv/internal/adapters/download"
	"go.trai.ch/arxiv/internal/adapters/export"
	"go.trai.ch/arxiv/internal/adapters/feedcache"
	"go.trai.ch/arxiv/internal/adapters/logger"
	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/arxiv/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			export.NodeID,
			feedcache.NodeID,
			download.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			config.NodeID,
			logger.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	searcher, err := graft.Dep[ports.Searcher](ctx)
	if err != nil {
		return nil, err
	}

	cache, err := graft.Dep[ports.FeedCache](ctx)
	if err != nil {
		return nil, err
	}

	downloader, err := graft.Dep[ports.Downloader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(cfg, searcher, cache, downloader, log), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	app, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return NewComponents(app, cfg, log), nil
}
