// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/arxiv/internal/adapters/config"
	_ "go.trai.ch/arxiv/internal/adapters/download"
	_ "go.trai.ch/arxiv/internal/adapters/export"
	_ "go.trai.ch/arxiv/internal/adapters/feedcache"
	_ "go.trai.ch/arxiv/internal/adapters/logger"
	_ "go.trai.ch/arxiv/internal/adapters/telemetry"
	_ "go.trai.ch/arxiv/internal/adapters/telemetry/progrock"
	// Register app nodes.
	_ "go.trai.ch/arxiv/internal/app"
)
