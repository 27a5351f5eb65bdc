package app

import (
	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/arxiv/internal/core/ports"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Config *domain.Config
	Logger ports.Logger
}

// NewComponents creates a new Components struct from dependencies.
func NewComponents(app *App, cfg *domain.Config, logger ports.Logger) *Components {
	return &Components{
		App:    app,
		Config: cfg,
		Logger: logger,
	}
}
