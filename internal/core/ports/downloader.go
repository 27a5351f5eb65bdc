package ports

import (
	"context"

	"go.trai.ch/arxiv/internal/core/domain"
)

// Downloader fetches PDF files for papers into a directory.
//
//go:generate mockgen -source=downloader.go -destination=mocks/mock_downloader.go -package=mocks
type Downloader interface {
	Download(ctx context.Context, papers []domain.Paper, dir string) error
}
