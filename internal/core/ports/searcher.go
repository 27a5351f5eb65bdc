package ports

import (
	"context"

	"go.trai.ch/arxiv/internal/core/domain"
)

// Searcher executes one query against the export API.
//
//go:generate mockgen -source=searcher.go -destination=mocks/mock_searcher.go -package=mocks
type Searcher interface {
	Search(ctx context.Context, query domain.Query) (*domain.SearchResult, error)
}
