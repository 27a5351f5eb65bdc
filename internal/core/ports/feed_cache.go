package ports

import "go.trai.ch/arxiv/internal/core/domain"

// FeedCache stores decoded search responses keyed by request URL.
// It is advisory: a miss only costs a request, never correctness.
//
//go:generate mockgen -source=feed_cache.go -destination=mocks/mock_feed_cache.go -package=mocks
type FeedCache interface {
	// Get returns the cached result for the URL, or false on a miss.
	// Stale and unreadable entries are misses.
	Get(url string) (*domain.SearchResult, bool)
	// Put stores the result for the URL.
	Put(url string, result *domain.SearchResult) error
}
