// Package app implements the application layer for the arxiv client.
package app

import (
	"context"

	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/arxiv/internal/core/ports"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	cfg        *domain.Config
	searcher   ports.Searcher
	cache      ports.FeedCache
	downloader ports.Downloader
	log        ports.Logger
}

// New creates a new App instance.
func New(cfg *domain.Config, searcher ports.Searcher, cache ports.FeedCache, downloader ports.Downloader, log ports.Logger) *App {
	return &App{
		cfg:        cfg,
		searcher:   searcher,
		cache:      cache,
		downloader: downloader,
		log:        log,
	}
}

// Search executes the query and returns up to limit papers, following
// result pages as needed. A limit of zero returns a single page. Pages
// are served from the feed cache when a fresh entry exists.
func (a *App) Search(ctx context.Context, query domain.Query, limit int) (*domain.SearchResult, error) {
	if query.IsEmpty() {
		return nil, domain.ErrEmptyQuery
	}

	page, err := a.searchPage(ctx, query)
	if err != nil {
		return nil, err
	}

	combined := &domain.SearchResult{
		Papers:       page.Papers,
		TotalResults: page.TotalResults,
		StartIndex:   page.StartIndex,
		ItemsPerPage: page.ItemsPerPage,
	}

	for limit > 0 && len(combined.Papers) < limit && page.HasMore() {
		query = query.NextPage()

		page, err = a.searchPage(ctx, query)
		if err != nil {
			return nil, err
		}
		if len(page.Papers) == 0 {
			break
		}

		combined.Papers = append(combined.Papers, page.Papers...)
	}

	if limit > 0 && len(combined.Papers) > limit {
		combined.Papers = combined.Papers[:limit]
	}

	return combined, nil
}

// Get looks up papers by their arXiv ids. Every requested id must
// resolve, otherwise ErrPaperNotFound is returned.
func (a *App) Get(ctx context.Context, ids []string) ([]domain.Paper, error) {
	if len(ids) == 0 {
		return nil, domain.ErrEmptyQuery
	}

	query := domain.NewQuery().WithIDList(ids...).WithMaxResults(len(ids))

	result, err := a.searchPage(ctx, query)
	if err != nil {
		return nil, err
	}

	if len(result.Papers) < len(ids) {
		err := zerr.Wrap(domain.ErrPaperNotFound, "id lookup incomplete")
		err = zerr.With(err, "requested", len(ids))
		return nil, zerr.With(err, "found", len(result.Papers))
	}

	return result.Papers, nil
}

// Download fetches the PDFs of the given ids into dir. An empty dir
// falls back to the configured download directory.
func (a *App) Download(ctx context.Context, ids []string, dir string) error {
	if dir == "" {
		dir = a.cfg.DownloadDir
	}

	papers, err := a.Get(ctx, ids)
	if err != nil {
		return err
	}

	return a.downloader.Download(ctx, papers, dir)
}

// searchPage fetches one page, read-through cached by request URL.
func (a *App) searchPage(ctx context.Context, query domain.Query) (*domain.SearchResult, error) {
	url := query.URL(a.cfg.BaseURL)

	if cached, ok := a.cache.Get(url); ok {
		return cached, nil
	}

	result, err := a.searcher.Search(ctx, query)
	if err != nil {
		return nil, err
	}

	if err := a.cache.Put(url, result); err != nil {
		a.log.Warn("failed to cache feed: " + err.Error())
	}

	return result, nil
}
