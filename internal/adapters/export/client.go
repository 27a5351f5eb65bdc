// Package export implements the Searcher port against the arXiv export API.
package export

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"go.trai.ch/arxiv/internal/adapters/atom"
	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/arxiv/internal/core/ports"
	"go.trai.ch/zerr"
)

const httpClientTimeout = 30 * time.Second

// Client implements ports.Searcher over HTTP.
//
// Requests are spaced at least one interval apart across all goroutines
// sharing the client, per the export API's terms of use. Failed attempts
// are retried up to the configured count; the spacing applies between
// attempts as well.
type Client struct {
	baseURL    string
	httpClient *http.Client
	interval   time.Duration
	retries    int
	log        ports.Logger
	tracer     ports.Tracer

	mu          sync.Mutex
	lastRequest time.Time
}

// NewClient creates a Client from the given configuration.
func NewClient(cfg *domain.Config, log ports.Logger, tracer ports.Tracer) *Client {
	return newClientWithHTTP(cfg, log, tracer, &http.Client{Timeout: httpClientTimeout})
}

// newClientWithHTTP creates a Client with a custom http client (used for testing).
func newClientWithHTTP(cfg *domain.Config, log ports.Logger, tracer ports.Tracer, hc *http.Client) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		httpClient: hc,
		interval:   cfg.RequestInterval,
		retries:    cfg.MaxRetries,
		log:        log,
		tracer:     tracer,
	}
}

// Search executes the query and returns the decoded page of results.
func (c *Client) Search(ctx context.Context, query domain.Query) (result *domain.SearchResult, err error) {
	if query.IsEmpty() {
		return nil, domain.ErrEmptyQuery
	}

	url := query.URL(c.baseURL)

	ctx, span := c.tracer.Start(ctx, "arxiv.search")
	span.SetAttribute("url", url)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	var lastErr error
	for attempt := 1; attempt <= c.retries; attempt++ {
		if err := c.throttle(ctx); err != nil {
			return nil, err
		}

		result, retry, err := c.fetch(ctx, url)
		if err == nil {
			span.SetAttribute("attempts", attempt)
			span.SetAttribute("total_results", result.TotalResults)
			return result, nil
		}
		if !retry {
			return nil, err
		}

		lastErr = err
		c.log.Warn("request attempt " + strconv.Itoa(attempt) + " failed: " + err.Error())
	}

	return nil, zerr.With(zerr.Wrap(domain.ErrRequestFailed, lastErr.Error()), "url", url)
}

// fetch performs one attempt. The second return value reports whether the
// failure is worth retrying: transport errors and 5xx answers are, client
// errors and undecodable bodies are not.
func (c *Client) fetch(ctx context.Context, url string) (*domain.SearchResult, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, false, zerr.Wrap(domain.ErrRequestFailed, err.Error())
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, false, ctx.Err()
		}
		return nil, true, zerr.Wrap(domain.ErrRequestFailed, err.Error())
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.Wrap(domain.ErrUnexpectedStatus, resp.Status), "status_code", resp.StatusCode)
		retry := resp.StatusCode >= http.StatusInternalServerError
		return nil, retry, zerr.With(statusErr, "url", url)
	}

	feed, err := atom.Decode(resp.Body)
	if err != nil {
		return nil, false, zerr.With(err, "url", url)
	}

	return feed.Result(c.log), false, nil
}

// throttle blocks until this goroutine's reserved request slot arrives.
func (c *Client) throttle(ctx context.Context) error {
	wait := time.Until(c.reserveSlot())
	if wait <= 0 {
		return nil
	}

	timer := time.NewTimer(wait)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// reserveSlot claims the next available request time, one interval after
// the previously claimed slot.
func (c *Client) reserveSlot() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	slot := c.lastRequest.Add(c.interval)
	if slot.Before(now) {
		slot = now
	}
	c.lastRequest = slot
	return slot
}
