package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/arxiv/internal/adapters/download"
	"go.trai.ch/arxiv/internal/adapters/export"
	"go.trai.ch/arxiv/internal/adapters/feedcache"
	"go.trai.ch/arxiv/internal/adapters/logger"
	"go.trai.ch/arxiv/internal/adapters/telemetry"
	"go.trai.ch/arxiv/internal/app"
	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/zerr"
)

// testProvider builds components directly so tests control construction
// and do not share cached nodes.
func testProvider(t *testing.T) ComponentProvider {
	t.Helper()

	return func(context.Context) (*app.Components, func(), error) {
		cfg := domain.DefaultConfig()
		cfg.CacheDir = t.TempDir()
		cfg.DownloadDir = t.TempDir()
		cfg.RequestInterval = time.Millisecond

		log := logger.New()
		tracer := telemetry.NewNoOpTracer()

		cache, err := feedcache.NewStore(cfg.CacheDir, cfg.CacheTTL)
		if err != nil {
			return nil, nil, err
		}

		searcher := export.NewClient(cfg, log, tracer)
		downloader := download.NewDownloader(cfg, log, tracer)

		a := app.New(cfg, searcher, cache, downloader, log)
		return app.NewComponents(a, cfg, log), func() {}, nil
	}
}

func TestRun_Version(t *testing.T) {
	stderr := &bytes.Buffer{}

	exitCode := run(context.Background(), []string{"version"}, stderr, testProvider(t))

	assert.Equal(t, 0, exitCode)
	assert.Empty(t, stderr.String())
}

func TestRun_ProviderError(t *testing.T) {
	stderr := &bytes.Buffer{}

	provider := func(context.Context) (*app.Components, func(), error) {
		return nil, nil, zerr.New("max_retries must be at least 1")
	}

	exitCode := run(context.Background(), []string{"version"}, stderr, provider)

	require.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "max_retries must be at least 1")
}

func TestRun_CommandError(t *testing.T) {
	stderr := &bytes.Buffer{}

	exitCode := run(context.Background(), []string{"no-such-command"}, stderr, testProvider(t))

	assert.Equal(t, 1, exitCode)
}
