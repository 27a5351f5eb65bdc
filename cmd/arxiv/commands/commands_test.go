package commands_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/arxiv/cmd/arxiv/commands"
	"go.trai.ch/arxiv/internal/app"
	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/arxiv/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type cliFixture struct {
	searcher   *mocks.MockSearcher
	cache      *mocks.MockFeedCache
	downloader *mocks.MockDownloader
	cli        *commands.CLI
	out        *bytes.Buffer
}

func newCLIFixture(t *testing.T) *cliFixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	cfg := domain.DefaultConfig()

	f := &cliFixture{
		searcher:   mocks.NewMockSearcher(ctrl),
		cache:      mocks.NewMockFeedCache(ctrl),
		downloader: mocks.NewMockDownloader(ctrl),
		out:        &bytes.Buffer{},
	}

	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	a := app.New(cfg, f.searcher, f.cache, f.downloader, logger)
	f.cli = commands.New(a)
	f.cli.SetOut(f.out)
	return f
}

func singlePaperResult() *domain.SearchResult {
	return &domain.SearchResult{
		Papers: []domain.Paper{{
			ID:      "http://arxiv.org/abs/2402.16893v1",
			Title:   "Attacking LLM Watermarks",
			Authors: []string{"Jane Roe"},
		}},
		TotalResults: 1,
		ItemsPerPage: 1,
	}
}

func TestSearch_Success(t *testing.T) {
	f := newCLIFixture(t)

	f.cache.EXPECT().Get(gomock.Any()).Return(nil, false)
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.Query) (*domain.SearchResult, error) {
			assert.Equal(t, "ti:watermark", q.Search)
			return singlePaperResult(), nil
		})
	f.cache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	f.cli.SetArgs([]string{"search", "watermark", "--field", "ti"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Attacking LLM Watermarks")
	assert.Contains(t, f.out.String(), "Jane Roe")
}

func TestSearch_JSON(t *testing.T) {
	f := newCLIFixture(t)

	f.cache.EXPECT().Get(gomock.Any()).Return(singlePaperResult(), true)

	f.cli.SetArgs([]string{"search", "watermark", "--json"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), `"total_results": 1`)
}

func TestSearch_TextOutput(t *testing.T) {
	f := newCLIFixture(t)

	f.cache.EXPECT().Get(gomock.Any()).Return(singlePaperResult(), true)

	f.cli.SetArgs([]string{"search", "watermark"})
	require.NoError(t, f.cli.Execute(context.Background()))

	g := goldie.New(t)
	g.Assert(t, "search_text", f.out.Bytes())
}

func TestGet_TextOutput(t *testing.T) {
	f := newCLIFixture(t)

	f.cache.EXPECT().Get(gomock.Any()).Return(singlePaperResult(), true)

	f.cli.SetArgs([]string{"get", "2402.16893v1"})
	require.NoError(t, f.cli.Execute(context.Background()))

	g := goldie.New(t)
	g.Assert(t, "get_text", f.out.Bytes())
}

func TestSearch_NoTerms(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"search"})

	// No terms just displays help
	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Usage:")
}

func TestSearch_DateRange(t *testing.T) {
	f := newCLIFixture(t)

	f.cache.EXPECT().Get(gomock.Any()).Return(nil, false)
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, q domain.Query) (*domain.SearchResult, error) {
			assert.Contains(t, q.Search, "submittedDate:[")
			return singlePaperResult(), nil
		})
	f.cache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	f.cli.SetArgs([]string{"search", "watermark", "--from", "2024-01-01", "--to", "2024-06-30"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestSearch_DanglingDateFlag(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"search", "watermark", "--from", "2024-01-01"})

	err := f.cli.Execute(context.Background())
	assert.Error(t, err)
}

func TestGet_Success(t *testing.T) {
	f := newCLIFixture(t)

	f.cache.EXPECT().Get(gomock.Any()).Return(nil, false)
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).Return(singlePaperResult(), nil)
	f.cache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	f.cli.SetArgs([]string{"get", "2402.16893v1"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Attacking LLM Watermarks")
}

func TestGet_NotFound(t *testing.T) {
	f := newCLIFixture(t)

	f.cache.EXPECT().Get(gomock.Any()).Return(nil, false)
	f.searcher.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(&domain.SearchResult{}, nil)
	f.cache.EXPECT().Put(gomock.Any(), gomock.Any()).Return(nil)

	f.cli.SetArgs([]string{"get", "2402.16893v1"})

	err := f.cli.Execute(context.Background())
	assert.ErrorIs(t, err, domain.ErrPaperNotFound)
}

func TestDownload_Success(t *testing.T) {
	f := newCLIFixture(t)

	f.cache.EXPECT().Get(gomock.Any()).Return(singlePaperResult(), true)
	f.downloader.EXPECT().Download(gomock.Any(), gomock.Len(1), "papers").Return(nil)

	f.cli.SetArgs([]string{"download", "2402.16893v1", "--dir", "papers"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
}

func TestVersion(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"version"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "arxiv version")
}

func TestRoot_Help(t *testing.T) {
	f := newCLIFixture(t)

	f.cli.SetArgs([]string{"--help"})

	err := f.cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Contains(t, f.out.String(), "Search and download papers")
}
