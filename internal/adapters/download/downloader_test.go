package download

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/arxiv/internal/adapters/telemetry"
	"go.trai.ch/arxiv/internal/core/domain"
)

type recordingLogger struct {
	mu    sync.Mutex
	infos []string
	warns []string
}

func (l *recordingLogger) Info(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.infos = append(l.infos, msg)
}

func (l *recordingLogger) Warn(msg string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.warns = append(l.warns, msg)
}

func (l *recordingLogger) Error(error) {}

func newTestDownloader(parallelism int) (*Downloader, *recordingLogger) {
	cfg := domain.DefaultConfig()
	cfg.DownloadParallelism = parallelism

	log := &recordingLogger{}
	return newDownloaderWithHTTP(cfg, log, telemetry.NewNoOpTracer(), http.DefaultClient), log
}

func TestDownloader_Download(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("%PDF-1.4 " + r.URL.Path))
	}))
	defer srv.Close()

	papers := []domain.Paper{
		{ID: "http://arxiv.org/abs/2402.16893v1", PDFURL: srv.URL + "/pdf/2402.16893v1"},
		{ID: "http://arxiv.org/abs/2402.17000v2", PDFURL: srv.URL + "/pdf/2402.17000v2"},
	}

	dir := t.TempDir()
	downloader, _ := newTestDownloader(2)

	err := downloader.Download(context.Background(), papers, dir)
	require.NoError(t, err)

	for _, name := range []string{"2402.16893v1.pdf", "2402.17000v2.pdf"} {
		content, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.Contains(t, string(content), "%PDF-1.4")
	}
}

func TestDownloader_Download_SkipsPapersWithoutPDF(t *testing.T) {
	papers := []domain.Paper{
		{ID: "http://arxiv.org/abs/2402.16893v1"},
	}

	dir := t.TempDir()
	downloader, log := newTestDownloader(2)

	err := downloader.Download(context.Background(), papers, dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	assert.Len(t, log.warns, 1)
}

func TestDownloader_Download_FailsOnBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	papers := []domain.Paper{
		{ID: "http://arxiv.org/abs/2402.16893v1", PDFURL: srv.URL + "/pdf/2402.16893v1"},
	}

	downloader, _ := newTestDownloader(2)

	err := downloader.Download(context.Background(), papers, t.TempDir())
	assert.ErrorIs(t, err, domain.ErrDownloadFailed)
}

func TestDownloader_Download_NoPartialFileOnFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	papers := []domain.Paper{
		{ID: "http://arxiv.org/abs/2402.16893v1", PDFURL: srv.URL + "/pdf/2402.16893v1"},
	}

	dir := t.TempDir()
	downloader, _ := newTestDownloader(1)

	err := downloader.Download(context.Background(), papers, dir)
	require.Error(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestPaperSlug(t *testing.T) {
	assert.Equal(t, "2402.16893v1", paperSlug("http://arxiv.org/abs/2402.16893v1"))
	assert.Equal(t, "0309136", paperSlug("http://arxiv.org/abs/math.GT/0309136"))
	assert.Equal(t, "2402.16893v1", paperSlug("2402.16893v1"))
}
