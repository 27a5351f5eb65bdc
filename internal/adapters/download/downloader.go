// Package download implements the Downloader port fetching PDFs over HTTP.
package download

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"time"

	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/arxiv/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

const httpClientTimeout = 5 * time.Minute

// Downloader implements ports.Downloader. Downloads run concurrently,
// bounded by the configured parallelism.
type Downloader struct {
	httpClient  *http.Client
	parallelism int
	log         ports.Logger
	tracer      ports.Tracer
}

// NewDownloader creates a Downloader from the given configuration.
func NewDownloader(cfg *domain.Config, log ports.Logger, tracer ports.Tracer) *Downloader {
	return newDownloaderWithHTTP(cfg, log, tracer, &http.Client{Timeout: httpClientTimeout})
}

// newDownloaderWithHTTP creates a Downloader with a custom http client (used for testing).
func newDownloaderWithHTTP(cfg *domain.Config, log ports.Logger, tracer ports.Tracer, hc *http.Client) *Downloader {
	return &Downloader{
		httpClient:  hc,
		parallelism: cfg.DownloadParallelism,
		log:         log,
		tracer:      tracer,
	}
}

// Download fetches the PDF of every paper into dir. Papers without a PDF
// link are skipped with a warning; any failed fetch fails the whole batch.
func (d *Downloader) Download(ctx context.Context, papers []domain.Paper, dir string) error {
	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, domain.DirPerm); err != nil {
		return zerr.Wrap(err, "failed to create download directory")
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(d.parallelism)

	for _, paper := range papers {
		if paper.PDFURL == "" {
			d.log.Warn("no pdf link for " + paper.ID + ", skipping")
			continue
		}

		g.Go(func() error {
			return d.fetchPDF(ctx, paper, cleanDir)
		})
	}

	return g.Wait()
}

// fetchPDF downloads a single PDF to its destination file.
func (d *Downloader) fetchPDF(ctx context.Context, paper domain.Paper, dir string) (err error) {
	_, span := d.tracer.Start(ctx, "arxiv.download "+paperSlug(paper.ID))
	span.SetAttribute("url", paper.PDFURL)
	defer func() {
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	dest := filepath.Join(dir, paperSlug(paper.ID)+".pdf")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, paper.PDFURL, http.NoBody)
	if err != nil {
		return zerr.Wrap(domain.ErrDownloadFailed, err.Error())
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "url", paper.PDFURL)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		statusErr := zerr.With(zerr.Wrap(domain.ErrDownloadFailed, resp.Status), "status_code", resp.StatusCode)
		return zerr.With(statusErr, "url", paper.PDFURL)
	}

	if err := atomicCopy(dest, resp.Body); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrDownloadFailed, err.Error()), "path", dest)
	}

	d.log.Info("downloaded " + dest)
	return nil
}

// paperSlug derives a file-name friendly identifier from an entry id like
// http://arxiv.org/abs/2402.16893v1.
func paperSlug(id string) string {
	if u, err := url.Parse(id); err == nil && u.Path != "" {
		return path.Base(u.Path)
	}
	return path.Base(id)
}

// atomicCopy streams r to a temp file and renames it into place.
func atomicCopy(dest string, r io.Reader) error {
	dir := filepath.Dir(dest)

	tmpFile, err := os.CreateTemp(dir, "download-*.pdf")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := io.Copy(tmpFile, r); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, dest)
}
