package domain

import (
	"os"
	"path/filepath"
	"time"
)

// DefaultBaseURL is the export API endpoint.
const DefaultBaseURL = "http://export.arxiv.org/api/query"

const (
	// DirPerm is the permission used for directories created by the tool.
	DirPerm = 0o750
	// FilePerm is the permission used for files created by the tool.
	FilePerm = 0o644
)

// Config holds the runtime settings of the client. Every field has a
// working default so a missing config file is never an error.
type Config struct {
	// BaseURL is the export API endpoint.
	BaseURL string
	// RequestInterval is the minimum delay between consecutive API requests.
	RequestInterval time.Duration
	// MaxRetries is the number of attempts per API request.
	MaxRetries int
	// CacheDir is the directory holding cached feed responses.
	CacheDir string
	// CacheTTL is how long a cached feed response stays valid.
	CacheTTL time.Duration
	// DownloadDir is the default destination for fetched PDFs.
	DownloadDir string
	// DownloadParallelism bounds concurrent PDF downloads.
	DownloadParallelism int
}

// DefaultConfig returns the built-in settings. The API's terms of use ask
// for no more than one request every three seconds.
func DefaultConfig() *Config {
	return &Config{
		BaseURL:             DefaultBaseURL,
		RequestInterval:     3 * time.Second,
		MaxRetries:          3,
		CacheDir:            DefaultCacheDir(),
		CacheTTL:            24 * time.Hour,
		DownloadDir:         ".",
		DownloadParallelism: 3,
	}
}

// DefaultCacheDir returns the per-user feed cache location.
func DefaultCacheDir() string {
	base, err := os.UserCacheDir()
	if err != nil {
		base = os.TempDir()
	}
	return filepath.Join(base, "arxiv", "feeds")
}
