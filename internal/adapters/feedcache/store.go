// Package feedcache implements the FeedCache port with JSON files on disk.
package feedcache

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/zerr"
)

// Store implements ports.FeedCache. Entries are JSON files named by the
// xxhash of the request URL; the same URL always resolves to the same
// file. Entries older than the TTL are treated as misses.
type Store struct {
	dir string
	ttl time.Duration
	now func() time.Time
}

// entry is the on-disk representation of a cached response.
type entry struct {
	URL      string               `json:"url"`
	StoredAt time.Time            `json:"stored_at"`
	Result   *domain.SearchResult `json:"result"`
}

// NewStore creates a Store rooted at dir.
func NewStore(dir string, ttl time.Duration) (*Store, error) {
	cleanDir := filepath.Clean(dir)
	if err := os.MkdirAll(cleanDir, domain.DirPerm); err != nil {
		return nil, zerr.Wrap(err, "failed to create feed cache directory")
	}

	return &Store{
		dir: cleanDir,
		ttl: ttl,
		now: time.Now,
	}, nil
}

// Get returns the cached result for the URL. Stale, missing and
// unreadable entries are all plain misses.
func (s *Store) Get(url string) (*domain.SearchResult, bool) {
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(s.entryPath(url))
	if err != nil {
		return nil, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, false
	}

	// A hash collision would surface as a URL mismatch.
	if e.URL != url || e.Result == nil {
		return nil, false
	}

	if s.now().Sub(e.StoredAt) > s.ttl {
		return nil, false
	}

	return e.Result, true
}

// Put stores the result for the URL with an atomic write.
func (s *Store) Put(url string, result *domain.SearchResult) error {
	e := entry{
		URL:      url,
		StoredAt: s.now(),
		Result:   result,
	}

	data, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return zerr.Wrap(domain.ErrCacheWriteFailed, err.Error())
	}

	if err := s.atomicWriteFile(s.entryPath(url), data); err != nil {
		return zerr.Wrap(domain.ErrCacheWriteFailed, err.Error())
	}

	return nil
}

// entryPath returns the file path for the cache entry of the given URL.
func (s *Store) entryPath(url string) string {
	key := fmt.Sprintf("%016x", xxhash.Sum64String(url))
	return filepath.Join(s.dir, key+".json")
}

// atomicWriteFile writes data to a file atomically by writing to a temp
// file and renaming it.
func (s *Store) atomicWriteFile(path string, data []byte) error {
	tmpFile, err := os.CreateTemp(s.dir, "feedcache-*.json")
	if err != nil {
		return err
	}
	tmpName := tmpFile.Name()

	// Clean up temp file on error
	defer func() {
		if _, statErr := os.Stat(tmpName); statErr == nil {
			_ = os.Remove(tmpName)
		}
	}()

	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		return err
	}

	if err := tmpFile.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, domain.FilePerm); err != nil {
		return err
	}

	return os.Rename(tmpName, path)
}
