// Package config provides the configuration loader for the arxiv tool.
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/arxiv/internal/core/domain"
	"go.trai.ch/arxiv/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "arxiv.yaml"

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
}

// Load reads the configuration from the given working directory. A missing
// file yields the defaults; a malformed file is an error.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	filename := l.Filename
	if filename == "" {
		filename = DefaultFilename
	}
	return Load(filepath.Join(cwd, filename))
}

// File represents the structure of the arxiv.yaml configuration file.
// Every field is optional.
type File struct {
	BaseURL         string      `yaml:"base_url"`
	RequestInterval string      `yaml:"request_interval"`
	MaxRetries      *int        `yaml:"max_retries"`
	Cache           CacheDTO    `yaml:"cache"`
	Download        DownloadDTO `yaml:"download"`
}

// CacheDTO configures the feed cache.
type CacheDTO struct {
	Dir string `yaml:"dir"`
	TTL string `yaml:"ttl"`
}

// DownloadDTO configures PDF downloads.
type DownloadDTO struct {
	Dir      string `yaml:"dir"`
	Parallel *int   `yaml:"parallel"`
}

// Load reads a configuration file from the given path and returns the
// settings merged over the defaults.
func Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	if file.BaseURL != "" {
		cfg.BaseURL = file.BaseURL
	}
	if file.RequestInterval != "" {
		interval, err := time.ParseDuration(file.RequestInterval)
		if err != nil {
			return nil, zerr.With(zerr.New("invalid request_interval"), "value", file.RequestInterval)
		}
		cfg.RequestInterval = interval
	}
	if file.MaxRetries != nil {
		if *file.MaxRetries < 1 {
			return nil, zerr.With(zerr.New("max_retries must be at least 1"), "value", *file.MaxRetries)
		}
		cfg.MaxRetries = *file.MaxRetries
	}
	if file.Cache.Dir != "" {
		cfg.CacheDir = file.Cache.Dir
	}
	if file.Cache.TTL != "" {
		ttl, err := time.ParseDuration(file.Cache.TTL)
		if err != nil {
			return nil, zerr.With(zerr.New("invalid cache ttl"), "value", file.Cache.TTL)
		}
		cfg.CacheTTL = ttl
	}
	if file.Download.Dir != "" {
		cfg.DownloadDir = file.Download.Dir
	}
	if file.Download.Parallel != nil {
		if *file.Download.Parallel < 1 {
			return nil, zerr.With(zerr.New("download parallelism must be at least 1"), "value", *file.Download.Parallel)
		}
		cfg.DownloadParallelism = *file.Download.Parallel
	}

	return cfg, nil
}
