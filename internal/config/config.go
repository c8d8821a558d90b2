// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"time"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Config holds all application configuration loaded from defaults, an
// optional YAML file and environment variables.
//
// Configuration Loading Order (Koanf v2):
//  1. Defaults: Built-in sensible defaults for all settings
//  2. Config File: Optional YAML config file (config.yaml)
//  3. Environment Variables: Override any mapped setting
//
// Example - Load configuration:
//
//	cfg, err := config.LoadWithKoanf()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	cat, err := catalog.Load(ctx, cfg.DatasetSource())
//
// Thread Safety:
// Config is immutable after loading and safe for concurrent read access.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Dataset   DatasetConfig   `koanf:"dataset"`
	Recommend RecommendConfig `koanf:"recommend"`
	API       APIConfig       `koanf:"api"`
	Cache     CacheConfig     `koanf:"cache"`
	Security  SecurityConfig  `koanf:"security"`
	Logging   LoggingConfig   `koanf:"logging"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development", "staging", "production"
}

// DatasetConfig locates the movie catalog.
//
// Environment Variables:
//   - DATASET_DRIVER: csv, sqlite or duckdb (default: csv)
//   - DATASET_PATH: file path (default: cleaned_bollywood_movies_final.csv)
//   - DATASET_TABLE: table name for the SQL drivers (default: movies)
type DatasetConfig struct {
	Driver string `koanf:"driver"`
	Path   string `koanf:"path"`
	Table  string `koanf:"table"`
}

// RecommendConfig holds similarity engine settings.
//
// Environment Variables:
//   - RECOMMEND_OVERVIEW_MAX_FEATURES (default: 5000)
//   - RECOMMEND_GENRE_MAX_FEATURES (default: 0, unlimited)
//   - RECOMMEND_STEMMING (default: false)
//   - RECOMMEND_DEFAULT_K (default: 6)
//   - RECOMMEND_MAX_K (default: 20)
//   - RECOMMEND_MIN_QUERY_LENGTH (default: 2)
//   - RECOMMEND_BUILD_WORKERS (default: 0, GOMAXPROCS)
type RecommendConfig struct {
	OverviewMaxFeatures int  `koanf:"overview_max_features"`
	GenreMaxFeatures    int  `koanf:"genre_max_features"`
	Stemming            bool `koanf:"stemming"`
	DefaultK            int  `koanf:"default_k"`
	MaxK                int  `koanf:"max_k"`
	MinQueryLength      int  `koanf:"min_query_length"`
	BuildWorkers        int  `koanf:"build_workers"`
}

// APIConfig holds API pagination and response settings
type APIConfig struct {
	DefaultPageSize int `koanf:"default_page_size"`
	MaxPageSize     int `koanf:"max_page_size"`
}

// CacheConfig holds the neighbour list cache settings.
type CacheConfig struct {
	Enabled         bool          `koanf:"enabled"`
	Size            int           `koanf:"size"`
	TTL             time.Duration `koanf:"ttl"`
	CleanupInterval time.Duration `koanf:"cleanup_interval"`
}

// SecurityConfig holds CORS and rate limiting settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// LoggingConfig holds logging settings for zerolog.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is the output format: json or console.
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// IsProduction reports whether the server runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

// DatasetSource returns the catalog source described by the dataset section.
func (c *Config) DatasetSource() catalog.Source {
	return catalog.Source{
		Driver: c.Dataset.Driver,
		Path:   c.Dataset.Path,
		Table:  c.Dataset.Table,
	}
}

// ToRecommendConfig maps the flat configuration onto the engine and service config.
func (c *Config) ToRecommendConfig() *recommend.Config {
	rc := recommend.DefaultConfig()
	rc.Vectorizer.GenreMaxFeatures = c.Recommend.GenreMaxFeatures
	rc.Vectorizer.OverviewMaxFeatures = c.Recommend.OverviewMaxFeatures
	rc.Vectorizer.Stemming = c.Recommend.Stemming
	rc.Build.Workers = c.Recommend.BuildWorkers
	rc.Limits.DefaultK = c.Recommend.DefaultK
	rc.Limits.MaxK = c.Recommend.MaxK
	rc.Limits.MinQueryLength = c.Recommend.MinQueryLength
	rc.Limits.DefaultPageSize = c.API.DefaultPageSize
	rc.Limits.MaxPageSize = c.API.MaxPageSize
	rc.Cache.Enabled = c.Cache.Enabled
	rc.Cache.MaxEntries = c.Cache.Size
	rc.Cache.TTL = c.Cache.TTL
	return rc
}
