// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"time"
)

// Hard request bounds. Configuration may tighten them but never widen them.
const (
	// MaxRecommendations is the upper bound for MaxK.
	MaxRecommendations = 20

	// MinSearchQueryLength is the lower bound for MinQueryLength.
	MinSearchQueryLength = 2
)

// Config contains all configuration for the recommendation engine and service.
type Config struct {
	// Vectorizer controls TF-IDF vocabulary construction.
	Vectorizer VectorizerConfig `json:"vectorizer"`

	// Build controls similarity matrix construction.
	Build BuildConfig `json:"build"`

	// Limits contains request bounds.
	Limits LimitsConfig `json:"limits"`

	// Cache contains rank memoisation parameters.
	Cache CacheConfig `json:"cache"`
}

// VectorizerConfig contains TF-IDF parameters.
type VectorizerConfig struct {
	// GenreMaxFeatures caps the genre vocabulary. Zero means unlimited.
	// Default: 0.
	GenreMaxFeatures int `json:"genre_max_features"`

	// OverviewMaxFeatures caps the overview vocabulary.
	// Default: 5000.
	OverviewMaxFeatures int `json:"overview_max_features"`

	// Stemming applies Snowball English stemming to both fields.
	// Default: false.
	Stemming bool `json:"stemming"`
}

// BuildConfig contains matrix build parameters.
type BuildConfig struct {
	// Workers is the number of goroutines computing matrix rows.
	// Zero uses GOMAXPROCS.
	Workers int `json:"workers"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// DefaultK is the number of recommendations when none is requested.
	// Default: 6.
	DefaultK int `json:"default_k"`

	// MaxK is the largest accepted number of recommendations.
	// Default: 20. Must not exceed MaxRecommendations.
	MaxK int `json:"max_k"`

	// MinQueryLength is the shortest accepted search query after trimming.
	// Default: 2. Must be at least MinSearchQueryLength.
	MinQueryLength int `json:"min_query_length"`

	// DefaultPageSize is the list page size when none is requested.
	// Default: 50.
	DefaultPageSize int `json:"default_page_size"`

	// MaxPageSize is the largest accepted list page size.
	// Default: 1000.
	MaxPageSize int `json:"max_page_size"`
}

// CacheConfig contains caching parameters.
type CacheConfig struct {
	// Enabled controls whether ranked results are memoised.
	// Default: true.
	Enabled bool `json:"enabled"`

	// MaxEntries is the maximum number of cached rankings.
	// Default: 4096.
	MaxEntries int `json:"max_entries"`

	// TTL is the cache entry time-to-live.
	// Default: 30m.
	TTL time.Duration `json:"ttl"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Vectorizer: VectorizerConfig{
			GenreMaxFeatures:    0,
			OverviewMaxFeatures: 5000,
			Stemming:            false,
		},
		Build: BuildConfig{
			Workers: 0,
		},
		Limits: LimitsConfig{
			DefaultK:        6,
			MaxK:            MaxRecommendations,
			MinQueryLength:  MinSearchQueryLength,
			DefaultPageSize: 50,
			MaxPageSize:     1000,
		},
		Cache: CacheConfig{
			Enabled:    true,
			MaxEntries: 4096,
			TTL:        30 * time.Minute,
		},
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Vectorizer.GenreMaxFeatures < 0 {
		return fmt.Errorf("vectorizer.genre_max_features must be non-negative, got %d", c.Vectorizer.GenreMaxFeatures)
	}
	if c.Vectorizer.OverviewMaxFeatures < 0 {
		return fmt.Errorf("vectorizer.overview_max_features must be non-negative, got %d", c.Vectorizer.OverviewMaxFeatures)
	}
	if c.Build.Workers < 0 {
		return fmt.Errorf("build.workers must be non-negative, got %d", c.Build.Workers)
	}

	if c.Limits.MaxK < 1 || c.Limits.MaxK > MaxRecommendations {
		return fmt.Errorf("limits.max_k must be in [1, %d], got %d", MaxRecommendations, c.Limits.MaxK)
	}
	if c.Limits.DefaultK < 1 || c.Limits.DefaultK > c.Limits.MaxK {
		return fmt.Errorf("limits.default_k must be in [1, %d], got %d", c.Limits.MaxK, c.Limits.DefaultK)
	}
	if c.Limits.MinQueryLength < MinSearchQueryLength {
		return fmt.Errorf("limits.min_query_length must be at least %d, got %d", MinSearchQueryLength, c.Limits.MinQueryLength)
	}
	if c.Limits.MaxPageSize < 1 {
		return fmt.Errorf("limits.max_page_size must be positive, got %d", c.Limits.MaxPageSize)
	}
	if c.Limits.DefaultPageSize < 1 || c.Limits.DefaultPageSize > c.Limits.MaxPageSize {
		return fmt.Errorf("limits.default_page_size must be in [1, %d], got %d", c.Limits.MaxPageSize, c.Limits.DefaultPageSize)
	}

	if c.Cache.Enabled {
		if c.Cache.MaxEntries < 1 {
			return fmt.Errorf("cache.max_entries must be positive, got %d", c.Cache.MaxEntries)
		}
		if c.Cache.TTL <= 0 {
			return fmt.Errorf("cache.ttl must be positive, got %v", c.Cache.TTL)
		}
	}
	return nil
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	// All nested structs contain only value types.
	clone := *c
	return &clone
}
