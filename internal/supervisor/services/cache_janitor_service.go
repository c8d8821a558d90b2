// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package services

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/thejerf/suture/v4"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/metrics"
)

// CacheCleaner is the part of recommend.Service the janitor drives.
type CacheCleaner interface {
	// CleanupCache purges expired entries and returns how many were removed.
	CleanupCache() int

	// CacheStats returns cache counters; false when caching is disabled.
	CacheStats() (cache.Stats, bool)
}

// CacheJanitorService periodically purges expired rank cache entries and
// publishes the cache gauges. Lookups already skip expired entries; the
// sweep only releases their memory.
type CacheJanitorService struct {
	cleaner  CacheCleaner
	interval time.Duration
	logger   zerolog.Logger
	name     string
}

// NewCacheJanitorService creates a janitor sweeping every interval.
// A non-positive interval defaults to 5 minutes.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCacheJanitorService(cleaner CacheCleaner, interval time.Duration, logger zerolog.Logger) *CacheJanitorService {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &CacheJanitorService{
		cleaner:  cleaner,
		interval: interval,
		logger:   logger.With().Str("service", "cache-janitor").Logger(),
		name:     "cache-janitor",
	}
}

// Serve implements suture.Service. When caching is disabled it returns
// suture.ErrDoNotRestart so the supervisor drops it.
func (s *CacheJanitorService) Serve(ctx context.Context) error {
	if _, enabled := s.cleaner.CacheStats(); !enabled {
		s.logger.Debug().Msg("rank cache disabled, janitor not needed")
		return suture.ErrDoNotRestart
	}

	s.logger.Debug().Dur("interval", s.interval).Msg("cache janitor starting")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *CacheJanitorService) sweep() {
	removed := s.cleaner.CleanupCache()
	stats, _ := s.cleaner.CacheStats()
	metrics.UpdateCacheGauges(stats.Size, stats.Evictions)

	if removed > 0 {
		s.logger.Debug().
			Int("removed", removed).
			Int("size", stats.Size).
			Msg("expired rank cache entries purged")
	}
}

// String identifies the service in supervisor events.
func (s *CacheJanitorService) String() string {
	return s.name
}
