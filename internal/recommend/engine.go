// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/similarity"
	"github.com/tomtom215/cinematch/internal/textvec"
)

// Engine holds a catalog together with its similarity matrix. It is
// immutable once Build returns and safe for concurrent use.
type Engine struct {
	catalog *catalog.Catalog
	matrix  *similarity.Matrix

	// lowered holds trimmed, lowercased names in catalog order for resolution.
	lowered []string

	maxK   int
	stats  BuildStats
	logger zerolog.Logger
}

// Build vectorises both text fields of cat and computes the combined
// similarity matrix. No engine is returned unless every step succeeds.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func Build(ctx context.Context, cat *catalog.Catalog, cfg *Config, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if cat == nil {
		return nil, fmt.Errorf("%w: nil catalog", ErrInternal)
	}
	logger = logger.With().Str("component", "recommend").Logger()

	start := time.Now()
	genreModel, genreVecs, err := textvec.Fit(cat.Genres(), textvec.Options{
		MaxFeatures: cfg.Vectorizer.GenreMaxFeatures,
		Stem:        cfg.Vectorizer.Stemming,
	})
	if err != nil {
		return nil, fmt.Errorf("vectorize genre: %w", err)
	}
	overviewModel, overviewVecs, err := textvec.Fit(cat.Overviews(), textvec.Options{
		MaxFeatures: cfg.Vectorizer.OverviewMaxFeatures,
		Stem:        cfg.Vectorizer.Stemming,
	})
	if err != nil {
		return nil, fmt.Errorf("vectorize overview: %w", err)
	}
	vectorizeDur := time.Since(start)

	start = time.Now()
	matrix, err := similarity.Build(ctx, genreVecs, overviewVecs, similarity.BuildOptions{Workers: cfg.Build.Workers})
	if err != nil {
		return nil, fmt.Errorf("build similarity matrix: %w", err)
	}
	matrixDur := time.Since(start)

	names := cat.Names()
	lowered := make([]string, len(names))
	for i, n := range names {
		lowered[i] = normalizeName(n)
	}

	n := cat.Len()
	stats := BuildStats{
		Movies:            n,
		GenreTerms:        genreModel.Len(),
		OverviewTerms:     overviewModel.Len(),
		VectorizeDuration: vectorizeDur,
		MatrixDuration:    matrixDur,
		MatrixMemoryBytes: int64(n) * int64(n) * 8,
		BuiltAt:           time.Now(),
	}
	for i := range genreVecs {
		if genreVecs[i].IsZero() {
			stats.EmptyGenreMovies++
		}
		if overviewVecs[i].IsZero() {
			stats.EmptyOverviewMovies++
		}
	}

	logger.Info().
		Int("movies", stats.Movies).
		Int("genre_terms", stats.GenreTerms).
		Int("overview_terms", stats.OverviewTerms).
		Dur("vectorize", vectorizeDur).
		Dur("matrix", matrixDur).
		Msg("Similarity engine built")

	return &Engine{
		catalog: cat,
		matrix:  matrix,
		lowered: lowered,
		maxK:    cfg.Limits.MaxK,
		stats:   stats,
		logger:  logger,
	}, nil
}

func normalizeName(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Catalog returns the catalog the engine was built from.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Matrix returns the similarity matrix.
func (e *Engine) Matrix() *similarity.Matrix {
	return e.matrix
}

// Stats returns the build statistics.
func (e *Engine) Stats() BuildStats {
	return e.stats
}

// Size returns the number of movies.
func (e *Engine) Size() int {
	return e.catalog.Len()
}
