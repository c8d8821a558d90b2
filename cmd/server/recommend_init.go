// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package main

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/config"
	"github.com/tomtom215/cinematch/internal/metrics"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// initRecommend loads the catalog and builds the similarity engine.
//
// A failed load or build is not fatal: the returned service reports itself
// unavailable and every data endpoint answers 503 until the process is
// restarted with a usable dataset.
func initRecommend(ctx context.Context, cfg *config.Config, logger zerolog.Logger) *recommend.Service {
	rcfg := cfg.ToRecommendConfig()
	opts := []recommend.Option{recommend.WithObserver(metrics.RecommendObserver{})}

	engine, err := buildEngine(ctx, cfg.DatasetSource(), rcfg, logger)
	if err != nil {
		logger.Error().Err(err).Msg("Recommendation engine unavailable")
		metrics.SetServiceAvailable(false)
		return recommend.NewUnavailableService(err, rcfg, logger, opts...)
	}

	svc, err := recommend.NewService(engine, rcfg, logger, opts...)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to create recommendation service")
		metrics.SetServiceAvailable(false)
		return recommend.NewUnavailableService(err, rcfg, logger, opts...)
	}

	metrics.RecordBuild(engine.Stats())
	metrics.SetServiceAvailable(true)
	return svc
}

func buildEngine(ctx context.Context, src catalog.Source, rcfg *recommend.Config, logger zerolog.Logger) (*recommend.Engine, error) {
	start := time.Now()
	cat, err := catalog.Load(ctx, src)
	if err != nil {
		return nil, fmt.Errorf("load catalog %s: %w", src, err)
	}
	driver := src.Driver
	if driver == "" {
		driver = catalog.DriverCSV
	}
	metrics.RecordDatasetLoad(driver, time.Since(start))

	logger.Info().
		Str("source", src.String()).
		Int("movies", cat.Len()).
		Dur("duration", time.Since(start)).
		Msg("Catalog loaded")

	engine, err := recommend.Build(ctx, cat, rcfg, logger)
	if err != nil {
		return nil, fmt.Errorf("build similarity engine: %w", err)
	}
	return engine, nil
}
