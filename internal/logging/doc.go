// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package logging provides centralized zerolog-based structured logging for CineMatch.
//
// # Overview
//
// The package provides:
//   - A global zerolog logger configured once from main via Init
//   - JSON output for production and console output for development
//   - Request and correlation ID propagation through context.Context
//   - An slog.Handler adapter so the supervisor tree logs through zerolog
//
// # Quick Start
//
//	logging.Init(logging.Config{
//	    Level:  "info",
//	    Format: "json",
//	})
//
//	logging.Info().Int("movies", n).Msg("Catalog loaded")
//	logging.Err(err).Str("path", path).Msg("Dataset load failed")
//
//	// Inside a request
//	logging.Ctx(ctx).Debug().Str("query", q).Msg("Search")
//
// # Components
//
// Long-lived components take a zerolog.Logger and add their own component field:
//
//	logger := logging.WithComponent("recommend")
//
// Always terminate event chains with Msg or Send, otherwise nothing is written.
package logging
