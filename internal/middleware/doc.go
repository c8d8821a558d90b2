// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package middleware provides HTTP middleware components for the application.

Both middlewares use the standard func(http.Handler) http.Handler shape so
they mount directly on a chi router:

	r := chi.NewRouter()
	r.Use(middleware.PrometheusMetrics)
	r.With(middleware.Compression).Get("/api/v1/movies", h.Movies)

Key Components:

  - PrometheusMetrics: request count, latency and in-flight gauge, labelled
    by the chi route pattern
  - Compression: gzip for clients sending Accept-Encoding: gzip

CORS, rate limiting and request IDs come from the chi ecosystem and are
configured in internal/api.
*/
package middleware
