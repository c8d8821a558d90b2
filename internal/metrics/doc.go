// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package metrics provides Prometheus metrics collection and export for observability.

All collectors are registered with the default registry through promauto and
exposed at /metrics in Prometheus text format:

	curl http://localhost:5000/metrics

# Available Metrics

API Metrics:
  - api_requests_total: Total API requests (counter)
    Labels: method, endpoint (chi route pattern), status_code
  - api_request_duration_seconds: Request latency (histogram)
    Labels: method, endpoint
  - api_active_requests: In-flight requests (gauge)
  - api_rate_limit_hits_total: Rejected by the rate limiter (counter)
    Labels: endpoint

Build Metrics:
  - catalog_movies: Movies in the loaded catalog (gauge)
  - dataset_load_duration_seconds: Dataset load time (histogram)
    Labels: driver (csv, sqlite, duckdb)
  - textvec_fit_duration_seconds: TF-IDF fit time for both fields (histogram)
  - textvec_vocabulary_size: Vocabulary size (gauge)
    Labels: field (genre, overview)
  - catalog_empty_field_movies: Movies with a zero vector (gauge)
    Labels: field
  - similarity_build_duration_seconds: Matrix build time (histogram)
  - similarity_matrix_bytes: Matrix memory (gauge)

Service Metrics:
  - recommend_service_available: 1 when the engine is loaded (gauge)
  - recommend_requests_total: Operations by outcome (counter)
    Labels: operation (list, recommend, search, details),
    outcome (ok, invalid_argument, not_found, unavailable, internal)
  - recommend_cache_hits_total, recommend_cache_misses_total (counters)
  - recommend_cache_entries, recommend_cache_evictions (gauges)

System Metrics:
  - app_info: Version and Go runtime (gauge)
    Labels: version, go_version

# Usage

The recommendation service reports through RecommendObserver:

	svc, err := recommend.NewService(engine, cfg, logger,
	    recommend.WithObserver(metrics.RecommendObserver{}))

Build statistics are published once after the engine is built:

	metrics.RecordBuild(engine.Stats())
	metrics.SetServiceAvailable(true)

HTTP instrumentation lives in internal/middleware.PrometheusMetrics.

# Cardinality

The endpoint label uses the chi route pattern (for example
/api/v1/movies/{name}), never the raw URL path, so movie names do not
create new series.
*/
package metrics
