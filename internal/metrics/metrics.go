// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/tomtom215/cinematch/internal/recommend"
)

var (
	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// Dataset and Engine Build Metrics
	CatalogMovies = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_movies",
			Help: "Number of movies in the loaded catalog",
		},
	)

	DatasetLoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "dataset_load_duration_seconds",
			Help:    "Duration of dataset loading in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"driver"},
	)

	VectorizeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "textvec_fit_duration_seconds",
			Help:    "Duration of TF-IDF fitting for both text fields in seconds",
			Buckets: prometheus.DefBuckets,
		},
	)

	SimilarityBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "similarity_build_duration_seconds",
			Help:    "Duration of the pairwise similarity matrix build in seconds",
			Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 5, 10, 30, 60, 120},
		},
	)

	SimilarityMatrixBytes = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "similarity_matrix_bytes",
			Help: "Memory held by the dense similarity matrix",
		},
	)

	VocabularySize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "textvec_vocabulary_size",
			Help: "Number of terms in the fitted TF-IDF vocabulary",
		},
		[]string{"field"}, // "genre", "overview"
	)

	EmptyFieldMovies = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_empty_field_movies",
			Help: "Movies whose text field produced a zero vector",
		},
		[]string{"field"},
	)

	// Recommendation Service Metrics
	ServiceAvailable = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_service_available",
			Help: "1 when the similarity engine is loaded, 0 when the service is degraded",
		},
	)

	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommend_requests_total",
			Help: "Total recommendation service operations by outcome",
		},
		[]string{"operation", "outcome"},
	)

	RecommendCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_hits_total",
			Help: "Total number of neighbour list cache hits",
		},
	)

	RecommendCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "recommend_cache_misses_total",
			Help: "Total number of neighbour list cache misses",
		},
	)

	RecommendCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_cache_entries",
			Help: "Current number of cached neighbour lists",
		},
	)

	RecommendCacheEvictions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "recommend_cache_evictions",
			Help: "Cumulative neighbour list cache evictions",
		},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordDatasetLoad records how long loading the catalog took.
func RecordDatasetLoad(driver string, duration time.Duration) {
	DatasetLoadDuration.WithLabelValues(driver).Observe(duration.Seconds())
}

// RecordBuild publishes the statistics of a completed engine build.
func RecordBuild(stats recommend.BuildStats) {
	CatalogMovies.Set(float64(stats.Movies))
	VocabularySize.WithLabelValues("genre").Set(float64(stats.GenreTerms))
	VocabularySize.WithLabelValues("overview").Set(float64(stats.OverviewTerms))
	EmptyFieldMovies.WithLabelValues("genre").Set(float64(stats.EmptyGenreMovies))
	EmptyFieldMovies.WithLabelValues("overview").Set(float64(stats.EmptyOverviewMovies))
	VectorizeDuration.Observe(stats.VectorizeDuration.Seconds())
	SimilarityBuildDuration.Observe(stats.MatrixDuration.Seconds())
	SimilarityMatrixBytes.Set(float64(stats.MatrixMemoryBytes))
}

// SetServiceAvailable flips the availability gauge.
func SetServiceAvailable(available bool) {
	if available {
		ServiceAvailable.Set(1)
		return
	}
	ServiceAvailable.Set(0)
}

// UpdateCacheGauges mirrors the neighbour cache statistics into gauges.
func UpdateCacheGauges(size int, evictions int64) {
	RecommendCacheSize.Set(float64(size))
	RecommendCacheEvictions.Set(float64(evictions))
}

// RecommendObserver exports recommendation service events as Prometheus metrics.
type RecommendObserver struct{}

var _ recommend.Observer = RecommendObserver{}

// ObserveRequest counts one service operation.
func (RecommendObserver) ObserveRequest(operation, outcome string) {
	RecommendRequests.WithLabelValues(operation, outcome).Inc()
}

// ObserveCache counts a neighbour cache lookup.
func (RecommendObserver) ObserveCache(hit bool) {
	if hit {
		RecommendCacheHits.Inc()
		return
	}
	RecommendCacheMisses.Inc()
}
