// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	dto "github.com/prometheus/client_model/go"

	"github.com/tomtom215/cinematch/internal/recommend"
)

func TestRecordAPIRequest(t *testing.T) {
	before := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommend", "200"))

	RecordAPIRequest("GET", "/api/v1/recommend", "200", 12*time.Millisecond)
	RecordAPIRequest("GET", "/api/v1/recommend", "200", 3*time.Millisecond)

	after := testutil.ToFloat64(APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommend", "200"))
	if after-before != 2 {
		t.Errorf("api_requests_total delta = %v, want 2", after-before)
	}
}

func TestTrackActiveRequest(t *testing.T) {
	before := testutil.ToFloat64(APIActiveRequests)

	TrackActiveRequest(true)
	TrackActiveRequest(true)
	if got := testutil.ToFloat64(APIActiveRequests) - before; got != 2 {
		t.Errorf("active requests delta = %v, want 2", got)
	}
	TrackActiveRequest(false)
	TrackActiveRequest(false)
	if got := testutil.ToFloat64(APIActiveRequests); got != before {
		t.Errorf("active requests = %v, want %v", got, before)
	}
}

func TestRecordBuild(t *testing.T) {
	RecordBuild(recommend.BuildStats{
		Movies:              120,
		GenreTerms:          18,
		OverviewTerms:       950,
		EmptyGenreMovies:    2,
		EmptyOverviewMovies: 5,
		VectorizeDuration:   40 * time.Millisecond,
		MatrixDuration:      250 * time.Millisecond,
		MatrixMemoryBytes:   120 * 120 * 8,
		BuiltAt:             time.Now(),
	})

	tests := []struct {
		name   string
		metric prometheus.Collector
		want   float64
	}{
		{"catalog_movies", CatalogMovies, 120},
		{"genre vocabulary", VocabularySize.WithLabelValues("genre"), 18},
		{"overview vocabulary", VocabularySize.WithLabelValues("overview"), 950},
		{"empty genre", EmptyFieldMovies.WithLabelValues("genre"), 2},
		{"empty overview", EmptyFieldMovies.WithLabelValues("overview"), 5},
		{"matrix bytes", SimilarityMatrixBytes, 115200},
	}
	for _, tt := range tests {
		if got := testutil.ToFloat64(tt.metric); got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSetServiceAvailable(t *testing.T) {
	SetServiceAvailable(true)
	if got := testutil.ToFloat64(ServiceAvailable); got != 1 {
		t.Errorf("available = %v, want 1", got)
	}
	SetServiceAvailable(false)
	if got := testutil.ToFloat64(ServiceAvailable); got != 0 {
		t.Errorf("available = %v, want 0", got)
	}
}

func TestRecommendObserver(t *testing.T) {
	var obs recommend.Observer = RecommendObserver{}

	okBefore := testutil.ToFloat64(RecommendRequests.WithLabelValues(recommend.OpRecommend, recommend.OutcomeOK))
	nfBefore := testutil.ToFloat64(RecommendRequests.WithLabelValues(recommend.OpRecommend, recommend.OutcomeNotFound))
	hitsBefore := testutil.ToFloat64(RecommendCacheHits)
	missesBefore := testutil.ToFloat64(RecommendCacheMisses)

	obs.ObserveRequest(recommend.OpRecommend, recommend.OutcomeOK)
	obs.ObserveRequest(recommend.OpRecommend, recommend.OutcomeNotFound)
	obs.ObserveCache(true)
	obs.ObserveCache(false)
	obs.ObserveCache(false)

	if d := testutil.ToFloat64(RecommendRequests.WithLabelValues(recommend.OpRecommend, recommend.OutcomeOK)) - okBefore; d != 1 {
		t.Errorf("ok delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(RecommendRequests.WithLabelValues(recommend.OpRecommend, recommend.OutcomeNotFound)) - nfBefore; d != 1 {
		t.Errorf("not_found delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(RecommendCacheHits) - hitsBefore; d != 1 {
		t.Errorf("hits delta = %v, want 1", d)
	}
	if d := testutil.ToFloat64(RecommendCacheMisses) - missesBefore; d != 2 {
		t.Errorf("misses delta = %v, want 2", d)
	}
}

func TestUpdateCacheGauges(t *testing.T) {
	UpdateCacheGauges(17, 4)
	if got := testutil.ToFloat64(RecommendCacheSize); got != 17 {
		t.Errorf("cache size = %v, want 17", got)
	}
	if got := testutil.ToFloat64(RecommendCacheEvictions); got != 4 {
		t.Errorf("cache evictions = %v, want 4", got)
	}
}

func TestRecordDatasetLoad(t *testing.T) {
	RecordDatasetLoad("csv", 5*time.Millisecond)
	if n := testutil.CollectAndCount(DatasetLoadDuration); n < 1 {
		t.Errorf("expected dataset load histogram series, got %d", n)
	}
}

// TestMetricsRegistration verifies all metrics are properly registered
func TestMetricsRegistration(t *testing.T) {
	collectors := []prometheus.Collector{
		APIRequestsTotal,
		APIRequestDuration,
		APIActiveRequests,
		APIRateLimitHits,
		CatalogMovies,
		DatasetLoadDuration,
		VectorizeDuration,
		SimilarityBuildDuration,
		SimilarityMatrixBytes,
		VocabularySize,
		EmptyFieldMovies,
		ServiceAvailable,
		RecommendRequests,
		RecommendCacheHits,
		RecommendCacheMisses,
		RecommendCacheSize,
		RecommendCacheEvictions,
		AppInfo,
	}

	for _, m := range collectors {
		ch := make(chan *prometheus.Desc, 10)
		m.Describe(ch)
		close(ch)

		count := 0
		for range ch {
			count++
		}
		if count == 0 {
			t.Errorf("Metric has no descriptors")
		}
	}
}

// histogramSamples reads the observation count of a histogram.
func histogramSamples(t *testing.T, m prometheus.Metric) uint64 {
	t.Helper()
	var out dto.Metric
	if err := m.Write(&out); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if out.GetHistogram() == nil {
		t.Fatal("metric is not a histogram")
	}
	return out.GetHistogram().GetSampleCount()
}

func TestRecordDatasetLoad_Histogram(t *testing.T) {
	obs, ok := DatasetLoadDuration.WithLabelValues("duckdb").(prometheus.Metric)
	if !ok {
		t.Fatal("dataset load observer does not implement prometheus.Metric")
	}
	before := histogramSamples(t, obs)

	RecordDatasetLoad("duckdb", 250*time.Millisecond)

	if got := histogramSamples(t, obs) - before; got != 1 {
		t.Errorf("dataset_load_duration_seconds samples delta = %d, want 1", got)
	}
}
