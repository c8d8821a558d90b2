// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/tomtom215/cinematch/internal/metrics"
)

func newInstrumentedRouter() *chi.Mux {
	r := chi.NewRouter()
	r.Use(PrometheusMetrics)
	r.Get("/api/v1/movies/{name}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})
	r.Get("/api/v1/recommend", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})
	return r
}

func TestPrometheusMetrics_RoutePatternLabel(t *testing.T) {
	router := newInstrumentedRouter()
	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/movies/{name}", "200")
	before := testutil.ToFloat64(counter)

	for _, name := range []string{"Sholay", "Deewar", "Don"} {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/"+name, nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("Expected status 200, got %d", rec.Code)
		}
	}

	if got := testutil.ToFloat64(counter) - before; got != 3 {
		t.Errorf("Expected 3 requests under the route pattern, got %v", got)
	}
}

func TestPrometheusMetrics_StatusCode(t *testing.T) {
	router := newInstrumentedRouter()
	counter := metrics.APIRequestsTotal.WithLabelValues("GET", "/api/v1/recommend", "404")
	before := testutil.ToFloat64(counter)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/recommend?movie=x", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("Expected status 404, got %d", rec.Code)
	}
	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected one 404 sample, got %v", got)
	}
}

func TestPrometheusMetrics_Unmatched(t *testing.T) {
	handler := PrometheusMetrics(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	counter := metrics.APIRequestsTotal.WithLabelValues("GET", unmatchedRoute, "200")
	before := testutil.ToFloat64(counter)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/no/router", nil))

	if got := testutil.ToFloat64(counter) - before; got != 1 {
		t.Errorf("Expected unmatched sample, got %v", got)
	}
}

func TestMetricsResponseWriter(t *testing.T) {
	t.Parallel()

	t.Run("captures first status code", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		w := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

		w.WriteHeader(http.StatusTeapot)
		w.WriteHeader(http.StatusInternalServerError)

		if w.statusCode != http.StatusTeapot {
			t.Errorf("Expected status 418, got %d", w.statusCode)
		}
	})

	t.Run("default status code is 200", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		w := &metricsResponseWriter{ResponseWriter: rec, statusCode: http.StatusOK}

		_, _ = w.Write([]byte("body"))

		if w.statusCode != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.statusCode)
		}
		if rec.Body.String() != "body" {
			t.Errorf("Expected body to pass through, got %q", rec.Body.String())
		}
	})

	t.Run("unwrap returns inner writer", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		w := &metricsResponseWriter{ResponseWriter: rec}
		if w.Unwrap() != rec {
			t.Error("Unwrap did not return the wrapped writer")
		}
	})
}

func BenchmarkPrometheusMetrics(b *testing.B) {
	router := newInstrumentedRouter()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/movies/Sholay", nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		router.ServeHTTP(httptest.NewRecorder(), req)
	}
}
