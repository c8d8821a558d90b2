// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"time"

	"github.com/tomtom215/cinematch/internal/recommend"
)

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct, constructor, home endpoint (this file)
//   - handlers_health.go: health and probe endpoints
//   - handlers_movies.go: movies, details, recommend and search
type Handler struct {
	service   *recommend.Service
	version   string
	startTime time.Time
}

// NewHandler creates a new API handler around the recommendation service.
//
// The service is constructed once at startup, either available or
// unavailable, and never replaced while the handler is serving.
//
// Example:
//
//	handler := api.NewHandler(svc, version)
//	router := api.NewRouter(handler, api.NewChiMiddleware(mwCfg))
//	srv := &http.Server{Handler: router.SetupChi()}
func NewHandler(svc *recommend.Service, version string) *Handler {
	if version == "" {
		version = "dev"
	}
	return &Handler{
		service:   svc,
		version:   version,
		startTime: time.Now(),
	}
}

// HomeResponse is the body of GET /.
type HomeResponse struct {
	Status    string            `json:"status"`
	Message   string            `json:"message"`
	Version   string            `json:"version"`
	Endpoints map[string]string `json:"endpoints"`
}

// Home describes the API. It answers 200 even when the engine is unavailable.
//
// @Summary API index
// @Description Returns a status message and the list of available endpoints.
// @Tags Core
// @Produce json
// @Success 200 {object} HomeResponse "API is running"
// @Router / [get]
func (h *Handler) Home(w http.ResponseWriter, _ *http.Request) {
	respondJSON(w, http.StatusOK, HomeResponse{
		Status:  "ok",
		Message: "CineMatch movie recommender API is running",
		Version: h.version,
		Endpoints: map[string]string{
			"/api/v1/movies":        "List movie names (page, per_page)",
			"/api/v1/movies/{name}": "Get details for a movie",
			"/api/v1/recommend":     "Get recommendations (movie, num)",
			"/api/v1/search":        "Search movies by name (query)",
			"/api/v1/health":        "Service health",
			"/api/v1/health/live":   "Liveness probe",
			"/api/v1/health/ready":  "Readiness probe",
			"/metrics":              "Prometheus metrics",
			"/swagger/index.html":   "API documentation",
		},
	})
}

// requireAvailable writes 503 and returns false when the engine failed to build.
func (h *Handler) requireAvailable(rw *ResponseWriter) bool {
	if h.service.Available() {
		return true
	}
	rw.ServiceUnavailable(recommend.ErrUnavailable.Error())
	return false
}
