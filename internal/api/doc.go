// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package api provides the HTTP REST API layer for CineMatch.

Key Components:

  - Router: chi route tree and middleware stack
  - Handler: request handlers backed by a single recommend.Service
  - ResponseWriter: the standard JSON envelope, encoded with goccy/go-json
  - Request structs: query parameters validated with go-playground/validator

Endpoints:

	GET /                       API index (status, message, endpoints)
	GET /api/v1/health          engine status, cache counters, memory
	GET /api/v1/health/live     liveness probe
	GET /api/v1/health/ready    readiness probe, 503 until the engine is built
	GET /api/v1/movies          paginated movie names (page, per_page)
	GET /api/v1/movies/{name}   genre and overview for one movie
	GET /api/v1/recommend       nearest neighbours (movie, num)
	GET /api/v1/search          substring search over names (query)
	GET /metrics                Prometheus exposition
	GET /swagger/*              Swagger UI

Error Mapping:

Service errors are classified with errors.Is:

	recommend.ErrInvalidArgument  400 BAD_REQUEST
	validator failure             400 VALIDATION_FAILED
	recommend.ErrNotFound         404 NOT_FOUND
	rate limit                    429 TOO_MANY_REQUESTS
	anything else                 500 INTERNAL_ERROR (generic message, logged)
	recommend.ErrUnavailable      503 SERVICE_UNAVAILABLE

Availability is checked before request validation, so an unavailable
engine always answers 503.

Usage Example:

	svc, _ := recommend.NewService(engine, cfg.ToRecommendConfig(), logger)
	handler := api.NewHandler(svc, version)
	mw := api.NewChiMiddleware(api.ChiMiddlewareConfigFromSecurity(&cfg.Security))
	router := api.NewRouter(handler, mw)
	http.ListenAndServe(":5000", router.SetupChi())
*/
package api
