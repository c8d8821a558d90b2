// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package main provides the CineMatch HTTP server
//
// CineMatch API serves content-based movie recommendations computed from
// genre and plot overview similarity over a fixed movie catalog.
//
// @title CineMatch API
// @version 1.0
// @description Content-based movie recommendations over a Bollywood movie catalog
// @description
// @description ## Similarity
// @description
// @description Two movies are compared by the cosine similarity of their TF-IDF vectors:
// @description 70% genre similarity plus 30% overview similarity. The matrix is built
// @description once at startup and is read-only afterwards.
// @description
// @description ## Rate Limiting
// @description
// @description Default rate limit: 100 requests per minute per IP address on /api/v1.
// @description Health endpoints allow 1000 requests per minute.
// @description
// @description ## Error Responses
// @description
// @description All error responses follow this format:
// @description ```json
// @description {
// @description   "success": false,
// @description   "error": {
// @description     "code": "NOT_FOUND",
// @description     "message": "movie \"xyz\" not found in database",
// @description     "details": {"suggestion": "Try searching for the movie first using /search endpoint"}
// @description   },
// @description   "meta": {
// @description     "timestamp": "2026-01-18T12:34:56Z"
// @description   }
// @description }
// @description ```
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/cinematch/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /api/v1
// @schemes http https
//
// @tag.name Core
// @tag.description Health and readiness endpoints
//
// @tag.name Movies
// @tag.description Catalog listing, lookup, search and recommendations
package main
