// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

// Request structs validated with go-playground/validator before the service
// is called. Static bounds live in the tags; bounds that come from
// configuration (max page size, max recommendations, minimum search length)
// are enforced by recommend.Service and surface as BAD_REQUEST.
//
//	req := RecommendRequest{
//	    Movie: r.URL.Query().Get("movie"),
//	    Num:   getIntParam(r, "num", limits.DefaultK),
//	}
//	if apiErr := validateRequest(&req); apiErr != nil {
//	    NewResponseWriter(w, r).ValidationError(apiErr.Message, apiErr.Details)
//	    return
//	}

// MoviesRequest represents the query parameters for GET /api/v1/movies.
//
// Fields:
//   - Page: 1-based page number (default 1)
//   - PerPage: names per page (default api.default_page_size)
type MoviesRequest struct {
	Page    int `query:"page" validate:"min=1"`
	PerPage int `query:"per_page" validate:"min=1"`
}

// MovieDetailsRequest represents the path parameter of GET /api/v1/movies/{name}.
type MovieDetailsRequest struct {
	Name string `query:"name" validate:"trimmed_min=1"`
}

// RecommendRequest represents the query parameters for GET /api/v1/recommend.
//
// Fields:
//   - Movie: movie name, resolved exactly then by substring
//   - Num: number of recommendations (default recommend.default_k)
type RecommendRequest struct {
	Movie string `query:"movie" validate:"trimmed_min=1"`
	Num   int    `query:"num" validate:"min=1"`
}

// SearchRequest represents the query parameters for GET /api/v1/search.
type SearchRequest struct {
	Query string `query:"query" validate:"trimmed_min=1"`
}
