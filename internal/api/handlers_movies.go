// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
)

// Movies lists catalog names one page at a time.
//
// @Summary List movies
// @Description Returns one page of movie names in catalog order. A page past the end is empty.
// @Tags Movies
// @Produce json
// @Param page query int false "1-based page number" default(1)
// @Param per_page query int false "Names per page" default(50)
// @Success 200 {object} APIResponse{data=recommend.MovieList} "Movie names"
// @Failure 400 {object} APIResponse "Invalid pagination"
// @Failure 503 {object} APIResponse "Engine unavailable"
// @Router /movies [get]
func (h *Handler) Movies(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if !h.requireAvailable(rw) {
		return
	}

	req := MoviesRequest{
		Page:    getIntParam(r, "page", 1),
		PerPage: getIntParam(r, "per_page", h.service.Limits().DefaultPageSize),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	list, err := h.service.List(r.Context(), req.Page, req.PerPage)
	if err != nil {
		writeServiceError(rw, r, recommend.OpList, err, nil)
		return
	}

	rw.SuccessWithPagination(list, &PaginationMeta{
		Total:   list.Total,
		Count:   len(list.Movies),
		Page:    list.Page,
		PerPage: list.PerPage,
		HasMore: hasMore(list.Page, list.PerPage, list.Total),
	})
}

// hasMore reports whether pages follow page. Page may be arbitrarily large,
// so it is compared against the page count instead of multiplied out.
func hasMore(page, perPage, total int) bool {
	if perPage < 1 || total < 1 {
		return false
	}
	pages := (total-1)/perPage + 1
	return page < pages
}

// MovieDetails returns the full record of one movie.
//
// @Summary Get movie details
// @Description Resolves the name exactly, then by case-insensitive substring, and returns genre and overview.
// @Tags Movies
// @Produce json
// @Param name path string true "Movie name"
// @Success 200 {object} APIResponse{data=recommend.MovieDetails} "Movie details"
// @Failure 400 {object} APIResponse "Blank name"
// @Failure 404 {object} APIResponse "No matching movie"
// @Failure 503 {object} APIResponse "Engine unavailable"
// @Router /movies/{name} [get]
func (h *Handler) MovieDetails(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if !h.requireAvailable(rw) {
		return
	}

	name := chi.URLParam(r, "name")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	req := MovieDetailsRequest{Name: name}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	details, err := h.service.Details(r.Context(), req.Name)
	if err != nil {
		writeServiceError(rw, r, recommend.OpDetails, err, nil)
		return
	}
	rw.Success(details)
}

// Recommend returns the movies most similar to the requested one.
//
// @Summary Get recommendations
// @Description Resolves the movie name and returns its nearest neighbours by weighted genre and overview similarity, most similar first.
// @Tags Recommendations
// @Produce json
// @Param movie query string true "Movie name"
// @Param num query int false "Number of recommendations (1-20)" default(6)
// @Success 200 {object} APIResponse{data=recommend.Recommendation} "Recommendations"
// @Failure 400 {object} APIResponse "Missing movie or num out of range"
// @Failure 404 {object} APIResponse "No matching movie"
// @Failure 503 {object} APIResponse "Engine unavailable"
// @Router /recommend [get]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if !h.requireAvailable(rw) {
		return
	}

	req := RecommendRequest{
		Movie: r.URL.Query().Get("movie"),
		Num:   getIntParam(r, "num", h.service.Limits().DefaultK),
	}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	rec, err := h.service.Recommend(r.Context(), req.Movie, req.Num)
	if err != nil {
		writeServiceError(rw, r, recommend.OpRecommend, err,
			map[string]string{"suggestion": SearchSuggestion})
		return
	}

	logging.Ctx(r.Context()).Debug().
		Str("movie", rec.Movie).
		Int("count", rec.Count).
		Msg("Recommend served")
	rw.Success(rec)
}

// Search finds movies whose name contains the query.
//
// @Summary Search movies
// @Description Case-insensitive substring search over movie names, in catalog order. No match returns an empty list.
// @Tags Movies
// @Produce json
// @Param query query string true "Search text (at least 2 characters)"
// @Success 200 {object} APIResponse{data=recommend.SearchResult} "Matching names"
// @Failure 400 {object} APIResponse "Query missing or too short"
// @Failure 503 {object} APIResponse "Engine unavailable"
// @Router /search [get]
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	rw := NewResponseWriter(w, r)
	if !h.requireAvailable(rw) {
		return
	}

	req := SearchRequest{Query: r.URL.Query().Get("query")}
	if apiErr := validateRequest(&req); apiErr != nil {
		rw.ValidationError(apiErr.Message, apiErr.Details)
		return
	}

	result, err := h.service.Search(r.Context(), req.Query)
	if err != nil {
		writeServiceError(rw, r, recommend.OpSearch, err, nil)
		return
	}
	rw.Success(result)
}
