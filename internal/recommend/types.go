// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "time"

// Neighbor is one ranked recommendation.
type Neighbor struct {
	Index      int     `json:"index"`
	Name       string  `json:"name"`
	Similarity float64 `json:"similarity"`
}

// MovieList is one page of catalog names.
type MovieList struct {
	Total   int      `json:"total"`
	Page    int      `json:"page"`
	PerPage int      `json:"per_page"`
	Movies  []string `json:"movies"`
}

// Recommendation is the result of a Recommend call.
type Recommendation struct {
	// Query is the name as supplied by the caller.
	Query string `json:"query"`

	// Movie is the catalog name the query resolved to.
	Movie string `json:"movie"`

	// Index is the resolved catalog position.
	Index int `json:"index"`

	Recommendations []string   `json:"recommendations"`
	Details         []Neighbor `json:"details"`
	Count           int        `json:"count"`
}

// SearchResult holds names matching a substring query, in catalog order.
type SearchResult struct {
	Query   string   `json:"query"`
	Results []string `json:"results"`
	Count   int      `json:"count"`
}

// MovieDetails is the full record of a resolved movie.
type MovieDetails struct {
	Name     string `json:"name"`
	Genre    string `json:"genre"`
	Overview string `json:"overview"`
	Index    int    `json:"index"`
}

// BuildStats describes a completed engine build.
type BuildStats struct {
	Movies              int           `json:"movies"`
	GenreTerms          int           `json:"genre_terms"`
	OverviewTerms       int           `json:"overview_terms"`
	EmptyGenreMovies    int           `json:"empty_genre_movies"`
	EmptyOverviewMovies int           `json:"empty_overview_movies"`
	VectorizeDuration   time.Duration `json:"vectorize_duration"`
	MatrixDuration      time.Duration `json:"matrix_duration"`
	MatrixMemoryBytes   int64         `json:"matrix_memory_bytes"`
	BuiltAt             time.Time     `json:"built_at"`
}

// Status reports whether the service can answer queries.
type Status struct {
	Available bool        `json:"available"`
	Reason    string      `json:"reason,omitempty"`
	Build     *BuildStats `json:"build,omitempty"`
}
