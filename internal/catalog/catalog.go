// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import "errors"

// Column names of the persisted catalog layout.
const (
	ColumnName     = "movie_name"
	ColumnGenre    = "genre"
	ColumnOverview = "overview"
)

var (
	// ErrMissingColumn is returned when a required column is absent from the source.
	ErrMissingColumn = errors.New("catalog: required column missing")

	// ErrUnsupportedDriver is returned for an unknown dataset driver.
	ErrUnsupportedDriver = errors.New("catalog: unsupported driver")

	// ErrInvalidTable is returned when a table name is not a plain identifier.
	ErrInvalidTable = errors.New("catalog: invalid table name")
)

// Movie is one catalog row. Missing values are empty strings.
type Movie struct {
	Name     string `json:"name"`
	Genre    string `json:"genre"`
	Overview string `json:"overview"`
}

// Catalog is an ordered, immutable sequence of movies. The position of a
// movie is its index and never changes for the lifetime of the catalog.
// Names are not unique.
type Catalog struct {
	movies []Movie
}

// New copies movies into a new catalog.
func New(movies []Movie) *Catalog {
	c := &Catalog{movies: make([]Movie, len(movies))}
	copy(c.movies, movies)
	return c
}

// Len returns the number of movies.
func (c *Catalog) Len() int {
	return len(c.movies)
}

// At returns the movie at index i. It panics if i is out of range.
func (c *Catalog) At(i int) Movie {
	return c.movies[i]
}

// Slice returns a copy of the movies in [from, to).
func (c *Catalog) Slice(from, to int) []Movie {
	if from < 0 {
		from = 0
	}
	if to > len(c.movies) {
		to = len(c.movies)
	}
	if from >= to {
		return []Movie{}
	}
	out := make([]Movie, to-from)
	copy(out, c.movies[from:to])
	return out
}

// Names returns every name in catalog order.
func (c *Catalog) Names() []string {
	return c.field(func(m Movie) string { return m.Name })
}

// Genres returns every genre field in catalog order.
func (c *Catalog) Genres() []string {
	return c.field(func(m Movie) string { return m.Genre })
}

// Overviews returns every overview field in catalog order.
func (c *Catalog) Overviews() []string {
	return c.field(func(m Movie) string { return m.Overview })
}

func (c *Catalog) field(get func(Movie) string) []string {
	out := make([]string, len(c.movies))
	for i, m := range c.movies {
		out[i] = get(m)
	}
	return out
}
