// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package catalog holds the movie catalog and the readers and writers for its
persisted forms.

A catalog is a table with the columns movie_name, genre and overview. It can
be read from:
  - a CSV file with a header row (driver "csv")
  - a SQLite database table (driver "sqlite", pure Go)
  - a DuckDB database table, or a CSV file scanned by DuckDB (driver "duckdb")

Missing values are read as empty strings. Row order is preserved and becomes
the movie index used by the similarity matrix.

Clean implements the offline preparation used by cmd/prepare: titles are
normalised, noise words removed and rows without a usable name dropped.
*/
package catalog
