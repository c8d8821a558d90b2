// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// LoadCSV reads a catalog from the CSV file at path.
func LoadCSV(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close() //nolint:errcheck // read-only file

	c, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return c, nil
}

// ReadCSV reads a catalog from CSV with a header row. Columns are located by
// name, extra columns are ignored and short rows yield empty strings.
func ReadCSV(r io.Reader) (*Catalog, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input", ErrMissingColumn)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}

	cols, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	var movies []Movie
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		movies = append(movies, Movie{
			Name:     fieldAt(rec, cols[0]),
			Genre:    fieldAt(rec, cols[1]),
			Overview: fieldAt(rec, cols[2]),
		})
	}
	return New(movies), nil
}

func locateColumns(header []string) ([3]int, error) {
	cols := [3]int{-1, -1, -1}
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		switch h {
		case ColumnName:
			cols[0] = i
		case ColumnGenre:
			cols[1] = i
		case ColumnOverview:
			cols[2] = i
		}
	}
	for k, name := range []string{ColumnName, ColumnGenre, ColumnOverview} {
		if cols[k] < 0 {
			return cols, fmt.Errorf("%w: %s", ErrMissingColumn, name)
		}
	}
	return cols, nil
}

func fieldAt(rec []string, i int) string {
	if i < len(rec) {
		return rec[i]
	}
	return ""
}

// WriteCSV writes movies with the standard header.
func WriteCSV(w io.Writer, movies []Movie) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{ColumnName, ColumnGenre, ColumnOverview}); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, m := range movies {
		if err := cw.Write([]string{m.Name, m.Genre, m.Overview}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
