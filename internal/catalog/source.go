// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"fmt"
	"strings"
)

// DriverCSV reads a plain CSV file without a database.
const DriverCSV = "csv"

// Source describes where the catalog is read from.
type Source struct {
	Driver string
	Path   string
	Table  string
}

// String implements fmt.Stringer.
func (s Source) String() string {
	if s.Driver == DriverCSV || s.Driver == "" {
		return "csv:" + s.Path
	}
	return fmt.Sprintf("%s:%s#%s", s.Driver, s.Path, s.Table)
}

// Load reads the catalog described by src for serving. Rows with a blank
// name cannot be looked up, so they are dropped.
func Load(ctx context.Context, src Source) (*Catalog, error) {
	var (
		c   *Catalog
		err error
	)
	switch src.Driver {
	case DriverCSV, "":
		c, err = LoadCSV(src.Path)
	case DriverSQLite, DriverDuckDB:
		c, err = LoadSQL(ctx, src.Driver, src.Path, src.Table)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, src.Driver)
	}
	if err != nil {
		return nil, err
	}
	return dropBlankNames(c), nil
}

func dropBlankNames(c *Catalog) *Catalog {
	kept := make([]Movie, 0, len(c.movies))
	for _, m := range c.movies {
		if strings.TrimSpace(m.Name) != "" {
			kept = append(kept, m)
		}
	}
	if len(kept) == len(c.movies) {
		return c
	}
	return &Catalog{movies: kept}
}
