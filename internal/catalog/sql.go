// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"

	// DuckDB driver - reads DuckDB tables and CSV files through read_csv_auto
	_ "github.com/duckdb/duckdb-go/v2"
	// Pure-Go SQLite driver registered as "sqlite"
	_ "github.com/glebarez/sqlite"
)

// Supported database/sql drivers.
const (
	DriverSQLite = "sqlite"
	DriverDuckDB = "duckdb"
)

var identRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// LoadSQL reads a catalog from a table through database/sql. For the DuckDB
// driver a path ending in .csv is scanned directly with read_csv_auto.
func LoadSQL(ctx context.Context, driver, path, table string) (*Catalog, error) {
	if driver != DriverSQLite && driver != DriverDuckDB {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedDriver, driver)
	}

	dsn := path
	from := table
	if driver == DriverDuckDB && strings.HasSuffix(strings.ToLower(path), ".csv") {
		dsn = ""
		from = fmt.Sprintf("read_csv_auto('%s', header = true, all_varchar = true)", strings.ReplaceAll(path, "'", "''"))
	} else if !identRe.MatchString(table) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	defer db.Close() //nolint:errcheck // read-only handle

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("connect %s: %w", driver, err)
	}

	query := fmt.Sprintf("SELECT %s, %s, %s FROM %s", ColumnName, ColumnGenre, ColumnOverview, from)
	if driver == DriverSQLite {
		query += " ORDER BY rowid"
	}
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query catalog: %w", err)
	}
	defer rows.Close() //nolint:errcheck // drained below

	var movies []Movie
	for rows.Next() {
		var name, genre, overview sql.NullString
		if err := rows.Scan(&name, &genre, &overview); err != nil {
			return nil, fmt.Errorf("scan catalog row: %w", err)
		}
		movies = append(movies, Movie{Name: name.String, Genre: genre.String, Overview: overview.String})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate catalog rows: %w", err)
	}
	return New(movies), nil
}

// WriteSQLite replaces table in the SQLite database at path with movies,
// preserving their order.
func WriteSQLite(ctx context.Context, path, table string, movies []Movie) error {
	if !identRe.MatchString(table) {
		return fmt.Errorf("%w: %q", ErrInvalidTable, table)
	}

	db, err := sql.Open(DriverSQLite, path)
	if err != nil {
		return fmt.Errorf("open sqlite: %w", err)
	}
	defer db.Close() //nolint:errcheck // closed after commit

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	stmts := []string{
		fmt.Sprintf("DROP TABLE IF EXISTS %s", table),
		fmt.Sprintf("CREATE TABLE %s (%s TEXT NOT NULL, %s TEXT, %s TEXT)", table, ColumnName, ColumnGenre, ColumnOverview),
	}
	for _, s := range stmts {
		if _, err := tx.ExecContext(ctx, s); err != nil {
			return fmt.Errorf("prepare table: %w", err)
		}
	}

	ins, err := tx.PrepareContext(ctx, fmt.Sprintf("INSERT INTO %s (%s, %s, %s) VALUES (?, ?, ?)", table, ColumnName, ColumnGenre, ColumnOverview))
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer ins.Close() //nolint:errcheck // statement scoped to tx

	for _, m := range movies {
		if _, err := ins.ExecContext(ctx, m.Name, m.Genre, m.Overview); err != nil {
			return fmt.Errorf("insert %q: %w", m.Name, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
