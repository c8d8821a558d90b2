// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Command prepare cleans a raw movie dataset into the layout served by
// cmd/server.
//
// Usage:
//
//	prepare -in bollywood_movies.csv -out cleaned_bollywood_movies_final.csv
//	prepare -in raw.csv -sqlite movies.db -table movies -strip-markup
//
// The input needs movie_name, genre and overview columns. Rows with a blank
// name, or a name that cleans to nothing, are dropped. Row order is kept.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
)

type options struct {
	in          string
	out         string
	sqlitePath  string
	table       string
	stripMarkup bool
	logLevel    string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("prepare", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.in, "in", "", "raw dataset CSV (required)")
	fs.StringVar(&opts.out, "out", "cleaned_bollywood_movies_final.csv", "cleaned CSV output path, empty to skip")
	fs.StringVar(&opts.sqlitePath, "sqlite", "", "also write the cleaned rows to this SQLite database")
	fs.StringVar(&opts.table, "table", "movies", "SQLite table name")
	fs.BoolVar(&opts.stripMarkup, "strip-markup", false, "remove HTML tags and entities from genre and overview")
	fs.StringVar(&opts.logLevel, "log-level", "info", "trace, debug, info, warn or error")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.in == "" {
		return opts, errors.New("-in is required")
	}
	if opts.out == "" && opts.sqlitePath == "" {
		return opts, errors.New("nothing to write: set -out or -sqlite")
	}
	return opts, nil
}

// run cleans opts.in and writes the requested outputs.
func run(ctx context.Context, opts options) (catalog.CleanReport, error) {
	raw, err := catalog.LoadCSV(opts.in)
	if err != nil {
		return catalog.CleanReport{}, err
	}

	movies, report := catalog.Clean(raw.Slice(0, raw.Len()), catalog.CleanOptions{StripMarkup: opts.stripMarkup})
	logging.Debug().
		Int("input", report.Input).
		Int("output", report.Output).
		Msg("Dataset cleaned")

	if opts.out != "" {
		if err := writeCSVFile(opts.out, movies); err != nil {
			return report, err
		}
		logging.Info().Str("path", opts.out).Int("movies", len(movies)).Msg("Cleaned CSV written")
	}

	if opts.sqlitePath != "" {
		if err := catalog.WriteSQLite(ctx, opts.sqlitePath, opts.table, movies); err != nil {
			return report, fmt.Errorf("write sqlite %s: %w", opts.sqlitePath, err)
		}
		logging.Info().
			Str("path", opts.sqlitePath).
			Str("table", opts.table).
			Int("movies", len(movies)).
			Msg("SQLite table written")
	}
	return report, nil
}

// writeCSVFile writes through a temporary file in the target directory so a
// failed run never leaves a truncated dataset behind.
func writeCSVFile(path string, movies []catalog.Movie) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".prepare-*.csv")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // gone after rename

	if err := catalog.WriteCSV(tmp, movies); err != nil {
		tmp.Close() //nolint:errcheck,gosec // write error takes precedence
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("rename to %s: %w", path, err)
	}
	return nil
}

func main() {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, errorStyle.Render(err.Error()))
		os.Exit(2)
	}

	cfg := logging.DefaultConfig()
	cfg.Level = opts.logLevel
	cfg.Format = "console"
	logging.Init(cfg)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	report, err := run(ctx, opts)
	if err != nil {
		logging.Error().Err(err).Str("input", opts.in).Msg("Dataset preparation failed")
		cancel()
		os.Exit(1) //nolint:gocritic // cancel called explicitly
	}
	fmt.Println(renderSummary(opts, report))
}
