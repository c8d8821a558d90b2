// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package validation provides struct validation using go-playground/validator v10.
//
// A single validator instance is built on first use with
// WithRequiredStructEnabled and the custom trimmed_min tag, which counts
// runes after trimming surrounding whitespace:
//
//	type SearchRequest struct {
//	    Query string `query:"query" validate:"trimmed_min=2"`
//	}
//
// Error messages name fields by their `query` tag (HTTP request structs) or
// `koanf` tag (configuration), falling back to the Go field name.
// ToAPIError converts failures to the VALIDATION_FAILED API error shape.
package validation
