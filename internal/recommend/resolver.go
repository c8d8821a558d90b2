// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"strings"
)

// Resolve maps a user-supplied name to a catalog index.
//
// The first pass looks for a case-insensitive exact match, the second for a
// case-insensitive substring match in either direction. Both passes scan in
// catalog order and return the earliest hit. A blank catalog name never
// matches; catalog.Load drops such rows before serving.
func (e *Engine) Resolve(query string) (int, error) {
	q := normalizeName(query)
	if q == "" {
		return -1, fmt.Errorf("%w: movie name is required", ErrInvalidArgument)
	}

	for i, name := range e.lowered {
		if name == q {
			return i, nil
		}
	}

	for i, name := range e.lowered {
		if name == "" {
			continue
		}
		if strings.Contains(name, q) || strings.Contains(q, name) {
			return i, nil
		}
	}

	return -1, fmt.Errorf("%w: movie %q not found in database", ErrNotFound, strings.TrimSpace(query))
}

// Search returns the indices of every movie whose name contains q
// case-insensitively, in catalog order. q must already be lowercased.
func (e *Engine) Search(q string) []int {
	var hits []int
	for i, name := range e.lowered {
		if strings.Contains(name, q) {
			hits = append(hits, i)
		}
	}
	return hits
}
