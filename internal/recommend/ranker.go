// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"fmt"
	"sort"
)

// Rank returns the k movies most similar to index, best first. The movie
// itself is never included and ties keep the lower index first. Fewer than
// k results are returned when the catalog has fewer than k+1 movies.
func (e *Engine) Rank(index, k int) ([]Neighbor, error) {
	if k < 1 || k > e.maxK {
		return nil, fmt.Errorf("%w: number of recommendations must be between 1 and %d", ErrInvalidArgument, e.maxK)
	}
	n := e.catalog.Len()
	if index < 0 || index >= n {
		return nil, fmt.Errorf("%w: index %d out of range", ErrNotFound, index)
	}

	row := e.matrix.Row(index)
	candidates := make([]int, 0, n-1)
	for j := 0; j < n; j++ {
		if j != index {
			candidates = append(candidates, j)
		}
	}
	sort.SliceStable(candidates, func(a, b int) bool {
		return row[candidates[a]] > row[candidates[b]]
	})

	if k > len(candidates) {
		k = len(candidates)
	}
	out := make([]Neighbor, k)
	for i := 0; i < k; i++ {
		j := candidates[i]
		out[i] = Neighbor{Index: j, Name: e.catalog.At(j).Name, Similarity: row[j]}
	}
	return out, nil
}
