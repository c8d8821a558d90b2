// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

// Package similarity builds the dense all-pairs similarity matrix that
// combines genre and overview cosine scores.
package similarity

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"

	"github.com/tomtom215/cinematch/internal/textvec"
)

// Field weights for the combined score.
const (
	GenreWeight    = 0.7
	OverviewWeight = 0.3
)

// ErrLengthMismatch is returned when the two fields do not describe the same documents.
var ErrLengthMismatch = errors.New("similarity: genre and overview vector counts differ")

// Matrix is a dense symmetric N×N matrix stored row-major. It is read-only
// once Build returns and safe for concurrent readers.
type Matrix struct {
	n    int
	data []float64
}

// Size returns N.
func (m *Matrix) Size() int {
	return m.n
}

// At returns the similarity of items i and j.
func (m *Matrix) At(i, j int) float64 {
	return m.data[i*m.n+j]
}

// Row returns the similarities of item i against every item. The returned
// slice aliases the matrix and must not be modified.
func (m *Matrix) Row(i int) []float64 {
	return m.data[i*m.n : (i+1)*m.n]
}

// BuildOptions tunes matrix construction.
type BuildOptions struct {
	// Workers is the number of goroutines computing rows. Zero uses GOMAXPROCS.
	Workers int
}

// postings is an inverted index from term to (document, weight) pairs in
// increasing document order.
type postings [][]posting

type posting struct {
	doc    int
	weight float64
}

func invert(vectors []textvec.Vector) postings {
	maxTerm := -1
	for _, v := range vectors {
		if n := len(v.Indices); n > 0 && v.Indices[n-1] > maxTerm {
			maxTerm = v.Indices[n-1]
		}
	}
	idx := make(postings, maxTerm+1)
	for doc, v := range vectors {
		for k, term := range v.Indices {
			idx[term] = append(idx[term], posting{doc: doc, weight: v.Values[k]})
		}
	}
	return idx
}

// accumulate adds v·d into acc[d] for every document d > row sharing a term
// with v. Touched documents are appended to touched.
func (p postings) accumulate(row int, v textvec.Vector, acc []float64, seen []bool, touched []int) []int {
	for k, term := range v.Indices {
		w := v.Values[k]
		for _, post := range p[term] {
			if post.doc <= row {
				continue
			}
			if !seen[post.doc] {
				seen[post.doc] = true
				touched = append(touched, post.doc)
			}
			acc[post.doc] += w * post.weight
		}
	}
	return touched
}

// Build computes M[i][j] = 0.7·cos(genre) + 0.3·cos(overview) for every pair.
// Only the upper triangle is computed and mirrored, values are clamped to
// [0, 1] and the diagonal is exactly 1.
func Build(ctx context.Context, genre, overview []textvec.Vector, opts BuildOptions) (*Matrix, error) {
	if len(genre) != len(overview) {
		return nil, fmt.Errorf("%w: %d genre, %d overview", ErrLengthMismatch, len(genre), len(overview))
	}
	n := len(genre)
	m := &Matrix{n: n, data: make([]float64, n*n)}
	if n == 0 {
		return m, nil
	}

	genreIdx := invert(genre)
	overviewIdx := invert(overview)

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > n {
		workers = n
	}

	rows := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			g := make([]float64, n)
			o := make([]float64, n)
			seen := make([]bool, n)
			touched := make([]int, 0, n)
			for i := range rows {
				touched = genreIdx.accumulate(i, genre[i], g, seen, touched[:0])
				touched = overviewIdx.accumulate(i, overview[i], o, seen, touched)
				for _, j := range touched {
					s := clamp(GenreWeight*g[j] + OverviewWeight*o[j])
					m.data[i*n+j] = s
					m.data[j*n+i] = s
					g[j], o[j], seen[j] = 0, 0, false
				}
				m.data[i*n+i] = 1
			}
		}()
	}

	var err error
feed:
	for i := 0; i < n; i++ {
		if err = ctx.Err(); err != nil {
			break
		}
		select {
		case <-ctx.Done():
			err = ctx.Err()
			break feed
		case rows <- i:
		}
	}
	close(rows)
	wg.Wait()
	if err != nil {
		return nil, fmt.Errorf("similarity build cancelled: %w", err)
	}
	return m, nil
}

func clamp(x float64) float64 {
	switch {
	case x < 0:
		return 0
	case x > 1:
		return 1
	default:
		return x
	}
}
