// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package textvec

import (
	"errors"
	"fmt"
	"math"
	"sort"
)

// ErrNegativeMaxFeatures is returned when Options.MaxFeatures is below zero.
var ErrNegativeMaxFeatures = errors.New("textvec: max features must be >= 0")

// Options controls vocabulary construction.
type Options struct {
	// MaxFeatures keeps only the most frequent terms across the corpus. Zero means unlimited.
	MaxFeatures int

	// Stopwords overrides the default English list. A nil set uses DefaultStopwords.
	Stopwords StopwordSet

	// Stem applies Snowball English stemming after stop-word removal.
	Stem bool
}

// Model is a fitted TF-IDF vocabulary. It is immutable after Fit returns.
type Model struct {
	vocab []string
	index map[string]int
	idf   []float64
	an    analyzer
}

// Fit builds the vocabulary and inverse document frequencies for docs and
// returns the weighted, L2-normalised vector of every document in order.
func Fit(docs []string, opts Options) (*Model, []Vector, error) {
	if opts.MaxFeatures < 0 {
		return nil, nil, fmt.Errorf("%w: got %d", ErrNegativeMaxFeatures, opts.MaxFeatures)
	}
	stop := opts.Stopwords
	if stop == nil {
		stop = DefaultStopwords()
	}
	an := analyzer{stopwords: stop, stem: opts.Stem}

	analyzed := make([][]string, len(docs))
	corpusCount := make(map[string]int)
	for i, doc := range docs {
		terms := an.terms(doc)
		analyzed[i] = terms
		for _, t := range terms {
			corpusCount[t]++
		}
	}

	vocab := selectVocabulary(corpusCount, opts.MaxFeatures)
	index := make(map[string]int, len(vocab))
	for i, t := range vocab {
		index[t] = i
	}

	df := make([]int, len(vocab))
	counts := make([]map[int]int, len(docs))
	for i, terms := range analyzed {
		c := make(map[int]int)
		for _, t := range terms {
			if idx, ok := index[t]; ok {
				c[idx]++
			}
		}
		for idx := range c {
			df[idx]++
		}
		counts[i] = c
	}

	n := float64(len(docs))
	idf := make([]float64, len(vocab))
	for i, d := range df {
		idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}

	m := &Model{vocab: vocab, index: index, idf: idf, an: an}
	vectors := make([]Vector, len(docs))
	for i, c := range counts {
		vectors[i] = m.weigh(c)
	}
	return m, vectors, nil
}

// selectVocabulary returns the retained terms sorted alphabetically. When
// limit is positive only the limit most frequent terms survive; ties go to
// the alphabetically smaller term.
func selectVocabulary(corpusCount map[string]int, limit int) []string {
	terms := make([]string, 0, len(corpusCount))
	for t := range corpusCount {
		terms = append(terms, t)
	}
	if limit > 0 && len(terms) > limit {
		sort.Slice(terms, func(i, j int) bool {
			ci, cj := corpusCount[terms[i]], corpusCount[terms[j]]
			if ci != cj {
				return ci > cj
			}
			return terms[i] < terms[j]
		})
		terms = terms[:limit]
	}
	sort.Strings(terms)
	return terms
}

func (m *Model) weigh(counts map[int]int) Vector {
	if len(counts) == 0 {
		return Vector{}
	}
	indices := make([]int, 0, len(counts))
	for idx := range counts {
		indices = append(indices, idx)
	}
	sort.Ints(indices)

	values := make([]float64, len(indices))
	var sum float64
	for i, idx := range indices {
		w := float64(counts[idx]) * m.idf[idx]
		values[i] = w
		sum += w * w
	}
	norm := math.Sqrt(sum)
	if norm == 0 {
		return Vector{}
	}
	for i := range values {
		values[i] /= norm
	}
	return Vector{Indices: indices, Values: values}
}

// Transform vectorises a document against the fitted vocabulary. Terms
// outside the vocabulary are ignored.
func (m *Model) Transform(doc string) Vector {
	c := make(map[int]int)
	for _, t := range m.an.terms(doc) {
		if idx, ok := m.index[t]; ok {
			c[idx]++
		}
	}
	return m.weigh(c)
}

// Vocabulary returns the retained terms in index order.
func (m *Model) Vocabulary() []string {
	out := make([]string, len(m.vocab))
	copy(out, m.vocab)
	return out
}

// Len returns the vocabulary size.
func (m *Model) Len() int {
	return len(m.vocab)
}

// IDF returns the inverse document frequency of term and whether it is in the vocabulary.
func (m *Model) IDF(term string) (float64, bool) {
	idx, ok := m.index[term]
	if !ok {
		return 0, false
	}
	return m.idf[idx], true
}
