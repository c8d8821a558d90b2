// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package textvec

import (
	"strings"
	"unicode"

	"github.com/kljensen/snowball/english"
)

// isWordRune matches the word-character class: letters, digits and underscore.
func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// Tokenize lowercases text and splits it into maximal runs of word characters.
// Runs shorter than two runes are discarded.
func Tokenize(text string) []string {
	lower := strings.ToLower(text)
	var tokens []string

	start := -1
	runes := 0
	for i, r := range lower {
		if isWordRune(r) {
			if start < 0 {
				start = i
				runes = 0
			}
			runes++
			continue
		}
		if start >= 0 && runes >= 2 {
			tokens = append(tokens, lower[start:i])
		}
		start = -1
	}
	if start >= 0 && runes >= 2 {
		tokens = append(tokens, lower[start:])
	}
	return tokens
}

// analyzer turns a document into the terms that are counted.
type analyzer struct {
	stopwords StopwordSet
	stem      bool
}

func (a analyzer) terms(doc string) []string {
	tokens := Tokenize(doc)
	out := tokens[:0]
	for _, tok := range tokens {
		if a.stopwords.Contains(tok) {
			continue
		}
		if a.stem {
			tok = english.Stem(tok, true)
			if len(tok) == 0 {
				continue
			}
		}
		out = append(out, tok)
	}
	return out
}
