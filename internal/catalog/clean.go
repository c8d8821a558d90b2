// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/net/html"
)

// CleanOptions controls dataset preparation.
type CleanOptions struct {
	// StripMarkup removes HTML tags and entities from genre and overview before cleaning.
	StripMarkup bool
}

// CleanReport summarises a Clean run.
type CleanReport struct {
	Input            int `json:"input"`
	DroppedEmptyName int `json:"dropped_empty_name"`
	DroppedByTitle   int `json:"dropped_by_title"`
	Output           int `json:"output"`
}

// Clean normalises raw rows into the serving layout. Rows with a blank name
// are dropped, titles are cleaned and rows whose cleaned title is empty are
// dropped too. Order is preserved.
func Clean(raw []Movie, opts CleanOptions) ([]Movie, CleanReport) {
	report := CleanReport{Input: len(raw)}
	out := make([]Movie, 0, len(raw))
	for _, m := range raw {
		if strings.TrimSpace(m.Name) == "" {
			report.DroppedEmptyName++
			continue
		}
		name := CleanTitle(m.Name)
		if name == "" {
			report.DroppedByTitle++
			continue
		}
		genre, overview := m.Genre, m.Overview
		if opts.StripMarkup {
			genre = StripMarkup(genre)
			overview = StripMarkup(overview)
		}
		out = append(out, Movie{
			Name:     name,
			Genre:    CleanText(genre),
			Overview: CleanText(overview),
		})
	}
	report.Output = len(out)
	return out, report
}

// CleanTitle lowercases a raw title, removes the words "untitled" and
// "movie", keeps the part before the first '/', '-' or '(', collapses
// whitespace and title-cases the result.
func CleanTitle(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	if t == "" {
		return ""
	}
	t = strings.ReplaceAll(t, "untitled", "")
	t = strings.ReplaceAll(t, "movie", "")
	if i := strings.IndexAny(t, "/-("); i >= 0 {
		t = t[:i]
	}
	return titleCase(strings.Join(strings.Fields(t), " "))
}

// CleanText lowercases text, turns '/' separators into commas and collapses whitespace.
func CleanText(text string) string {
	t := strings.ToLower(text)
	t = strings.ReplaceAll(t, "/", ",")
	return strings.Join(strings.Fields(t), " ")
}

// titleCase upper-cases every letter that follows a non-letter and lower-cases the rest.
func titleCase(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	prevLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			if prevLetter {
				b.WriteRune(unicode.ToLower(r))
			} else {
				b.WriteRune(unicode.ToTitle(r))
			}
			prevLetter = true
			continue
		}
		b.WriteRune(r)
		prevLetter = false
	}
	return b.String()
}

// StripMarkup returns the visible text of an HTML fragment. Text inside
// script and style elements is discarded. Input without markup is returned unchanged.
func StripMarkup(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return s
	}
	root, err := html.Parse(strings.NewReader(s))
	if err != nil {
		return s
	}

	var parts []string
	var skipDepth int
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		skip := n.Type == html.ElementNode && (strings.EqualFold(n.Data, "script") || strings.EqualFold(n.Data, "style"))
		if skip {
			skipDepth++
		}
		if skipDepth == 0 && n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if skip {
			skipDepth--
		}
	}
	walk(root)
	return strings.Join(parts, " ")
}
