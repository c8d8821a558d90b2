// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package catalog

import (
	"reflect"
	"testing"
)

func TestCleanTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Sholay", "Sholay"},
		{"  kabhi khushi  kabhie gham ", "Kabhi Khushi Kabhie Gham"},
		{"Sholay (1975)", "Sholay"},
		{"DDLJ / Dilwale Dulhania", "Ddlj"},
		{"The Movie-Maker", "The"},
		{"Untitled Movie", ""},
		{"Untitled Salman Khan Project", "Salman Khan Project"},
		{"   ", ""},
		{"(2019)", ""},
		{"don't stop", "Don'T Stop"},
		{"3 idiots", "3 Idiots"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()
			if got := CleanTitle(tt.in); got != tt.want {
				t.Errorf("CleanTitle(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestCleanText(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in, want string
	}{
		{"Action/Drama  Romance", "action,drama romance"},
		{"  A Tale\tof\nTwo Cities ", "a tale of two cities"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := CleanText(tt.in); got != tt.want {
			t.Errorf("CleanText(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestStripMarkup(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name, in, want string
	}{
		{"plain text unchanged", "plain text", "plain text"},
		{"tags removed", "<p>A <b>bold</b> hero</p>", "A bold hero"},
		{"script skipped", "<p>story</p><script>alert(1)</script><style>p{}</style>", "story"},
		{"entities decoded", "Tom &amp; Jerry", "Tom & Jerry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := StripMarkup(tt.in); got != tt.want {
				t.Errorf("StripMarkup(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestClean(t *testing.T) {
	t.Parallel()

	raw := []Movie{
		{Name: "Sholay (1975)", Genre: "Action/Drama", Overview: "Two  criminals"},
		{Name: "  ", Genre: "drama"},
		{Name: "Untitled Movie", Genre: "comedy"},
		{Name: "Deewar", Genre: "<i>Crime</i>", Overview: "Brothers &amp; the law"},
	}

	got, report := Clean(raw, CleanOptions{StripMarkup: true})
	want := []Movie{
		{Name: "Sholay", Genre: "action,drama", Overview: "two criminals"},
		{Name: "Deewar", Genre: "crime", Overview: "brothers & the law"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Clean() = %+v, want %+v", got, want)
	}
	wantReport := CleanReport{Input: 4, DroppedEmptyName: 1, DroppedByTitle: 1, Output: 2}
	if report != wantReport {
		t.Errorf("report = %+v, want %+v", report, wantReport)
	}
}
