// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/cinematch/internal/recommend"
)

func TestWriteServiceError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "invalid argument",
			err:         fmt.Errorf("%w: num must be between 1 and 20", recommend.ErrInvalidArgument),
			wantStatus:  http.StatusBadRequest,
			wantCode:    ErrCodeBadRequest,
			wantMessage: "num must be between 1 and 20",
		},
		{
			name:        "not found",
			err:         fmt.Errorf("%w: movie %q not found in database", recommend.ErrNotFound, "x"),
			wantStatus:  http.StatusNotFound,
			wantCode:    ErrCodeNotFound,
			wantMessage: `movie "x" not found in database`,
		},
		{
			name:        "unavailable hides cause",
			err:         fmt.Errorf("%w: open /data/movies.csv: no such file", recommend.ErrUnavailable),
			wantStatus:  http.StatusServiceUnavailable,
			wantCode:    ErrCodeServiceUnavailable,
			wantMessage: recommend.ErrUnavailable.Error(),
		},
		{
			name:        "unexpected",
			err:         errors.New("index out of range"),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrCodeInternalError,
			wantMessage: msgInternal,
		},
		{
			name:        "internal sentinel",
			err:         fmt.Errorf("%w: nil engine", recommend.ErrInternal),
			wantStatus:  http.StatusInternalServerError,
			wantCode:    ErrCodeInternalError,
			wantMessage: msgInternal,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/v1/recommend", nil)
			writeServiceError(NewResponseWriter(w, r), r, recommend.OpRecommend, tt.err, nil)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", w.Code, tt.wantStatus)
			}
			var resp APIResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to unmarshal response: %v", err)
			}
			if resp.Success || resp.Error == nil {
				t.Fatalf("expected error envelope, got %s", w.Body.String())
			}
			if resp.Error.Code != tt.wantCode || resp.Error.Message != tt.wantMessage {
				t.Errorf("error = %+v, want %s %q", resp.Error, tt.wantCode, tt.wantMessage)
			}
		})
	}
}

func TestGetIntParam(t *testing.T) {
	t.Parallel()

	tests := []struct {
		query string
		want  int
	}{
		{"", 6},
		{"num=3", 3},
		{"num=%203%20", 3},
		{"num=-1", -1},
		{"num=abc", 6},
		{"num=2.5", 6},
		{"num=", 6},
	}
	for _, tt := range tests {
		r := httptest.NewRequest(http.MethodGet, "/api/v1/recommend?"+tt.query, nil)
		if got := getIntParam(r, "num", 6); got != tt.want {
			t.Errorf("getIntParam(%q) = %d, want %d", tt.query, got, tt.want)
		}
	}
}

func TestValidateRequest(t *testing.T) {
	t.Parallel()

	if apiErr := validateRequest(&RecommendRequest{Movie: "Sholay", Num: 6}); apiErr != nil {
		t.Errorf("valid request rejected: %+v", apiErr)
	}

	apiErr := validateRequest(&RecommendRequest{Movie: " ", Num: 0})
	if apiErr == nil {
		t.Fatal("expected validation error")
	}
	if apiErr.Code != ErrCodeValidationFailed {
		t.Errorf("Code = %s, want %s", apiErr.Code, ErrCodeValidationFailed)
	}
	fields, ok := apiErr.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("Details = %#v, want two fields", apiErr.Details)
	}
	if fields[0]["field"] != "movie" || fields[1]["field"] != "num" {
		t.Errorf("fields = %v", fields)
	}
}
