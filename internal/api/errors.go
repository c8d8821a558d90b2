// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/tomtom215/cinematch/internal/logging"
	"github.com/tomtom215/cinematch/internal/recommend"
	"github.com/tomtom215/cinematch/internal/validation"
)

// SearchSuggestion is attached to recommendation lookups that match no movie.
const SearchSuggestion = "Try searching for the movie first using /search endpoint"

// msgInternal is the only message clients see for unexpected failures.
const msgInternal = "An unexpected error occurred"

// writeServiceError maps a recommend sentinel error onto the response envelope.
// details is attached to NOT_FOUND responses only.
func writeServiceError(rw *ResponseWriter, r *http.Request, op string, err error, details interface{}) {
	switch {
	case errors.Is(err, recommend.ErrUnavailable):
		rw.ServiceUnavailable(clientMessage(err, recommend.ErrUnavailable))
	case errors.Is(err, recommend.ErrInvalidArgument):
		rw.BadRequest(clientMessage(err, recommend.ErrInvalidArgument))
	case errors.Is(err, recommend.ErrNotFound):
		logging.Ctx(r.Context()).Debug().Str("operation", op).Err(err).Msg("Movie not found")
		rw.NotFoundWithDetails(clientMessage(err, recommend.ErrNotFound), details)
	default:
		logging.Ctx(r.Context()).Error().Str("operation", op).Err(err).Msg("Request failed")
		rw.InternalError(msgInternal)
	}
}

// clientMessage strips the sentinel prefix from a wrapped error so that
// "invalid argument: num must be ..." reaches the client as "num must be ...".
// Unavailable keeps its sentinel text since the cause may reveal file paths.
func clientMessage(err, sentinel error) string {
	if sentinel == recommend.ErrUnavailable {
		return sentinel.Error()
	}
	msg := err.Error()
	if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
		return rest
	}
	return msg
}

// validateRequest validates a request struct. Returns nil when it passes.
func validateRequest(v interface{}) *validation.APIError {
	verr := validation.ValidateStruct(v)
	if verr == nil {
		return nil
	}
	return verr.ToAPIError()
}

// getIntParam extracts an integer query parameter. Missing or non-numeric
// values fall back to defaultValue.
func getIntParam(r *http.Request, key string, defaultValue int) int {
	value := strings.TrimSpace(r.URL.Query().Get(key))
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}
