// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import "errors"

// Error kinds returned by the service. Callers classify with errors.Is.
var (
	// ErrUnavailable means the catalog or similarity matrix failed to build.
	ErrUnavailable = errors.New("recommendation service unavailable")

	// ErrNotFound means no catalog entry matched the request.
	ErrNotFound = errors.New("movie not found")

	// ErrInvalidArgument means a request parameter was missing or out of range.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInternal means an unexpected failure inside the service.
	ErrInternal = errors.New("internal error")
)
