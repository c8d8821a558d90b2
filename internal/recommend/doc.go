// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package recommend provides content-based "more like this" recommendations
over a fixed movie catalog.

# Architecture

An Engine is built once from a catalog:

 1. Genre and overview fields are vectorised independently (TF-IDF)
 2. The similarity matrix combines both cosines, 70% genre and 30% overview
 3. Names are lowercased once for resolution

The Engine is immutable afterwards. A Service wraps it with request
validation, a memoising rank cache and an Observer hook for metrics. When
the build fails, NewUnavailableService yields a Service whose every
operation returns ErrUnavailable, so a half-built engine is never served.

# Name Resolution

Names are matched case-insensitively: first exactly, then as a substring in
either direction. Catalog order breaks ties, so the earliest entry wins.
Duplicate names are preserved in the catalog.

# Errors

Every failure wraps one of ErrUnavailable, ErrNotFound, ErrInvalidArgument
or ErrInternal. The availability check always runs first.

# Usage Example

	engine, err := recommend.Build(ctx, cat, cfg, logger)
	if err != nil {
	    svc := recommend.NewUnavailableService(err, cfg, logger)
	    // serve svc; every call returns ErrUnavailable
	}
	svc, err := recommend.NewService(engine, cfg, logger)
	rec, err := svc.Recommend(ctx, "Sholay", 6)
*/
package recommend
