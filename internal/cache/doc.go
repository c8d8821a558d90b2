// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package cache provides a thread-safe generic LRU cache with TTL support.

The recommendation service memoises ranked neighbour lists keyed by
(movie index, k). The similarity matrix is immutable, so a cached result
never goes stale; the TTL only bounds how long cold entries hold memory.

# Usage Example

	c := cache.NewLRU[string, []int](4096, 30*time.Minute)
	c.Add("key", []int{1, 2, 3})
	if v, ok := c.Get("key"); ok {
	    // Use cached value
	}

	// From a periodic janitor
	removed := c.CleanupExpired()

# Thread Safety

All methods take a single mutex. Get mutates recency order, so there is no
read-only fast path.
*/
package cache
