// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package textvec turns short text fields into sparse TF-IDF vectors.

# Pipeline

Each document goes through the same analyzer:
  - Lowercase, then split into runs of letters, digits and underscore
  - Discard runs shorter than two characters
  - Drop English stop words
  - Optionally stem with the Snowball English stemmer

The vocabulary is every surviving term in the corpus, optionally capped to
the MaxFeatures most frequent terms, and indexed alphabetically.

# Weighting

Term weight is raw count times smoothed inverse document frequency:

	idf(t) = ln((1 + n) / (1 + df(t))) + 1

Every vector is then L2-normalised, so the dot product of two vectors is their
cosine similarity. Documents with no surviving terms get the zero vector.

# Usage Example

	model, vectors, err := textvec.Fit(overviews, textvec.Options{MaxFeatures: 5000})
	if err != nil {
	    return err
	}
	sim := textvec.Cosine(vectors[0], vectors[1])
	_ = model.Len()

Fit is deterministic: the same input always produces bit-identical vectors.
*/
package textvec
