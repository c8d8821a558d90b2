// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package config provides centralized configuration management for CineMatch.

Configuration is layered with koanf v2: struct defaults, then an optional
YAML file, then environment variables. The merged result is validated
before it is returned.

# Configuration File

The file is located through CONFIG_PATH, or else the first existing path of
config.yaml, config.yml, /etc/cinematch/config.yaml and /etc/cinematch/config.yml:

	server:
	  port: 5000
	dataset:
	  driver: duckdb
	  path: /data/movies.duckdb
	  table: movies
	recommend:
	  overview_max_features: 5000
	  stemming: true
	cache:
	  ttl: 30m

# Environment Variables

Server:
  - HTTP_PORT (default: 5000), HTTP_HOST (default: 0.0.0.0)
  - HTTP_TIMEOUT (default: 30s), ENVIRONMENT (default: development)

Dataset:
  - DATASET_DRIVER: csv, sqlite or duckdb (default: csv)
  - DATASET_PATH (default: cleaned_bollywood_movies_final.csv)
  - DATASET_TABLE (default: movies)

Engine:
  - RECOMMEND_OVERVIEW_MAX_FEATURES, RECOMMEND_GENRE_MAX_FEATURES
  - RECOMMEND_STEMMING, RECOMMEND_BUILD_WORKERS
  - RECOMMEND_DEFAULT_K, RECOMMEND_MAX_K, RECOMMEND_MIN_QUERY_LENGTH

API and cache:
  - API_DEFAULT_PAGE_SIZE, API_MAX_PAGE_SIZE
  - CACHE_ENABLED, CACHE_SIZE, CACHE_TTL, CACHE_CLEANUP_INTERVAL

Security:
  - CORS_ORIGINS: comma-separated origins or * (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

Logging:
  - LOG_LEVEL, LOG_FORMAT, LOG_CALLER

Unmapped environment variables are ignored.

# Validation

Validate returns the first problem found and names the environment
variable to fix, for example "HTTP_PORT must be between 1 and 65535".
*/
package config
