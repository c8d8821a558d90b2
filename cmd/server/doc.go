// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package main is the entry point for the CineMatch server application.

CineMatch loads a movie catalog (title, genre, overview), vectorizes genres and
overviews with TF-IDF, precomputes a weighted cosine similarity matrix and
serves recommendations, search and catalog browsing over a JSON HTTP API.

# Application Architecture

The server implements a layered architecture with Suture v4 process supervision:

	RootSupervisor ("cinematch")
	├── DataSupervisor ("data-layer")
	│   └── Cache janitor (expired neighbour lists)
	└── APISupervisor ("api-layer")
	    └── HTTP Server (chi router)

Component initialization order:

 1. Configuration: Koanf v2 with defaults, optional YAML file and environment variables
 2. Logging: zerolog with JSON/console output modes
 3. Catalog: CSV file, SQLite or DuckDB table
 4. Engine: TF-IDF vectorization and the similarity matrix
 5. Supervisor Tree: Suture v4 process supervision
 6. HTTP Server: Chi router with middleware stack

If the catalog cannot be loaded or the engine fails to build, the server still
starts. Health reports "degraded" and every data endpoint answers 503.

# Configuration

Configuration is loaded via Koanf v2 with layered sources (highest priority wins):

	Priority: Environment variables > Config file > Defaults

Core environment variables:

	# Server
	HTTP_PORT=5000
	HTTP_HOST=0.0.0.0
	LOG_LEVEL=info               # trace, debug, info, warn, error
	LOG_FORMAT=json              # json or console

	# Dataset
	DATASET_DRIVER=csv           # csv, sqlite or duckdb
	DATASET_PATH=cleaned_bollywood_movies_final.csv
	DATASET_TABLE=movies

	# Engine
	RECOMMEND_DEFAULT_K=6
	RECOMMEND_MAX_K=20
	RECOMMEND_STEMMING=false

	# Security
	CORS_ORIGINS=*
	RATE_LIMIT_REQUESTS=100
	RATE_LIMIT_WINDOW=1m

# Signals

SIGINT and SIGTERM cancel the root context. The supervisor stops the HTTP
server gracefully and reports any service that missed its shutdown timeout.

# Build

	go build -ldflags "-X main.version=1.0.0" ./cmd/server
*/
package main
