// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package config

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"
)

// isolate points CONFIG_PATH at path (or a missing file) and moves into an
// empty directory so no stray config.yaml is picked up.
func isolate(t *testing.T, path string) {
	t.Helper()
	t.Chdir(t.TempDir())
	if path == "" {
		path = filepath.Join(t.TempDir(), "missing.yaml")
	}
	t.Setenv(ConfigPathEnvVar, path)
}

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

// TestDefaultConfig verifies that defaultConfig() returns proper defaults
func TestDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := defaultConfig()

	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Dataset.Driver != "csv" || cfg.Dataset.Path != DefaultDatasetPath || cfg.Dataset.Table != "movies" {
		t.Errorf("Dataset = %+v", cfg.Dataset)
	}
	if cfg.Recommend.OverviewMaxFeatures != 5000 || cfg.Recommend.GenreMaxFeatures != 0 {
		t.Errorf("Recommend features = %d/%d, want 5000/0", cfg.Recommend.OverviewMaxFeatures, cfg.Recommend.GenreMaxFeatures)
	}
	if cfg.Recommend.DefaultK != 6 || cfg.Recommend.MaxK != 20 || cfg.Recommend.MinQueryLength != 2 {
		t.Errorf("Recommend limits = %+v", cfg.Recommend)
	}
	if cfg.API.DefaultPageSize != 50 || cfg.API.MaxPageSize != 1000 {
		t.Errorf("API = %+v", cfg.API)
	}
	if !cfg.Cache.Enabled || cfg.Cache.Size != 4096 || cfg.Cache.TTL != 30*time.Minute || cfg.Cache.CleanupInterval != 5*time.Minute {
		t.Errorf("Cache = %+v", cfg.Cache)
	}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, []string{"*"}) {
		t.Errorf("CORSOrigins = %v, want [*]", cfg.Security.CORSOrigins)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v", cfg.Logging)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("defaults should validate: %v", err)
	}
}

func TestEnvTransformFunc(t *testing.T) {
	t.Parallel()

	tests := []struct {
		env  string
		want string
	}{
		{"HTTP_PORT", "server.port"},
		{"DATASET_PATH", "dataset.path"},
		{"DATASET_DRIVER", "dataset.driver"},
		{"RECOMMEND_MAX_K", "recommend.max_k"},
		{"RECOMMEND_STEMMING", "recommend.stemming"},
		{"CACHE_TTL", "cache.ttl"},
		{"CORS_ORIGINS", "security.cors_origins"},
		{"RATE_LIMIT_REQUESTS", "security.rate_limit_reqs"},
		{"DISABLE_RATE_LIMIT", "security.rate_limit_disabled"},
		{"LOG_LEVEL", "logging.level"},
		{"log_format", "logging.format"},
		{"PATH", ""},
		{"HOME", ""},
		{"RANDOM_VAR", ""},
	}
	for _, tt := range tests {
		if got := envTransformFunc(tt.env); got != tt.want {
			t.Errorf("envTransformFunc(%q) = %q, want %q", tt.env, got, tt.want)
		}
	}
}

func TestFindConfigFile(t *testing.T) {
	t.Run("no config file", func(t *testing.T) {
		isolate(t, "")
		if got := findConfigFile(); got != "" {
			t.Errorf("findConfigFile() = %q, want empty", got)
		}
	})

	t.Run("config.yaml in working directory", func(t *testing.T) {
		dir := t.TempDir()
		t.Chdir(dir)
		t.Setenv(ConfigPathEnvVar, "")
		if err := os.WriteFile("config.yaml", []byte("server:\n  port: 8080\n"), 0o600); err != nil {
			t.Fatal(err)
		}
		if got := findConfigFile(); got != "config.yaml" {
			t.Errorf("findConfigFile() = %q, want config.yaml", got)
		}
	})

	t.Run("CONFIG_PATH takes priority", func(t *testing.T) {
		path := writeConfigFile(t, "server:\n  port: 8080\n")
		isolate(t, path)
		if got := findConfigFile(); got != path {
			t.Errorf("findConfigFile() = %q, want %q", got, path)
		}
	})
}

func TestLoadWithKoanf_Defaults(t *testing.T) {
	isolate(t, "")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 5000 {
		t.Errorf("Server.Port = %d, want 5000", cfg.Server.Port)
	}
	if cfg.Dataset.Path != DefaultDatasetPath {
		t.Errorf("Dataset.Path = %q", cfg.Dataset.Path)
	}
}

func TestLoadWithKoanf_EnvVars(t *testing.T) {
	isolate(t, "")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("DATASET_DRIVER", "sqlite")
	t.Setenv("DATASET_PATH", "/data/movies.db")
	t.Setenv("DATASET_TABLE", "films")
	t.Setenv("RECOMMEND_MAX_K", "15")
	t.Setenv("RECOMMEND_STEMMING", "true")
	t.Setenv("CACHE_TTL", "10m")
	t.Setenv("CORS_ORIGINS", "https://a.example.com, https://b.example.com")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("Server.Port = %d, want 9000", cfg.Server.Port)
	}
	if cfg.Dataset.Driver != "sqlite" || cfg.Dataset.Path != "/data/movies.db" || cfg.Dataset.Table != "films" {
		t.Errorf("Dataset = %+v", cfg.Dataset)
	}
	if cfg.Recommend.MaxK != 15 || !cfg.Recommend.Stemming {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Cache.TTL != 10*time.Minute {
		t.Errorf("Cache.TTL = %v, want 10m", cfg.Cache.TTL)
	}
	want := []string{"https://a.example.com", "https://b.example.com"}
	if !reflect.DeepEqual(cfg.Security.CORSOrigins, want) {
		t.Errorf("CORSOrigins = %v, want %v", cfg.Security.CORSOrigins, want)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: 8081
dataset:
  driver: duckdb
  path: /data/catalog.duckdb
recommend:
  overview_max_features: 2000
  default_k: 10
cache:
  enabled: false
logging:
  format: console
`)
	isolate(t, path)

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 8081 {
		t.Errorf("Server.Port = %d, want 8081", cfg.Server.Port)
	}
	if cfg.Dataset.Driver != "duckdb" || cfg.Dataset.Table != "movies" {
		t.Errorf("Dataset = %+v, want duckdb with default table", cfg.Dataset)
	}
	if cfg.Recommend.OverviewMaxFeatures != 2000 || cfg.Recommend.DefaultK != 10 {
		t.Errorf("Recommend = %+v", cfg.Recommend)
	}
	if cfg.Recommend.MaxK != 20 {
		t.Errorf("Recommend.MaxK = %d, want default 20", cfg.Recommend.MaxK)
	}
	if cfg.Cache.Enabled {
		t.Error("Cache.Enabled should be false from file")
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
}

func TestLoadWithKoanf_EnvOverridesFile(t *testing.T) {
	path := writeConfigFile(t, "server:\n  port: 8081\nlogging:\n  level: warn\n")
	isolate(t, path)
	t.Setenv("HTTP_PORT", "9999")

	cfg, err := LoadWithKoanf()
	if err != nil {
		t.Fatalf("LoadWithKoanf() error = %v", err)
	}
	if cfg.Server.Port != 9999 {
		t.Errorf("Server.Port = %d, want 9999 from env", cfg.Server.Port)
	}
	if cfg.Logging.Level != "warn" {
		t.Errorf("Logging.Level = %q, want warn from file", cfg.Logging.Level)
	}
}

func TestLoadWithKoanf_ValidationError(t *testing.T) {
	isolate(t, "")
	t.Setenv("RECOMMEND_DEFAULT_K", "25")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("LoadWithKoanf() should fail when default_k exceeds max_k")
	}
	if !strings.Contains(err.Error(), "RECOMMEND_DEFAULT_K") {
		t.Errorf("error = %v, want mention of RECOMMEND_DEFAULT_K", err)
	}
}

func TestLoadWithKoanf_MaxKAboveCeiling(t *testing.T) {
	isolate(t, "")
	t.Setenv("RECOMMEND_MAX_K", "30")

	_, err := LoadWithKoanf()
	if err == nil {
		t.Fatal("LoadWithKoanf() should reject max_k above 20")
	}
	if !strings.Contains(err.Error(), "RECOMMEND_MAX_K") {
		t.Errorf("error = %v, want mention of RECOMMEND_MAX_K", err)
	}
}

func TestLoadWithKoanf_BadFile(t *testing.T) {
	path := writeConfigFile(t, "server: [unclosed\n")
	isolate(t, path)

	if _, err := LoadWithKoanf(); err == nil {
		t.Fatal("LoadWithKoanf() should fail on malformed YAML")
	}
}
