// CineMatch - Content-Based Movie Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

package recommend

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"unicode/utf8"

	"github.com/rs/zerolog"

	"github.com/tomtom215/cinematch/internal/cache"
	"github.com/tomtom215/cinematch/internal/catalog"
	"github.com/tomtom215/cinematch/internal/logging"
)

// Operation names reported to the Observer.
const (
	OpList      = "list"
	OpRecommend = "recommend"
	OpSearch    = "search"
	OpDetails   = "details"
)

// Observer receives service events, typically to export metrics.
type Observer interface {
	// ObserveRequest is called once per operation with its outcome.
	ObserveRequest(op, outcome string)

	// ObserveCache is called for every rank cache lookup.
	ObserveCache(hit bool)
}

type noopObserver struct{}

func (noopObserver) ObserveRequest(string, string) {}
func (noopObserver) ObserveCache(bool)             {}

// Reasons reported by Status for an unavailable service. The underlying
// cause can carry file paths or DSNs, so it is only logged.
const (
	ReasonDatasetNotFound   = "dataset not found"
	ReasonDatasetInvalid    = "dataset is missing required columns"
	ReasonDatasetUnreadable = "dataset could not be loaded"
	ReasonEngineNotBuilt    = "similarity engine not built"
)

type rankKey struct {
	index int
	k     int
}

// Service answers catalog queries. It is either available, backed by a
// fully built Engine, or unavailable, in which case every operation returns
// ErrUnavailable. It is safe for concurrent use.
type Service struct {
	engine   *Engine
	cause    error
	reason   string
	config   *Config
	cache    *cache.LRU[rankKey, []Neighbor]
	observer Observer
	logger   zerolog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithObserver sets the event observer.
func WithObserver(o Observer) Option {
	return func(s *Service) {
		if o != nil {
			s.observer = o
		}
	}
}

// NewService creates an available service around a built engine.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewService(engine *Engine, cfg *Config, logger zerolog.Logger, opts ...Option) (*Service, error) {
	if engine == nil {
		return nil, fmt.Errorf("%w: nil engine", ErrInternal)
	}
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	s := newService(cfg, logger, opts)
	s.engine = engine
	if cfg.Cache.Enabled {
		s.cache = cache.NewLRU[rankKey, []Neighbor](cfg.Cache.MaxEntries, cfg.Cache.TTL)
	}
	return s, nil
}

// NewUnavailableService creates a service that rejects every call with
// ErrUnavailable. Status reports a fixed reason derived from cause.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewUnavailableService(cause error, cfg *Config, logger zerolog.Logger, opts ...Option) *Service {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if cause == nil {
		cause = fmt.Errorf("%w: engine not built", ErrInternal)
	}
	s := newService(cfg, logger, opts)
	s.cause = cause
	s.reason = unavailableReason(cause)
	return s
}

func unavailableReason(cause error) string {
	switch {
	case errors.Is(cause, fs.ErrNotExist):
		return ReasonDatasetNotFound
	case errors.Is(cause, catalog.ErrMissingColumn), errors.Is(cause, catalog.ErrInvalidTable):
		return ReasonDatasetInvalid
	case errors.Is(cause, ErrInternal):
		return ReasonEngineNotBuilt
	default:
		return ReasonDatasetUnreadable
	}
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newService(cfg *Config, logger zerolog.Logger, opts []Option) *Service {
	s := &Service{
		config:   cfg.Clone(),
		observer: noopObserver{},
		logger:   logger.With().Str("component", "recommend-service").Logger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Available reports whether queries can be answered.
func (s *Service) Available() bool {
	return s.engine != nil
}

// Status returns availability and, when available, build statistics.
func (s *Service) Status() Status {
	if s.engine == nil {
		return Status{Available: false, Reason: s.reason}
	}
	stats := s.engine.Stats()
	return Status{Available: true, Build: &stats}
}

// Limits returns the configured request bounds.
func (s *Service) Limits() LimitsConfig {
	return s.config.Limits
}

// CacheStats returns rank cache counters. The boolean is false when caching is disabled.
func (s *Service) CacheStats() (cache.Stats, bool) {
	if s.cache == nil {
		return cache.Stats{}, false
	}
	return s.cache.Stats(), true
}

// CleanupCache purges expired rank cache entries and returns how many were removed.
func (s *Service) CleanupCache() int {
	if s.cache == nil {
		return 0
	}
	return s.cache.CleanupExpired()
}

func (s *Service) unavailable() error {
	return fmt.Errorf("%w: %v", ErrUnavailable, s.cause)
}

func (s *Service) finish(ctx context.Context, op string, err error) {
	outcome := Outcome(err)
	s.observer.ObserveRequest(op, outcome)
	if err != nil && outcome == OutcomeInternal {
		logging.Ctx(ctx).Error().Err(err).Str("operation", op).Msg("Recommendation service failure")
	}
}

// List returns one page of movie names. page is 1-based; a page beyond the
// end of the catalog is empty.
func (s *Service) List(ctx context.Context, page, perPage int) (result *MovieList, err error) {
	defer func() { s.finish(ctx, OpList, err) }()

	if s.engine == nil {
		return nil, s.unavailable()
	}
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1", ErrInvalidArgument)
	}
	if perPage < 1 || perPage > s.config.Limits.MaxPageSize {
		return nil, fmt.Errorf("%w: per_page must be between 1 and %d", ErrInvalidArgument, s.config.Limits.MaxPageSize)
	}

	cat := s.engine.Catalog()
	total := cat.Len()
	names := []string{}
	pages := (total + perPage - 1) / perPage
	if page-1 < pages {
		start := (page - 1) * perPage
		for _, m := range cat.Slice(start, start+perPage) {
			names = append(names, m.Name)
		}
	}

	return &MovieList{Total: total, Page: page, PerPage: perPage, Movies: names}, nil
}

// Recommend resolves name and returns its num nearest neighbours.
func (s *Service) Recommend(ctx context.Context, name string, num int) (result *Recommendation, err error) {
	defer func() { s.finish(ctx, OpRecommend, err) }()

	if s.engine == nil {
		return nil, s.unavailable()
	}
	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: movie name is required", ErrInvalidArgument)
	}
	if num < 1 || num > s.config.Limits.MaxK {
		return nil, fmt.Errorf("%w: number of recommendations must be between 1 and %d", ErrInvalidArgument, s.config.Limits.MaxK)
	}

	idx, err := s.engine.Resolve(name)
	if err != nil {
		return nil, err
	}
	neighbors, err := s.rank(idx, num)
	if err != nil {
		return nil, err
	}

	names := make([]string, len(neighbors))
	for i, n := range neighbors {
		names[i] = n.Name
	}

	logging.Ctx(ctx).Debug().
		Str("query", name).
		Int("index", idx).
		Int("count", len(neighbors)).
		Msg("Recommendations generated")

	return &Recommendation{
		Query:           strings.TrimSpace(name),
		Movie:           s.engine.Catalog().At(idx).Name,
		Index:           idx,
		Recommendations: names,
		Details:         neighbors,
		Count:           len(neighbors),
	}, nil
}

// rank consults the cache before ranking. The returned slice is owned by the caller.
func (s *Service) rank(idx, k int) ([]Neighbor, error) {
	key := rankKey{index: idx, k: k}
	if s.cache != nil {
		if cached, ok := s.cache.Get(key); ok {
			s.observer.ObserveCache(true)
			return append([]Neighbor(nil), cached...), nil
		}
		s.observer.ObserveCache(false)
	}

	neighbors, err := s.engine.Rank(idx, k)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Add(key, append([]Neighbor(nil), neighbors...))
	}
	return neighbors, nil
}

// Search returns every movie name containing query, ignoring case.
func (s *Service) Search(ctx context.Context, query string) (result *SearchResult, err error) {
	defer func() { s.finish(ctx, OpSearch, err) }()

	if s.engine == nil {
		return nil, s.unavailable()
	}
	q := strings.ToLower(strings.TrimSpace(query))
	if utf8.RuneCountInString(q) < s.config.Limits.MinQueryLength {
		return nil, fmt.Errorf("%w: search query must be at least %d characters", ErrInvalidArgument, s.config.Limits.MinQueryLength)
	}

	cat := s.engine.Catalog()
	hits := s.engine.Search(q)
	results := make([]string, len(hits))
	for i, idx := range hits {
		results[i] = cat.At(idx).Name
	}
	return &SearchResult{Query: q, Results: results, Count: len(results)}, nil
}

// Details resolves name and returns its full record.
func (s *Service) Details(ctx context.Context, name string) (result *MovieDetails, err error) {
	defer func() { s.finish(ctx, OpDetails, err) }()

	if s.engine == nil {
		return nil, s.unavailable()
	}
	idx, err := s.engine.Resolve(name)
	if err != nil {
		return nil, err
	}
	m := s.engine.Catalog().At(idx)
	return &MovieDetails{Name: m.Name, Genre: m.Genre, Overview: m.Overview, Index: idx}, nil
}

// Outcome labels for observed requests.
const (
	OutcomeOK              = "ok"
	OutcomeInvalidArgument = "invalid_argument"
	OutcomeNotFound        = "not_found"
	OutcomeUnavailable     = "unavailable"
	OutcomeInternal        = "internal"
)

// Outcome classifies err into one of the outcome labels.
func Outcome(err error) string {
	switch {
	case err == nil:
		return OutcomeOK
	case errors.Is(err, ErrInvalidArgument):
		return OutcomeInvalidArgument
	case errors.Is(err, ErrNotFound):
		return OutcomeNotFound
	case errors.Is(err, ErrUnavailable):
		return OutcomeUnavailable
	default:
		return OutcomeInternal
	}
}
