// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package recommend

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/featureindex"
	"github.com/tomtom215/stylemate/internal/logging"
	"github.com/tomtom215/stylemate/internal/metrics"
	"github.com/tomtom215/stylemate/internal/weather"
)

// ErrNoCategories is returned when a snapshot has no buckets to serve.
var ErrNoCategories = errors.New("catalog snapshot has no categories")

// WeatherResolver resolves a location to a reading. It must not fail;
// weather.Resolver is the production implementation.
type WeatherResolver interface {
	Resolve(ctx context.Context, city string) weather.Reading
}

// state is the engine's active snapshot. generation is assigned by the
// engine and increases on every install.
type state struct {
	snapshot   *catalog.Snapshot
	generation uint64
}

// Engine produces per-category outfit recommendations.
// It is safe for concurrent use.
type Engine struct {
	config  Config
	logger  zerolog.Logger
	weather WeatherResolver
	indexes *indexCache

	current    atomic.Pointer[state]
	generation atomic.Uint64

	requests atomic.Int64
	reloads  atomic.Int64
}

// NewEngine creates an engine serving snapshot.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg Config, snapshot *catalog.Snapshot, resolver WeatherResolver, logger zerolog.Logger) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if resolver == nil {
		resolver = weather.NewResolver(nil, 0, logger)
	}

	e := &Engine{
		config:  cfg,
		logger:  logger.With().Str("component", "recommend").Logger(),
		weather: resolver,
	}
	e.indexes = newIndexCache(cfg.IndexCacheSize, featureindex.Options{MaxFeatures: cfg.MaxFeatures}, e.logger)
	if _, err := e.install(snapshot); err != nil {
		return nil, err
	}
	return e, nil
}

// Reload atomically replaces the served snapshot and drops every cached
// index. On error the previous snapshot stays active.
func (e *Engine) Reload(snapshot *catalog.Snapshot) error {
	generation, err := e.install(snapshot)
	if err != nil {
		return err
	}
	e.indexes.invalidate(generation)
	e.reloads.Add(1)
	return nil
}

func (e *Engine) install(snapshot *catalog.Snapshot) (uint64, error) {
	if snapshot == nil || len(snapshot.Buckets) == 0 {
		return 0, ErrNoCategories
	}

	st := &state{snapshot: snapshot, generation: e.generation.Add(1)}
	e.current.Store(st)

	sizes := make(map[string]int, len(snapshot.Buckets))
	for c, n := range snapshot.BucketSizes() {
		sizes[string(c)] = n
	}
	metrics.RecordCatalogLoad(snapshot.Size(), st.generation, sizes)

	e.logger.Info().
		Uint64("generation", st.generation).
		Int("items", snapshot.Size()).
		Interface("buckets", sizes).
		Str("source", snapshot.Source).
		Msg("catalog snapshot installed")
	return st.generation, nil
}

// Recommend ranks items in every configured category for q. The only error
// it returns is the context's, when ctx is done before the result is built.
//
//nolint:gocritic // hugeParam: q passed by value for immutability
func (e *Engine) Recommend(ctx context.Context, q Query) (*Result, error) {
	start := time.Now()
	e.requests.Add(1)

	q = q.normalized()
	st := e.current.Load()
	logger := logging.WithContext(ctx, e.logger)

	if err := ctx.Err(); err != nil {
		metrics.RecordRecommendation("canceled", time.Since(start))
		return nil, err
	}

	reading := e.weather.Resolve(ctx, q.Location)
	season := reading.Season()
	text := q.Text(season)

	result := &Result{
		Categories: make([]CategoryResult, 0, len(st.snapshot.Buckets)),
		Season:     season,
		Weather:    reading,
		TotalItems: st.snapshot.Size(),
		Generation: st.generation,
	}

	for _, c := range st.snapshot.Categories() {
		if err := ctx.Err(); err != nil {
			metrics.RecordRecommendation("canceled", time.Since(start))
			return nil, err
		}
		cr := e.recommendCategory(st, c, q, text, logger)
		metrics.RecordCategoryResult(string(c), len(cr.Items))
		result.Categories = append(result.Categories, cr)
	}

	result.Diagnostics = diagnose(result.Categories)
	metrics.RecordRecommendation("success", time.Since(start))

	logger.Debug().
		Str("season", string(season)).
		Str("weather_source", string(reading.Source)).
		Dur("latency", time.Since(start)).
		Msg("recommendation complete")

	return result, nil
}

// recommendCategory filters and ranks one bucket. A panic anywhere in the
// category yields an empty list instead of failing the request.
func (e *Engine) recommendCategory(st *state, c catalog.Category, q Query, text string, logger *zerolog.Logger) (cr CategoryResult) {
	cr = CategoryResult{Category: c, Items: []Scored{}}

	defer func() {
		if r := recover(); r != nil {
			metrics.CategoryFailures.WithLabelValues(string(c)).Inc()
			logger.Error().
				Str("category", string(c)).
				Interface("panic", r).
				Msg("category scoring failed")
			cr = CategoryResult{Category: c, Items: []Scored{}, Failed: true}
		}
	}()

	bucket := st.snapshot.Bucket(c)
	sel := selectItems(bucket, q, e.config.strict(), e.config.GenderFallback)
	for _, step := range sel.skipped {
		metrics.FilterStepsSkipped.WithLabelValues(string(c), step).Inc()
	}
	if sel.genderFallback {
		metrics.GenderFallbacks.WithLabelValues(string(c)).Inc()
	}

	cr.Skipped = sel.skipped
	cr.GenderFallback = sel.genderFallback
	cr.Candidates = len(sel.positions)
	if len(sel.positions) == 0 {
		return cr
	}

	idx := e.indexes.get(newIndexKey(st.generation, c, q), func() []string {
		docs := make([]string, len(sel.positions))
		for i, p := range sel.positions {
			docs[i] = bucket.FeatureText[p]
		}
		return docs
	})

	cr.Items = rank(bucket, sel.positions, idx.Scores(idx.Query(text)), e.config.TopN)
	return cr
}

// rank orders positions by descending score, keeping catalog order among
// equal scores, and truncates to topN.
func rank(b *catalog.Bucket, positions []int, scores []float64, topN int) []Scored {
	order := make([]int, len(positions))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	n := min(topN, len(order))
	out := make([]Scored, n)
	for i := 0; i < n; i++ {
		out[i] = Scored{Item: b.Items[positions[order[i]]], Confidence: scores[order[i]]}
	}
	return out
}

// Snapshot returns the snapshot currently being served.
func (e *Engine) Snapshot() *catalog.Snapshot {
	return e.current.Load().snapshot
}

// Config returns the engine configuration.
func (e *Engine) Config() Config {
	return e.config
}

// Stats returns a point-in-time view of the engine.
func (e *Engine) Stats() Stats {
	st := e.current.Load()
	return Stats{
		Generation:  st.generation,
		Items:       st.snapshot.Size(),
		BucketSizes: st.snapshot.BucketSizes(),
		Categories:  st.snapshot.Categories(),
		LoadedAt:    st.snapshot.LoadedAt,
		Source:      st.snapshot.Source,
		IndexCache:  e.indexes.stats(),
		Requests:    e.requests.Load(),
		Reloads:     e.reloads.Load(),
	}
}
