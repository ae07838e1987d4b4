// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package api

import (
	"context"
	"time"

	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/recommend"
)

// DefaultRequestTimeout bounds a single recommendation when the handler is
// built without one.
const DefaultRequestTimeout = 30 * time.Second

// Recommender is the engine surface the handlers use.
type Recommender interface {
	Recommend(ctx context.Context, q recommend.Query) (*recommend.Result, error)
	Snapshot() *catalog.Snapshot
	Stats() recommend.Stats
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers_recommend.go: POST /recommend
//   - handlers_weather.go: POST /weather
//   - handlers_health.go: health, stats and service info
type Handler struct {
	engine         Recommender
	weather        recommend.WeatherResolver
	version        string
	requestTimeout time.Duration
	startTime      time.Time
}

// HandlerOption customizes a Handler.
type HandlerOption func(*Handler)

// WithVersion sets the version reported by the info endpoint.
func WithVersion(version string) HandlerOption {
	return func(h *Handler) { h.version = version }
}

// WithRequestTimeout bounds each recommendation.
func WithRequestTimeout(d time.Duration) HandlerOption {
	return func(h *Handler) {
		if d > 0 {
			h.requestTimeout = d
		}
	}
}

// NewHandler creates an API handler over engine and the weather resolver
// used by POST /weather.
//
// Example:
//
//	handler := api.NewHandler(engine, resolver, api.WithVersion(version))
//	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))
//	http.ListenAndServe(":5000", router.SetupChi())
func NewHandler(engine Recommender, resolver recommend.WeatherResolver, opts ...HandlerOption) *Handler {
	h := &Handler{
		engine:         engine,
		weather:        resolver,
		version:        "dev",
		requestTimeout: DefaultRequestTimeout,
		startTime:      time.Now(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// legacyCategoryKeys are the response keys existing web clients parse.
var legacyCategoryKeys = map[catalog.Category]string{
	catalog.CategoryTop:       "Atasan",
	catalog.CategoryBottom:    "Bawahan",
	catalog.CategoryFootwear:  "Sepatu",
	catalog.CategoryAccessory: "Aksesoris",
}

func legacyKey(c catalog.Category) string {
	if key, ok := legacyCategoryKeys[c]; ok {
		return key
	}
	return string(c)
}

// categorySizes maps legacy category keys to bucket sizes.
func categorySizes(snap *catalog.Snapshot) map[string]int {
	sizes := make(map[string]int)
	if snap == nil {
		return sizes
	}
	for c, n := range snap.BucketSizes() {
		sizes[legacyKey(c)] = n
	}
	return sizes
}
