// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package api

import (
	"net/http"
	"runtime"
	"time"

	"github.com/tomtom215/stylemate/internal/cache"
	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/weather"
)

// statsTopValues bounds each distribution in GET /stats.
const statsTopValues = 10

// HealthStatus is the data of GET /health.
type HealthStatus struct {
	Status              string         `json:"status"`
	ModelLoaded         bool           `json:"model_loaded"`
	DatasetSize         int            `json:"dataset_size"`
	CategoriesAvailable []string       `json:"categories_available"`
	CategorySizes       map[string]int `json:"category_sizes"`
	CatalogGeneration   uint64         `json:"catalog_generation"`
	CatalogLoadedAt     time.Time      `json:"catalog_loaded_at"`
	Weather             WeatherHealth  `json:"weather"`
	Uptime              float64        `json:"uptime_seconds"`
}

// WeatherHealth reports how weather lookups are currently being answered.
type WeatherHealth struct {
	Provider       string `json:"provider"`
	FallbackCities int    `json:"fallback_cities"`
}

// providerStater is implemented by *weather.Resolver.
type providerStater interface {
	ProviderState() string
}

// CatalogStats is the data of GET /stats.
type CatalogStats struct {
	TotalItems      int                  `json:"total_items"`
	Categories      []catalog.ValueCount `json:"categories"`
	Colors          []catalog.ValueCount `json:"colors"`
	Seasons         []catalog.ValueCount `json:"seasons"`
	Genders         []catalog.ValueCount `json:"genders"`
	Usage           []catalog.ValueCount `json:"usage"`
	ArticleTypes    []catalog.ValueCount `json:"article_types"`
	ModelCategories map[string]int       `json:"model_categories"`
	Engine          EngineStats          `json:"engine"`
}

// EngineStats exposes engine counters alongside the catalog distributions.
type EngineStats struct {
	Generation uint64      `json:"generation"`
	Requests   int64       `json:"requests"`
	Reloads    int64       `json:"reloads"`
	Source     string      `json:"source"`
	IndexCache cache.Stats `json:"index_cache"`
}

// ServiceInfo is the data of GET /.
type ServiceInfo struct {
	Message     string            `json:"message"`
	Version     string            `json:"version"`
	GoVersion   string            `json:"go_version"`
	ModelLoaded bool              `json:"model_loaded"`
	DatasetSize int               `json:"dataset_size"`
	Categories  map[string]int    `json:"categories"`
	Endpoints   map[string]string `json:"endpoints"`
}

// Health handles GET /health.
// @Summary Health check
// @Description Reports whether a catalog is loaded, its size per category, the active catalog generation and the weather provider state.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=HealthStatus} "Health status"
// @Router /api/v1/health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	snap := h.engine.Snapshot()

	health := HealthStatus{
		Status:              "healthy",
		ModelLoaded:         snap != nil,
		CategoriesAvailable: []string{},
		CategorySizes:       categorySizes(snap),
		Weather:             WeatherHealth{Provider: "unknown", FallbackCities: weather.KnownCities()},
		Uptime:              time.Since(h.startTime).Seconds(),
	}
	if ps, ok := h.weather.(providerStater); ok {
		health.Weather.Provider = ps.ProviderState()
	}
	if snap != nil {
		health.DatasetSize = snap.Size()
		health.CatalogLoadedAt = snap.LoadedAt
		for _, c := range snap.Categories() {
			health.CategoriesAvailable = append(health.CategoriesAvailable, legacyKey(c))
		}
		health.CatalogGeneration = h.engine.Stats().Generation
	} else {
		health.Status = "degraded"
	}

	respondJSON(w, r, health, 0)
}

// Stats handles GET /stats.
// @Summary Catalog statistics
// @Description Returns the top values of the catalog's main columns, the per-category bucket sizes and engine counters.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=CatalogStats} "Catalog statistics"
// @Failure 503 {object} APIResponse "Catalog not loaded"
// @Router /api/v1/stats [get]
func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	snap := h.engine.Snapshot()
	if snap == nil {
		respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Catalog not loaded", nil)
		return
	}

	es := h.engine.Stats()
	items := snap.Items

	respondJSON(w, r, CatalogStats{
		TotalItems:      len(items),
		Categories:      catalog.ValueCounts(items, catalog.FieldMasterCategory, statsTopValues),
		Colors:          catalog.ValueCounts(items, catalog.FieldBaseColour, statsTopValues),
		Seasons:         catalog.ValueCounts(items, catalog.FieldSeason, statsTopValues),
		Genders:         catalog.ValueCounts(items, catalog.FieldGender, statsTopValues),
		Usage:           catalog.ValueCounts(items, catalog.FieldUsage, statsTopValues),
		ArticleTypes:    catalog.ValueCounts(items, catalog.FieldArticleType, statsTopValues),
		ModelCategories: categorySizes(snap),
		Engine: EngineStats{
			Generation: es.Generation,
			Requests:   es.Requests,
			Reloads:    es.Reloads,
			Source:     es.Source,
			IndexCache: es.IndexCache,
		},
	}, time.Since(start))
}

// Info handles GET /.
// @Summary Service information
// @Description Returns the service version, catalog size and a map of the available endpoints.
// @Tags Core
// @Produce json
// @Success 200 {object} APIResponse{data=ServiceInfo} "Service information"
// @Router / [get]
func (h *Handler) Info(w http.ResponseWriter, r *http.Request) {
	snap := h.engine.Snapshot()

	info := ServiceInfo{
		Message:     "StyleMate API is running",
		Version:     h.version,
		GoVersion:   runtime.Version(),
		ModelLoaded: snap != nil,
		Categories:  categorySizes(snap),
		Endpoints: map[string]string{
			"/api/v1/recommend": "POST - Get style recommendations",
			"/api/v1/weather":   "POST - Resolve weather and season",
			"/api/v1/stats":     "GET - Get dataset statistics",
			"/api/v1/health":    "GET - Health check",
			"/metrics":          "GET - Prometheus metrics",
			"/swagger/":         "GET - API documentation",
		},
	}
	if snap != nil {
		info.DatasetSize = snap.Size()
	}

	respondJSON(w, r, info, 0)
}
