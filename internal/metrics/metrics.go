// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Prometheus Metrics Integration for Production Observability
// This package provides instrumentation for:
// - Recommendation latency and result sizes
// - Filtered-index cache efficiency
// - Weather provider health and fallback usage
// - Catalog reloads
// - API endpoint latency and throughput

var (
	// Recommendation Metrics
	RecommendRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_recommend_requests_total",
			Help: "Total number of recommendation requests",
		},
		[]string{"status"}, // "success", "canceled", "unavailable"
	)

	RecommendDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylemate_recommend_duration_seconds",
			Help:    "End-to-end recommendation latency including weather resolution",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	RecommendResultSize = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "stylemate_recommend_result_size",
			Help:    "Number of ranked items returned per category",
			Buckets: []float64{0, 1, 2, 5, 10, 20, 50},
		},
		[]string{"category"},
	)

	RecommendEmptyResults = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_recommend_empty_results_total",
			Help: "Total number of categories that produced no candidates",
		},
		[]string{"category"},
	)

	FilterStepsSkipped = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_filter_steps_skipped_total",
			Help: "Cascade filter steps skipped because they would empty the candidate set",
		},
		[]string{"category", "step"}, // step: "gender", "usage", "colour"
	)

	GenderFallbacks = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_gender_fallbacks_total",
			Help: "Total number of times the gender-only fallback filter was used",
		},
		[]string{"category"},
	)

	CategoryFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_category_failures_total",
			Help: "Recovered per-category scoring failures (degraded to empty results)",
		},
		[]string{"category"},
	)

	// Filtered Index Cache Metrics
	IndexCacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_index_cache_lookups_total",
			Help: "Filtered-index cache lookups",
		},
		[]string{"result"}, // "hit", "miss", "shared"
	)

	IndexCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stylemate_index_cache_entries",
			Help: "Current number of cached filtered indexes",
		},
	)

	IndexCacheInvalidations = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stylemate_index_cache_invalidations_total",
			Help: "Total number of wholesale cache invalidations",
		},
	)

	IndexBuildDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylemate_index_build_duration_seconds",
			Help:    "Time to build one filtered TF-IDF index",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
		},
	)

	// Weather Metrics
	WeatherLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_weather_lookups_total",
			Help: "Weather readings served, by source",
		},
		[]string{"source"}, // "live", "fallback", "default"
	)

	WeatherProviderErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_weather_provider_errors_total",
			Help: "Weather provider failures that triggered fallback",
		},
		[]string{"reason"},
	)

	WeatherProviderDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylemate_weather_provider_duration_seconds",
			Help:    "Weather provider call duration in seconds",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
	)

	// Circuit Breaker Metrics
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through circuit breaker",
		},
		[]string{"name", "result"}, // result: "success", "failure", "rejected"
	)

	CircuitBreakerConsecutiveFailures = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_consecutive_failures",
			Help: "Current number of consecutive failures",
		},
		[]string{"name"},
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from_state", "to_state"},
	)

	// Catalog Metrics
	CatalogReloads = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "stylemate_catalog_reloads_total",
			Help: "Catalog reload attempts",
		},
		[]string{"status"}, // "success", "failure"
	)

	CatalogItems = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stylemate_catalog_items",
			Help: "Number of items in the active catalog snapshot",
		},
	)

	CatalogBucketItems = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "stylemate_catalog_bucket_items",
			Help: "Number of items per category bucket",
		},
		[]string{"category"},
	)

	CatalogGeneration = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stylemate_catalog_generation",
			Help: "Generation number of the active catalog snapshot",
		},
	)

	// Catalog Mirror Metrics (DuckDB)
	MirrorSyncDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "stylemate_mirror_sync_duration_seconds",
			Help:    "Time to rewrite the style_items mirror table",
			Buckets: prometheus.DefBuckets,
		},
	)

	MirrorSyncErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "stylemate_mirror_sync_errors_total",
			Help: "Total number of failed mirror rewrites",
		},
	)

	MirrorRows = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "stylemate_mirror_rows",
			Help: "Rows written by the last successful mirror rewrite",
		},
	)

	// API Endpoint Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "endpoint", "status_code"},
	)

	APIRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}, // Optimized for API latency
		},
		[]string{"method", "endpoint"},
	)

	APIActiveRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "api_active_requests",
			Help: "Current number of active API requests",
		},
	)

	APIRateLimitHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_rate_limit_hits_total",
			Help: "Total number of rate limit rejections",
		},
		[]string{"endpoint"},
	)

	// System Metrics
	AppInfo = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "app_info",
			Help: "Application version and build information",
		},
		[]string{"version", "go_version"},
	)
)

// RecordAPIRequest records an API request metric
func RecordAPIRequest(method, endpoint, statusCode string, duration time.Duration) {
	APIRequestsTotal.WithLabelValues(method, endpoint, statusCode).Inc()
	APIRequestDuration.WithLabelValues(method, endpoint).Observe(duration.Seconds())
}

// TrackActiveRequest tracks active API requests
func TrackActiveRequest(inc bool) {
	if inc {
		APIActiveRequests.Inc()
	} else {
		APIActiveRequests.Dec()
	}
}

// RecordRecommendation records a completed recommendation request.
func RecordRecommendation(status string, duration time.Duration) {
	RecommendRequests.WithLabelValues(status).Inc()
	RecommendDuration.Observe(duration.Seconds())
}

// RecordCategoryResult records the size of one category's ranked list.
func RecordCategoryResult(category string, size int) {
	RecommendResultSize.WithLabelValues(category).Observe(float64(size))
	if size == 0 {
		RecommendEmptyResults.WithLabelValues(category).Inc()
	}
}

// RecordWeatherLookup records which link of the fallback chain served a reading.
func RecordWeatherLookup(source string) {
	WeatherLookups.WithLabelValues(source).Inc()
}

// RecordCatalogLoad updates catalog gauges after a successful load.
func RecordCatalogLoad(items int, generation uint64, bucketSizes map[string]int) {
	CatalogReloads.WithLabelValues("success").Inc()
	CatalogItems.Set(float64(items))
	CatalogGeneration.Set(float64(generation))
	for category, n := range bucketSizes {
		CatalogBucketItems.WithLabelValues(category).Set(float64(n))
	}
}

// RecordCatalogLoadFailure records a failed reload. The previous snapshot
// stays active, so gauges are left untouched.
func RecordCatalogLoadFailure() {
	CatalogReloads.WithLabelValues("failure").Inc()
}

// RecordMirrorSync records a style_items rewrite.
func RecordMirrorSync(rows int, duration time.Duration, err error) {
	MirrorSyncDuration.Observe(duration.Seconds())
	if err != nil {
		MirrorSyncErrors.Inc()
		return
	}
	MirrorRows.Set(float64(rows))
}
