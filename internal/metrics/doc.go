// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

/*
Package metrics exposes StyleMate's Prometheus instrumentation.

All collectors are registered on the default registry at package init via
promauto and are served by the /metrics endpoint.

# Metric Families

  - stylemate_recommend_*: request counts, latency and per-category result sizes
  - stylemate_filter_steps_skipped_total: cascade relaxation per category and step
  - stylemate_index_cache_*: filtered-index cache lookups, size and invalidations
  - stylemate_weather_*: readings by fallback source and provider failures
  - circuit_breaker_*: weather provider breaker state
  - stylemate_catalog_*: snapshot size, generation and reloads
  - stylemate_mirror_*: DuckDB reporting mirror rewrites
  - api_*: HTTP request counts and latency

# Usage

	metrics.RecordRecommendation("success", time.Since(start))
	metrics.RecordWeatherLookup("fallback")

Labels are bounded: categories come from a fixed set and endpoints are chi
route patterns, never raw paths.
*/
package metrics
