// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

/*
Package config provides centralized configuration management for StyleMate.

# Configuration Sources

Configuration is layered with Koanf v2, lowest priority first:

 1. Built-in defaults (defaultConfig)
 2. Optional YAML file: CONFIG_PATH, config.yaml, config.yml,
    /etc/stylemate/config.yaml or /etc/stylemate/config.yml
 3. Environment variables, mapped explicitly by envTransformFunc

Unmapped environment variables are ignored.

# Environment Variables

Server:
  - HTTP_HOST: Bind address (default: 0.0.0.0)
  - HTTP_PORT: Listen port (default: 5000)
  - HTTP_TIMEOUT: Request timeout (default: 30s)
  - ENVIRONMENT: development or production (default: development)

Logging:
  - LOG_LEVEL: trace, debug, info, warn, error (default: info)
  - LOG_FORMAT: json, console (default: json)
  - LOG_CALLER: include caller file:line (default: false)

Catalog:
  - CATALOG_PATH: CSV catalog file (default: data/StyleMate_5000_rows_shuffled.csv)
  - CATALOG_WATCH: reload on file change (default: true)
  - CATALOG_RELOAD_INTERVAL: periodic reload, 0 disables (default: 0)
  - CATALOG_DEBOUNCE: quiet period before a watched change reloads (default: 2s)

Weather:
  - WEATHER_API_URL, WEATHER_API_KEY (alias OPENWEATHER_API_KEY)
  - WEATHER_CITY_PARAM, WEATHER_KEY_PARAM, WEATHER_UNITS
  - WEATHER_TIMEOUT, WEATHER_RATE_LIMIT, WEATHER_RATE_BURST
  - WEATHER_BREAKER_MAX_REQUESTS, WEATHER_BREAKER_INTERVAL,
    WEATHER_BREAKER_TIMEOUT, WEATHER_BREAKER_CONSECUTIVE_FAILURES

Recommendation:
  - RECOMMEND_CATEGORIES: comma-separated (default: Top,Bottom,Footwear,Accessory)
  - RECOMMEND_FILTER_MODE: cascade or strict (default: cascade)
  - RECOMMEND_TOP_N, RECOMMEND_GENDER_FALLBACK, RECOMMEND_MAX_FEATURES,
    RECOMMEND_TOP_INCLUDES_ACCESSORIES, RECOMMEND_INDEX_CACHE_SIZE

Catalog mirror (DuckDB):
  - MIRROR_ENABLED, DUCKDB_PATH, DUCKDB_MAX_MEMORY, DUCKDB_THREADS

Security:
  - CORS_ORIGINS: comma-separated (default: *)
  - RATE_LIMIT_REQUESTS, RATE_LIMIT_WINDOW, DISABLE_RATE_LIMIT

# Thread Safety

Config is immutable after Load() and safe for concurrent reads.
*/
package config
