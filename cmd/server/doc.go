// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

/*
Package main is the entry point for the StyleMate API server.

StyleMate recommends one item per outfit category (top, bottom, footwear,
accessory) from a fashion catalog, ranked by TF-IDF similarity to the
user's gender, theme, colour and the season implied by the current weather
at their location.

# Application Architecture

	RootSupervisor ("stylemate")
	├── DataSupervisor ("data-layer")
	│   └── Catalog watcher (CATALOG_WATCH or CATALOG_RELOAD_INTERVAL)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Startup order:

 1. Configuration: koanf v2 (defaults, config.yaml, environment)
 2. Logging: zerolog, JSON or console
 3. Catalog: CSV load and category partition; failure is fatal
 4. Weather: live provider behind a circuit breaker, static fallback table
 5. Engine: recommendation engine over the initial snapshot
 6. Mirror: optional DuckDB style_items export (MIRROR_ENABLED)
 7. Supervisor tree and HTTP server

# API Documentation

The OpenAPI description is generated into docs/ by swag from the handler
annotations and served at /swagger/index.html (raw JSON at
/swagger/doc.json).

# Signals

SIGINT and SIGTERM shut the tree down gracefully. SIGHUP reloads the
catalog immediately, whether or not the watcher is enabled.

# Environment

See internal/config for the complete list. The most common settings:

	CATALOG_PATH=./data/styles.csv
	WEATHER_API_KEY=...
	HTTP_PORT=5000
	LOG_LEVEL=info
	LOG_FORMAT=json
*/
package main
