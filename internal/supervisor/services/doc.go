// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

// Package services adapts StyleMate components to suture.Service.
//
// HTTPServerService turns http.Server's blocking ListenAndServe into a
// context-aware Serve with graceful Shutdown.
//
// CatalogWatcherService reloads the catalog when its file changes (fsnotify,
// debounced) or on a fixed interval, publishes the new snapshot to the
// engine and refreshes the optional DuckDB mirror. A failed load keeps the
// previous snapshot and is counted in stylemate_catalog_reloads_total.
package services
