// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package main

import (
	"context"

	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/config"
	"github.com/tomtom215/stylemate/internal/database"
	"github.com/tomtom215/stylemate/internal/logging"
	"github.com/tomtom215/stylemate/internal/supervisor/services"
)

// newCatalogLoader returns a loader that re-reads path on every call. The
// engine numbers the snapshots it installs.
func newCatalogLoader(path string, rules catalog.Rules) services.CatalogLoader {
	return func(context.Context) (*catalog.Snapshot, error) {
		return catalog.Load(path, rules)
	}
}

func logCatalog(snap *catalog.Snapshot) {
	event := logging.Info().Int("items", snap.Size()).Str("source", snap.Source)
	for category, n := range snap.BucketSizes() {
		event = event.Int(string(category), n)
	}
	event.Msg("Catalog loaded")
}

// initMirror opens the DuckDB mirror and writes the initial snapshot.
// It returns nil, nil when the mirror is disabled.
func initMirror(ctx context.Context, cfg *config.DatabaseConfig, snap *catalog.Snapshot) (*database.Mirror, error) {
	if !cfg.Enabled {
		logging.Info().Msg("Catalog mirror disabled (MIRROR_ENABLED=false)")
		return nil, nil
	}

	mirror, err := database.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}
	if err := mirror.Replace(ctx, snap.Items); err != nil {
		// Keep the mirror open; the next reload retries the sync.
		logging.Warn().Err(err).Msg("Initial catalog mirror sync failed")
	}
	return mirror, nil
}
