// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

// Command stylemate-mirror exports the catalog into the DuckDB style_items
// table once and prints a summary.
//
// Usage:
//
//	stylemate-mirror
//	stylemate-mirror -catalog ./data/styles.csv -db ./data/stylemate.duckdb
//
// Flags override CATALOG_PATH and DUCKDB_PATH. The export runs whether or
// not MIRROR_ENABLED is set.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"syscall"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/config"
	"github.com/tomtom215/stylemate/internal/database"
	"github.com/tomtom215/stylemate/internal/logging"
)

var (
	catalogPath = flag.String("catalog", "", "catalog CSV path (default: CATALOG_PATH)")
	dbPath      = flag.String("db", "", "DuckDB file path (default: DUCKDB_PATH)")
	asJSON      = flag.Bool("json", false, "print the summary as JSON")
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Timestamp: true,
	})

	if *catalogPath != "" {
		cfg.Catalog.Path = *catalogPath
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := export(ctx, cfg)
	if err != nil {
		logging.Fatal().Err(err).Msg("Catalog export failed")
	}

	if err := printSummary(os.Stdout, summary, *asJSON); err != nil {
		logging.Fatal().Err(err).Msg("Failed to write summary")
	}
}

func export(ctx context.Context, cfg *config.Config) (*database.Summary, error) {
	rules, err := cfg.Recommend.Rules()
	if err != nil {
		return nil, err
	}
	snap, err := catalog.Load(cfg.Catalog.Path, rules)
	if err != nil {
		return nil, err
	}

	mirror, err := database.Open(ctx, &cfg.Database)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := mirror.Close(); err != nil {
			logging.Error().Err(err).Msg("Error closing catalog mirror")
		}
	}()

	if err := mirror.Replace(ctx, snap.Items); err != nil {
		return nil, err
	}
	return mirror.Summary(ctx)
}

func printSummary(w io.Writer, s *database.Summary, asJSON bool) error {
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(s)
	}

	if _, err := fmt.Fprintf(w, "style_items: %d rows\n", s.Total); err != nil {
		return err
	}
	for _, section := range []struct {
		title  string
		counts map[string]int
	}{
		{"gender", s.ByGender},
		{"masterCategory", s.ByMasterCategory},
	} {
		if _, err := fmt.Fprintf(w, "\n%s:\n", section.title); err != nil {
			return err
		}
		keys := make([]string, 0, len(section.counts))
		for k := range section.counts {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			if _, err := fmt.Fprintf(w, "  %-20s %d\n", k, section.counts[k]); err != nil {
				return err
			}
		}
	}
	return nil
}
