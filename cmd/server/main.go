// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/tomtom215/stylemate/docs"
	"github.com/tomtom215/stylemate/internal/api"
	"github.com/tomtom215/stylemate/internal/config"
	"github.com/tomtom215/stylemate/internal/logging"
	"github.com/tomtom215/stylemate/internal/metrics"
	"github.com/tomtom215/stylemate/internal/recommend"
	"github.com/tomtom215/stylemate/internal/supervisor"
	"github.com/tomtom215/stylemate/internal/supervisor/services"
	"github.com/tomtom215/stylemate/internal/weather"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Version:   version,
	})

	metrics.AppInfo.WithLabelValues(version, runtime.Version()).Set(1)
	docs.SwaggerInfo.Version = version

	logging.Info().
		Str("catalog", cfg.Catalog.Path).
		Strs("categories", cfg.Recommend.Categories).
		Str("filter_mode", string(cfg.Recommend.FilterMode)).
		Msg("Starting StyleMate")

	if cfg.ShouldWarnAboutCORS() {
		logging.Warn().Msg("CORS is configured with wildcard origin (CORS_ORIGINS=*); set explicit origins in production")
	}
	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rules, err := cfg.Recommend.Rules()
	if err != nil {
		logging.Fatal().Err(err).Msg("Invalid category configuration")
	}
	loadCatalog := newCatalogLoader(cfg.Catalog.Path, rules)

	snapshot, err := loadCatalog(ctx)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load catalog")
	}
	logCatalog(snapshot)

	resolver, err := weather.NewResolverFromConfig(cfg.Weather.ClientConfig(), logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize weather provider")
	}

	engine, err := recommend.NewEngine(cfg.Recommend, snapshot, resolver, logging.Logger())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create recommendation engine")
	}

	mirror, err := initMirror(ctx, &cfg.Database, snapshot)
	if err != nil {
		// The mirror is a reporting sink; the API serves without it.
		logging.Error().Err(err).Msg("Catalog mirror unavailable")
	}
	var mirrorWriter services.MirrorWriter
	if mirror != nil {
		mirrorWriter = mirror
		defer func() {
			if err := mirror.Close(); err != nil {
				logging.Error().Err(err).Msg("Error closing catalog mirror")
			}
		}()
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(logging.Logger()), supervisor.DefaultTreeConfig())
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	watcher := services.NewCatalogWatcherService(services.CatalogWatcherConfig{
		Path:           cfg.Catalog.Path,
		Watch:          cfg.Catalog.Watch,
		ReloadInterval: cfg.Catalog.ReloadInterval,
		Debounce:       cfg.Catalog.Debounce,
	}, loadCatalog, engine, mirrorWriter, logging.Logger())

	if cfg.Catalog.Watch || cfg.Catalog.ReloadInterval > 0 {
		tree.AddDataService(watcher)
		logging.Info().
			Bool("watch", cfg.Catalog.Watch).
			Dur("reload_interval", cfg.Catalog.ReloadInterval).
			Msg("Catalog watcher added to supervisor tree")
	}
	go reloadOnHangup(ctx, watcher)

	handler := api.NewHandler(engine, resolver,
		api.WithVersion(version),
		api.WithRequestTimeout(cfg.Server.Timeout),
	)
	router := api.NewRouter(handler, api.NewChiMiddlewareFromConfig(cfg.Security))

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           router.SetupChi(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       cfg.Server.Timeout,
		WriteTimeout:      cfg.Server.Timeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}
	tree.AddAPIService(services.NewHTTPServerService(server, 10*time.Second))
	logging.Info().Str("addr", server.Addr).Bool("live_weather", resolver.LiveEnabled()).Msg("HTTP server service added")

	logging.Info().Msg("Starting supervisor tree...")
	errCh := tree.ServeBackground(ctx)

	// errCh receives exactly once and is never closed.
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("StyleMate stopped gracefully")
}

// reloadOnHangup reloads the catalog on every SIGHUP until ctx ends.
func reloadOnHangup(ctx context.Context, watcher *services.CatalogWatcherService) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			_ = watcher.Reload(ctx, "signal")
		}
	}
}
