// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package services

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"

	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/metrics"
)

// DefaultDebounce is the quiet period after the last file event before a
// reload starts.
const DefaultDebounce = 500 * time.Millisecond

// mirrorTimeout bounds a single mirror rewrite.
const mirrorTimeout = 2 * time.Minute

// CatalogLoader reads and partitions the catalog.
type CatalogLoader func(ctx context.Context) (*catalog.Snapshot, error)

// SnapshotPublisher installs a snapshot for serving. *recommend.Engine
// satisfies it.
type SnapshotPublisher interface {
	Reload(snapshot *catalog.Snapshot) error
}

// MirrorWriter receives every published catalog. *database.Mirror
// satisfies it.
type MirrorWriter interface {
	Replace(ctx context.Context, items []*catalog.Item) error
}

// CatalogWatcherConfig controls when the catalog is reloaded.
type CatalogWatcherConfig struct {
	// Path is the catalog file. Its parent directory is watched so that
	// editors replacing the file by rename are still seen.
	Path string

	// Watch enables fsnotify-driven reloads.
	Watch bool

	// ReloadInterval forces a reload on a fixed period. Zero disables it.
	ReloadInterval time.Duration

	// Debounce defaults to DefaultDebounce.
	Debounce time.Duration
}

// CatalogWatcherService keeps the engine's snapshot in step with the
// catalog file.
type CatalogWatcherService struct {
	config  CatalogWatcherConfig
	load    CatalogLoader
	engine  SnapshotPublisher
	mirror  MirrorWriter
	logger  zerolog.Logger
	name    string
	mu      sync.Mutex
	reloads atomic.Int64
	fails   atomic.Int64
}

// NewCatalogWatcherService creates the watcher. mirror may be nil.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewCatalogWatcherService(cfg CatalogWatcherConfig, load CatalogLoader, engine SnapshotPublisher, mirror MirrorWriter, logger zerolog.Logger) *CatalogWatcherService {
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}
	return &CatalogWatcherService{
		config: cfg,
		load:   load,
		engine: engine,
		mirror: mirror,
		logger: logger.With().Str("service", "catalog-watcher").Logger(),
		name:   "catalog-watcher",
	}
}

// Serve implements suture.Service. Watcher setup errors are returned so the
// supervisor retries with backoff; reload errors are logged and counted but
// never stop the loop.
func (s *CatalogWatcherService) Serve(ctx context.Context) error {
	var (
		events <-chan fsnotify.Event
		errs   <-chan error
	)
	target := filepath.Clean(s.config.Path)

	if s.config.Watch {
		w, err := fsnotify.NewWatcher()
		if err != nil {
			return fmt.Errorf("failed to create fsnotify watcher: %w", err)
		}
		defer w.Close()

		if err := w.Add(filepath.Dir(target)); err != nil {
			return fmt.Errorf("failed to watch %s: %w", filepath.Dir(target), err)
		}
		events, errs = w.Events, w.Errors
	}

	var tick <-chan time.Time
	if s.config.ReloadInterval > 0 {
		ticker := time.NewTicker(s.config.ReloadInterval)
		defer ticker.Stop()
		tick = ticker.C
	}

	s.logger.Info().
		Str("path", target).
		Bool("watch", s.config.Watch).
		Dur("reload_interval", s.config.ReloadInterval).
		Msg("catalog watcher starting")

	var (
		debounce *time.Timer
		fire     <-chan time.Time
	)
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info().Msg("catalog watcher shutting down")
			return ctx.Err()

		case ev, ok := <-events:
			if !ok {
				return errors.New("fsnotify event channel closed")
			}
			if !isCatalogChange(ev, target) {
				continue
			}
			s.logger.Debug().Str("op", ev.Op.String()).Msg("catalog file changed")
			if debounce == nil {
				debounce = time.NewTimer(s.config.Debounce)
			} else {
				debounce.Reset(s.config.Debounce)
			}
			fire = debounce.C

		case err, ok := <-errs:
			if !ok {
				return errors.New("fsnotify error channel closed")
			}
			s.logger.Warn().Err(err).Msg("catalog watcher error")

		case <-fire:
			fire = nil
			_ = s.Reload(ctx, "file")

		case <-tick:
			_ = s.Reload(ctx, "interval")
		}
	}
}

func isCatalogChange(ev fsnotify.Event, target string) bool {
	if filepath.Clean(ev.Name) != target {
		return false
	}
	return ev.Op&(fsnotify.Write|fsnotify.Create) != 0
}

// Reload loads the catalog, publishes it, and refreshes the mirror. On a
// load or publish failure the engine keeps its previous snapshot.
func (s *CatalogWatcherService) Reload(ctx context.Context, trigger string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := time.Now()
	snap, err := s.load(ctx)
	if err == nil {
		err = s.engine.Reload(snap)
	}
	if err != nil {
		s.fails.Add(1)
		metrics.RecordCatalogLoadFailure()
		s.logger.Error().Err(err).Str("trigger", trigger).Msg("catalog reload failed, keeping previous snapshot")
		return err
	}
	s.reloads.Add(1)

	s.logger.Info().
		Str("trigger", trigger).
		Int("items", snap.Size()).
		Dur("duration", time.Since(start)).
		Msg("catalog reloaded")

	if s.mirror != nil {
		mctx, cancel := context.WithTimeout(ctx, mirrorTimeout)
		defer cancel()
		if err := s.mirror.Replace(mctx, snap.Items); err != nil {
			s.logger.Warn().Err(err).Msg("catalog mirror sync failed")
		}
	}
	return nil
}

// Reloads returns the number of successful and failed reloads.
func (s *CatalogWatcherService) Reloads() (ok, failed int64) {
	return s.reloads.Load(), s.fails.Load()
}

// String names the service in supervisor logs.
func (s *CatalogWatcherService) String() string {
	return s.name
}
