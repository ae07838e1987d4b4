// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	_ "github.com/duckdb/duckdb-go/v2"
	"github.com/rs/zerolog"

	"github.com/tomtom215/stylemate/internal/config"
	"github.com/tomtom215/stylemate/internal/logging"
)

// MemoryPath opens a private in-memory database.
const MemoryPath = ":memory:"

// ErrClosed is returned by operations on a closed Mirror.
var ErrClosed = errors.New("database: mirror is closed")

// Mirror owns the DuckDB connection backing the style_items table.
type Mirror struct {
	conn   *sql.DB
	path   string
	logger zerolog.Logger
}

// Open connects to the DuckDB file at cfg.Path, creating the parent
// directory and the schema as needed.
func Open(ctx context.Context, cfg *config.DatabaseConfig) (*Mirror, error) {
	if cfg == nil || cfg.Path == "" {
		return nil, fmt.Errorf("database: path is required")
	}

	threads := cfg.Threads
	if threads <= 0 {
		threads = runtime.NumCPU()
	}
	maxMemory := cfg.MaxMemory
	if maxMemory == "" {
		maxMemory = "512MB"
	}

	if cfg.Path != MemoryPath {
		dir := filepath.Dir(cfg.Path)
		if dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
			}
		}
	}

	connStr := fmt.Sprintf("%s?access_mode=read_write&threads=%d&max_memory=%s&autoinstall_known_extensions=false&autoload_known_extensions=false",
		cfg.Path, threads, maxMemory)

	conn, err := sql.Open("duckdb", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	conn.SetMaxOpenConns(runtime.NumCPU())
	conn.SetMaxIdleConns(2)
	conn.SetConnMaxLifetime(time.Hour)

	m := &Mirror{
		conn:   conn,
		path:   cfg.Path,
		logger: logging.WithComponent("mirror"),
	}

	if err := m.createSchema(ctx); err != nil {
		closeQuietly(conn)
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	m.logger.Info().Str("path", cfg.Path).Int("threads", threads).Str("max_memory", maxMemory).Msg("Catalog mirror opened")
	return m, nil
}

// Path returns the database location the mirror was opened with.
func (m *Mirror) Path() string {
	return m.path
}

// Ping checks the connection is alive.
func (m *Mirror) Ping(ctx context.Context) error {
	if m.conn == nil {
		return ErrClosed
	}
	return m.conn.PingContext(ctx)
}

// Close checkpoints the WAL and releases the connection. It is safe to call
// more than once.
func (m *Mirror) Close() error {
	if m.conn == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := m.conn.ExecContext(ctx, "CHECKPOINT"); err != nil {
		m.logger.Warn().Err(err).Msg("Failed to checkpoint database before close")
	}
	cancel()

	err := m.conn.Close()
	m.conn = nil
	return err
}

func closeQuietly(closer io.Closer) {
	if closer != nil {
		_ = closer.Close()
	}
}
