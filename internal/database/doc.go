// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

// Package database mirrors the loaded catalog into DuckDB for offline
// reporting.
//
// # Overview
//
// The recommendation engine works entirely from the in-memory catalog
// snapshot. Whenever a snapshot is published, the supervisor may also
// rewrite the style_items table so analysts can query the same rows with
// SQL:
//
//	SELECT gender, base_colour, COUNT(*) FROM style_items GROUP BY ALL;
//
// The mirror is a sink. Nothing in the request path reads from it, and a
// failed sync never affects the live snapshot.
//
// # Files
//
//   - mirror.go: connection lifecycle and tuning options
//   - schema.go: style_items table and indexes
//   - sync.go: Replace (full rewrite) and Summary
//
// # Database Technology
//
// DuckDB is opened through database/sql with the CGO driver
// (github.com/duckdb/duckdb-go/v2). Extension auto-loading is disabled
// since the mirror only uses core SQL.
package database
