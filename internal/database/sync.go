// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/metrics"
)

// BatchSize is the number of rows written per INSERT statement.
const BatchSize = 1000

const insertColumns = `id, gender, master_category, sub_category, article_type, base_colour,
	season, year, usage, product_display_name, link, synced_at`

const columnsPerRow = 12

// Summary counts mirrored rows by the attributes the engine filters on.
type Summary struct {
	Total            int            `json:"total"`
	ByGender         map[string]int `json:"by_gender"`
	ByMasterCategory map[string]int `json:"by_master_category"`
}

// Replace rewrites style_items with items inside a single transaction.
// Readers see either the previous contents or the new ones, never a mix.
func (m *Mirror) Replace(ctx context.Context, items []*catalog.Item) (err error) {
	start := time.Now()
	defer func() {
		metrics.RecordMirrorSync(len(items), time.Since(start), err)
	}()

	if m.conn == nil {
		return ErrClosed
	}

	tx, err := m.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				m.logger.Error().Err(rbErr).AnErr("original_error", err).Msg("Transaction rollback failed")
			}
		}
	}()

	if _, err = tx.ExecContext(ctx, "DELETE FROM style_items"); err != nil {
		return fmt.Errorf("clear style_items: %w", err)
	}

	syncedAt := start.UTC()
	for lo := 0; lo < len(items); lo += BatchSize {
		hi := min(lo+BatchSize, len(items))
		if err = insertBatch(ctx, tx, items[lo:hi], syncedAt); err != nil {
			return fmt.Errorf("insert rows %d-%d: %w", lo, hi-1, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	m.logger.Info().Int("rows", len(items)).Dur("duration", time.Since(start)).Msg("Catalog mirror synced")
	return nil
}

func insertBatch(ctx context.Context, tx *sql.Tx, batch []*catalog.Item, syncedAt time.Time) error {
	if len(batch) == 0 {
		return nil
	}

	placeholder := "(" + strings.TrimSuffix(strings.Repeat("?, ", columnsPerRow), ", ") + ")"

	var sb strings.Builder
	sb.WriteString("INSERT INTO style_items (")
	sb.WriteString(insertColumns)
	sb.WriteString(") VALUES ")

	args := make([]any, 0, len(batch)*columnsPerRow)
	for i, item := range batch {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(placeholder)

		var year sql.NullInt64
		if item.Year > 0 {
			year = sql.NullInt64{Int64: int64(item.Year), Valid: true}
		}
		args = append(args,
			item.ID, item.Gender, item.MasterCategory, item.SubCategory, item.ArticleType,
			item.BaseColour, item.Season, year, item.Usage, item.ProductDisplayName,
			item.Link, syncedAt,
		)
	}

	_, err := tx.ExecContext(ctx, sb.String(), args...)
	return err
}

// Summary reports the row count plus per-gender and per-master-category
// breakdowns of the current table contents.
func (m *Mirror) Summary(ctx context.Context) (*Summary, error) {
	if m.conn == nil {
		return nil, ErrClosed
	}

	s := &Summary{
		ByGender:         make(map[string]int),
		ByMasterCategory: make(map[string]int),
	}

	if err := m.conn.QueryRowContext(ctx, "SELECT COUNT(*) FROM style_items").Scan(&s.Total); err != nil {
		return nil, fmt.Errorf("count style_items: %w", err)
	}
	if err := m.countBy(ctx, "gender", s.ByGender); err != nil {
		return nil, err
	}
	if err := m.countBy(ctx, "master_category", s.ByMasterCategory); err != nil {
		return nil, err
	}
	return s, nil
}

// countBy fills dst with row counts grouped by column. column must be one of
// the fixed schema names, never caller input.
func (m *Mirror) countBy(ctx context.Context, column string, dst map[string]int) error {
	query := fmt.Sprintf("SELECT %s, COUNT(*) FROM style_items GROUP BY %s", column, column) //nolint:gosec // column is a constant
	rows, err := m.conn.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("count by %s: %w", column, err)
	}
	defer closeQuietly(rows)

	for rows.Next() {
		var (
			value string
			count int
		)
		if err := rows.Scan(&value, &count); err != nil {
			return fmt.Errorf("scan %s count: %w", column, err)
		}
		dst[value] = count
	}
	return rows.Err()
}
