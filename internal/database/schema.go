// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package database

import (
	"context"
	"fmt"
)

const createStyleItemsTable = `CREATE TABLE IF NOT EXISTS style_items (
	id BIGINT NOT NULL,
	gender TEXT NOT NULL,
	master_category TEXT NOT NULL,
	sub_category TEXT NOT NULL,
	article_type TEXT NOT NULL,
	base_colour TEXT NOT NULL,
	season TEXT NOT NULL,
	year INTEGER,
	usage TEXT NOT NULL,
	product_display_name TEXT NOT NULL,
	link TEXT NOT NULL,
	synced_at TIMESTAMP NOT NULL
)`

// indexedColumns are the filter attributes analysts group by.
var indexedColumns = []string{
	"gender",
	"master_category",
	"base_colour",
	"season",
	"usage",
	"article_type",
}

func (m *Mirror) createSchema(ctx context.Context) error {
	if _, err := m.conn.ExecContext(ctx, createStyleItemsTable); err != nil {
		return fmt.Errorf("create style_items: %w", err)
	}
	for _, col := range indexedColumns {
		stmt := fmt.Sprintf("CREATE INDEX IF NOT EXISTS idx_style_items_%s ON style_items(%s)", col, col)
		if _, err := m.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create index on %s: %w", col, err)
		}
	}
	return nil
}
