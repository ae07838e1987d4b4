// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package catalog

import (
	"sort"
)

// ValueCount is one entry of a categorical distribution.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Field extracts one categorical attribute from an item.
type Field func(*Item) string

// Categorical fields used for catalog statistics.
var (
	FieldMasterCategory Field = func(it *Item) string { return it.MasterCategory }
	FieldBaseColour     Field = func(it *Item) string { return it.BaseColour }
	FieldSeason         Field = func(it *Item) string { return it.Season }
	FieldGender         Field = func(it *Item) string { return it.Gender }
	FieldUsage          Field = func(it *Item) string { return it.Usage }
	FieldArticleType    Field = func(it *Item) string { return it.ArticleType }
)

// ValueCounts returns the distribution of field over items, most frequent
// first, ties by value. Empty values are skipped. limit <= 0 returns all.
func ValueCounts(items []*Item, field Field, limit int) []ValueCount {
	counts := make(map[string]int)
	for _, it := range items {
		if v := field(it); v != "" {
			counts[v]++
		}
	}

	out := make([]ValueCount, 0, len(counts))
	for v, n := range counts {
		out = append(out, ValueCount{Value: v, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Value < out[j].Value
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
