// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package catalog

import (
	"fmt"
	"time"
)

// Snapshot is an immutable, partitioned view of the catalog. Snapshots carry
// no sequence number; the engine numbers the snapshots it installs.
type Snapshot struct {
	Items    []*Item
	Buckets  map[Category]*Bucket
	Rules    Rules
	LoadedAt time.Time
	Source   string
}

// NewSnapshot partitions items under rules. Nil entries are dropped so Items
// and the buckets count the same catalog.
func NewSnapshot(items []*Item, rules Rules) *Snapshot {
	kept := make([]*Item, 0, len(items))
	for _, it := range items {
		if it != nil {
			kept = append(kept, it)
		}
	}
	return &Snapshot{
		Items:    kept,
		Buckets:  Partition(kept, rules),
		Rules:    rules,
		LoadedAt: time.Now(),
	}
}

// Load reads and partitions the catalog at path.
func Load(path string, rules Rules) (*Snapshot, error) {
	items, err := LoadCSV(path)
	if err != nil {
		return nil, err
	}
	if len(rules.Categories) == 0 {
		return nil, fmt.Errorf("%w: no categories configured", ErrCatalogLoad)
	}
	snap := NewSnapshot(items, rules)
	snap.Source = path
	return snap, nil
}

// Bucket returns the bucket for c, or nil when c is not configured.
func (s *Snapshot) Bucket(c Category) *Bucket {
	if s == nil {
		return nil
	}
	return s.Buckets[c]
}

// Size returns the total number of catalog items.
func (s *Snapshot) Size() int {
	if s == nil {
		return 0
	}
	return len(s.Items)
}

// BucketSizes returns the item count per configured category.
func (s *Snapshot) BucketSizes() map[Category]int {
	sizes := make(map[Category]int, len(s.Buckets))
	for c, b := range s.Buckets {
		sizes[c] = b.Len()
	}
	return sizes
}

// Categories returns the configured categories that have a bucket, in
// canonical order.
func (s *Snapshot) Categories() []Category {
	out := make([]Category, 0, len(s.Buckets))
	for _, c := range AllCategories {
		if _, ok := s.Buckets[c]; ok {
			out = append(out, c)
		}
	}
	return out
}
