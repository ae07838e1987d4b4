// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

// Package recommend implements the weather-aware outfit recommendation engine.
//
// # Pipeline
//
// For every request the engine:
//
//  1. resolves the weather for the requested location and maps it to a season
//  2. builds the query text "gender theme colour season" (lowercased)
//  3. narrows each category bucket with the filter cascade
//  4. scores the surviving items by TF-IDF cosine similarity
//  5. returns the top N items per category in descending confidence
//
// # Filter Modes
//
// In cascade mode (the default) the gender, usage and colour filters are
// applied in that order and a step is skipped when it would leave no items.
// Strict mode requires all three to match. Either way, an empty selection
// falls back to gender-only matching when GenderFallback is set.
//
// Season never filters items. It only contributes to the query vector.
//
// # Diagnostics
//
// Result.Diagnostics reports the mean confidence of each category's list
// under the names SimilarityPrecisionProxy and SimilarityRecallProxy. Both
// carry the same value. They are similarity averages, not retrieval metrics
// measured against relevance judgements.
//
// # Thread Safety
//
// The engine is safe for concurrent use. The active catalog snapshot is
// swapped atomically by Reload; requests already in flight finish against
// the snapshot they started with. Filtered indexes are cached per snapshot
// generation and built at most once per key under concurrent load.
package recommend
