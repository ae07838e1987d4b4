// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package recommend

import (
	"strings"
	"time"

	"github.com/tomtom215/stylemate/internal/cache"
	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/weather"
)

// Query is one recommendation request. Matching is case-insensitive.
type Query struct {
	Location string
	Gender   string
	Theme    string
	Colour   string
}

// normalized trims surrounding whitespace from every field.
func (q Query) normalized() Query {
	return Query{
		Location: strings.TrimSpace(q.Location),
		Gender:   strings.TrimSpace(q.Gender),
		Theme:    strings.TrimSpace(q.Theme),
		Colour:   strings.TrimSpace(q.Colour),
	}
}

// Text returns the free-text query scored against item feature texts.
func (q Query) Text(season weather.Season) string {
	return strings.ToLower(q.Gender + " " + q.Theme + " " + q.Colour + " " + string(season))
}

// Scored is a ranked item with its cosine similarity to the query.
type Scored struct {
	Item       *catalog.Item
	Confidence float64
}

// Filter step names, as reported in CategoryResult.Skipped.
const (
	StepGender = "gender"
	StepUsage  = "usage"
	StepColour = "colour"
)

// CategoryResult is the ranked list for one category.
type CategoryResult struct {
	Category catalog.Category

	// Items is ordered by non-increasing confidence and never nil.
	Items []Scored

	// Candidates is the size of the filtered selection that was scored.
	Candidates int

	// Skipped lists the cascade steps that were not applied because they
	// would have emptied the selection.
	Skipped []string

	// GenderFallback is set when the selection was rebuilt with
	// gender-only matching.
	GenderFallback bool

	// Failed is set when scoring panicked and the list was emptied.
	Failed bool
}

// Diagnostic summarises one category's confidences.
type Diagnostic struct {
	SimilarityPrecisionProxy float64
	SimilarityRecallProxy    float64
	Items                    int
}

// Result is a full recommendation across all configured categories.
type Result struct {
	Categories  []CategoryResult
	Season      weather.Season
	Weather     weather.Reading
	TotalItems  int
	Generation  uint64
	Diagnostics map[catalog.Category]Diagnostic
}

// Category returns the result for c, or nil when c was not served.
func (r *Result) Category(c catalog.Category) *CategoryResult {
	for i := range r.Categories {
		if r.Categories[i].Category == c {
			return &r.Categories[i]
		}
	}
	return nil
}

// Stats describes the engine's current state.
type Stats struct {
	Generation  uint64
	Items       int
	BucketSizes map[catalog.Category]int
	Categories  []catalog.Category
	LoadedAt    time.Time
	Source      string
	IndexCache  cache.Stats
	Requests    int64
	Reloads     int64
}

// diagnose computes the mean confidence of every non-empty category list.
func diagnose(categories []CategoryResult) map[catalog.Category]Diagnostic {
	out := make(map[catalog.Category]Diagnostic, len(categories))
	for _, cr := range categories {
		if len(cr.Items) == 0 {
			continue
		}
		var sum float64
		for _, s := range cr.Items {
			sum += s.Confidence
		}
		mean := sum / float64(len(cr.Items))
		out[cr.Category] = Diagnostic{
			SimilarityPrecisionProxy: mean,
			SimilarityRecallProxy:    mean,
			Items:                    len(cr.Items),
		}
	}
	return out
}
