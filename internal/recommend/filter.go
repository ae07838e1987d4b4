// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package recommend

import (
	"github.com/tomtom215/stylemate/internal/catalog"
)

// selection is the outcome of filtering one bucket. positions index into
// the bucket's Items and stay in catalog order.
type selection struct {
	positions      []int
	skipped        []string
	genderFallback bool
}

type filterStep struct {
	name  string
	match func(*catalog.Item) bool
}

func querySteps(q Query) []filterStep {
	return []filterStep{
		{StepGender, func(it *catalog.Item) bool { return it.MatchesGender(q.Gender) }},
		{StepUsage, func(it *catalog.Item) bool { return it.MatchesUsage(q.Theme) }},
		{StepColour, func(it *catalog.Item) bool { return it.MatchesColour(q.Colour) }},
	}
}

// selectItems narrows a bucket for q. Every step only ever removes items.
func selectItems(b *catalog.Bucket, q Query, strict, genderFallback bool) selection {
	var sel selection
	if b.Len() == 0 {
		return sel
	}

	all := make([]int, b.Len())
	for i := range all {
		all[i] = i
	}

	steps := querySteps(q)
	if strict {
		sel.positions = keep(b, all, func(it *catalog.Item) bool {
			for _, s := range steps {
				if !s.match(it) {
					return false
				}
			}
			return true
		})
	} else {
		sel.positions = all
		for _, s := range steps {
			next := keep(b, sel.positions, s.match)
			if len(next) == 0 {
				sel.skipped = append(sel.skipped, s.name)
				continue
			}
			sel.positions = next
		}
	}

	if len(sel.positions) == 0 && genderFallback {
		sel.positions = keep(b, all, steps[0].match)
		sel.genderFallback = true
	}
	return sel
}

func keep(b *catalog.Bucket, positions []int, match func(*catalog.Item) bool) []int {
	out := make([]int, 0, len(positions))
	for _, p := range positions {
		if match(b.Items[p]) {
			out = append(out, p)
		}
	}
	return out
}
