// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package recommend

import (
	"reflect"
	"testing"

	"github.com/tomtom215/stylemate/internal/catalog"
)

func testBucket() *catalog.Bucket {
	snap := catalog.NewSnapshot(testCatalog(), catalog.DefaultRules())
	return snap.Bucket(catalog.CategoryTop)
}

func TestSelectItems_Cascade(t *testing.T) {
	t.Parallel()

	b := testBucket() // ids 1..5 in catalog order

	tests := []struct {
		name        string
		q           Query
		wantIDs     []int64
		wantSkipped []string
	}{
		{"all steps apply", Query{Gender: "Men", Theme: "Casual", Colour: "Blue"}, []int64{1}, nil},
		{"colour skipped", Query{Gender: "Men", Theme: "Casual", Colour: "Green"}, []int64{1, 2, 5}, []string{StepColour}},
		{"usage skipped", Query{Gender: "Men", Theme: "Party", Colour: "White"}, []int64{4}, []string{StepUsage}},
		{"unisex matches any gender", Query{Gender: "Kids", Theme: "Casual", Colour: "Grey"}, []int64{5}, nil},
		{"every step skipped", Query{Gender: "Kids", Theme: "Party", Colour: "Gold"}, []int64{5}, []string{StepUsage, StepColour}},
		{"women ethnic", Query{Gender: "women", Theme: "ethnic", Colour: "white"}, []int64{3}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sel := selectItems(b, tt.q, false, true)

			got := make([]int64, len(sel.positions))
			for i, p := range sel.positions {
				got[i] = b.Items[p].ID
			}
			if !reflect.DeepEqual(got, tt.wantIDs) {
				t.Errorf("ids = %v, want %v", got, tt.wantIDs)
			}
			if !reflect.DeepEqual(sel.skipped, tt.wantSkipped) {
				t.Errorf("skipped = %v, want %v", sel.skipped, tt.wantSkipped)
			}
			if sel.genderFallback {
				t.Error("cascade over a non-empty bucket never needs the gender fallback")
			}
		})
	}
}

// Each applied step may only shrink the selection, and a step is skipped
// only when it would have emptied it.
func TestSelectItems_CascadeMonotonic(t *testing.T) {
	t.Parallel()

	b := testBucket()
	genders := []string{"Men", "Women", "Unisex", "Kids"}
	themes := []string{"Casual", "Formal", "Ethnic", "Party"}
	colours := []string{"Blue", "White", "Black", "Grey", "Gold"}

	for _, g := range genders {
		for _, th := range themes {
			for _, c := range colours {
				q := Query{Gender: g, Theme: th, Colour: c}
				steps := querySteps(q)

				all := make([]int, b.Len())
				for i := range all {
					all[i] = i
				}
				current := all
				var skipped []string
				for _, s := range steps {
					next := keep(b, current, s.match)
					if len(next) > len(current) {
						t.Fatalf("%+v: step %s grew the selection", q, s.name)
					}
					if len(next) == 0 {
						skipped = append(skipped, s.name)
						continue
					}
					current = next
				}

				sel := selectItems(b, q, false, true)
				if !reflect.DeepEqual(sel.positions, current) {
					t.Errorf("%+v: selectItems = %v, want %v", q, sel.positions, current)
				}
				if !reflect.DeepEqual(sel.skipped, skipped) {
					t.Errorf("%+v: skipped = %v, want %v", q, sel.skipped, skipped)
				}
				if len(sel.positions) == 0 || len(sel.positions) > b.Len() {
					t.Errorf("%+v: selection size %d out of range", q, len(sel.positions))
				}
			}
		}
	}
}

func TestSelectItems_Strict(t *testing.T) {
	t.Parallel()

	b := testBucket()

	sel := selectItems(b, Query{Gender: "Men", Theme: "Casual", Colour: "Black"}, true, true)
	if len(sel.positions) != 1 || b.Items[sel.positions[0]].ID != 2 || sel.genderFallback {
		t.Errorf("strict full match = %+v", sel)
	}

	sel = selectItems(b, Query{Gender: "Women", Theme: "Casual", Colour: "Pink"}, true, true)
	if !sel.genderFallback {
		t.Fatal("expected gender fallback")
	}
	got := make([]int64, 0, len(sel.positions))
	for _, p := range sel.positions {
		got = append(got, b.Items[p].ID)
	}
	if !reflect.DeepEqual(got, []int64{3, 5}) {
		t.Errorf("gender fallback ids = %v, want [3 5]", got)
	}

	sel = selectItems(b, Query{Gender: "Women", Theme: "Casual", Colour: "Pink"}, true, false)
	if len(sel.positions) != 0 {
		t.Errorf("without fallback the selection should be empty, got %v", sel.positions)
	}
}

func TestSelectItems_EmptyBucket(t *testing.T) {
	t.Parallel()

	for _, b := range []*catalog.Bucket{nil, {Category: catalog.CategoryAccessory}} {
		sel := selectItems(b, Query{Gender: "Men", Theme: "Casual", Colour: "Blue"}, false, true)
		if len(sel.positions) != 0 || sel.genderFallback {
			t.Errorf("empty bucket selection = %+v", sel)
		}
	}
}
