// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package catalog

import (
	"testing"
)

func TestItem_FeatureText(t *testing.T) {
	t.Parallel()

	it := &Item{
		MasterCategory: "Apparel",
		SubCategory:    "Topwear",
		ArticleType:    "Shirts",
		Usage:          "Casual",
		BaseColour:     "Navy Blue",
		Season:         "Fall",
	}

	want := "apparel topwear shirts casual navy blue fall"
	if got := it.FeatureText(); got != want {
		t.Errorf("FeatureText() = %q, want %q", got, want)
	}
}

func TestItem_MatchesGender(t *testing.T) {
	t.Parallel()

	tests := []struct {
		itemGender string
		query      string
		want       bool
	}{
		{"Men", "men", true},
		{"Men", "Women", false},
		{"Unisex", "Women", true},
		{"unisex", "Men", true},
		{"", "Men", false},
	}

	for _, tt := range tests {
		it := &Item{Gender: tt.itemGender}
		if got := it.MatchesGender(tt.query); got != tt.want {
			t.Errorf("Item{Gender:%q}.MatchesGender(%q) = %v, want %v", tt.itemGender, tt.query, got, tt.want)
		}
	}
}

func TestRules_Matches(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		category Category
		master   string
		article  string
		rules    Rules
		want     bool
	}{
		{"apparel shirt is top", CategoryTop, "Apparel", "Shirts", DefaultRules(), true},
		{"apparel tshirt is top", CategoryTop, "Apparel", "Tshirts", DefaultRules(), true},
		{"apparel jeans is not top", CategoryTop, "Apparel", "Jeans", DefaultRules(), false},
		{"footwear shirt is not top", CategoryTop, "Footwear", "Shirts", DefaultRules(), false},
		{"accessory jacket not top by default", CategoryTop, "Accessories", "Jacket", DefaultRules(), false},
		{"accessory jacket is top with variant", CategoryTop, "Accessories", "Jacket", Rules{TopIncludesAccessories: true}, true},
		{"apparel jeans is bottom", CategoryBottom, "Apparel", "Jeans", DefaultRules(), true},
		{"apparel track pants is bottom", CategoryBottom, "apparel", "Track Pants", DefaultRules(), true},
		{"footwear shorts is not bottom", CategoryBottom, "Footwear", "Shorts", DefaultRules(), false},
		{"footwear is footwear", CategoryFootwear, "FOOTWEAR", "Casual Shoes", DefaultRules(), true},
		{"footwear needs exact master", CategoryFootwear, "Footwear Care", "Shoe Polish", DefaultRules(), false},
		{"accessories master", CategoryAccessory, "Accessories", "Anything", DefaultRules(), true},
		{"personal care master", CategoryAccessory, "Personal Care", "Deodorant", DefaultRules(), true},
		{"apparel tie is accessory by keyword", CategoryAccessory, "Apparel", "Ties", DefaultRules(), true},
		{"apparel kurta is not accessory", CategoryAccessory, "Apparel", "Kurtas", DefaultRules(), false},
		{"empty article never matches keywords", CategoryTop, "Apparel", "", DefaultRules(), false},
		{"empty everything", CategoryAccessory, "", "", DefaultRules(), false},
		{"unknown category", Category("Hats"), "Accessories", "Hat", DefaultRules(), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			it := &Item{MasterCategory: tt.master, ArticleType: tt.article}
			if got := tt.rules.Matches(tt.category, it); got != tt.want {
				t.Errorf("Matches(%s, %q/%q) = %v, want %v", tt.category, tt.master, tt.article, got, tt.want)
			}
		})
	}
}

func TestPartition_OrderAndOverlap(t *testing.T) {
	t.Parallel()

	items := []*Item{
		{ID: 1, MasterCategory: "Apparel", ArticleType: "Shirts"},
		{ID: 2, MasterCategory: "Footwear", ArticleType: "Sports Shoes"},
		{ID: 3, MasterCategory: "Apparel", ArticleType: "Bowling Shirt"},
		{ID: 4, MasterCategory: "Apparel", ArticleType: "Jeans"},
		{ID: 5, MasterCategory: "Apparel", ArticleType: "Tshirts"},
		nil,
	}

	buckets := Partition(items, DefaultRules())

	if len(buckets) != 4 {
		t.Fatalf("expected 4 buckets, got %d", len(buckets))
	}

	assertIDs(t, buckets[CategoryTop], 1, 3, 5)
	assertIDs(t, buckets[CategoryBottom], 4)
	assertIDs(t, buckets[CategoryFootwear], 2)
	assertIDs(t, buckets[CategoryAccessory], 3)

	top := buckets[CategoryTop]
	if len(top.FeatureText) != len(top.Items) {
		t.Fatalf("feature text rows = %d, items = %d", len(top.FeatureText), len(top.Items))
	}
	for i, it := range top.Items {
		if top.FeatureText[i] != it.FeatureText() {
			t.Errorf("row %d feature text = %q, want %q", i, top.FeatureText[i], it.FeatureText())
		}
	}
}

func TestPartition_EmptyBucketStillPresent(t *testing.T) {
	t.Parallel()

	items := []*Item{{ID: 1, MasterCategory: "Apparel", ArticleType: "Shirts"}}
	buckets := Partition(items, DefaultRules())

	acc, ok := buckets[CategoryAccessory]
	if !ok {
		t.Fatal("Accessory bucket missing")
	}
	if acc.Len() != 0 {
		t.Errorf("Accessory bucket len = %d, want 0", acc.Len())
	}
}

func TestPartition_ConfiguredSubset(t *testing.T) {
	t.Parallel()

	rules := Rules{Categories: []Category{CategoryTop, CategoryBottom, CategoryFootwear}}
	buckets := Partition(nil, rules)

	if _, ok := buckets[CategoryAccessory]; ok {
		t.Error("Accessory bucket should not be built when not configured")
	}
	if len(buckets) != 3 {
		t.Errorf("expected 3 buckets, got %d", len(buckets))
	}
}

func TestNewSnapshot_DropsNilItems(t *testing.T) {
	t.Parallel()

	items := []*Item{
		nil,
		{ID: 1, MasterCategory: "Apparel", ArticleType: "Shirts"},
		nil,
		{ID: 2, MasterCategory: "Footwear", ArticleType: "Sports Shoes"},
	}

	snap := NewSnapshot(items, DefaultRules())
	if snap.Size() != 2 {
		t.Fatalf("Size() = %d, want 2", snap.Size())
	}
	for i, it := range snap.Items {
		if it == nil {
			t.Errorf("Items[%d] is nil", i)
		}
	}

	var bucketed int
	for _, n := range snap.BucketSizes() {
		bucketed += n
	}
	if bucketed != snap.Size() {
		t.Errorf("bucket total = %d, Size() = %d", bucketed, snap.Size())
	}
	if items[0] != nil || len(items) != 4 {
		t.Error("NewSnapshot must not modify the caller's slice")
	}
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	if c, err := ParseCategory(" footwear "); err != nil || c != CategoryFootwear {
		t.Errorf("ParseCategory(footwear) = (%q, %v)", c, err)
	}
	if _, err := ParseCategory("Hats"); err == nil {
		t.Error("ParseCategory(Hats) should fail")
	}
}

func assertIDs(t *testing.T, b *Bucket, want ...int64) {
	t.Helper()
	if b == nil {
		t.Fatalf("bucket is nil, want ids %v", want)
	}
	if len(b.Items) != len(want) {
		t.Fatalf("%s bucket has %d items, want %d", b.Category, len(b.Items), len(want))
	}
	for i, id := range want {
		if b.Items[i].ID != id {
			t.Errorf("%s bucket[%d].ID = %d, want %d", b.Category, i, b.Items[i].ID, id)
		}
	}
}
