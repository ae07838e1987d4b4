// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package catalog

import (
	"fmt"
	"strings"
)

// Category names a catalog bucket.
type Category string

// Known categories.
const (
	CategoryTop       Category = "Top"
	CategoryBottom    Category = "Bottom"
	CategoryFootwear  Category = "Footwear"
	CategoryAccessory Category = "Accessory"
)

// AllCategories lists every category in response order.
var AllCategories = []Category{CategoryTop, CategoryBottom, CategoryFootwear, CategoryAccessory}

// ParseCategory resolves a configured category name, ignoring case.
func ParseCategory(name string) (Category, error) {
	for _, c := range AllCategories {
		if strings.EqualFold(string(c), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q (valid: Top, Bottom, Footwear, Accessory)", name)
}

var (
	topKeywords = []string{
		"top", "shirt", "kurta", "blouse", "t-shirt", "tee", "tank", "jersey",
		"polo", "sweater", "hoodie", "jacket", "blazer", "coat", "cardigan",
	}
	bottomKeywords = []string{
		"pant", "jean", "trouser", "skirt", "short", "legging", "track", "bottom",
	}
	accessoryKeywords = []string{
		"bag", "watch", "belt", "cap", "hat", "sunglasses", "wallet", "backpack",
		"handbag", "bracelet", "necklace", "ring", "earring", "scarf", "tie", "bow",
	}
	accessoryMasters = []string{"accessories", "personal care"}
)

// Rules controls how items are assigned to buckets.
type Rules struct {
	// Categories to build. Buckets are only produced for these.
	Categories []Category

	// TopIncludesAccessories admits masterCategory "accessories" to Top
	// when the article type matches a top keyword.
	TopIncludesAccessories bool
}

// DefaultRules builds all four buckets with apparel-only tops.
func DefaultRules() Rules {
	return Rules{Categories: append([]Category(nil), AllCategories...)}
}

// Matches reports whether it belongs in category c under these rules.
func (r Rules) Matches(c Category, it *Item) bool {
	master := strings.ToLower(strings.TrimSpace(it.MasterCategory))
	article := strings.ToLower(it.ArticleType)

	switch c {
	case CategoryTop:
		if master != "apparel" && !(r.TopIncludesAccessories && master == "accessories") {
			return false
		}
		return containsAny(article, topKeywords)
	case CategoryBottom:
		return master == "apparel" && containsAny(article, bottomKeywords)
	case CategoryFootwear:
		return master == "footwear"
	case CategoryAccessory:
		for _, m := range accessoryMasters {
			if master == m {
				return true
			}
		}
		return containsAny(article, accessoryKeywords)
	default:
		return false
	}
}

// containsAny reports whether s contains any keyword. Empty s never matches.
func containsAny(s string, keywords []string) bool {
	if s == "" {
		return false
	}
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

// Bucket is an immutable category partition in catalog order.
type Bucket struct {
	Category    Category
	Items       []*Item
	FeatureText []string
}

// Len returns the number of items in the bucket.
func (b *Bucket) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Items)
}

// Partition splits items into one bucket per configured category. Every
// configured category gets a bucket, possibly empty.
func Partition(items []*Item, rules Rules) map[Category]*Bucket {
	buckets := make(map[Category]*Bucket, len(rules.Categories))
	for _, c := range rules.Categories {
		buckets[c] = &Bucket{Category: c}
	}

	for _, it := range items {
		if it == nil {
			continue
		}
		var text string
		for _, c := range rules.Categories {
			if !rules.Matches(c, it) {
				continue
			}
			if text == "" {
				text = it.FeatureText()
			}
			b := buckets[c]
			b.Items = append(b.Items, it)
			b.FeatureText = append(b.FeatureText, text)
		}
	}

	return buckets
}
