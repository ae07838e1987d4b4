// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package catalog

import (
	"strings"
)

// GenderUnisex is the gender value that matches every query gender.
const GenderUnisex = "unisex"

// Item is one catalog row. Items are read-only once loaded.
type Item struct {
	ID                 int64  `json:"id"`
	Gender             string `json:"gender"`
	MasterCategory     string `json:"masterCategory"`
	SubCategory        string `json:"subCategory"`
	ArticleType        string `json:"articleType"`
	BaseColour         string `json:"baseColour"`
	Season             string `json:"season"`
	Year               int    `json:"year"`
	Usage              string `json:"usage"`
	ProductDisplayName string `json:"productDisplayName"`
	Link               string `json:"link"`
}

// FeatureText returns the lowercased concatenation of the categorical
// attributes used for similarity scoring. The field order is fixed; changing
// it changes every vector space built from the catalog.
func (it *Item) FeatureText() string {
	return strings.ToLower(strings.Join([]string{
		it.MasterCategory,
		it.SubCategory,
		it.ArticleType,
		it.Usage,
		it.BaseColour,
		it.Season,
	}, " "))
}

// MatchesGender reports whether the item is for the given gender or is unisex.
func (it *Item) MatchesGender(gender string) bool {
	return strings.EqualFold(it.Gender, gender) || strings.EqualFold(it.Gender, GenderUnisex)
}

// MatchesUsage reports whether the item usage equals theme, ignoring case.
func (it *Item) MatchesUsage(theme string) bool {
	return strings.EqualFold(it.Usage, theme)
}

// MatchesColour reports whether the item base colour equals colour, ignoring case.
func (it *Item) MatchesColour(colour string) bool {
	return strings.EqualFold(it.BaseColour, colour)
}
