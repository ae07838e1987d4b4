// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package weather

import (
	"strings"
)

// Season is a catalog season tag.
type Season string

// Season tags produced by MapSeason.
const (
	Summer  Season = "Summer"
	Winter  Season = "Winter"
	Monsoon Season = "Monsoon"
	Spring  Season = "Spring"
)

// Temperature thresholds in °C. Comparisons are strict.
const (
	SummerAbove = 30.0
	WinterBelow = 20.0
)

// MapSeason derives a season from a temperature and description.
func MapSeason(temperature float64, description string) Season {
	switch {
	case temperature > SummerAbove:
		return Summer
	case temperature < WinterBelow:
		return Winter
	case strings.Contains(strings.ToLower(description), "rain"):
		return Monsoon
	default:
		return Spring
	}
}
