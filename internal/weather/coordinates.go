// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package weather

// DefaultCoordinateCity is returned when coordinates fall outside every box.
const DefaultCoordinateCity = "Jakarta"

type cityBox struct {
	city           string
	minLat, maxLat float64
	minLon, maxLon float64
}

// cityBoxes are coarse bounding boxes checked in order; the first containing
// box wins. Bounds are inclusive.
var cityBoxes = []cityBox{
	{"Jakarta", -6.5, -6.0, 106.5, 107.0},
	{"Bandung", -7.0, -6.5, 107.0, 108.0},
	{"Bali", -8.5, -8.0, 114.0, 115.5},
	{"Yogyakarta", -7.5, -7.0, 110.0, 111.0},
	{"Surabaya", -7.5, -7.0, 112.0, 113.0},
}

// LocateCoordinates maps a latitude/longitude to a supported city name.
// The boolean is false when no box matched and the default city was used.
func LocateCoordinates(lat, lon float64) (string, bool) {
	for _, b := range cityBoxes {
		if lat >= b.minLat && lat <= b.maxLat && lon >= b.minLon && lon <= b.maxLon {
			return b.city, true
		}
	}
	return DefaultCoordinateCity, false
}
