// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package weather

// Default reading for cities missing from the fallback table.
const (
	DefaultTemperature = 28.0
	DefaultDescription = "pleasant weather"
)

type staticReading struct {
	temp float64
	desc string
}

// fallbackTable holds typical conditions for major Indonesian cities, keyed
// by NormalizeCity.
var fallbackTable = map[string]staticReading{
	"jakarta":    {32, "hot and humid"},
	"bandung":    {25, "cool and pleasant"},
	"surabaya":   {31, "hot and sunny"},
	"yogyakarta": {28, "warm and cloudy"},
	"medan":      {30, "hot and humid"},
	"semarang":   {29, "warm and humid"},
	"makassar":   {33, "very hot and sunny"},
	"palembang":  {31, "hot and humid"},
	"denpasar":   {30, "tropical and sunny"},
	"balikpapan": {32, "hot and humid"},
	"bali":       {28, "tropical and pleasant"},
	"malang":     {26, "cool and fresh"},
	"solo":       {29, "warm and pleasant"},
	"bogor":      {27, "cool and rainy"},
	"depok":      {30, "warm and humid"},
	"tangerang":  {31, "hot and humid"},
	"bekasi":     {30, "warm and humid"},
}

// Fallback returns the static reading for city, or the default reading when
// the city is unknown.
func Fallback(city string) Reading {
	if r, ok := fallbackTable[NormalizeCity(city)]; ok {
		return Reading{Temperature: r.temp, Description: r.desc, Location: city, Source: SourceFallback}
	}
	return Reading{Temperature: DefaultTemperature, Description: DefaultDescription, Location: city, Source: SourceDefault}
}

// KnownCities returns the number of cities in the fallback table.
func KnownCities() int {
	return len(fallbackTable)
}
