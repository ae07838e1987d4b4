// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

/*
Package weather resolves a city name to a current weather reading and maps
readings to season tags.

# Fallback Chain

Resolver.Resolve never fails. It walks a fixed chain and returns the first
reading it gets:

 1. Live provider: HTTP GET against an OpenWeatherMap-compatible endpoint,
    bounded by a per-call timeout, throttled by a token bucket and guarded
    by a circuit breaker
 2. Static table: 17 Indonesian cities keyed by lowercased name with
    whitespace removed ("Kota Bandung" does not match, "Band ung" does)
 3. Default: 28°C, "pleasant weather"

Provider failures are logged at warn level and counted in
stylemate_weather_provider_errors_total; they never reach the caller.

# Seasons

MapSeason applies ordered rules, first match wins:

	temp > 30              -> Summer
	temp < 20              -> Winter
	description has "rain" -> Monsoon
	otherwise              -> Spring

Both temperature comparisons are strict: 30 is not Summer and 20 is not
Winter.
*/
package weather
