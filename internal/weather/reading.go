// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package weather

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// Source identifies which link of the fallback chain produced a reading.
type Source string

// Reading sources.
const (
	SourceLive     Source = "live"
	SourceFallback Source = "fallback"
	SourceDefault  Source = "default"
)

// Reading is a point-in-time weather observation. It is never persisted.
type Reading struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Source      Source  `json:"-"`
}

// Season maps the reading to a season tag.
func (r Reading) Season() Season {
	return MapSeason(r.Temperature, r.Description)
}

// Provider fetches current conditions for a city.
type Provider interface {
	Current(ctx context.Context, city string) (Reading, error)
}

// Sentinel errors for provider failures.
var (
	// ErrProviderUnavailable covers transport failures, timeouts, error
	// statuses, throttling and an open circuit.
	ErrProviderUnavailable = errors.New("weather provider unavailable")

	// ErrBadResponse means the provider answered but the body did not carry
	// main.temp and weather[0].description.
	ErrBadResponse = errors.New("weather provider returned an unusable response")
)

// Failure reasons used for logging and metrics labels.
const (
	ReasonNetwork     = "network"
	ReasonTimeout     = "timeout"
	ReasonStatus      = "status"
	ReasonDecode      = "decode"
	ReasonSchema      = "schema"
	ReasonRateLimited = "rate_limited"
	ReasonCircuitOpen = "circuit_open"
)

// ProviderError describes a failed provider call.
type ProviderError struct {
	Reason     string
	StatusCode int
	Err        error
}

func (e *ProviderError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("weather provider %s (status %d): %v", e.Reason, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("weather provider %s: %v", e.Reason, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// reasonOf extracts the failure reason from err.
func reasonOf(err error) string {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Reason
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return ReasonTimeout
	}
	return ReasonNetwork
}

// NormalizeCity lowercases city and strips all whitespace.
func NormalizeCity(city string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return unicode.ToLower(r)
	}, city)
}
