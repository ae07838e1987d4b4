// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package weather

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/stylemate/internal/logging"
	"github.com/tomtom215/stylemate/internal/metrics"
)

// Resolver resolves a city to a reading via the live provider, the static
// table and finally the default reading. It is safe for concurrent use and
// holds no locks while the provider call is in flight.
type Resolver struct {
	provider Provider
	timeout  time.Duration
	logger   zerolog.Logger
}

// NewResolver creates a resolver. A nil provider skips straight to the
// static table.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewResolver(provider Provider, timeout time.Duration, logger zerolog.Logger) *Resolver {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Resolver{
		provider: provider,
		timeout:  timeout,
		logger:   logger.With().Str("component", "weather").Logger(),
	}
}

// NewResolverFromConfig wires the client, breaker and resolver from cfg.
// When no API key is configured the live provider is disabled.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewResolverFromConfig(cfg Config, logger zerolog.Logger) (*Resolver, error) {
	if !cfg.Enabled() {
		logger.Info().Msg("Weather API key not configured, using static fallback table only")
		return NewResolver(nil, cfg.Timeout, logger), nil
	}

	client, err := NewClient(cfg)
	if err != nil {
		return nil, err
	}
	provider := NewBreakerProvider(client, cfg.Breaker, logger)
	return NewResolver(provider, cfg.Timeout, logger), nil
}

// LiveEnabled reports whether a live provider is configured.
func (r *Resolver) LiveEnabled() bool {
	return r.provider != nil
}

// ProviderState reports the live provider for health checks: "disabled"
// without one, the breaker state ("closed", "half-open", "open") when it is
// guarded, and "live" otherwise.
func (r *Resolver) ProviderState() string {
	switch p := r.provider.(type) {
	case nil:
		return "disabled"
	case *BreakerProvider:
		return p.State()
	default:
		return "live"
	}
}

// Resolve returns a reading for city. It never fails: provider errors are
// logged and answered from the fallback chain. The provider call is bounded
// by the resolver timeout and by ctx.
func (r *Resolver) Resolve(ctx context.Context, city string) Reading {
	if r.provider != nil {
		callCtx, cancel := context.WithTimeout(ctx, r.timeout)
		reading, err := r.provider.Current(callCtx, city)
		cancel()

		if err == nil {
			metrics.RecordWeatherLookup(string(SourceLive))
			return reading
		}

		reason := reasonOf(err)
		metrics.WeatherProviderErrors.WithLabelValues(reason).Inc()
		logging.WithContext(ctx, r.logger).Warn().
			Err(err).
			Str("city", city).
			Str("reason", reason).
			Msg("Weather provider failed, using fallback")
	}

	reading := Fallback(city)
	metrics.RecordWeatherLookup(string(reading.Source))
	return reading
}
