// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package weather

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/stylemate/internal/metrics"
)

// BreakerName labels the weather breaker in metrics.
const BreakerName = "weather-api"

// BreakerConfig configures the provider circuit breaker.
type BreakerConfig struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32

	// Interval after which closed-state counts reset.
	Interval time.Duration

	// OpenTimeout is how long the breaker stays open before probing.
	OpenTimeout time.Duration

	// ConsecutiveFailures trips the breaker outright.
	ConsecutiveFailures uint32

	// MinRequests and FailureRatio trip the breaker on a sustained error rate.
	MinRequests  uint32
	FailureRatio float64
}

// DefaultBreakerConfig returns the default breaker settings.
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:         1,
		Interval:            time.Minute,
		OpenTimeout:         30 * time.Second,
		ConsecutiveFailures: 5,
		MinRequests:         10,
		FailureRatio:        0.6,
	}
}

// BreakerProvider wraps a Provider with circuit breaker protection. While
// the breaker is open, calls fail immediately with ReasonCircuitOpen.
type BreakerProvider struct {
	next   Provider
	cb     *gobreaker.CircuitBreaker[Reading]
	name   string
	logger zerolog.Logger
}

// NewBreakerProvider wraps next.
//
//nolint:gocritic // zerolog.Logger is designed to be passed by value
func NewBreakerProvider(next Provider, cfg BreakerConfig, logger zerolog.Logger) *BreakerProvider {
	name := BreakerName
	logger = logger.With().Str("breaker", name).Logger()

	metrics.CircuitBreakerState.WithLabelValues(name).Set(0) // 0 = closed
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	cb := gobreaker.NewCircuitBreaker[Reading](gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.OpenTimeout,

		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if cfg.ConsecutiveFailures > 0 && counts.ConsecutiveFailures >= cfg.ConsecutiveFailures {
				logger.Warn().Uint32("consecutive_failures", counts.ConsecutiveFailures).Msg("Opening circuit")
				return true
			}
			if cfg.MinRequests == 0 || counts.Requests < cfg.MinRequests {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			if failureRatio >= cfg.FailureRatio {
				logger.Warn().Float64("failure_rate", failureRatio*100).Msg("Opening circuit")
				return true
			}
			return false
		},

		// A 4xx other than 429 means the request was bad (unknown city, bad
		// key), not that the provider is unhealthy.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var pe *ProviderError
			if errors.As(err, &pe) && pe.Reason == ReasonStatus {
				return pe.StatusCode >= 400 && pe.StatusCode < 500 && pe.StatusCode != http.StatusTooManyRequests
			}
			return false
		},

		OnStateChange: func(name string, from, to gobreaker.State) {
			fromStr, toStr := stateToString(from), stateToString(to)
			logger.Info().Str("from", fromStr).Str("to", toStr).Msg("Circuit breaker state transition")

			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})

	return &BreakerProvider{next: next, cb: cb, name: name, logger: logger}
}

// Current fetches conditions through the breaker.
func (b *BreakerProvider) Current(ctx context.Context, city string) (Reading, error) {
	reading, err := b.cb.Execute(func() (Reading, error) {
		return b.next.Current(ctx, city)
	})

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(b.name, "rejected").Inc()
			return Reading{}, &ProviderError{Reason: ReasonCircuitOpen, Err: errors.Join(ErrProviderUnavailable, err)}
		}
		metrics.CircuitBreakerRequests.WithLabelValues(b.name, "failure").Inc()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(float64(b.cb.Counts().ConsecutiveFailures))
		return Reading{}, err
	}

	metrics.CircuitBreakerRequests.WithLabelValues(b.name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(b.name).Set(0)
	return reading, nil
}

// State returns the current breaker state as a string.
func (b *BreakerProvider) State() string {
	return stateToString(b.cb.State())
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

// stateToString converts circuit breaker state to string for logging
func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
