// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package weather

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tomtom215/stylemate/internal/logging"
)

// stubProvider returns a fixed reading or error and counts calls.
type stubProvider struct {
	reading Reading
	err     error
	delay   time.Duration
	calls   atomic.Int32
}

func (s *stubProvider) Current(ctx context.Context, city string) (Reading, error) {
	s.calls.Add(1)
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
			return Reading{}, &ProviderError{Reason: ReasonTimeout, Err: ctx.Err()}
		}
	}
	if s.err != nil {
		return Reading{}, s.err
	}
	r := s.reading
	r.Location = city
	r.Source = SourceLive
	return r, nil
}

func TestResolver_LiveReading(t *testing.T) {
	t.Parallel()

	stub := &stubProvider{reading: Reading{Temperature: 18, Description: "mist"}}
	r := NewResolver(stub, time.Second, logging.NewNopLogger())

	got := r.Resolve(context.Background(), "Lembang")
	if got.Source != SourceLive || got.Temperature != 18 {
		t.Errorf("Resolve() = %+v, want live 18°C", got)
	}
	if got.Season() != Winter {
		t.Errorf("Season() = %s, want Winter", got.Season())
	}
}

func TestResolver_UnknownCityProviderError(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	stub := &stubProvider{err: &ProviderError{Reason: ReasonStatus, StatusCode: 500, Err: ErrProviderUnavailable}}
	r := NewResolver(stub, time.Second, logging.NewTestLogger(&buf))

	got := r.Resolve(context.Background(), "Zzyxville")

	if got.Temperature != 28 || got.Description != "pleasant weather" {
		t.Errorf("Resolve() = %+v, want default reading", got)
	}
	if got.Source != SourceDefault {
		t.Errorf("Source = %s, want default", got.Source)
	}
	if got.Season() != Spring {
		t.Errorf("Season() = %s, want Spring", got.Season())
	}
	if !strings.Contains(buf.String(), "Weather provider failed") {
		t.Errorf("expected warning log, got %q", buf.String())
	}
}

func TestResolver_KnownCityProviderError(t *testing.T) {
	t.Parallel()

	stub := &stubProvider{err: errors.New("connection refused")}
	r := NewResolver(stub, time.Second, logging.NewNopLogger())

	got := r.Resolve(context.Background(), "Makassar")
	if got.Temperature != 33 || got.Source != SourceFallback {
		t.Errorf("Resolve() = %+v, want Makassar fallback", got)
	}
	if got.Season() != Summer {
		t.Errorf("Season() = %s, want Summer", got.Season())
	}
}

func TestResolver_TimeoutFallsBack(t *testing.T) {
	t.Parallel()

	stub := &stubProvider{delay: time.Minute}
	r := NewResolver(stub, 30*time.Millisecond, logging.NewNopLogger())

	start := time.Now()
	got := r.Resolve(context.Background(), "Bandung")
	if time.Since(start) > 2*time.Second {
		t.Fatal("resolver did not enforce its timeout")
	}
	if got.Source != SourceFallback || got.Temperature != 25 {
		t.Errorf("Resolve() = %+v, want Bandung fallback", got)
	}
}

func TestResolver_NoProvider(t *testing.T) {
	t.Parallel()

	r, err := NewResolverFromConfig(Config{}, logging.NewNopLogger())
	if err != nil {
		t.Fatalf("NewResolverFromConfig() error = %v", err)
	}
	if r.LiveEnabled() {
		t.Error("live provider should be disabled without an API key")
	}
	if got := r.Resolve(context.Background(), "Denpasar"); got.Temperature != 30 {
		t.Errorf("Resolve() = %+v, want Denpasar fallback", got)
	}
}

func TestBreakerProvider_OpensAfterFailures(t *testing.T) {
	t.Parallel()

	stub := &stubProvider{err: &ProviderError{Reason: ReasonNetwork, Err: ErrProviderUnavailable}}
	cfg := DefaultBreakerConfig()
	cfg.ConsecutiveFailures = 2
	cfg.OpenTimeout = time.Minute
	b := NewBreakerProvider(stub, cfg, logging.NewNopLogger())

	for i := 0; i < 2; i++ {
		if _, err := b.Current(context.Background(), "Medan"); err == nil {
			t.Fatal("expected provider error")
		}
	}
	if b.State() != "open" {
		t.Fatalf("State() = %s, want open", b.State())
	}

	_, err := b.Current(context.Background(), "Medan")
	var pe *ProviderError
	if !errors.As(err, &pe) || pe.Reason != ReasonCircuitOpen {
		t.Errorf("expected circuit_open rejection, got %v", err)
	}
	if calls := stub.calls.Load(); calls != 2 {
		t.Errorf("provider called %d times, want 2 (open circuit must short-circuit)", calls)
	}
}

func TestBreakerProvider_ClientErrorsDoNotTrip(t *testing.T) {
	t.Parallel()

	stub := &stubProvider{err: &ProviderError{Reason: ReasonStatus, StatusCode: http.StatusNotFound, Err: ErrProviderUnavailable}}
	cfg := DefaultBreakerConfig()
	cfg.ConsecutiveFailures = 2
	b := NewBreakerProvider(stub, cfg, logging.NewNopLogger())

	for i := 0; i < 5; i++ {
		_, _ = b.Current(context.Background(), "Nowhere")
	}
	if b.State() != "closed" {
		t.Errorf("State() = %s, want closed after 404s", b.State())
	}
}

func TestResolver_ProviderState(t *testing.T) {
	t.Parallel()

	cfg := DefaultBreakerConfig()
	cfg.ConsecutiveFailures = 1
	cfg.OpenTimeout = time.Minute
	failing := &stubProvider{err: &ProviderError{Reason: ReasonNetwork, Err: ErrProviderUnavailable}}
	tripped := NewResolver(NewBreakerProvider(failing, cfg, logging.NewNopLogger()), time.Second, logging.NewNopLogger())
	tripped.Resolve(context.Background(), "Medan")

	tests := []struct {
		name     string
		resolver *Resolver
		want     string
	}{
		{"no provider", NewResolver(nil, 0, logging.NewNopLogger()), "disabled"},
		{"unguarded provider", NewResolver(&stubProvider{}, 0, logging.NewNopLogger()), "live"},
		{"closed breaker", NewResolver(NewBreakerProvider(&stubProvider{}, DefaultBreakerConfig(), logging.NewNopLogger()), 0, logging.NewNopLogger()), "closed"},
		{"open breaker", tripped, "open"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.resolver.ProviderState(); got != tt.want {
				t.Errorf("ProviderState() = %q, want %q", got, tt.want)
			}
		})
	}
}
