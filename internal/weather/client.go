// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package weather

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/stylemate/internal/metrics"
)

// maxErrorBodySize limits the maximum amount of response body read for error reporting
const maxErrorBodySize = 4 * 1024

// maxResponseSize bounds successful response decoding.
const maxResponseSize = 1 << 20

// Config holds weather provider settings.
type Config struct {
	// BaseURL is the current-weather endpoint, e.g.
	// http://api.openweathermap.org/data/2.5/weather
	BaseURL string

	// APIKey authenticates with the provider. Empty disables the live provider.
	APIKey string

	// CityParam and KeyParam name the query parameters carrying the city and
	// key. OpenWeatherMap uses "q" and "appid".
	CityParam string
	KeyParam  string

	// Units is sent as the "units" parameter. Default: metric
	Units string

	// Timeout bounds each provider call. Default: 5s
	Timeout time.Duration

	// RateLimit is the sustained outbound request rate per second; RateBurst
	// the bucket size. A zero RateLimit disables throttling.
	RateLimit float64
	RateBurst int

	// Breaker configures the circuit breaker around the client.
	Breaker BreakerConfig
}

// DefaultConfig returns provider settings matching the public
// OpenWeatherMap API.
func DefaultConfig() Config {
	return Config{
		BaseURL:   "http://api.openweathermap.org/data/2.5/weather",
		CityParam: "city",
		KeyParam:  "apiKey",
		Units:     "metric",
		Timeout:   5 * time.Second,
		RateLimit: 10,
		RateBurst: 20,
		Breaker:   DefaultBreakerConfig(),
	}
}

// Enabled reports whether a live provider should be constructed.
func (c Config) Enabled() bool {
	return c.APIKey != "" && c.BaseURL != ""
}

// Client calls an OpenWeatherMap-compatible current-weather endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    *url.URL
	cfg        Config
	limiter    *rate.Limiter
}

// NewClient creates a provider client.
func NewClient(cfg Config) (*Client, error) {
	u, err := url.Parse(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid weather base URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("weather base URL scheme must be http or https, got %q", u.Scheme)
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 5 * time.Second
	}
	if cfg.CityParam == "" {
		cfg.CityParam = "city"
	}
	if cfg.KeyParam == "" {
		cfg.KeyParam = "apiKey"
	}
	if cfg.Units == "" {
		cfg.Units = "metric"
	}

	limiter := rate.NewLimiter(rate.Inf, 0)
	if cfg.RateLimit > 0 {
		burst := cfg.RateBurst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), burst)
	}

	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    u,
		cfg:        cfg,
		limiter:    limiter,
	}, nil
}

// currentResponse is the subset of the provider payload we rely on.
type currentResponse struct {
	Main *struct {
		Temp *float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
}

// Current fetches the current conditions for city.
func (c *Client) Current(ctx context.Context, city string) (Reading, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Reading{}, &ProviderError{Reason: ReasonRateLimited, Err: errors.Join(ErrProviderUnavailable, err)}
	}

	q := c.baseURL.Query()
	q.Set(c.cfg.CityParam, city)
	q.Set(c.cfg.KeyParam, c.cfg.APIKey)
	q.Set("units", c.cfg.Units)
	u := *c.baseURL
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return Reading{}, &ProviderError{Reason: ReasonNetwork, Err: errors.Join(ErrProviderUnavailable, err)}
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.WeatherProviderDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		reason := ReasonNetwork
		if ctx.Err() != nil || isTimeout(err) {
			reason = ReasonTimeout
		}
		return Reading{}, &ProviderError{Reason: reason, Err: errors.Join(ErrProviderUnavailable, redactKey(err, c.cfg.APIKey))}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body := readBodyForError(resp.Body)
		return Reading{}, &ProviderError{
			Reason:     ReasonStatus,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("%w: %s", ErrProviderUnavailable, strings.TrimSpace(string(body))),
		}
	}

	var payload currentResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseSize)).Decode(&payload); err != nil {
		return Reading{}, &ProviderError{Reason: ReasonDecode, Err: fmt.Errorf("%w: %w", ErrBadResponse, err)}
	}
	if payload.Main == nil || payload.Main.Temp == nil {
		return Reading{}, &ProviderError{Reason: ReasonSchema, Err: fmt.Errorf("%w: missing main.temp", ErrBadResponse)}
	}
	if len(payload.Weather) == 0 {
		return Reading{}, &ProviderError{Reason: ReasonSchema, Err: fmt.Errorf("%w: missing weather[0].description", ErrBadResponse)}
	}

	return Reading{
		Temperature: *payload.Main.Temp,
		Description: payload.Weather[0].Description,
		Location:    city,
		Source:      SourceLive,
	}, nil
}

// readBodyForError reads the response body for error reporting (max 4KB)
func readBodyForError(r io.Reader) []byte {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return []byte("(failed to read response body)")
	}
	return body
}

func isTimeout(err error) bool {
	var te interface{ Timeout() bool }
	return errors.As(err, &te) && te.Timeout()
}

// redactKey strips the API key from transport errors, which embed the URL.
func redactKey(err error, key string) error {
	if key == "" || !strings.Contains(err.Error(), key) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), key, "REDACTED"))
}
