// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package config

import (
	"time"

	"github.com/tomtom215/stylemate/internal/recommend"
	"github.com/tomtom215/stylemate/internal/weather"
)

// Config holds all application configuration loaded from defaults, an
// optional config file and environment variables.
//
// Example:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    logging.Fatal().Err(err).Msg("Failed to load config")
//	}
//	engine, err := recommend.NewEngine(cfg.Recommend, snapshot, resolver, logger)
type Config struct {
	Server    ServerConfig     `koanf:"server"`
	Logging   LoggingConfig    `koanf:"logging"`
	Catalog   CatalogConfig    `koanf:"catalog"`
	Weather   WeatherConfig    `koanf:"weather"`
	Recommend recommend.Config `koanf:"recommend"`
	Database  DatabaseConfig   `koanf:"database"`
	Security  SecurityConfig   `koanf:"security"`
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port        int           `koanf:"port"`
	Host        string        `koanf:"host"`
	Timeout     time.Duration `koanf:"timeout"`
	Environment string        `koanf:"environment"` // "development" or "production"
}

// LoggingConfig holds logging configuration.
//
// Environment Variables:
//   - LOG_LEVEL: trace, debug, info, warn, error (default: info)
//   - LOG_FORMAT: json, console (default: json)
//   - LOG_CALLER: true/false - include caller file:line (default: false)
type LoggingConfig struct {
	// Level is the minimum log level: trace, debug, info, warn, error.
	Level string `koanf:"level"`

	// Format is json (production) or console (development).
	Format string `koanf:"format"`

	// Caller includes caller file and line number in logs.
	Caller bool `koanf:"caller"`
}

// CatalogConfig controls where the catalog is read from and when it is
// reloaded.
type CatalogConfig struct {
	Path string `koanf:"path"`

	// Watch reloads the catalog when the file changes on disk.
	Watch bool `koanf:"watch"`

	// ReloadInterval forces a periodic reload. Zero disables it.
	ReloadInterval time.Duration `koanf:"reload_interval"`

	// Debounce is the quiet period after the last file event before a
	// reload starts. Editors often write a file in several steps.
	Debounce time.Duration `koanf:"debounce"`
}

// WeatherConfig holds live weather provider settings. An empty APIKey
// disables the live provider; lookups then use the static city table.
type WeatherConfig struct {
	BaseURL   string        `koanf:"base_url"`
	APIKey    string        `koanf:"api_key"`
	CityParam string        `koanf:"city_param"`
	KeyParam  string        `koanf:"key_param"`
	Units     string        `koanf:"units"`
	Timeout   time.Duration `koanf:"timeout"`
	RateLimit float64       `koanf:"rate_limit"`
	RateBurst int           `koanf:"rate_burst"`

	Breaker BreakerConfig `koanf:"breaker"`
}

// BreakerConfig holds circuit breaker settings for the weather provider.
type BreakerConfig struct {
	MaxRequests         uint32        `koanf:"max_requests"`
	Interval            time.Duration `koanf:"interval"`
	Timeout             time.Duration `koanf:"timeout"`
	ConsecutiveFailures uint32        `koanf:"consecutive_failures"`
	MinRequests         uint32        `koanf:"min_requests"`
	FailureRatio        float64       `koanf:"failure_ratio"`
}

// ClientConfig converts the settings into a weather client configuration.
func (w WeatherConfig) ClientConfig() weather.Config {
	return weather.Config{
		BaseURL:   w.BaseURL,
		APIKey:    w.APIKey,
		CityParam: w.CityParam,
		KeyParam:  w.KeyParam,
		Units:     w.Units,
		Timeout:   w.Timeout,
		RateLimit: w.RateLimit,
		RateBurst: w.RateBurst,
		Breaker: weather.BreakerConfig{
			MaxRequests:         w.Breaker.MaxRequests,
			Interval:            w.Breaker.Interval,
			OpenTimeout:         w.Breaker.Timeout,
			ConsecutiveFailures: w.Breaker.ConsecutiveFailures,
			MinRequests:         w.Breaker.MinRequests,
			FailureRatio:        w.Breaker.FailureRatio,
		},
	}
}

// DatabaseConfig holds DuckDB settings for the style_items mirror.
type DatabaseConfig struct {
	Enabled   bool   `koanf:"enabled"`
	Path      string `koanf:"path"`
	MaxMemory string `koanf:"max_memory"`
	Threads   int    `koanf:"threads"` // 0 = use NumCPU
}

// SecurityConfig holds CORS and rate limit settings.
type SecurityConfig struct {
	CORSOrigins       []string      `koanf:"cors_origins"`
	RateLimitReqs     int           `koanf:"rate_limit_reqs"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`
	RateLimitDisabled bool          `koanf:"rate_limit_disabled"`
}

// Load reads configuration from defaults, an optional config file and
// environment variables, then validates it.
//
// See LoadWithKoanf() for the underlying implementation.
func Load() (*Config, error) {
	return LoadWithKoanf()
}
