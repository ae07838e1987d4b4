// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/stylemate/internal/logging"
)

// Validate checks that required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.validateServer(); err != nil {
		return err
	}

	if err := c.validateCatalog(); err != nil {
		return err
	}

	if err := c.validateWeather(); err != nil {
		return err
	}

	if err := c.Recommend.Validate(); err != nil {
		return err
	}

	if err := c.validateDatabase(); err != nil {
		return err
	}

	if err := c.validateSecurity(); err != nil {
		return err
	}

	return c.validateLogging()
}

// validateServer validates server configuration
func (c *Config) validateServer() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("HTTP_PORT must be between 1 and 65535")
	}
	if c.Server.Timeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive")
	}
	return nil
}

// validateCatalog validates catalog source settings
func (c *Config) validateCatalog() error {
	if strings.TrimSpace(c.Catalog.Path) == "" {
		return fmt.Errorf("CATALOG_PATH is required")
	}
	if c.Catalog.ReloadInterval < 0 {
		return fmt.Errorf("CATALOG_RELOAD_INTERVAL must not be negative")
	}
	if c.Catalog.ReloadInterval > 0 && c.Catalog.ReloadInterval < time.Second {
		return fmt.Errorf("CATALOG_RELOAD_INTERVAL must be at least 1s, got %v", c.Catalog.ReloadInterval)
	}
	if c.Catalog.Debounce < 0 {
		return fmt.Errorf("CATALOG_DEBOUNCE must not be negative")
	}
	return nil
}

// validateWeather validates the weather provider settings. The base URL is
// only checked when a key enables the live provider.
func (c *Config) validateWeather() error {
	if c.Weather.Timeout <= 0 {
		return fmt.Errorf("WEATHER_TIMEOUT must be positive")
	}
	if c.Weather.RateLimit < 0 {
		return fmt.Errorf("WEATHER_RATE_LIMIT must not be negative")
	}
	if c.Weather.RateLimit > 0 && c.Weather.RateBurst < 1 {
		return fmt.Errorf("WEATHER_RATE_BURST must be positive when WEATHER_RATE_LIMIT is set")
	}
	if c.Weather.Breaker.FailureRatio < 0 || c.Weather.Breaker.FailureRatio > 1 {
		return fmt.Errorf("weather.breaker.failure_ratio must be in [0, 1], got %v", c.Weather.Breaker.FailureRatio)
	}

	if c.Weather.APIKey == "" {
		return nil
	}
	if err := validateHTTPURL(c.Weather.BaseURL, "WEATHER_API_URL"); err != nil {
		return fmt.Errorf("WEATHER_API_URL is invalid: %w", err)
	}
	if c.Weather.CityParam == "" || c.Weather.KeyParam == "" {
		return fmt.Errorf("WEATHER_CITY_PARAM and WEATHER_KEY_PARAM must not be empty")
	}
	return nil
}

// validateDatabase validates the DuckDB mirror (only if enabled)
func (c *Config) validateDatabase() error {
	if !c.Database.Enabled {
		return nil
	}
	if c.Database.Path == "" {
		return fmt.Errorf("DUCKDB_PATH is required when MIRROR_ENABLED=true")
	}
	if c.Database.Threads < 0 {
		return fmt.Errorf("DUCKDB_THREADS must not be negative")
	}
	return nil
}

// validateSecurity validates security configuration
func (c *Config) validateSecurity() error {
	if len(c.Security.CORSOrigins) == 0 {
		return fmt.Errorf("CORS_ORIGINS must list at least one origin")
	}
	return c.validateRateLimits()
}

// hasWildcardCORS checks if CORS is configured with wildcard origins
func (c *Config) hasWildcardCORS() bool {
	for _, origin := range c.Security.CORSOrigins {
		if origin == "*" {
			return true
		}
	}
	return false
}

// ShouldWarnAboutCORS returns true if wildcard CORS is configured in
// production, which should be logged at startup.
func (c *Config) ShouldWarnAboutCORS() bool {
	return c.hasWildcardCORS() && c.IsProduction()
}

// Rate limit constants
const (
	minRateLimitRequests = 1           // Minimum 1 request allowed
	maxRateLimitRequests = 100000      // Maximum 100K requests per window
	minRateLimitWindow   = time.Second // Minimum 1 second window
	maxRateLimitWindow   = time.Hour   // Maximum 1 hour window
)

// validateRateLimits validates rate limiting configuration bounds.
func (c *Config) validateRateLimits() error {
	if c.Security.RateLimitDisabled {
		return nil
	}

	if c.Security.RateLimitReqs < minRateLimitRequests || c.Security.RateLimitReqs > maxRateLimitRequests {
		return fmt.Errorf("RATE_LIMIT_REQUESTS must be between %d and %d", minRateLimitRequests, maxRateLimitRequests)
	}
	if c.Security.RateLimitWindow < minRateLimitWindow || c.Security.RateLimitWindow > maxRateLimitWindow {
		return fmt.Errorf("RATE_LIMIT_WINDOW must be between %v and %v", minRateLimitWindow, maxRateLimitWindow)
	}
	return nil
}

// IsProduction returns true if the application is running in production mode.
func (c *Config) IsProduction() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "production" || env == "prod"
}

// IsDevelopment returns true if the application is running in development mode.
func (c *Config) IsDevelopment() bool {
	env := strings.ToLower(c.Server.Environment)
	return env == "" || env == "development" || env == "dev"
}

// validLogFormats defines the allowed log formats
var validLogFormats = map[string]bool{
	"json":    true,
	"console": true,
}

// validateLogging validates logging configuration
func (c *Config) validateLogging() error {
	if !logging.ValidLevel(c.Logging.Level) {
		return fmt.Errorf("LOG_LEVEL must be one of: trace, debug, info, warn, error (got %q)", c.Logging.Level)
	}
	if c.Logging.Format != "" && !validLogFormats[c.Logging.Format] {
		return fmt.Errorf("LOG_FORMAT must be one of: json, console")
	}
	return nil
}
