// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"

	"github.com/tomtom215/stylemate/internal/recommend"
	"github.com/tomtom215/stylemate/internal/weather"
)

// DefaultConfigPaths lists the paths where config files are searched in order of priority.
// The first file found will be used.
var DefaultConfigPaths = []string{
	"config.yaml",
	"config.yml",
	"/etc/stylemate/config.yaml",
	"/etc/stylemate/config.yml",
}

// ConfigPathEnvVar is the environment variable that can override the config file path.
const ConfigPathEnvVar = "CONFIG_PATH"

// defaultConfig returns a Config struct with all sensible default values.
// These defaults are applied first, then overridden by config file and env vars.
func defaultConfig() *Config {
	wc := weather.DefaultConfig()

	return &Config{
		Server: ServerConfig{
			Port:        5000,
			Host:        "0.0.0.0",
			Timeout:     30 * time.Second,
			Environment: "development",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Catalog: CatalogConfig{
			Path:           "data/StyleMate_5000_rows_shuffled.csv",
			Watch:          true,
			ReloadInterval: 0,
			Debounce:       2 * time.Second,
		},
		Weather: WeatherConfig{
			BaseURL:   wc.BaseURL,
			APIKey:    "", // live provider disabled until a key is set
			CityParam: wc.CityParam,
			KeyParam:  wc.KeyParam,
			Units:     wc.Units,
			Timeout:   wc.Timeout,
			RateLimit: wc.RateLimit,
			RateBurst: wc.RateBurst,
			Breaker: BreakerConfig{
				MaxRequests:         wc.Breaker.MaxRequests,
				Interval:            wc.Breaker.Interval,
				Timeout:             wc.Breaker.OpenTimeout,
				ConsecutiveFailures: wc.Breaker.ConsecutiveFailures,
				MinRequests:         wc.Breaker.MinRequests,
				FailureRatio:        wc.Breaker.FailureRatio,
			},
		},
		Recommend: recommend.DefaultConfig(),
		Database: DatabaseConfig{
			Enabled:   false,
			Path:      "/data/stylemate.duckdb",
			MaxMemory: "512MB",
			Threads:   0,
		},
		Security: SecurityConfig{
			CORSOrigins:       []string{"*"},
			RateLimitReqs:     100,
			RateLimitWindow:   1 * time.Minute,
			RateLimitDisabled: false,
		},
	}
}

// LoadWithKoanf layers built-in defaults, an optional YAML file and the
// environment (highest priority), then validates the result.
func LoadWithKoanf() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(defaultConfig(), "koanf"), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path, ok := findConfigFile(); ok {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	// RECOMMEND_TOP_N -> recommend.top_n, via envMappings.
	if err := k.Load(env.Provider("", ".", envTransformFunc), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	if err := splitListValues(k); err != nil {
		return nil, err
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshal configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// findConfigFile honours CONFIG_PATH first, then the default locations.
func findConfigFile() (string, bool) {
	candidates := DefaultConfigPaths
	if p := os.Getenv(ConfigPathEnvVar); p != "" {
		candidates = append([]string{p}, candidates...)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// listPaths are keys whose env form is a comma separated string.
var listPaths = []string{
	"security.cors_origins",
	"recommend.categories",
}

func splitListValues(k *koanf.Koanf) error {
	for _, path := range listPaths {
		raw, ok := k.Get(path).(string)
		if !ok {
			continue
		}
		var items []string
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		if len(items) == 0 {
			continue
		}
		if err := k.Set(path, items); err != nil {
			return fmt.Errorf("set %s: %w", path, err)
		}
	}
	return nil
}

// envMappings maps lowercased environment variable names to koanf paths.
var envMappings = map[string]string{
	// Server
	"http_port":    "server.port",
	"http_host":    "server.host",
	"http_timeout": "server.timeout",
	"environment":  "server.environment",

	// Logging
	"log_level":  "logging.level",
	"log_format": "logging.format",
	"log_caller": "logging.caller",

	// Catalog
	"catalog_path":            "catalog.path",
	"catalog_watch":           "catalog.watch",
	"catalog_reload_interval": "catalog.reload_interval",
	"catalog_debounce":        "catalog.debounce",

	// Weather provider
	"weather_api_url":                      "weather.base_url",
	"weather_api_key":                      "weather.api_key",
	"openweather_api_key":                  "weather.api_key",
	"weather_city_param":                   "weather.city_param",
	"weather_key_param":                    "weather.key_param",
	"weather_units":                        "weather.units",
	"weather_timeout":                      "weather.timeout",
	"weather_rate_limit":                   "weather.rate_limit",
	"weather_rate_burst":                   "weather.rate_burst",
	"weather_breaker_max_requests":         "weather.breaker.max_requests",
	"weather_breaker_interval":             "weather.breaker.interval",
	"weather_breaker_timeout":              "weather.breaker.timeout",
	"weather_breaker_consecutive_failures": "weather.breaker.consecutive_failures",

	// Recommendation engine
	"recommend_categories":               "recommend.categories",
	"recommend_filter_mode":              "recommend.filter_mode",
	"recommend_top_n":                    "recommend.top_n",
	"recommend_gender_fallback":          "recommend.gender_fallback",
	"recommend_max_features":             "recommend.max_features",
	"recommend_top_includes_accessories": "recommend.top_includes_accessories",
	"recommend_index_cache_size":         "recommend.index_cache_size",

	// Catalog mirror
	"mirror_enabled":    "database.enabled",
	"duckdb_path":       "database.path",
	"duckdb_max_memory": "database.max_memory",
	"duckdb_threads":    "database.threads",

	// Security
	"cors_origins":        "security.cors_origins",
	"rate_limit_requests": "security.rate_limit_reqs",
	"rate_limit_window":   "security.rate_limit_window",
	"disable_rate_limit":  "security.rate_limit_disabled",
}

// envTransformFunc maps an environment variable to its koanf path. Unknown
// variables map to "" and are dropped.
func envTransformFunc(key string) string {
	return envMappings[strings.ToLower(key)]
}
