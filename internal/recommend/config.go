// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package recommend

import (
	"fmt"
	"strings"

	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/featureindex"
)

// FilterMode selects how the per-category filters combine.
type FilterMode string

const (
	// FilterCascade applies gender, usage and colour in order, skipping any
	// step that would empty the selection.
	FilterCascade FilterMode = "cascade"

	// FilterStrict requires gender, usage and colour to all match.
	FilterStrict FilterMode = "strict"
)

// DefaultTopN is the number of items returned per category.
const DefaultTopN = 10

// Config contains all configuration for the recommendation engine.
type Config struct {
	// Categories lists the buckets to build and serve, by name.
	// Valid names: Top, Bottom, Footwear, Accessory.
	Categories []string `koanf:"categories"`

	// FilterMode is "cascade" or "strict".
	FilterMode FilterMode `koanf:"filter_mode"`

	// TopN caps each category's ranked list.
	TopN int `koanf:"top_n"`

	// GenderFallback retries an empty selection with gender-only matching.
	GenderFallback bool `koanf:"gender_fallback"`

	// MaxFeatures caps the vocabulary of each filtered index.
	MaxFeatures int `koanf:"max_features"`

	// TopIncludesAccessories admits accessories with a top-like article
	// type into the Top bucket.
	TopIncludesAccessories bool `koanf:"top_includes_accessories"`

	// IndexCacheSize bounds the number of cached filtered indexes.
	IndexCacheSize int `koanf:"index_cache_size"`
}

// DefaultConfig returns the four-category cascade configuration.
func DefaultConfig() Config {
	return Config{
		Categories:     []string{"Top", "Bottom", "Footwear", "Accessory"},
		FilterMode:     FilterCascade,
		TopN:           DefaultTopN,
		GenderFallback: true,
		MaxFeatures:    featureindex.DefaultMaxFeatures,
		IndexCacheSize: 256,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("recommend.categories must not be empty")
	}
	seen := make(map[catalog.Category]struct{}, len(c.Categories))
	for _, name := range c.Categories {
		cat, err := catalog.ParseCategory(name)
		if err != nil {
			return fmt.Errorf("recommend.categories: %w", err)
		}
		if _, dup := seen[cat]; dup {
			return fmt.Errorf("recommend.categories: duplicate category %q", name)
		}
		seen[cat] = struct{}{}
	}

	switch FilterMode(strings.ToLower(string(c.FilterMode))) {
	case FilterCascade, FilterStrict:
	default:
		return fmt.Errorf("recommend.filter_mode must be cascade or strict, got %q", c.FilterMode)
	}

	if c.TopN < 1 {
		return fmt.Errorf("recommend.top_n must be positive, got %d", c.TopN)
	}
	if c.MaxFeatures < 1 {
		return fmt.Errorf("recommend.max_features must be positive, got %d", c.MaxFeatures)
	}
	if c.IndexCacheSize < 1 {
		return fmt.Errorf("recommend.index_cache_size must be positive, got %d", c.IndexCacheSize)
	}
	return nil
}

// Rules converts the category settings into partition rules.
func (c *Config) Rules() (catalog.Rules, error) {
	rules := catalog.Rules{TopIncludesAccessories: c.TopIncludesAccessories}
	for _, name := range c.Categories {
		cat, err := catalog.ParseCategory(name)
		if err != nil {
			return catalog.Rules{}, err
		}
		rules.Categories = append(rules.Categories, cat)
	}
	return rules, nil
}

func (c *Config) strict() bool {
	return FilterMode(strings.ToLower(string(c.FilterMode))) == FilterStrict
}
