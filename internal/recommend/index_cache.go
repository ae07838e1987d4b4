// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package recommend

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"

	"github.com/tomtom215/stylemate/internal/cache"
	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/featureindex"
	"github.com/tomtom215/stylemate/internal/metrics"
)

// indexKey identifies one filtered vector space. The generation pins the
// key to a single catalog snapshot.
type indexKey struct {
	generation uint64
	category   catalog.Category
	gender     string
	theme      string
	colour     string
}

func newIndexKey(generation uint64, c catalog.Category, q Query) indexKey {
	return indexKey{
		generation: generation,
		category:   c,
		gender:     strings.ToLower(q.Gender),
		theme:      strings.ToLower(q.Theme),
		colour:     strings.ToLower(q.Colour),
	}
}

func (k indexKey) String() string {
	return fmt.Sprintf("%d\x00%s\x00%s\x00%s\x00%s", k.generation, k.category, k.gender, k.theme, k.colour)
}

// indexCache is a read-through LRU of filtered indexes with single-flight
// builds. Indexes built for a generation older than live are returned to
// their caller but never stored.
type indexCache struct {
	lru    *cache.LRU[indexKey, *featureindex.Index]
	group  singleflight.Group
	opts   featureindex.Options
	build  func(docs []string, opts featureindex.Options) *featureindex.Index
	logger zerolog.Logger

	mu   sync.Mutex // orders store against invalidate
	live uint64
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func newIndexCache(size int, opts featureindex.Options, logger zerolog.Logger) *indexCache {
	return &indexCache{
		lru:    cache.NewLRU[indexKey, *featureindex.Index](size),
		opts:   opts,
		build:  featureindex.Build,
		logger: logger,
	}
}

// get returns the index for key, building it from docs on a miss. Concurrent
// misses for the same key share one build.
func (c *indexCache) get(key indexKey, docs func() []string) *featureindex.Index {
	if idx, ok := c.lru.Get(key); ok {
		metrics.IndexCacheLookups.WithLabelValues("hit").Inc()
		return idx
	}

	v, _, shared := c.group.Do(key.String(), func() (interface{}, error) {
		start := time.Now()
		idx := c.build(docs(), c.opts)
		elapsed := time.Since(start)
		metrics.IndexBuildDuration.Observe(elapsed.Seconds())

		c.logger.Debug().
			Uint64("generation", key.generation).
			Str("category", string(key.category)).
			Int("documents", idx.Len()).
			Int("vocabulary", idx.VocabularySize()).
			Bool("stored", c.store(key, idx)).
			Dur("elapsed", elapsed).
			Msg("filtered index built")
		return idx, nil
	})

	if shared {
		metrics.IndexCacheLookups.WithLabelValues("shared").Inc()
	} else {
		metrics.IndexCacheLookups.WithLabelValues("miss").Inc()
	}
	return v.(*featureindex.Index)
}

// store caches idx unless an invalidate for a newer generation has already
// run, which happens when a build outlives a reload.
func (c *indexCache) store(key indexKey, idx *featureindex.Index) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if key.generation < c.live {
		return false
	}
	c.lru.Add(key, idx)
	metrics.IndexCacheSize.Set(float64(c.lru.Len()))
	return true
}

// invalidate drops every cached index and refuses later stores for
// generations below generation.
func (c *indexCache) invalidate(generation uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.live = max(c.live, generation)
	c.lru.Clear()
	metrics.IndexCacheInvalidations.Inc()
	metrics.IndexCacheSize.Set(0)
}

func (c *indexCache) stats() cache.Stats {
	return c.lru.Stats()
}
