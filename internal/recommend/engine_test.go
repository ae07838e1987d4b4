// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package recommend

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/featureindex"
	"github.com/tomtom215/stylemate/internal/logging"
	"github.com/tomtom215/stylemate/internal/weather"
)

// fixedWeather always returns the same reading.
type fixedWeather struct {
	temp float64
	desc string
}

func (f fixedWeather) Resolve(_ context.Context, city string) weather.Reading {
	return weather.Reading{Temperature: f.temp, Description: f.desc, Location: city, Source: weather.SourceLive}
}

// failingProvider is a live provider that is always down.
type failingProvider struct{}

func (failingProvider) Current(context.Context, string) (weather.Reading, error) {
	return weather.Reading{}, &weather.ProviderError{Reason: weather.ReasonStatus, StatusCode: 502, Err: weather.ErrProviderUnavailable}
}

var mildWeather = fixedWeather{temp: 25, desc: "clear sky"}

func newItem(id int64, gender, master, sub, article, colour, usage string) *catalog.Item {
	return &catalog.Item{
		ID:                 id,
		Gender:             gender,
		MasterCategory:     master,
		SubCategory:        sub,
		ArticleType:        article,
		BaseColour:         colour,
		Season:             "Summer",
		Year:               2012,
		Usage:              usage,
		ProductDisplayName: fmt.Sprintf("Item %d", id),
		Link:               fmt.Sprintf("https://example.com/items/%d", id),
	}
}

func testCatalog() []*catalog.Item {
	return []*catalog.Item{
		newItem(1, "Men", "Apparel", "Topwear", "Shirts", "Blue", "Casual"),
		newItem(2, "Men", "Apparel", "Topwear", "Tshirts", "Black", "Casual"),
		newItem(3, "Women", "Apparel", "Topwear", "Kurtas", "White", "Ethnic"),
		newItem(4, "Men", "Apparel", "Topwear", "Shirts", "White", "Formal"),
		newItem(5, "Unisex", "Apparel", "Topwear", "Sweatshirts", "Grey", "Casual"),
		newItem(10, "Men", "Apparel", "Bottomwear", "Jeans", "Black", "Casual"),
		newItem(11, "Men", "Apparel", "Bottomwear", "Trousers", "Grey", "Formal"),
		newItem(12, "Women", "Apparel", "Bottomwear", "Skirts", "Blue", "Casual"),
		newItem(20, "Men", "Footwear", "Shoes", "Casual Shoes", "Blue", "Casual"),
		newItem(21, "Men", "Footwear", "Shoes", "Formal Shoes", "Black", "Formal"),
		newItem(22, "Women", "Footwear", "Sandal", "Sandals", "Brown", "Casual"),
		newItem(30, "Men", "Accessories", "Watches", "Watches", "Silver", "Casual"),
		newItem(31, "Unisex", "Accessories", "Bags", "Backpacks", "Blue", "Casual"),
	}
}

func newTestEngine(t *testing.T, cfg Config, items []*catalog.Item, resolver WeatherResolver) *Engine {
	t.Helper()
	rules, err := cfg.Rules()
	if err != nil {
		t.Fatalf("Rules() error = %v", err)
	}
	e, err := NewEngine(cfg, catalog.NewSnapshot(items, rules), resolver, logging.NewNopLogger())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	return e
}

func ids(items []Scored) []int64 {
	out := make([]int64, len(items))
	for i, s := range items {
		out[i] = s.Item.ID
	}
	return out
}

func TestNewEngine_NoCategories(t *testing.T) {
	t.Parallel()

	if _, err := NewEngine(DefaultConfig(), nil, mildWeather, logging.NewNopLogger()); !errors.Is(err, ErrNoCategories) {
		t.Errorf("nil snapshot: error = %v, want ErrNoCategories", err)
	}

	empty := catalog.NewSnapshot(testCatalog(), catalog.Rules{})
	if _, err := NewEngine(DefaultConfig(), empty, mildWeather, logging.NewNopLogger()); !errors.Is(err, ErrNoCategories) {
		t.Errorf("snapshot without buckets: error = %v, want ErrNoCategories", err)
	}
}

func TestNewEngine_InvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.TopN = 0
	snap := catalog.NewSnapshot(testCatalog(), catalog.DefaultRules())
	if _, err := NewEngine(cfg, snap, mildWeather, logging.NewNopLogger()); err == nil {
		t.Error("expected error for invalid config")
	}
}

func TestRecommend_SingleMatchingTop(t *testing.T) {
	t.Parallel()

	items := []*catalog.Item{newItem(1, "Men", "Apparel", "Topwear", "Shirt", "Blue", "Casual")}
	e := newTestEngine(t, DefaultConfig(), items, mildWeather)

	res, err := e.Recommend(context.Background(), Query{Location: "Jakarta", Gender: "Men", Theme: "Casual", Colour: "Blue"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	top := res.Category(catalog.CategoryTop)
	if top == nil || len(top.Items) != 1 {
		t.Fatalf("Top result = %+v, want one item", top)
	}
	if top.Items[0].Item.ID != 1 || top.Items[0].Confidence <= 0 {
		t.Errorf("Top[0] = %+v, want item 1 with positive confidence", top.Items[0])
	}
}

func TestRecommend_ColourStepSkipped(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), testCatalog(), mildWeather)

	// No men's casual bottoms come in green; gender and usage still apply.
	res, err := e.Recommend(context.Background(), Query{Location: "Bandung", Gender: "Men", Theme: "Casual", Colour: "Green"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	bottom := res.Category(catalog.CategoryBottom)
	if bottom == nil || len(bottom.Items) == 0 {
		t.Fatal("Bottom result should not be empty")
	}
	if !reflect.DeepEqual(bottom.Skipped, []string{StepColour}) {
		t.Errorf("Skipped = %v, want [colour]", bottom.Skipped)
	}
	if got := ids(bottom.Items); !reflect.DeepEqual(got, []int64{10}) {
		t.Errorf("Bottom ids = %v, want [10]", got)
	}
}

func TestRecommend_UnknownCityProviderDown(t *testing.T) {
	t.Parallel()

	resolver := weather.NewResolver(failingProvider{}, time.Second, logging.NewNopLogger())
	e := newTestEngine(t, DefaultConfig(), testCatalog(), resolver)

	res, err := e.Recommend(context.Background(), Query{Location: "Zzyxville", Gender: "Men", Theme: "Casual", Colour: "Blue"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if res.Weather.Temperature != 28 || res.Weather.Description != "pleasant weather" {
		t.Errorf("Weather = %+v, want default reading", res.Weather)
	}
	if res.Season != weather.Spring {
		t.Errorf("Season = %s, want Spring", res.Season)
	}
	if top := res.Category(catalog.CategoryTop); top == nil || len(top.Items) == 0 {
		t.Error("request should still produce recommendations")
	}
}

func TestRecommend_EmptyAccessoryBucket(t *testing.T) {
	t.Parallel()

	var items []*catalog.Item
	for _, it := range testCatalog() {
		if it.MasterCategory != "Accessories" {
			items = append(items, it)
		}
	}
	e := newTestEngine(t, DefaultConfig(), items, mildWeather)

	res, err := e.Recommend(context.Background(), Query{Location: "Medan", Gender: "Women", Theme: "Casual", Colour: "Blue"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	acc := res.Category(catalog.CategoryAccessory)
	if acc == nil {
		t.Fatal("Accessory category missing from result")
	}
	if acc.Items == nil || len(acc.Items) != 0 {
		t.Errorf("Accessory items = %v, want empty non-nil list", acc.Items)
	}
	for _, c := range []catalog.Category{catalog.CategoryTop, catalog.CategoryBottom, catalog.CategoryFootwear} {
		if cr := res.Category(c); cr == nil || len(cr.Items) == 0 {
			t.Errorf("%s should be unaffected", c)
		}
	}
	if _, ok := res.Diagnostics[catalog.CategoryAccessory]; ok {
		t.Error("empty category should have no diagnostics entry")
	}
}

func TestRecommend_OrderedAndBounded(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.TopN = 3
	e := newTestEngine(t, cfg, testCatalog(), fixedWeather{temp: 33, desc: "sunny"})

	queries := []Query{
		{Location: "Jakarta", Gender: "Men", Theme: "Casual", Colour: "Blue"},
		{Location: "Jakarta", Gender: "Women", Theme: "Ethnic", Colour: "White"},
		{Location: "Jakarta", Gender: "Men", Theme: "Party", Colour: "Gold"},
		{Location: "Jakarta", Gender: "Kids", Theme: "Sports", Colour: "Red"},
	}

	for _, q := range queries {
		res, err := e.Recommend(context.Background(), q)
		if err != nil {
			t.Fatalf("Recommend(%+v) error = %v", q, err)
		}
		if res.Season != weather.Summer {
			t.Errorf("Season = %s, want Summer", res.Season)
		}
		if res.TotalItems != len(testCatalog()) {
			t.Errorf("TotalItems = %d, want %d", res.TotalItems, len(testCatalog()))
		}
		for _, cr := range res.Categories {
			if len(cr.Items) > cfg.TopN {
				t.Errorf("%s: %d items exceeds top_n %d", cr.Category, len(cr.Items), cfg.TopN)
			}
			for i, s := range cr.Items {
				if s.Confidence < 0 || s.Confidence > 1 {
					t.Errorf("%s[%d] confidence %v outside [0,1]", cr.Category, i, s.Confidence)
				}
				if i > 0 && s.Confidence > cr.Items[i-1].Confidence {
					t.Errorf("%s not sorted: %v > %v at %d", cr.Category, s.Confidence, cr.Items[i-1].Confidence, i)
				}
			}
		}
	}
}

func TestRecommend_TiesKeepCatalogOrder(t *testing.T) {
	t.Parallel()

	var items []*catalog.Item
	for id := int64(1); id <= 6; id++ {
		items = append(items, newItem(id, "Men", "Apparel", "Topwear", "Shirts", "Blue", "Casual"))
	}
	cfg := DefaultConfig()
	cfg.TopN = 4
	e := newTestEngine(t, cfg, items, mildWeather)

	res, err := e.Recommend(context.Background(), Query{Location: "Solo", Gender: "Men", Theme: "Casual", Colour: "Blue"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got := ids(res.Category(catalog.CategoryTop).Items); !reflect.DeepEqual(got, []int64{1, 2, 3, 4}) {
		t.Errorf("tied items = %v, want first four in catalog order", got)
	}
}

func TestRecommend_Idempotent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), testCatalog(), mildWeather)
	q := Query{Location: "Bekasi", Gender: "Men", Theme: "Casual", Colour: "Black"}

	first, err := e.Recommend(context.Background(), q)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, err := e.Recommend(context.Background(), q)
		if err != nil {
			t.Fatalf("Recommend() error = %v", err)
		}
		if !reflect.DeepEqual(first.Categories, again.Categories) {
			t.Fatalf("run %d differs from the first run", i)
		}
	}

	if stats := e.Stats(); stats.IndexCache.Hits == 0 {
		t.Errorf("repeated queries should hit the index cache, stats = %+v", stats.IndexCache)
	}
}

func TestRecommend_CaseInsensitiveQuery(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), testCatalog(), mildWeather)

	lower, err := e.Recommend(context.Background(), Query{Location: "Bogor", Gender: "men", Theme: "casual", Colour: "blue"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	mixed, err := e.Recommend(context.Background(), Query{Location: "Bogor", Gender: " MEN ", Theme: "Casual", Colour: "BLUE"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if !reflect.DeepEqual(lower.Categories, mixed.Categories) {
		t.Error("query case or padding changed the result")
	}
}

func TestRecommend_Diagnostics(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), testCatalog(), mildWeather)
	res, err := e.Recommend(context.Background(), Query{Location: "Malang", Gender: "Men", Theme: "Casual", Colour: "Blue"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	for _, cr := range res.Categories {
		if len(cr.Items) == 0 {
			continue
		}
		var sum float64
		for _, s := range cr.Items {
			sum += s.Confidence
		}
		want := sum / float64(len(cr.Items))

		d, ok := res.Diagnostics[cr.Category]
		if !ok {
			t.Errorf("missing diagnostics for %s", cr.Category)
			continue
		}
		if d.SimilarityPrecisionProxy != want || d.SimilarityRecallProxy != want || d.Items != len(cr.Items) {
			t.Errorf("%s diagnostics = %+v, want mean %v over %d", cr.Category, d, want, len(cr.Items))
		}
	}
}

func TestRecommend_StrictMode(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.FilterMode = FilterStrict
	e := newTestEngine(t, cfg, testCatalog(), mildWeather)

	q := Query{Location: "Depok", Gender: "Men", Theme: "Casual", Colour: "Green"}
	res, err := e.Recommend(context.Background(), q)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	top := res.Category(catalog.CategoryTop)
	if !top.GenderFallback {
		t.Error("strict mode with no full match should fall back to gender")
	}
	if got := ids(top.Items); len(got) != 4 {
		t.Errorf("gender fallback ids = %v, want the four men's and unisex tops", got)
	}

	cfg.GenderFallback = false
	noFallback := newTestEngine(t, cfg, testCatalog(), mildWeather)
	res, err = noFallback.Recommend(context.Background(), q)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	for _, cr := range res.Categories {
		if len(cr.Items) != 0 {
			t.Errorf("%s should be empty without gender fallback, got %v", cr.Category, ids(cr.Items))
		}
	}
}

func TestRecommend_CategoryPanicIsContained(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), testCatalog(), mildWeather)
	e.indexes.build = func(docs []string, opts featureindex.Options) *featureindex.Index {
		for _, d := range docs {
			if strings.HasPrefix(d, "footwear") {
				panic("index build exploded")
			}
		}
		return featureindex.Build(docs, opts)
	}

	res, err := e.Recommend(context.Background(), Query{Location: "Semarang", Gender: "Men", Theme: "Casual", Colour: "Blue"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	fw := res.Category(catalog.CategoryFootwear)
	if !fw.Failed || len(fw.Items) != 0 {
		t.Errorf("Footwear = %+v, want failed and empty", fw)
	}
	for _, c := range []catalog.Category{catalog.CategoryTop, catalog.CategoryBottom, catalog.CategoryAccessory} {
		if cr := res.Category(c); cr.Failed || len(cr.Items) == 0 {
			t.Errorf("%s should be unaffected by the footwear failure", c)
		}
	}
}

func TestRecommend_CanceledContext(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), testCatalog(), mildWeather)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := e.Recommend(ctx, Query{Location: "Jakarta", Gender: "Men", Theme: "Casual", Colour: "Blue"}); !errors.Is(err, context.Canceled) {
		t.Errorf("error = %v, want context.Canceled", err)
	}
}

func TestRecommend_ConfiguredCategories(t *testing.T) {
	t.Parallel()

	cfg := DefaultConfig()
	cfg.Categories = []string{"Top", "Bottom", "Footwear"}
	e := newTestEngine(t, cfg, testCatalog(), mildWeather)

	res, err := e.Recommend(context.Background(), Query{Location: "Jakarta", Gender: "Men", Theme: "Casual", Colour: "Blue"})
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if len(res.Categories) != 3 {
		t.Fatalf("got %d categories, want 3", len(res.Categories))
	}
	if res.Category(catalog.CategoryAccessory) != nil {
		t.Error("Accessory should not be served")
	}
}

func TestEngine_Reload(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), testCatalog(), mildWeather)
	q := Query{Location: "Jakarta", Gender: "Men", Theme: "Casual", Colour: "Blue"}

	before, err := e.Recommend(context.Background(), q)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	replacement := []*catalog.Item{newItem(99, "Men", "Apparel", "Topwear", "Shirts", "Blue", "Casual")}
	if err := e.Reload(catalog.NewSnapshot(replacement, catalog.DefaultRules())); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}

	stats := e.Stats()
	if stats.Generation != before.Generation+1 {
		t.Errorf("Generation = %d, want %d", stats.Generation, before.Generation+1)
	}
	if stats.Items != 1 || stats.Reloads != 1 {
		t.Errorf("Stats = %+v, want 1 item after 1 reload", stats)
	}
	if stats.IndexCache.Size != 0 {
		t.Errorf("index cache size = %d after reload, want 0", stats.IndexCache.Size)
	}

	after, err := e.Recommend(context.Background(), q)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}
	if got := ids(after.Category(catalog.CategoryTop).Items); !reflect.DeepEqual(got, []int64{99}) {
		t.Errorf("Top after reload = %v, want [99]", got)
	}

	if err := e.Reload(nil); !errors.Is(err, ErrNoCategories) {
		t.Errorf("Reload(nil) error = %v, want ErrNoCategories", err)
	}
	if e.Stats().Items != 1 {
		t.Error("failed reload must keep the previous snapshot")
	}
}

func TestEngine_ConcurrentRequests(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), testCatalog(), mildWeather)
	q := Query{Location: "Surabaya", Gender: "Women", Theme: "Casual", Colour: "Blue"}

	want, err := e.Recommend(context.Background(), q)
	if err != nil {
		t.Fatalf("Recommend() error = %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan error, 32)
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := e.Recommend(context.Background(), q)
			if err != nil {
				errs <- err
				return
			}
			if !reflect.DeepEqual(got.Categories, want.Categories) {
				errs <- fmt.Errorf("concurrent result differs")
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestRank(t *testing.T) {
	t.Parallel()

	b := &catalog.Bucket{Items: []*catalog.Item{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}}}
	positions := []int{0, 1, 2, 4}
	scores := []float64{0.5, 0.9, 0.5, 0.9}

	got := ids(rank(b, positions, scores, 10))
	if want := []int64{2, 5, 1, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("rank() = %v, want %v", got, want)
	}

	if got := rank(b, positions, scores, 2); len(got) != 2 {
		t.Errorf("rank() with topN 2 returned %d items", len(got))
	}
}

func TestEngine_ReloadDuringRequestsLeavesNoStaleIndexes(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, DefaultConfig(), testCatalog(), mildWeather)
	q := Query{Location: "Jakarta", Gender: "Men", Theme: "Casual", Colour: "Blue"}

	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
				}
				if _, err := e.Recommend(context.Background(), q); err != nil {
					t.Errorf("Recommend() error = %v", err)
					return
				}
			}
		}()
	}

	for i := 0; i < 20; i++ {
		if err := e.Reload(catalog.NewSnapshot(testCatalog(), catalog.DefaultRules())); err != nil {
			t.Fatalf("Reload() error = %v", err)
		}
	}
	close(stop)
	wg.Wait()

	// One query shape yields at most one index per category, all for the
	// generation installed last.
	stats := e.Stats()
	if stats.IndexCache.Size > len(stats.Categories) {
		t.Errorf("index cache size = %d, want at most %d live entries", stats.IndexCache.Size, len(stats.Categories))
	}
}
