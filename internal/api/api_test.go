// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package api

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylemate/internal/catalog"
	"github.com/tomtom215/stylemate/internal/logging"
	"github.com/tomtom215/stylemate/internal/recommend"
	"github.com/tomtom215/stylemate/internal/weather"
)

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

// testItems yields buckets of 5 tops, 3 bottoms, 3 footwear and 2 accessories.
func testItems() []*catalog.Item {
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

// newTestServer wires a real engine over testItems with the static weather
// table, so Jakarta resolves to 32°C (Summer) and Bogor to a rainy 27°C.
func newTestServer(t *testing.T, mw *ChiMiddleware, opts ...HandlerOption) http.Handler {
	t.Helper()

	logger := logging.NewNopLogger()
	resolver := weather.NewResolver(nil, time.Second, logger)
	snap := catalog.NewSnapshot(testItems(), catalog.DefaultRules())

	engine, err := recommend.NewEngine(recommend.DefaultConfig(), snap, resolver, logger)
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	return NewRouter(NewHandler(engine, resolver, opts...), mw).SetupChi()
}

func doRequest(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("response is not JSON: %v\n%s", err, rec.Body.String())
	}
	return out
}

func errorOf(t *testing.T, body map[string]interface{}) (code, message string) {
	t.Helper()

	e, ok := body["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("response has no error object: %v", body)
	}
	code, _ = e["code"].(string)
	message, _ = e["message"].(string)
	return code, message
}
