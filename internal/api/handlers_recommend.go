// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/tomtom215/stylemate/internal/logging"
	"github.com/tomtom215/stylemate/internal/recommend"
	"github.com/tomtom215/stylemate/internal/validation"
)

// RecommendedItem is one ranked catalog item as clients receive it.
type RecommendedItem struct {
	ID                 int64   `json:"id"`
	ProductDisplayName string  `json:"productDisplayName"`
	Link               string  `json:"link"`
	Season             string  `json:"season"`
	BaseColour         string  `json:"baseColour"`
	Usage              string  `json:"usage"`
	ArticleType        string  `json:"articleType"`
	MasterCategory     string  `json:"masterCategory"`
	SubCategory        string  `json:"subCategory"`
	Year               int     `json:"year"`
	Confidence         float64 `json:"confidence"`
}

// WeatherInfo echoes the conditions a recommendation was made for.
type WeatherInfo struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Source      string  `json:"source"`
}

// CategoryDiagnostic reports mean confidence under the legacy metric names.
// Both values are similarity proxies, not ranking precision or recall.
type CategoryDiagnostic struct {
	Precision float64 `json:"Precision@10"`
	Recall    float64 `json:"Recall@10"`
	Items     int     `json:"items"`
}

// CategoryFilter explains how a category's candidate set was narrowed.
type CategoryFilter struct {
	Candidates     int      `json:"candidates"`
	Skipped        []string `json:"skipped_steps"`
	GenderFallback bool     `json:"gender_fallback"`
	Failed         bool     `json:"failed"`
}

// RecommendResponse is the POST /recommend body. The category lists and the
// fixed fields share the "recommendations" object, so it is built as a map:
// one []RecommendedItem per category key (Atasan, Bawahan, Sepatu,
// Aksesoris) next to weather, season, evaluation and filters.
type RecommendResponse struct {
	Status           string                 `json:"status"`
	Success          bool                   `json:"success"`
	Recommendations  map[string]interface{} `json:"recommendations"`
	ProcessingTimeMS int64                  `json:"processing_time_ms"`
	Metadata         Metadata               `json:"metadata"`
}

// Recommend handles POST /recommend.
// @Summary Recommend an outfit
// @Description Resolves the weather at location, maps it to a season and returns the top ranked items per category for the given gender, theme (tema) and colour (warna).
// @Description Category keys are Atasan (top), Bawahan (bottom), Sepatu (footwear) and Aksesoris (accessory); an empty list means nothing matched.
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body RecommendRequest true "Outfit query"
// @Success 200 {object} RecommendResponse "Recommendations per category"
// @Failure 400 {object} APIResponse "Malformed body or missing field"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Failure 500 {object} APIResponse "Internal server error"
// @Failure 503 {object} APIResponse "Recommendation timed out"
// @Router /api/v1/recommend [post]
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req RecommendRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Request body must be a JSON object", nil)
		return
	}
	if verr := validation.ValidateStruct(&req); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.requestTimeout)
	defer cancel()

	result, err := h.engine.Recommend(ctx, req.Query())
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			respondError(w, r, http.StatusServiceUnavailable, ErrCodeServiceUnavailable, "Recommendation timed out", err)
			return
		}
		respondInternalError(w, r, err)
		return
	}

	elapsed := time.Since(start)
	logging.Ctx(r.Context()).Debug().
		Str("season", string(result.Season)).
		Str("weather_source", string(result.Weather.Source)).
		Dur("duration", elapsed).
		Msg("Recommendations generated")

	writeJSON(w, r, http.StatusOK, &RecommendResponse{
		Status:           "success",
		Success:          true,
		Recommendations:  buildRecommendations(result),
		ProcessingTimeMS: elapsed.Milliseconds(),
		Metadata:         newMetadata(r, elapsed),
	})
}

func buildRecommendations(result *recommend.Result) map[string]interface{} {
	body := make(map[string]interface{}, len(result.Categories)+6)
	diagnostics := make(map[string]CategoryDiagnostic, len(result.Diagnostics))
	filters := make(map[string]CategoryFilter, len(result.Categories))

	for _, cr := range result.Categories {
		key := legacyKey(cr.Category)

		items := make([]RecommendedItem, len(cr.Items))
		for i, s := range cr.Items {
			items[i] = toRecommendedItem(s)
		}
		body[key] = items

		skipped := cr.Skipped
		if skipped == nil {
			skipped = []string{}
		}
		filters[key] = CategoryFilter{
			Candidates:     cr.Candidates,
			Skipped:        skipped,
			GenderFallback: cr.GenderFallback,
			Failed:         cr.Failed,
		}
	}

	for c, d := range result.Diagnostics {
		diagnostics[legacyKey(c)] = CategoryDiagnostic{
			Precision: d.SimilarityPrecisionProxy,
			Recall:    d.SimilarityRecallProxy,
			Items:     d.Items,
		}
	}

	body["Season"] = string(result.Season)
	body["weather_info"] = WeatherInfo{
		Temperature: result.Weather.Temperature,
		Description: result.Weather.Description,
		Location:    result.Weather.Location,
		Source:      string(result.Weather.Source),
	}
	body["total_items"] = result.TotalItems
	body["diagnostics"] = diagnostics
	body["filters"] = filters
	body["catalog_generation"] = result.Generation
	return body
}

func toRecommendedItem(s recommend.Scored) RecommendedItem {
	it := s.Item
	return RecommendedItem{
		ID:                 it.ID,
		ProductDisplayName: it.ProductDisplayName,
		Link:               it.Link,
		Season:             it.Season,
		BaseColour:         it.BaseColour,
		Usage:              it.Usage,
		ArticleType:        it.ArticleType,
		MasterCategory:     it.MasterCategory,
		SubCategory:        it.SubCategory,
		Year:               it.Year,
		Confidence:         s.Confidence,
	}
}
