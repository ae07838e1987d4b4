// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/tomtom215/stylemate/internal/weather"
)

// WeatherResponse is the data of POST /weather.
type WeatherResponse struct {
	Temperature float64 `json:"temperature"`
	Description string  `json:"description"`
	Season      string  `json:"season"`
	Location    string  `json:"location"`
	Source      string  `json:"source"`

	// CoordinatesMatched is set for coordinate lookups; false means the
	// point fell outside every known city and the default city was used.
	CoordinatesMatched *bool `json:"coordinates_matched,omitempty"`
}

// Weather handles POST /weather.
// @Summary Resolve weather and season
// @Description Returns the current conditions for a city, or for the nearest known city to a lat/lon pair, and the season they map to.
// @Description Lookups never fail: when the live provider is unavailable the static table or the default reading answers, and source says which.
// @Tags Weather
// @Accept json
// @Produce json
// @Param request body WeatherRequest true "City name or coordinates"
// @Success 200 {object} APIResponse{data=WeatherResponse} "Weather reading"
// @Failure 400 {object} APIResponse "Neither location nor coordinates given"
// @Failure 429 {object} APIResponse "Rate limit exceeded"
// @Router /api/v1/weather [post]
func (h *Handler) Weather(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	var req WeatherRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, r, http.StatusBadRequest, ErrCodeBadRequest, "Request body must be a JSON object", nil)
		return
	}
	if verr := req.validate(); verr != nil {
		respondValidationError(w, r, verr)
		return
	}

	city := strings.TrimSpace(req.Location)
	var matched *bool
	if city == "" {
		name, ok := weather.LocateCoordinates(*req.Lat, *req.Lon)
		city, matched = name, &ok
	}

	reading := h.weather.Resolve(r.Context(), city)

	respondJSON(w, r, WeatherResponse{
		Temperature:        reading.Temperature,
		Description:        reading.Description,
		Season:             string(reading.Season()),
		Location:           reading.Location,
		Source:             string(reading.Source),
		CoordinatesMatched: matched,
	}, time.Since(start))
}
