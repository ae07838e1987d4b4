// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package api

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylemate/internal/recommend"
	"github.com/tomtom215/stylemate/internal/validation"
)

// maxRequestBodyBytes caps JSON request bodies.
const maxRequestBodyBytes = 64 << 10

// RecommendRequest is the body of POST /recommend. Field names follow the
// form the web client submits.
type RecommendRequest struct {
	Location string `json:"location" validate:"required,notblank,max=100"`
	Gender   string `json:"gender" validate:"required,notblank,max=50"`
	Theme    string `json:"tema" validate:"required,notblank,max=50"`
	Colour   string `json:"warna" validate:"required,notblank,max=50"`
}

// Query converts the request to an engine query.
func (req RecommendRequest) Query() recommend.Query {
	return recommend.Query{
		Location: req.Location,
		Gender:   req.Gender,
		Theme:    req.Theme,
		Colour:   req.Colour,
	}
}

// WeatherRequest is the body of POST /weather. Either Location or both
// coordinates must be present; Location wins when both are.
type WeatherRequest struct {
	Location string   `json:"location" validate:"max=100"`
	Lat      *float64 `json:"lat" validate:"required_with=Lon,omitempty,latitude"`
	Lon      *float64 `json:"lon" validate:"required_with=Lat,omitempty,longitude"`
}

// validate runs tag validation, then the either-or rule tags cannot express.
func (req *WeatherRequest) validate() *validation.RequestValidationError {
	if verr := validation.ValidateStruct(req); verr != nil {
		return verr
	}
	if strings.TrimSpace(req.Location) == "" && req.Lat == nil {
		return validation.NewFieldError("location", "required_without", "Location or coordinates required")
	}
	return nil
}

// errInvalidJSON marks a body that is present but not decodable.
var errInvalidJSON = errors.New("request body is not valid JSON")

// decodeJSON reads a size-limited JSON body into dst. An empty body leaves
// dst zero so validation reports the missing fields.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return nil
		}
		return errors.Join(errInvalidJSON, err)
	}
	return nil
}
