// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/stylemate/internal/logging"
	"github.com/tomtom215/stylemate/internal/validation"
)

// APIResponse is the standardized response wrapper.
type APIResponse struct {
	Status   string      `json:"status"`
	Data     interface{} `json:"data"`
	Metadata Metadata    `json:"metadata"`
	Error    *APIError   `json:"error,omitempty"`
}

// Metadata contains response metadata.
type Metadata struct {
	Timestamp   time.Time `json:"timestamp"`
	RequestID   string    `json:"request_id,omitempty"`
	QueryTimeMS int64     `json:"query_time_ms,omitempty"`
}

// APIError represents an error response.
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error codes for API responses
const (
	ErrCodeBadRequest         = "BAD_REQUEST"
	ErrCodeValidation         = validation.ErrorCode
	ErrCodeNotFound           = "NOT_FOUND"
	ErrCodeMethodNotAllowed   = "METHOD_NOT_ALLOWED"
	ErrCodeTooManyRequests    = "TOO_MANY_REQUESTS"
	ErrCodeInternalError      = "INTERNAL_ERROR"
	ErrCodeServiceUnavailable = "SERVICE_UNAVAILABLE"
)

// internalErrorMessage is the only text a client sees for a 500.
const internalErrorMessage = "Internal server error"

// sanitizeLogValue removes control characters from strings to prevent log injection attacks.
func sanitizeLogValue(s string) string {
	var result strings.Builder
	result.Grow(len(s))
	for _, r := range s {
		if r < 0x20 || r == 0x7F {
			fmt.Fprintf(&result, "\\x%02x", r)
		} else {
			result.WriteRune(r)
		}
	}
	return result.String()
}

// writeJSON encodes body with the given status.
func writeJSON(w http.ResponseWriter, r *http.Request, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")

	data, err := json.Marshal(body)
	if err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("Failed to marshal JSON response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		logging.Ctx(r.Context()).Debug().Err(err).Msg("Failed to write JSON response")
	}
}

// respondJSON sends a success envelope.
func respondJSON(w http.ResponseWriter, r *http.Request, data interface{}, queryTime time.Duration) {
	writeJSON(w, r, http.StatusOK, &APIResponse{
		Status:   "success",
		Data:     data,
		Metadata: newMetadata(r, queryTime),
	})
}

// respondError sends an error envelope. err is logged with the request ID
// and never sent to the client.
func respondError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	if err != nil {
		logging.CtxErr(r.Context(), err).
			Str("code", code).
			Str("path", sanitizeLogValue(r.URL.Path)).
			Msg("API error")
	}

	writeJSON(w, r, status, &APIResponse{
		Status:   "error",
		Metadata: newMetadata(r, 0),
		Error: &APIError{
			Code:    code,
			Message: message,
		},
	})
}

// respondInternalError hides err behind a generic 500.
func respondInternalError(w http.ResponseWriter, r *http.Request, err error) {
	respondError(w, r, http.StatusInternalServerError, ErrCodeInternalError, internalErrorMessage, err)
}

// respondValidationError sends a 400 carrying the validator's field details.
func respondValidationError(w http.ResponseWriter, r *http.Request, verr *validation.RequestValidationError) {
	apiErr := verr.ToAPIError()
	writeJSON(w, r, http.StatusBadRequest, &APIResponse{
		Status:   "error",
		Metadata: newMetadata(r, 0),
		Error: &APIError{
			Code:    apiErr.Code,
			Message: apiErr.Message,
			Details: apiErr.Details,
		},
	})
}

func newMetadata(r *http.Request, queryTime time.Duration) Metadata {
	return Metadata{
		Timestamp:   time.Now().UTC(),
		RequestID:   logging.RequestIDFromContext(r.Context()),
		QueryTimeMS: queryTime.Milliseconds(),
	}
}
