// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/tomtom215/stylemate/internal/logging"
)

func serveWithRequestID(t *testing.T, header string) (responseID, contextID, correlationID string) {
	t.Helper()

	handler := RequestID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		contextID = GetRequestID(r.Context())
		correlationID = logging.CorrelationIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	if header != "" {
		req.Header.Set(RequestIDHeader, header)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	return rec.Header().Get(RequestIDHeader), contextID, correlationID
}

func TestRequestID_GeneratesNewID(t *testing.T) {
	t.Parallel()

	responseID, contextID, correlationID := serveWithRequestID(t, "")

	if _, err := uuid.Parse(responseID); err != nil {
		t.Errorf("response X-Request-ID %q is not a valid UUID: %v", responseID, err)
	}
	if contextID != responseID {
		t.Errorf("context ID %q does not match response header %q", contextID, responseID)
	}
	if len(correlationID) != 8 {
		t.Errorf("correlation ID = %q, want 8 characters", correlationID)
	}
}

func TestRequestID_PreservesExistingID(t *testing.T) {
	t.Parallel()

	responseID, contextID, _ := serveWithRequestID(t, "upstream-trace-42")

	if responseID != "upstream-trace-42" || contextID != "upstream-trace-42" {
		t.Errorf("IDs = %q/%q, want upstream-trace-42", responseID, contextID)
	}
}

func TestRequestID_RejectsUnsafeUpstreamID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
	}{
		{"contains space", "forged id"},
		{"too long", strings.Repeat("a", maxRequestIDLength+1)},
		{"non ascii", "réquest"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			responseID, _, _ := serveWithRequestID(t, tt.header)
			if responseID == tt.header {
				t.Error("unsafe upstream ID should be replaced")
			}
			if _, err := uuid.Parse(responseID); err != nil {
				t.Errorf("replacement %q is not a UUID", responseID)
			}
		})
	}
}
