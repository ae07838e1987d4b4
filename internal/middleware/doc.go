// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

/*
Package middleware provides HTTP middleware shared by the API router.

Key Components:

  - RequestID: UUID request tracking, propagated into the logging context
  - PrometheusMetrics: request count, latency and in-flight gauges

Both are plain func(http.Handler) http.Handler and can be passed straight to
chi's r.Use:

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Route("/api/v1", func(r chi.Router) {
	    r.Use(middleware.PrometheusMetrics)
	    r.Post("/recommend", h.Recommend)
	})

Metrics are labelled with the chi route pattern (e.g. "/api/v1/recommend")
rather than the raw URL path, so unknown paths collapse into a single
"unmatched" series instead of growing label cardinality.
*/
package middleware
