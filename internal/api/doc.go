// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

/*
Package api provides the HTTP REST API for StyleMate.

Routes are served by chi under /api/v1. The unversioned /api prefix
exposes the same handlers for older clients.

Endpoints:

  - POST /recommend: outfit recommendations for {location, gender, tema, warna}
  - POST /weather: weather and season for {location} or {lat, lon}
  - GET /health: catalog and engine readiness, weather provider state
  - GET /stats: catalog distributions and engine counters
  - GET / (root): service info
  - GET /metrics (root): Prometheus exposition
  - GET /swagger/* (root): Swagger UI over the generated docs package

Handlers carry swag annotations; regenerate docs/ after changing them.

Responses:

Every endpoint except /recommend answers with the APIResponse envelope:

	{"status": "success", "data": {...}, "metadata": {"timestamp": "..."}}
	{"status": "error", "data": null, "metadata": {...}, "error": {"code": "VALIDATION_ERROR", "message": "..."}}

/recommend keeps the body shape existing clients parse. Results sit under
"recommendations", keyed Atasan, Bawahan, Sepatu and Aksesoris, next to
"success" and "processing_time_ms". Errors still use the envelope.

Middleware Stack:

	RequestID -> RealIP -> Recoverer (JSON 500) -> CORS
	  /api, /api/v1: RateLimit (shared) -> security headers -> metrics -> gzip

Thread Safety:

Handlers hold no per-request state. The engine they call swaps catalog
snapshots atomically, so requests racing a reload see either the old or the
new catalog in full.
*/
package api
