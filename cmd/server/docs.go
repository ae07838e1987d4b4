// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

// General API information for swag. Regenerate docs/ after editing any
// handler annotation:
//
//	swag init -g cmd/server/docs.go -o docs --parseInternal
//
// @title StyleMate API
// @version 1.0
// @description Weather-aware outfit recommendations from a fashion catalog.
// @description
// @description Every response except POST /recommend uses the envelope `{status, data, metadata, error}`. Errors carry `error.code` (BAD_REQUEST, VALIDATION_ERROR, NOT_FOUND, TOO_MANY_REQUESTS, INTERNAL_ERROR, SERVICE_UNAVAILABLE) and a human-readable `error.message`.
// @description
// @description The same routes are also served under the legacy `/api` prefix.
//
// @contact.name GitHub Repository
// @contact.url https://github.com/tomtom215/stylemate/issues
//
// @license.name AGPL-3.0-or-later
// @license.url https://www.gnu.org/licenses/agpl-3.0.html
//
// @host localhost:5000
// @BasePath /
// @schemes http https
//
// @tag.name Recommend
// @tag.description Outfit recommendations per category
//
// @tag.name Weather
// @tag.description Weather and season lookups
//
// @tag.name Core
// @tag.description Health checks, statistics and service information

package main
