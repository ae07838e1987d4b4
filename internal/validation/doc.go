// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

// Package validation provides request validation using go-playground/validator v10.
//
// A single validator instance is built once and shared; it caches struct
// reflection data, so repeated validation of the same request type is cheap.
//
// # Field Names
//
// Error messages name fields by their json tag rather than the Go field
// name, so a missing "tema" in a recommend request reads:
//
//	Field 'tema' is required
//
// # Custom Tags
//
//   - notblank: the string must contain a non-whitespace character
//   - stylecategory: the string must parse as a catalog category
//     (Top, Bottom, Footwear, Accessory; case-insensitive)
//
// # Usage
//
//	type RecommendRequest struct {
//	    Location string `json:"location" validate:"required,notblank,max=100"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, nil)
//	    return
//	}
//
// Checks that span fields and cannot be written as tags build their failure
// with NewFieldError so the response shape stays the same.
package validation
