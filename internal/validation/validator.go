// StyleMate - Weather-Aware Outfit Recommendation
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/stylemate

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	"github.com/tomtom215/stylemate/internal/catalog"
)

// ErrorCode is the API error code carried by every validation failure.
const ErrorCode = "VALIDATION_ERROR"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// FieldError is one failed check on one request field.
type FieldError struct {
	field   string
	tag     string
	param   string
	message string
}

// Field is the json name of the failing field.
func (e FieldError) Field() string { return e.field }

// Tag is the validate tag that failed, e.g. "required" or "max".
func (e FieldError) Tag() string { return e.tag }

// Param is the tag parameter ("50" for max=50), empty when the tag has none.
func (e FieldError) Param() string { return e.param }

func (e FieldError) Error() string { return e.message }

// RequestValidationError collects every FieldError of one request.
type RequestValidationError struct {
	errors []FieldError
}

// NewFieldError builds a single-field failure for checks that cannot be
// written as struct tags.
func NewFieldError(field, tag, message string) *RequestValidationError {
	return &RequestValidationError{
		errors: []FieldError{{field: field, tag: tag, message: message}},
	}
}

// Errors returns the individual failures in struct field order.
func (ve *RequestValidationError) Errors() []FieldError {
	return ve.errors
}

func (ve *RequestValidationError) Error() string {
	if len(ve.errors) == 0 {
		return "validation failed"
	}
	return ve.joined()
}

func (ve *RequestValidationError) joined() string {
	msgs := make([]string, len(ve.errors))
	for i, fe := range ve.errors {
		msgs[i] = fe.message
	}
	return strings.Join(msgs, "; ")
}

// APIError is the error payload shape used by the api package.
type APIError struct {
	Code    string
	Message string
	Details map[string]interface{}
}

// ToAPIError converts the failures into an API error. A single failure keeps
// its message verbatim so clients matching "Field 'location' is required"
// keep working; several failures are listed under Details["fields"].
func (ve *RequestValidationError) ToAPIError() *APIError {
	apiErr := &APIError{Code: ErrorCode, Message: "Validation failed"}

	switch len(ve.errors) {
	case 0:
	case 1:
		fe := ve.errors[0]
		apiErr.Message = fe.message
		apiErr.Details = map[string]interface{}{"field": fe.field, "tag": fe.tag}
	default:
		fields := make([]map[string]interface{}, len(ve.errors))
		for i, fe := range ve.errors {
			fields[i] = map[string]interface{}{
				"field":   fe.field,
				"tag":     fe.tag,
				"message": fe.message,
			}
		}
		apiErr.Message = ve.joined()
		apiErr.Details = map[string]interface{}{"fields": fields}
	}
	return apiErr
}

// GetValidator returns the shared validator. Field names come from json tags
// and two custom tags are registered: notblank and stylecategory.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonFieldName)

		// Registration only fails on an empty tag or nil func.
		_ = v.RegisterValidation("notblank", validators.NotBlank)
		_ = v.RegisterValidation("stylecategory", isStyleCategory)

		validate = v
	})
	return validate
}

func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return fld.Name
	}
	return name
}

func isStyleCategory(fl validator.FieldLevel) bool {
	_, err := catalog.ParseCategory(fl.Field().String())
	return err == nil
}

// ValidateStruct runs the struct's validate tags. It returns nil when every
// check passes.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return NewFieldError("unknown", "unknown", err.Error())
	}

	out := make([]FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = FieldError{
			field:   fe.Field(),
			tag:     fe.Tag(),
			param:   fe.Param(),
			message: describe(fe),
		}
	}
	return &RequestValidationError{errors: out}
}

// describe renders a client-facing message for a failed tag.
func describe(fe validator.FieldError) string {
	field, param := fe.Field(), strings.ToLower(fe.Param())
	unit := ""
	if fe.Kind() == reflect.String {
		unit = " characters"
	}

	switch fe.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("Field '%s' is required", field)
	case "latitude":
		return fmt.Sprintf("Field '%s' must be a valid latitude (-90 to 90)", field)
	case "longitude":
		return fmt.Sprintf("Field '%s' must be a valid longitude (-180 to 180)", field)
	case "stylecategory":
		return fmt.Sprintf("Field '%s' must be one of: %s", field, strings.Join(categoryNames(), ", "))
	case "oneof":
		return fmt.Sprintf("Field '%s' must be one of: %s", field, param)
	case "required_with":
		return fmt.Sprintf("Field '%s' is required together with %s", field, param)
	case "gte":
		return fmt.Sprintf("Field '%s' must be greater than or equal to %s", field, param)
	case "lte":
		return fmt.Sprintf("Field '%s' must be less than or equal to %s", field, param)
	case "min":
		return fmt.Sprintf("Field '%s' must be at least %s%s", field, param, unit)
	case "max":
		return fmt.Sprintf("Field '%s' must be at most %s%s", field, param, unit)
	default:
		return fmt.Sprintf("Field '%s' failed %s validation", field, fe.Tag())
	}
}

func categoryNames() []string {
	names := make([]string, len(catalog.AllCategories))
	for i, c := range catalog.AllCategories {
		names[i] = string(c)
	}
	return names
}
