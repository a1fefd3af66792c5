package domain

import (
	"sort"
	"strings"
)

// Common error types used in API error payloads.
const (
	ErrorTypeValidation       = "validation_error"
	ErrorTypeNotFound         = "not_found"
	ErrorTypeBadRequest       = "bad_request"
	ErrorTypeUnauthorized     = "unauthorized"
	ErrorTypeMethodNotAllowed = "method_not_allowed"
	ErrorTypeInternal         = "internal_error"
)

// APIError is the JSON shape of every error response.
type APIError struct {
	Type    string            `json:"error"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return e.Message
}

// ValidationError carries field-level detail for a rejected payload. Every
// offending field is reported at once, not just the first.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for name := range e.Fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return "validation failed: " + strings.Join(names, ", ")
}

// NewValidationError builds a ValidationError from a field error map.
func NewValidationError(fields map[string]string) *ValidationError {
	return &ValidationError{Fields: fields}
}

// MissingFieldsError reports the given field names as required and absent.
func MissingFieldsError(fields []string) *ValidationError {
	m := make(map[string]string, len(fields))
	for _, f := range fields {
		m[f] = "this field is required"
	}
	return &ValidationError{Fields: m}
}
