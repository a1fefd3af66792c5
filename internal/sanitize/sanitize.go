// Package sanitize normalizes raw JSON payload values into typed, optional
// domain values. Request bodies are decoded into map[string]any so that
// partial updates can distinguish "field absent" from "field supplied";
// the helpers here collapse empty strings to absent, which means an empty
// string on update leaves the field unchanged rather than clearing it. That
// asymmetry is intentional and relied upon by the repositories.
package sanitize

import (
	"strconv"
	"strings"

	"github.com/imovelhub/backoffice-api/internal/domain"
)

// String returns the trimmed value, or nil when the value is missing, not a
// string, or blank after trimming.
func String(v any) *string {
	s, ok := v.(string)
	if !ok {
		return nil
	}
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// Float returns the numeric value, or nil when the value is missing, empty,
// or not numeric. JSON numbers and numeric strings are both accepted.
func Float(v any) *float64 {
	switch n := v.(type) {
	case float64:
		return &n
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return nil
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return nil
		}
		return &f
	default:
		return nil
	}
}

// Int returns the integral value, or nil when the value is missing or not
// numeric. Fractional JSON numbers are truncated.
func Int(v any) *int {
	switch n := v.(type) {
	case float64:
		i := int(n)
		return &i
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return nil
		}
		i, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil
		}
		return &i
	default:
		return nil
	}
}

// ID returns a positive row identifier, or false when the value is missing,
// not numeric, or not positive.
func ID(v any) (uint, bool) {
	f := Float(v)
	if f == nil || *f < 1 {
		return 0, false
	}
	return uint(*f), true
}

// RequireFields checks that every named field is present and neither null nor
// an empty string. It returns a ValidationError naming all offenders at once,
// or nil when the payload passes.
func RequireFields(payload map[string]any, fields ...string) *domain.ValidationError {
	var missing []string
	for _, field := range fields {
		v, ok := payload[field]
		if !ok || v == nil || v == "" {
			missing = append(missing, field)
		}
	}
	if len(missing) > 0 {
		return domain.MissingFieldsError(missing)
	}
	return nil
}
