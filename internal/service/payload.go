package service

import "github.com/imovelhub/backoffice-api/internal/sanitize"

// Payload helpers shared by the entity services. Create paths take a
// sanitized value or a default; update paths copy a field into the column
// update set only when the payload actually supplies a usable value, which
// is what makes updates partial-by-presence.

func stringOr(v any, fallback string) string {
	if s := sanitize.String(v); s != nil {
		return *s
	}
	return fallback
}

func floatOr(v any, fallback float64) float64 {
	if f := sanitize.Float(v); f != nil {
		return *f
	}
	return fallback
}

func intOr(v any, fallback int) int {
	if i := sanitize.Int(v); i != nil {
		return *i
	}
	return fallback
}

func setString(updates map[string]any, payload map[string]any, field string) {
	if s := sanitize.String(payload[field]); s != nil {
		updates[field] = *s
	}
}

func setFloat(updates map[string]any, payload map[string]any, field string) {
	if f := sanitize.Float(payload[field]); f != nil {
		updates[field] = *f
	}
}

func setInt(updates map[string]any, payload map[string]any, field string) {
	if i := sanitize.Int(payload[field]); i != nil {
		updates[field] = *i
	}
}
