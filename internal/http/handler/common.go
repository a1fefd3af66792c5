package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
)

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		enc.SetEscapeHTML(false)
		_ = enc.Encode(data)
	}
}

// respondError sends a standardized JSON error response
func respondError(w http.ResponseWriter, status int, errType, message string) {
	respondJSON(w, status, domain.APIError{
		Type:    errType,
		Message: message,
	})
}

// respondValidationError sends a 422 with one message per offending field.
func respondValidationError(w http.ResponseWriter, err *domain.ValidationError) {
	respondJSON(w, http.StatusUnprocessableEntity, domain.APIError{
		Type:    domain.ErrorTypeValidation,
		Message: "one or more fields failed validation",
		Details: err.Fields,
	})
}

// respondNotFound names the missing resource in the message.
func respondNotFound(w http.ResponseWriter, resource string) {
	respondError(w, http.StatusNotFound, domain.ErrorTypeNotFound, resource+" not found")
}

// respondServiceError maps a service failure onto the wire: validation errors
// become 422 field maps, anything else a 500.
func respondServiceError(w http.ResponseWriter, err error) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		respondValidationError(w, ve)
		return
	}
	respondError(w, http.StatusInternalServerError, domain.ErrorTypeInternal, "internal server error")
}

// parseBody decodes the request body into a generic payload map. A missing or
// empty body decodes to an empty map so updates can degrade to reads.
func parseBody(r *http.Request) (map[string]any, error) {
	payload := map[string]any{}
	if r.Body == nil {
		return payload, nil
	}
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(&payload); err != nil {
		if errors.Is(err, io.EOF) {
			return payload, nil
		}
		return nil, err
	}
	return payload, nil
}

// parsePagination reads page/per_page from the query string and clamps them.
// An absent per_page means the default; a supplied out-of-range value clamps.
func parsePagination(r *http.Request) repository.Pagination {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	perPage := repository.DefaultPerPage
	if raw := r.URL.Query().Get("per_page"); raw != "" {
		perPage, _ = strconv.Atoi(raw)
	}
	return repository.NewPagination(page, perPage)
}

// parseID reads the {id} route parameter. Zero and non-numeric values are
// rejected.
func parseID(r *http.Request) (uint, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// parseDays reads an optional positive day-window override from the query
// string, falling back to the configured default.
func parseDays(r *http.Request, param string, fallback int) int {
	raw := r.URL.Query().Get(param)
	if raw == "" {
		return fallback
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days < 1 {
		return fallback
	}
	return days
}
