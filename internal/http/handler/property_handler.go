package handler

import (
	"net/http"
	"strconv"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/service"
	"go.uber.org/zap"
)

type PropertyHandler struct {
	propertyService *service.PropertyService
	logger          *zap.Logger
}

func NewPropertyHandler(propertyService *service.PropertyService, logger *zap.Logger) *PropertyHandler {
	return &PropertyHandler{propertyService: propertyService, logger: logger}
}

// List godoc
// @Summary List properties
// @Description Get paginated list of properties with optional filters
// @Tags Properties
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page (max 100)" default(20)
// @Param status query string false "Filter by status"
// @Param city query string false "Filter by city (case-insensitive exact match)"
// @Param min_price query number false "Minimum price"
// @Param max_price query number false "Maximum price"
// @Param order query string false "Sort option" Enums(price_asc, price_desc, newest, oldest)
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.Property}
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /properties [get]
func (h *PropertyHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := &repository.PropertyFilters{
		Status: r.URL.Query().Get("status"),
		City:   r.URL.Query().Get("city"),
		Order:  repository.PropertySortOption(r.URL.Query().Get("order")),
	}
	if raw := r.URL.Query().Get("min_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MinPrice = &v
		}
	}
	if raw := r.URL.Query().Get("max_price"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filters.MaxPrice = &v
		}
	}

	result, err := h.propertyService.List(r.Context(), filters, parsePagination(r))
	if err != nil {
		h.logger.Error("failed to list properties", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Get godoc
// @Summary Get property
// @Description Get a single property by ID
// @Tags Properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} domain.Property
// @Failure 404 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /properties/{id} [get]
func (h *PropertyHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid property id")
		return
	}

	property, err := h.propertyService.Find(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get property", zap.Uint("property_id", id), zap.Error(err))
		respondServiceError(w, err)
		return
	}
	if property == nil {
		respondNotFound(w, "property")
		return
	}

	respondJSON(w, http.StatusOK, property)
}

// Create godoc
// @Summary Create property
// @Description Create a new property; the IMV code is assigned by the server
// @Tags Properties
// @Accept json
// @Produce json
// @Param property body object true "Property payload"
// @Success 201 {object} domain.Property
// @Failure 400 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /properties [post]
func (h *PropertyHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := parseBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid JSON body")
		return
	}

	property, err := h.propertyService.Create(r.Context(), payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, property)
}

// Update godoc
// @Summary Update property
// @Description Partially update a property; only supplied fields change
// @Tags Properties
// @Accept json
// @Produce json
// @Param id path int true "Property ID"
// @Param property body object true "Fields to update"
// @Success 200 {object} domain.Property
// @Failure 404 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /properties/{id} [put]
func (h *PropertyHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid property id")
		return
	}

	payload, err := parseBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid JSON body")
		return
	}

	property, err := h.propertyService.Update(r.Context(), id, payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if property == nil {
		respondNotFound(w, "property")
		return
	}

	respondJSON(w, http.StatusOK, property)
}

// Delete godoc
// @Summary Delete property
// @Description Delete a property; visits and contracts referencing it cascade
// @Tags Properties
// @Produce json
// @Param id path int true "Property ID"
// @Success 200 {object} domain.DeleteResponse
// @Security ApiKeyAuth
// @Router /properties/{id} [delete]
func (h *PropertyHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid property id")
		return
	}

	deleted, err := h.propertyService.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete property", zap.Uint("property_id", id), zap.Error(err))
		respondServiceError(w, err)
		return
	}

	// Deletes are idempotent: a missing row still answers 200, with the
	// flag showing whether anything was removed.
	respondJSON(w, http.StatusOK, domain.DeleteResponse{Deleted: deleted})
}
