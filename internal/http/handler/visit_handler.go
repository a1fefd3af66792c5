package handler

import (
	"net/http"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/service"
	"go.uber.org/zap"
)

type VisitHandler struct {
	visitService *service.VisitService
	logger       *zap.Logger
}

func NewVisitHandler(visitService *service.VisitService, logger *zap.Logger) *VisitHandler {
	return &VisitHandler{visitService: visitService, logger: logger}
}

// List godoc
// @Summary List visits
// @Description Get paginated list of visits with property and client names attached
// @Tags Visits
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page (max 100)" default(20)
// @Param status query string false "Filter by status"
// @Param from query string false "Scheduled-at lower bound (RFC 3339, inclusive)"
// @Param to query string false "Scheduled-at upper bound (RFC 3339, inclusive)"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.Visit}
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /visits [get]
func (h *VisitHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := &repository.VisitFilters{
		Status: r.URL.Query().Get("status"),
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
	}

	result, err := h.visitService.List(r.Context(), filters, parsePagination(r))
	if err != nil {
		h.logger.Error("failed to list visits", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Get godoc
// @Summary Get visit
// @Tags Visits
// @Produce json
// @Param id path int true "Visit ID"
// @Success 200 {object} domain.Visit
// @Failure 404 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /visits/{id} [get]
func (h *VisitHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid visit id")
		return
	}

	visit, err := h.visitService.Find(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get visit", zap.Uint("visit_id", id), zap.Error(err))
		respondServiceError(w, err)
		return
	}
	if visit == nil {
		respondNotFound(w, "visit")
		return
	}

	respondJSON(w, http.StatusOK, visit)
}

// Create godoc
// @Summary Create visit
// @Description Schedule a client at a property; both references are verified
// @Tags Visits
// @Accept json
// @Produce json
// @Param visit body object true "Visit payload"
// @Success 201 {object} domain.Visit
// @Failure 400 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /visits [post]
func (h *VisitHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := parseBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid JSON body")
		return
	}

	visit, err := h.visitService.Create(r.Context(), payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, visit)
}

// Update godoc
// @Summary Update visit
// @Description Partially update a visit; only supplied fields change
// @Tags Visits
// @Accept json
// @Produce json
// @Param id path int true "Visit ID"
// @Param visit body object true "Fields to update"
// @Success 200 {object} domain.Visit
// @Failure 404 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /visits/{id} [put]
func (h *VisitHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid visit id")
		return
	}

	payload, err := parseBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid JSON body")
		return
	}

	visit, err := h.visitService.Update(r.Context(), id, payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if visit == nil {
		respondNotFound(w, "visit")
		return
	}

	respondJSON(w, http.StatusOK, visit)
}

// Delete godoc
// @Summary Delete visit
// @Tags Visits
// @Produce json
// @Param id path int true "Visit ID"
// @Success 200 {object} domain.DeleteResponse
// @Security ApiKeyAuth
// @Router /visits/{id} [delete]
func (h *VisitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid visit id")
		return
	}

	deleted, err := h.visitService.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete visit", zap.Uint("visit_id", id), zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.DeleteResponse{Deleted: deleted})
}
