package handler

import (
	"net/http"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/service"
	"go.uber.org/zap"
)

type ClientHandler struct {
	clientService *service.ClientService
	logger        *zap.Logger
}

func NewClientHandler(clientService *service.ClientService, logger *zap.Logger) *ClientHandler {
	return &ClientHandler{clientService: clientService, logger: logger}
}

// List godoc
// @Summary List clients
// @Description Get paginated list of clients with optional filters
// @Tags Clients
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page (max 100)" default(20)
// @Param type query string false "Filter by type"
// @Param stage query string false "Filter by pipeline stage"
// @Param search query string false "Case-insensitive substring match on name or email"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.Client}
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /clients [get]
func (h *ClientHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := &repository.ClientFilters{
		Type:   r.URL.Query().Get("type"),
		Stage:  r.URL.Query().Get("stage"),
		Search: r.URL.Query().Get("search"),
	}

	result, err := h.clientService.List(r.Context(), filters, parsePagination(r))
	if err != nil {
		h.logger.Error("failed to list clients", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Get godoc
// @Summary Get client
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} domain.Client
// @Failure 404 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /clients/{id} [get]
func (h *ClientHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid client id")
		return
	}

	client, err := h.clientService.Find(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get client", zap.Uint("client_id", id), zap.Error(err))
		respondServiceError(w, err)
		return
	}
	if client == nil {
		respondNotFound(w, "client")
		return
	}

	respondJSON(w, http.StatusOK, client)
}

// Create godoc
// @Summary Create client
// @Tags Clients
// @Accept json
// @Produce json
// @Param client body object true "Client payload"
// @Success 201 {object} domain.Client
// @Failure 400 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /clients [post]
func (h *ClientHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := parseBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid JSON body")
		return
	}

	client, err := h.clientService.Create(r.Context(), payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, client)
}

// Update godoc
// @Summary Update client
// @Description Partially update a client; only supplied fields change
// @Tags Clients
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param client body object true "Fields to update"
// @Success 200 {object} domain.Client
// @Failure 404 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /clients/{id} [put]
func (h *ClientHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid client id")
		return
	}

	payload, err := parseBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid JSON body")
		return
	}

	client, err := h.clientService.Update(r.Context(), id, payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if client == nil {
		respondNotFound(w, "client")
		return
	}

	respondJSON(w, http.StatusOK, client)
}

// Delete godoc
// @Summary Delete client
// @Description Delete a client; visits and contracts referencing it cascade
// @Tags Clients
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} domain.DeleteResponse
// @Security ApiKeyAuth
// @Router /clients/{id} [delete]
func (h *ClientHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid client id")
		return
	}

	deleted, err := h.clientService.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete client", zap.Uint("client_id", id), zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.DeleteResponse{Deleted: deleted})
}
