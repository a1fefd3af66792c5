package handler

import (
	"net/http"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/service"
	"go.uber.org/zap"
)

type ContractHandler struct {
	contractService *service.ContractService
	logger          *zap.Logger
}

func NewContractHandler(contractService *service.ContractService, logger *zap.Logger) *ContractHandler {
	return &ContractHandler{contractService: contractService, logger: logger}
}

// List godoc
// @Summary List contracts
// @Description Get paginated list of contracts, newest start date first
// @Tags Contracts
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Items per page (max 100)" default(20)
// @Param status query string false "Filter by status"
// @Param type query string false "Filter by type"
// @Success 200 {object} domain.PaginatedResponse{data=[]domain.Contract}
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /contracts [get]
func (h *ContractHandler) List(w http.ResponseWriter, r *http.Request) {
	filters := &repository.ContractFilters{
		Status: r.URL.Query().Get("status"),
		Type:   r.URL.Query().Get("type"),
	}

	result, err := h.contractService.List(r.Context(), filters, parsePagination(r))
	if err != nil {
		h.logger.Error("failed to list contracts", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// Get godoc
// @Summary Get contract
// @Tags Contracts
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} domain.Contract
// @Failure 404 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /contracts/{id} [get]
func (h *ContractHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid contract id")
		return
	}

	contract, err := h.contractService.Find(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to get contract", zap.Uint("contract_id", id), zap.Error(err))
		respondServiceError(w, err)
		return
	}
	if contract == nil {
		respondNotFound(w, "contract")
		return
	}

	respondJSON(w, http.StatusOK, contract)
}

// Create godoc
// @Summary Create contract
// @Description Bind a client to a property; both references are verified
// @Tags Contracts
// @Accept json
// @Produce json
// @Param contract body object true "Contract payload"
// @Success 201 {object} domain.Contract
// @Failure 400 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /contracts [post]
func (h *ContractHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := parseBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid JSON body")
		return
	}

	contract, err := h.contractService.Create(r.Context(), payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, contract)
}

// Update godoc
// @Summary Update contract
// @Description Partially update a contract; only supplied fields change
// @Tags Contracts
// @Accept json
// @Produce json
// @Param id path int true "Contract ID"
// @Param contract body object true "Fields to update"
// @Success 200 {object} domain.Contract
// @Failure 404 {object} domain.APIError
// @Failure 422 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /contracts/{id} [put]
func (h *ContractHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid contract id")
		return
	}

	payload, err := parseBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid JSON body")
		return
	}

	contract, err := h.contractService.Update(r.Context(), id, payload)
	if err != nil {
		respondServiceError(w, err)
		return
	}
	if contract == nil {
		respondNotFound(w, "contract")
		return
	}

	respondJSON(w, http.StatusOK, contract)
}

// Delete godoc
// @Summary Delete contract
// @Tags Contracts
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} domain.DeleteResponse
// @Security ApiKeyAuth
// @Router /contracts/{id} [delete]
func (h *ContractHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r)
	if !ok {
		respondError(w, http.StatusBadRequest, domain.ErrorTypeBadRequest, "invalid contract id")
		return
	}

	deleted, err := h.contractService.Delete(r.Context(), id)
	if err != nil {
		h.logger.Error("failed to delete contract", zap.Uint("contract_id", id), zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, domain.DeleteResponse{Deleted: deleted})
}
