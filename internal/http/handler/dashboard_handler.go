package handler

import (
	"net/http"

	"github.com/imovelhub/backoffice-api/internal/config"
	"github.com/imovelhub/backoffice-api/internal/service"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	cfg              *config.DashboardConfig
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, cfg *config.DashboardConfig, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService, cfg: cfg, logger: logger}
}

// Metrics godoc
// @Summary Dashboard metrics
// @Description Aggregated snapshot: totals, status and stage histograms, upcoming visits, expiring contracts, monthly revenue
// @Tags Dashboard
// @Produce json
// @Param visit_days query int false "Upcoming visit window in days" default(7)
// @Param contract_days query int false "Expiring contract window in days" default(30)
// @Success 200 {object} domain.DashboardMetrics
// @Failure 401 {object} domain.APIError
// @Failure 500 {object} domain.APIError
// @Security ApiKeyAuth
// @Router /dashboard [get]
func (h *DashboardHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	visitDays := parseDays(r, "visit_days", h.cfg.UpcomingVisitDays)
	contractDays := parseDays(r, "contract_days", h.cfg.ExpiringContractDays)

	metrics, err := h.dashboardService.Metrics(r.Context(), visitDays, contractDays)
	if err != nil {
		h.logger.Error("failed to build dashboard metrics", zap.Error(err))
		respondServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, metrics)
}
