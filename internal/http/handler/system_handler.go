package handler

import (
	"net/http"

	"github.com/imovelhub/backoffice-api/internal/config"
	"github.com/imovelhub/backoffice-api/internal/database"
	"github.com/imovelhub/backoffice-api/internal/domain"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SystemHandler serves the unauthenticated surface: the service banner and
// the health probes.
type SystemHandler struct {
	cfg    *config.Config
	db     *gorm.DB
	logger *zap.Logger
}

func NewSystemHandler(cfg *config.Config, db *gorm.DB, logger *zap.Logger) *SystemHandler {
	return &SystemHandler{cfg: cfg, db: db, logger: logger}
}

// Banner godoc
// @Summary Service banner
// @Description Service name and the available endpoint groups
// @Tags System
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router / [get]
func (h *SystemHandler) Banner(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]any{
		"name":        h.cfg.App.Name,
		"version":     h.cfg.App.Version,
		"environment": h.cfg.App.Environment,
		"endpoints": []string{
			"/api/properties",
			"/api/clients",
			"/api/visits",
			"/api/contracts",
			"/api/dashboard",
			"/health",
			"/health/db",
		},
	})
}

// Health godoc
// @Summary Liveness probe
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func (h *SystemHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": domain.Now(),
	})
}

// HealthDB godoc
// @Summary Readiness probe
// @Description Verifies the database connection
// @Tags System
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health/db [get]
func (h *SystemHandler) HealthDB(w http.ResponseWriter, r *http.Request) {
	if err := database.HealthCheck(h.db); err != nil {
		h.logger.Error("database health check failed", zap.Error(err))
		respondJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status":  "unhealthy",
			"service": "database",
			"error":   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "database",
	})
}
