package service

import (
	"context"
	"fmt"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"go.uber.org/zap"
)

// revenueMonths caps the monthly revenue rollup. Months without any active or
// completed contracts simply do not appear.
const revenueMonths = 6

// DashboardService aggregates read-only metrics across every repository. It
// never writes.
type DashboardService struct {
	propertyRepo *repository.PropertyRepository
	clientRepo   *repository.ClientRepository
	visitRepo    *repository.VisitRepository
	contractRepo *repository.ContractRepository
	logger       *zap.Logger
}

func NewDashboardService(
	propertyRepo *repository.PropertyRepository,
	clientRepo *repository.ClientRepository,
	visitRepo *repository.VisitRepository,
	contractRepo *repository.ContractRepository,
	logger *zap.Logger,
) *DashboardService {
	return &DashboardService{
		propertyRepo: propertyRepo,
		clientRepo:   clientRepo,
		visitRepo:    visitRepo,
		contractRepo: contractRepo,
		logger:       logger,
	}
}

// Metrics assembles the dashboard snapshot. visitDays bounds the upcoming
// visit window and contractDays the expiring contract window; both are
// clamped to a minimum of one day further down.
func (s *DashboardService) Metrics(ctx context.Context, visitDays, contractDays int) (*domain.DashboardMetrics, error) {
	metrics := &domain.DashboardMetrics{}

	var err error
	if metrics.Totals.Properties, err = s.propertyRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count properties: %w", err)
	}
	if metrics.Totals.Clients, err = s.clientRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count clients: %w", err)
	}
	if metrics.Totals.Visits, err = s.visitRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count visits: %w", err)
	}
	if metrics.Totals.Contracts, err = s.contractRepo.Count(ctx); err != nil {
		return nil, fmt.Errorf("failed to count contracts: %w", err)
	}

	if metrics.PropertiesByStatus, err = s.propertyRepo.StatusSummary(ctx); err != nil {
		return nil, fmt.Errorf("failed to summarize property statuses: %w", err)
	}
	if metrics.ClientsByStage, err = s.clientRepo.StageSummary(ctx); err != nil {
		return nil, fmt.Errorf("failed to summarize client stages: %w", err)
	}

	if metrics.UpcomingVisits, err = s.visitRepo.Upcoming(ctx, visitDays); err != nil {
		return nil, fmt.Errorf("failed to load upcoming visits: %w", err)
	}
	if metrics.ExpiringContracts, err = s.contractRepo.ExpiringSoon(ctx, contractDays); err != nil {
		return nil, fmt.Errorf("failed to load expiring contracts: %w", err)
	}

	if metrics.Revenue, err = s.contractRepo.MonthlyRevenue(ctx, revenueMonths); err != nil {
		return nil, fmt.Errorf("failed to roll up monthly revenue: %w", err)
	}

	return metrics, nil
}
