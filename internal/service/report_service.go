package service

import (
	"context"
	"fmt"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"go.uber.org/zap"
)

// ReportService builds the agenda report consumed by the notifier job and the
// notify CLI: upcoming visits plus contracts about to expire.
type ReportService struct {
	visitRepo    *repository.VisitRepository
	contractRepo *repository.ContractRepository
	logger       *zap.Logger
}

func NewReportService(
	visitRepo *repository.VisitRepository,
	contractRepo *repository.ContractRepository,
	logger *zap.Logger,
) *ReportService {
	return &ReportService{
		visitRepo:    visitRepo,
		contractRepo: contractRepo,
		logger:       logger,
	}
}

// Agenda is a pure read; it records nothing and can run any number of times.
func (s *ReportService) Agenda(ctx context.Context, visitDays, contractDays int) (*domain.AgendaReport, error) {
	visits, err := s.visitRepo.Upcoming(ctx, visitDays)
	if err != nil {
		return nil, fmt.Errorf("failed to load upcoming visits: %w", err)
	}
	contracts, err := s.contractRepo.ExpiringSoon(ctx, contractDays)
	if err != nil {
		return nil, fmt.Errorf("failed to load expiring contracts: %w", err)
	}

	if visits == nil {
		visits = []domain.Visit{}
	}
	if contracts == nil {
		contracts = []domain.Contract{}
	}

	return &domain.AgendaReport{
		GeneratedAt:       domain.Now(),
		UpcomingVisits:    visits,
		ExpiringContracts: contracts,
	}, nil
}
