package service

import (
	"context"
	"fmt"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/sanitize"
	"go.uber.org/zap"
)

type ContractService struct {
	contractRepo *repository.ContractRepository
	propertyRepo *repository.PropertyRepository
	clientRepo   *repository.ClientRepository
	logger       *zap.Logger
}

func NewContractService(
	contractRepo *repository.ContractRepository,
	propertyRepo *repository.PropertyRepository,
	clientRepo *repository.ClientRepository,
	logger *zap.Logger,
) *ContractService {
	return &ContractService{
		contractRepo: contractRepo,
		propertyRepo: propertyRepo,
		clientRepo:   clientRepo,
		logger:       logger,
	}
}

func (s *ContractService) List(ctx context.Context, filters *repository.ContractFilters, page repository.Pagination) (*domain.PaginatedResponse, error) {
	contracts, total, err := s.contractRepo.List(ctx, filters, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list contracts: %w", err)
	}
	return &domain.PaginatedResponse{Data: contracts, Meta: page.Meta(total)}, nil
}

func (s *ContractService) Find(ctx context.Context, id uint) (*domain.Contract, error) {
	return s.contractRepo.Find(ctx, id)
}

func (s *ContractService) Create(ctx context.Context, payload map[string]any) (*domain.Contract, error) {
	errs := fieldErrors{}
	errs.merge(sanitize.RequireFields(payload, "property_id", "client_id", "type", "start_date", "value"))

	propertyID, hasProperty := sanitize.ID(payload["property_id"])
	if _, supplied := payload["property_id"]; supplied && !hasProperty {
		errs["property_id"] = "must be a positive integer"
	}
	clientID, hasClient := sanitize.ID(payload["client_id"])
	if _, supplied := payload["client_id"]; supplied && !hasClient {
		errs["client_id"] = "must be a positive integer"
	}
	if startDate := sanitize.String(payload["start_date"]); startDate != nil {
		errs.checkVar("start_date", *startDate, dateTag, "must be a date in YYYY-MM-DD format")
	}
	endDate := sanitize.String(payload["end_date"])
	if endDate != nil {
		errs.checkVar("end_date", *endDate, dateTag, "must be a date in YYYY-MM-DD format")
	}
	if err := errs.asError(); err != nil {
		return nil, err
	}

	if err := s.checkReferences(ctx, errs, &propertyID, &clientID); err != nil {
		return nil, err
	}
	if err := errs.asError(); err != nil {
		return nil, err
	}

	now := domain.Now()
	contract := &domain.Contract{
		PropertyID: propertyID,
		ClientID:   clientID,
		Type:       stringOr(payload["type"], string(domain.ContractTypeSale)),
		StartDate:  stringOr(payload["start_date"], ""),
		EndDate:    endDate,
		Value:      floatOr(payload["value"], 0),
		Status:     stringOr(payload["status"], string(domain.ContractStatusDraft)),
		Notes:      stringOr(payload["notes"], ""),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.contractRepo.Create(ctx, contract); err != nil {
		return nil, fmt.Errorf("failed to create contract: %w", err)
	}

	s.logger.Info("contract created",
		zap.Uint("contract_id", contract.ID),
		zap.Uint("property_id", contract.PropertyID),
		zap.Uint("client_id", contract.ClientID),
		zap.String("type", contract.Type),
	)

	return s.contractRepo.Find(ctx, contract.ID)
}

func (s *ContractService) Update(ctx context.Context, id uint, payload map[string]any) (*domain.Contract, error) {
	errs := fieldErrors{}
	updates := map[string]any{}

	var propertyID, clientID *uint
	if pid, ok := sanitize.ID(payload["property_id"]); ok {
		propertyID = &pid
		updates["property_id"] = pid
	}
	if cid, ok := sanitize.ID(payload["client_id"]); ok {
		clientID = &cid
		updates["client_id"] = cid
	}
	setString(updates, payload, "type")
	if startDate := sanitize.String(payload["start_date"]); startDate != nil {
		errs.checkVar("start_date", *startDate, dateTag, "must be a date in YYYY-MM-DD format")
		updates["start_date"] = *startDate
	}
	if endDate := sanitize.String(payload["end_date"]); endDate != nil {
		errs.checkVar("end_date", *endDate, dateTag, "must be a date in YYYY-MM-DD format")
		updates["end_date"] = *endDate
	}
	setFloat(updates, payload, "value")
	setString(updates, payload, "status")
	setString(updates, payload, "notes")

	if err := errs.asError(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, errs, propertyID, clientID); err != nil {
		return nil, err
	}
	if err := errs.asError(); err != nil {
		return nil, err
	}

	if len(updates) > 0 {
		updates["updated_at"] = domain.Now()
	}

	found, err := s.contractRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update contract: %w", err)
	}
	if !found {
		return nil, nil
	}
	return s.contractRepo.Find(ctx, id)
}

func (s *ContractService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.contractRepo.Delete(ctx, id)
}

// ExpiringSoon returns active contracts whose end date falls inside the next
// days days.
func (s *ContractService) ExpiringSoon(ctx context.Context, days int) ([]domain.Contract, error) {
	return s.contractRepo.ExpiringSoon(ctx, days)
}

func (s *ContractService) checkReferences(ctx context.Context, errs fieldErrors, propertyID, clientID *uint) error {
	if propertyID != nil {
		exists, err := s.propertyRepo.Exists(ctx, *propertyID)
		if err != nil {
			return fmt.Errorf("failed to check property reference: %w", err)
		}
		if !exists {
			errs["property_id"] = "referenced property does not exist"
		}
	}
	if clientID != nil {
		exists, err := s.clientRepo.Exists(ctx, *clientID)
		if err != nil {
			return fmt.Errorf("failed to check client reference: %w", err)
		}
		if !exists {
			errs["client_id"] = "referenced client does not exist"
		}
	}
	return nil
}
