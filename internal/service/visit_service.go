package service

import (
	"context"
	"fmt"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/sanitize"
	"go.uber.org/zap"
)

// VisitService depends on the property and client repositories as well as its
// own: referenced parents are verified before a visit row is written so FK
// problems surface as field-level validation errors, not driver errors.
type VisitService struct {
	visitRepo    *repository.VisitRepository
	propertyRepo *repository.PropertyRepository
	clientRepo   *repository.ClientRepository
	logger       *zap.Logger
}

func NewVisitService(
	visitRepo *repository.VisitRepository,
	propertyRepo *repository.PropertyRepository,
	clientRepo *repository.ClientRepository,
	logger *zap.Logger,
) *VisitService {
	return &VisitService{
		visitRepo:    visitRepo,
		propertyRepo: propertyRepo,
		clientRepo:   clientRepo,
		logger:       logger,
	}
}

func (s *VisitService) List(ctx context.Context, filters *repository.VisitFilters, page repository.Pagination) (*domain.PaginatedResponse, error) {
	visits, total, err := s.visitRepo.List(ctx, filters, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list visits: %w", err)
	}
	return &domain.PaginatedResponse{Data: visits, Meta: page.Meta(total)}, nil
}

func (s *VisitService) Find(ctx context.Context, id uint) (*domain.Visit, error) {
	return s.visitRepo.Find(ctx, id)
}

func (s *VisitService) Create(ctx context.Context, payload map[string]any) (*domain.Visit, error) {
	errs := fieldErrors{}
	errs.merge(sanitize.RequireFields(payload, "property_id", "client_id", "scheduled_at"))

	propertyID, hasProperty := sanitize.ID(payload["property_id"])
	if _, supplied := payload["property_id"]; supplied && !hasProperty {
		errs["property_id"] = "must be a positive integer"
	}
	clientID, hasClient := sanitize.ID(payload["client_id"])
	if _, supplied := payload["client_id"]; supplied && !hasClient {
		errs["client_id"] = "must be a positive integer"
	}
	if scheduledAt := sanitize.String(payload["scheduled_at"]); scheduledAt != nil {
		errs.checkVar("scheduled_at", *scheduledAt, timestampTag, "must be an RFC 3339 timestamp")
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
	visit := &domain.Visit{
		PropertyID:  propertyID,
		ClientID:    clientID,
		ScheduledAt: stringOr(payload["scheduled_at"], ""),
		Status:      stringOr(payload["status"], string(domain.VisitStatusScheduled)),
		Notes:       stringOr(payload["notes"], ""),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.visitRepo.Create(ctx, visit); err != nil {
		return nil, fmt.Errorf("failed to create visit: %w", err)
	}

	s.logger.Info("visit created",
		zap.Uint("visit_id", visit.ID),
		zap.Uint("property_id", visit.PropertyID),
		zap.Uint("client_id", visit.ClientID),
	)

	return s.visitRepo.Find(ctx, visit.ID)
}

func (s *VisitService) Update(ctx context.Context, id uint, payload map[string]any) (*domain.Visit, error) {
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
	if scheduledAt := sanitize.String(payload["scheduled_at"]); scheduledAt != nil {
		errs.checkVar("scheduled_at", *scheduledAt, timestampTag, "must be an RFC 3339 timestamp")
		updates["scheduled_at"] = *scheduledAt
	}
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

	found, err := s.visitRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update visit: %w", err)
	}
	if !found {
		return nil, nil
	}
	return s.visitRepo.Find(ctx, id)
}

func (s *VisitService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.visitRepo.Delete(ctx, id)
}

// Upcoming returns scheduled visits inside the next days days.
func (s *VisitService) Upcoming(ctx context.Context, days int) ([]domain.Visit, error) {
	return s.visitRepo.Upcoming(ctx, days)
}

// checkReferences records a field error for each referenced parent that does
// not exist. Nil ids are skipped so partial updates only verify what changed.
func (s *VisitService) checkReferences(ctx context.Context, errs fieldErrors, propertyID, clientID *uint) error {
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
