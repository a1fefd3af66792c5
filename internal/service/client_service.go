package service

import (
	"context"
	"fmt"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/sanitize"
	"go.uber.org/zap"
)

type ClientService struct {
	clientRepo *repository.ClientRepository
	logger     *zap.Logger
}

func NewClientService(clientRepo *repository.ClientRepository, logger *zap.Logger) *ClientService {
	return &ClientService{clientRepo: clientRepo, logger: logger}
}

func (s *ClientService) List(ctx context.Context, filters *repository.ClientFilters, page repository.Pagination) (*domain.PaginatedResponse, error) {
	clients, total, err := s.clientRepo.List(ctx, filters, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return &domain.PaginatedResponse{Data: clients, Meta: page.Meta(total)}, nil
}

func (s *ClientService) Find(ctx context.Context, id uint) (*domain.Client, error) {
	return s.clientRepo.Find(ctx, id)
}

func (s *ClientService) Create(ctx context.Context, payload map[string]any) (*domain.Client, error) {
	errs := fieldErrors{}
	errs.merge(sanitize.RequireFields(payload, "name"))
	if email := sanitize.String(payload["email"]); email != nil {
		errs.checkVar("email", *email, "email", "must be a valid email address")
	}
	if err := errs.asError(); err != nil {
		return nil, err
	}

	now := domain.Now()
	client := &domain.Client{
		Name:        stringOr(payload["name"], ""),
		Email:       stringOr(payload["email"], ""),
		Phone:       stringOr(payload["phone"], ""),
		Type:        stringOr(payload["type"], string(domain.ClientTypeBuyer)),
		Stage:       stringOr(payload["stage"], string(domain.ClientStageNew)),
		Preferences: stringOr(payload["preferences"], ""),
		Notes:       stringOr(payload["notes"], ""),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	s.logger.Info("client created", zap.Uint("client_id", client.ID))

	return s.clientRepo.Find(ctx, client.ID)
}

func (s *ClientService) Update(ctx context.Context, id uint, payload map[string]any) (*domain.Client, error) {
	updates := map[string]any{}
	setString(updates, payload, "name")
	setString(updates, payload, "email")
	setString(updates, payload, "phone")
	setString(updates, payload, "type")
	setString(updates, payload, "stage")
	setString(updates, payload, "preferences")
	setString(updates, payload, "notes")

	if email, ok := updates["email"].(string); ok {
		errs := fieldErrors{}
		errs.checkVar("email", email, "email", "must be a valid email address")
		if err := errs.asError(); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		updates["updated_at"] = domain.Now()
	}

	found, err := s.clientRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}
	if !found {
		return nil, nil
	}
	return s.clientRepo.Find(ctx, id)
}

func (s *ClientService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.clientRepo.Delete(ctx, id)
}

func (s *ClientService) StageSummary(ctx context.Context) (map[string]int64, error) {
	return s.clientRepo.StageSummary(ctx)
}
