package service

import (
	"context"
	"crypto/rand"
	"fmt"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/sanitize"
	"go.uber.org/zap"
)

// codeAttempts bounds the retry loop for the unique property code. Six hex
// chars give 16M codes, so collisions are only a concern near exhaustion.
const codeAttempts = 10

type PropertyService struct {
	propertyRepo *repository.PropertyRepository
	logger       *zap.Logger
}

func NewPropertyService(propertyRepo *repository.PropertyRepository, logger *zap.Logger) *PropertyService {
	return &PropertyService{propertyRepo: propertyRepo, logger: logger}
}

func (s *PropertyService) List(ctx context.Context, filters *repository.PropertyFilters, page repository.Pagination) (*domain.PaginatedResponse, error) {
	properties, total, err := s.propertyRepo.List(ctx, filters, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list properties: %w", err)
	}
	return &domain.PaginatedResponse{Data: properties, Meta: page.Meta(total)}, nil
}

func (s *PropertyService) Find(ctx context.Context, id uint) (*domain.Property, error) {
	return s.propertyRepo.Find(ctx, id)
}

func (s *PropertyService) Create(ctx context.Context, payload map[string]any) (*domain.Property, error) {
	errs := fieldErrors{}
	errs.merge(sanitize.RequireFields(payload, "title", "type", "price"))
	if email := sanitize.String(payload["owner_email"]); email != nil {
		errs.checkVar("owner_email", *email, "email", "must be a valid email address")
	}
	if err := errs.asError(); err != nil {
		return nil, err
	}

	now := domain.Now()
	property := &domain.Property{
		Title:        stringOr(payload["title"], ""),
		Description:  stringOr(payload["description"], ""),
		Type:         stringOr(payload["type"], string(domain.PropertyTypeResidential)),
		Status:       stringOr(payload["status"], string(domain.PropertyStatusAvailable)),
		Price:        floatOr(payload["price"], 0),
		CondoFee:     floatOr(payload["condo_fee"], 0),
		City:         stringOr(payload["city"], ""),
		State:        stringOr(payload["state"], ""),
		Neighborhood: stringOr(payload["neighborhood"], ""),
		Address:      stringOr(payload["address"], ""),
		Bedrooms:     intOr(payload["bedrooms"], 0),
		Bathrooms:    intOr(payload["bathrooms"], 0),
		Suites:       intOr(payload["suites"], 0),
		ParkingSpots: intOr(payload["parking_spots"], 0),
		Area:         floatOr(payload["area"], 0),
		OwnerName:    stringOr(payload["owner_name"], ""),
		OwnerEmail:   stringOr(payload["owner_email"], ""),
		OwnerPhone:   stringOr(payload["owner_phone"], ""),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	code, err := s.generateCode(ctx)
	if err != nil {
		return nil, err
	}
	property.Code = code

	if err := s.propertyRepo.Create(ctx, property); err != nil {
		return nil, fmt.Errorf("failed to create property: %w", err)
	}

	s.logger.Info("property created",
		zap.Uint("property_id", property.ID),
		zap.String("code", property.Code),
	)

	return s.propertyRepo.Find(ctx, property.ID)
}

// Update applies only the payload fields that survive sanitization. The code
// column is never touched; it is immutable once assigned. A payload with no
// effective fields degrades to a read.
func (s *PropertyService) Update(ctx context.Context, id uint, payload map[string]any) (*domain.Property, error) {
	updates := map[string]any{}
	setString(updates, payload, "title")
	setString(updates, payload, "description")
	setString(updates, payload, "type")
	setString(updates, payload, "status")
	setFloat(updates, payload, "price")
	setFloat(updates, payload, "condo_fee")
	setString(updates, payload, "city")
	setString(updates, payload, "state")
	setString(updates, payload, "neighborhood")
	setString(updates, payload, "address")
	setInt(updates, payload, "bedrooms")
	setInt(updates, payload, "bathrooms")
	setInt(updates, payload, "suites")
	setInt(updates, payload, "parking_spots")
	setFloat(updates, payload, "area")
	setString(updates, payload, "owner_name")
	setString(updates, payload, "owner_email")
	setString(updates, payload, "owner_phone")

	if email, ok := updates["owner_email"].(string); ok {
		errs := fieldErrors{}
		errs.checkVar("owner_email", email, "email", "must be a valid email address")
		if err := errs.asError(); err != nil {
			return nil, err
		}
	}

	if len(updates) > 0 {
		updates["updated_at"] = domain.Now()
	}

	found, err := s.propertyRepo.Update(ctx, id, updates)
	if err != nil {
		return nil, fmt.Errorf("failed to update property: %w", err)
	}
	if !found {
		return nil, nil
	}
	return s.propertyRepo.Find(ctx, id)
}

func (s *PropertyService) Delete(ctx context.Context, id uint) (bool, error) {
	return s.propertyRepo.Delete(ctx, id)
}

func (s *PropertyService) StatusSummary(ctx context.Context) (map[string]int64, error) {
	return s.propertyRepo.StatusSummary(ctx)
}

// generateCode draws three random bytes and formats them as IMV-XXXXXX.
// Codes are never reused: a collision with an existing row draws again.
func (s *PropertyService) generateCode(ctx context.Context) (string, error) {
	for i := 0; i < codeAttempts; i++ {
		buf := make([]byte, 3)
		if _, err := rand.Read(buf); err != nil {
			return "", fmt.Errorf("failed to generate property code: %w", err)
		}
		code := fmt.Sprintf("IMV-%X", buf)

		taken, err := s.propertyRepo.CodeExists(ctx, code)
		if err != nil {
			return "", fmt.Errorf("failed to check property code: %w", err)
		}
		if !taken {
			return code, nil
		}
	}
	return "", fmt.Errorf("failed to allocate a free property code after %d attempts", codeAttempts)
}
