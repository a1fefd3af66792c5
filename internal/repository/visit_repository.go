package repository

import (
	"context"
	"errors"
	"time"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"gorm.io/gorm"
)

// VisitFilters is the fixed set of optional list predicates for visits.
// From and To bound scheduled_at (inclusive both ends, matching the API's
// from/to query semantics).
type VisitFilters struct {
	Status string
	From   string
	To     string
}

// visitColumns attaches the display-only join fields to every visit row.
const visitColumns = "visits.*, properties.title AS property_title, clients.name AS client_name"

type VisitRepository struct {
	db *gorm.DB
}

func NewVisitRepository(db *gorm.DB) *VisitRepository {
	return &VisitRepository{db: db}
}

func (r *VisitRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&domain.Visit{}).
		Joins("INNER JOIN properties ON properties.id = visits.property_id").
		Joins("INNER JOIN clients ON clients.id = visits.client_id")
}

func (r *VisitRepository) Create(ctx context.Context, visit *domain.Visit) error {
	return r.db.WithContext(ctx).Create(visit).Error
}

func (r *VisitRepository) Find(ctx context.Context, id uint) (*domain.Visit, error) {
	var visit domain.Visit
	err := r.joined(ctx).Select(visitColumns).Where("visits.id = ?", id).First(&visit).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &visit, nil
}

func (r *VisitRepository) Update(ctx context.Context, id uint, updates map[string]any) (bool, error) {
	exists, err := r.Exists(ctx, id)
	if err != nil || !exists {
		return exists, err
	}
	if len(updates) == 0 {
		return true, nil
	}
	return true, r.db.WithContext(ctx).Model(&domain.Visit{}).Where("id = ?", id).Updates(updates).Error
}

func (r *VisitRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Visit{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *VisitRepository) List(ctx context.Context, filters *VisitFilters, page Pagination) ([]domain.Visit, int64, error) {
	var visits []domain.Visit
	var total int64

	query := r.joined(ctx)

	if filters != nil {
		if filters.Status != "" {
			query = query.Where("visits.status = ?", filters.Status)
		}
		if filters.From != "" {
			query = query.Where("visits.scheduled_at >= ?", filters.From)
		}
		if filters.To != "" {
			query = query.Where("visits.scheduled_at <= ?", filters.To)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Select(visitColumns).
		Order("visits.scheduled_at ASC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&visits).Error
	return visits, total, err
}

// Upcoming returns scheduled visits inside the half-open window
// [now, now+days). days is clamped to a minimum of one.
func (r *VisitRepository) Upcoming(ctx context.Context, days int) ([]domain.Visit, error) {
	if days < 1 {
		days = 1
	}
	now := time.Now()
	start := now.Format(domain.TimestampLayout)
	end := now.AddDate(0, 0, days).Format(domain.TimestampLayout)

	var visits []domain.Visit
	err := r.joined(ctx).Select(visitColumns).
		Where("visits.status = ?", string(domain.VisitStatusScheduled)).
		Where("visits.scheduled_at >= ? AND visits.scheduled_at < ?", start, end).
		Order("visits.scheduled_at ASC").
		Find(&visits).Error
	return visits, err
}

func (r *VisitRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).Count(&count).Error
	return count, err
}

func (r *VisitRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Visit{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
