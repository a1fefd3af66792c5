package repository

import (
	"context"
	"errors"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"gorm.io/gorm"
)

// PropertySortOption names an allowed list ordering. Anything else falls back
// to newest-first so pagination stays stable.
type PropertySortOption string

const (
	PropertySortPriceAsc  PropertySortOption = "price_asc"
	PropertySortPriceDesc PropertySortOption = "price_desc"
	PropertySortNewest    PropertySortOption = "newest"
	PropertySortOldest    PropertySortOption = "oldest"
)

// PropertyFilters is the fixed set of optional list predicates. Zero values
// mean "no predicate"; all provided predicates are ANDed.
type PropertyFilters struct {
	Status   string
	City     string
	MinPrice *float64
	MaxPrice *float64
	Order    PropertySortOption
}

type PropertyRepository struct {
	db *gorm.DB
}

func NewPropertyRepository(db *gorm.DB) *PropertyRepository {
	return &PropertyRepository{db: db}
}

func (r *PropertyRepository) Create(ctx context.Context, property *domain.Property) error {
	return r.db.WithContext(ctx).Create(property).Error
}

func (r *PropertyRepository) Find(ctx context.Context, id uint) (*domain.Property, error) {
	var property domain.Property
	err := r.db.WithContext(ctx).First(&property, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &property, nil
}

// Update applies the given column set and returns whether the row exists.
// An empty update set degrades to an existence check.
func (r *PropertyRepository) Update(ctx context.Context, id uint, updates map[string]any) (bool, error) {
	exists, err := r.Exists(ctx, id)
	if err != nil || !exists {
		return exists, err
	}
	if len(updates) == 0 {
		return true, nil
	}
	return true, r.db.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", id).Updates(updates).Error
}

// Delete removes the row and reports whether anything was deleted. Dependent
// visits and contracts go with it via the FK cascade.
func (r *PropertyRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Property{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *PropertyRepository) List(ctx context.Context, filters *PropertyFilters, page Pagination) ([]domain.Property, int64, error) {
	var properties []domain.Property
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Property{})

	if filters != nil {
		if filters.Status != "" {
			query = query.Where("status = ?", filters.Status)
		}
		if filters.City != "" {
			query = query.Where("LOWER(city) = LOWER(?)", filters.City)
		}
		if filters.MinPrice != nil {
			query = query.Where("price >= ?", *filters.MinPrice)
		}
		if filters.MaxPrice != nil {
			query = query.Where("price <= ?", *filters.MaxPrice)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	order := "created_at DESC"
	if filters != nil {
		switch filters.Order {
		case PropertySortPriceAsc:
			order = "price ASC"
		case PropertySortPriceDesc:
			order = "price DESC"
		case PropertySortOldest:
			order = "created_at ASC"
		case PropertySortNewest:
			order = "created_at DESC"
		}
	}

	err := query.Order(order).Offset(page.Offset()).Limit(page.PerPage).Find(&properties).Error
	return properties, total, err
}

// StatusSummary maps each observed status to its row count. Statuses with no
// rows are simply absent.
func (r *PropertyRepository) StatusSummary(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Status string
		Total  int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Property{}).
		Select("status, COUNT(*) AS total").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := make(map[string]int64, len(rows))
	for _, row := range rows {
		summary[row.Status] = row.Total
	}
	return summary, nil
}

func (r *PropertyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Property{}).Count(&count).Error
	return count, err
}

func (r *PropertyRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Property{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// CodeExists reports whether a property code is already assigned.
func (r *PropertyRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Property{}).Where("code = ?", code).Count(&count).Error
	return count > 0, err
}
