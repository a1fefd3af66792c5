package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"gorm.io/gorm"
)

// ClientFilters is the fixed set of optional list predicates for clients.
type ClientFilters struct {
	Type   string
	Stage  string
	Search string
}

type ClientRepository struct {
	db *gorm.DB
}

func NewClientRepository(db *gorm.DB) *ClientRepository {
	return &ClientRepository{db: db}
}

func (r *ClientRepository) Create(ctx context.Context, client *domain.Client) error {
	return r.db.WithContext(ctx).Create(client).Error
}

func (r *ClientRepository) Find(ctx context.Context, id uint) (*domain.Client, error) {
	var client domain.Client
	err := r.db.WithContext(ctx).First(&client, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *ClientRepository) Update(ctx context.Context, id uint, updates map[string]any) (bool, error) {
	exists, err := r.Exists(ctx, id)
	if err != nil || !exists {
		return exists, err
	}
	if len(updates) == 0 {
		return true, nil
	}
	return true, r.db.WithContext(ctx).Model(&domain.Client{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ClientRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Client{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *ClientRepository) List(ctx context.Context, filters *ClientFilters, page Pagination) ([]domain.Client, int64, error) {
	var clients []domain.Client
	var total int64

	query := r.db.WithContext(ctx).Model(&domain.Client{})

	if filters != nil {
		if filters.Type != "" {
			query = query.Where("type = ?", filters.Type)
		}
		if filters.Stage != "" {
			query = query.Where("stage = ?", filters.Stage)
		}
		if filters.Search != "" {
			pattern := "%" + strings.ToLower(filters.Search) + "%"
			query = query.Where("LOWER(name) LIKE ? OR LOWER(email) LIKE ?", pattern, pattern)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Offset(page.Offset()).Limit(page.PerPage).Find(&clients).Error
	return clients, total, err
}

// StageSummary maps each observed pipeline stage to its row count.
func (r *ClientRepository) StageSummary(ctx context.Context) (map[string]int64, error) {
	var rows []struct {
		Stage string
		Total int64
	}
	err := r.db.WithContext(ctx).Model(&domain.Client{}).
		Select("stage, COUNT(*) AS total").
		Group("stage").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	summary := make(map[string]int64, len(rows))
	for _, row := range rows {
		summary[row.Stage] = row.Total
	}
	return summary, nil
}

func (r *ClientRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Client{}).Count(&count).Error
	return count, err
}

func (r *ClientRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Client{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
