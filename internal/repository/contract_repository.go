package repository

import (
	"context"
	"errors"
	"time"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"gorm.io/gorm"
)

// ContractFilters is the fixed set of optional list predicates for contracts.
type ContractFilters struct {
	Status string
	Type   string
}

const contractColumns = "contracts.*, properties.title AS property_title, clients.name AS client_name"

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

func (r *ContractRepository) joined(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&domain.Contract{}).
		Joins("INNER JOIN properties ON properties.id = contracts.property_id").
		Joins("INNER JOIN clients ON clients.id = contracts.client_id")
}

func (r *ContractRepository) Create(ctx context.Context, contract *domain.Contract) error {
	return r.db.WithContext(ctx).Create(contract).Error
}

func (r *ContractRepository) Find(ctx context.Context, id uint) (*domain.Contract, error) {
	var contract domain.Contract
	err := r.joined(ctx).Select(contractColumns).Where("contracts.id = ?", id).First(&contract).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *ContractRepository) Update(ctx context.Context, id uint, updates map[string]any) (bool, error) {
	exists, err := r.Exists(ctx, id)
	if err != nil || !exists {
		return exists, err
	}
	if len(updates) == 0 {
		return true, nil
	}
	return true, r.db.WithContext(ctx).Model(&domain.Contract{}).Where("id = ?", id).Updates(updates).Error
}

func (r *ContractRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Contract{}, id)
	return result.RowsAffected > 0, result.Error
}

func (r *ContractRepository) List(ctx context.Context, filters *ContractFilters, page Pagination) ([]domain.Contract, int64, error) {
	var contracts []domain.Contract
	var total int64

	query := r.joined(ctx)

	if filters != nil {
		if filters.Status != "" {
			query = query.Where("contracts.status = ?", filters.Status)
		}
		if filters.Type != "" {
			query = query.Where("contracts.type = ?", filters.Type)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Select(contractColumns).
		Order("contracts.start_date DESC").
		Offset(page.Offset()).Limit(page.PerPage).
		Find(&contracts).Error
	return contracts, total, err
}

// ExpiringSoon returns contracts whose end date falls inside the half-open
// window [today, today+days). Contracts without an end date never expire.
// days is clamped to a minimum of one.
func (r *ContractRepository) ExpiringSoon(ctx context.Context, days int) ([]domain.Contract, error) {
	if days < 1 {
		days = 1
	}
	now := time.Now()
	start := now.Format(domain.DateLayout)
	end := now.AddDate(0, 0, days).Format(domain.DateLayout)

	var contracts []domain.Contract
	err := r.joined(ctx).Select(contractColumns).
		Where("contracts.end_date IS NOT NULL").
		Where("contracts.end_date >= ? AND contracts.end_date < ?", start, end).
		Order("contracts.end_date ASC").
		Find(&contracts).Error
	return contracts, err
}

// monthExpr truncates start_date to YYYY-MM in the engine's dialect.
func (r *ContractRepository) monthExpr() string {
	if r.db.Dialector.Name() == "postgres" {
		return "substring(start_date from 1 for 7)"
	}
	return "strftime('%Y-%m', start_date)"
}

// MonthlyRevenue sums contract values for active and completed contracts,
// grouped by start-date month, most recent month first, capped to the given
// number of months. Months with no matching contracts are absent.
func (r *ContractRepository) MonthlyRevenue(ctx context.Context, months int) ([]domain.MonthlyRevenue, error) {
	expr := r.monthExpr()

	var rows []domain.MonthlyRevenue
	err := r.db.WithContext(ctx).Model(&domain.Contract{}).
		Select(expr+" AS reference, SUM(value) AS total").
		Where("status IN ?", []string{
			string(domain.ContractStatusActive),
			string(domain.ContractStatusCompleted),
		}).
		Group(expr).
		Order("reference DESC").
		Limit(months).
		Scan(&rows).Error
	return rows, err
}

func (r *ContractRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Contract{}).Count(&count).Error
	return count, err
}

func (r *ContractRepository) Exists(ctx context.Context, id uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&domain.Contract{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
