package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContractRepository_FindAttachesDisplayFields(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewContractRepository(db)

	property := testutil.CreateTestProperty(t, db, func(p *domain.Property) { p.Title = "Garden villa" })
	client := testutil.CreateTestClient(t, db, func(c *domain.Client) { c.Name = "Sofia Reis" })
	contract := testutil.CreateTestContract(t, db, property.ID, client.ID)

	found, err := repo.Find(context.Background(), contract.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "Garden villa", found.PropertyTitle)
	assert.Equal(t, "Sofia Reis", found.ClientName)

	missing, err := repo.Find(context.Background(), 999)
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestContractRepository_ListFiltersAndOrder(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewContractRepository(db)

	property := testutil.CreateTestProperty(t, db)
	client := testutil.CreateTestClient(t, db)

	testutil.CreateTestContract(t, db, property.ID, client.ID, func(c *domain.Contract) {
		c.Type = "sale"
		c.Status = "active"
		c.StartDate = "2025-01-15"
	})
	testutil.CreateTestContract(t, db, property.ID, client.ID, func(c *domain.Contract) {
		c.Type = "rental"
		c.Status = "draft"
		c.StartDate = "2025-03-15"
	})
	testutil.CreateTestContract(t, db, property.ID, client.ID, func(c *domain.Contract) {
		c.Type = "rental"
		c.Status = "active"
		c.StartDate = "2025-02-15"
	})

	page := repository.NewPagination(1, 20)

	t.Run("status filter", func(t *testing.T) {
		_, total, err := repo.List(context.Background(), &repository.ContractFilters{Status: "active"}, page)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("type filter", func(t *testing.T) {
		_, total, err := repo.List(context.Background(), &repository.ContractFilters{Type: "rental"}, page)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
	})

	t.Run("newest start date first", func(t *testing.T) {
		items, _, err := repo.List(context.Background(), nil, page)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "2025-03-15", items[0].StartDate)
		assert.Equal(t, "2025-01-15", items[2].StartDate)
	})
}

func TestContractRepository_ExpiringSoon(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewContractRepository(db)

	property := testutil.CreateTestProperty(t, db)
	client := testutil.CreateTestClient(t, db)

	today := time.Now()
	endInWindow := today.AddDate(0, 0, 10).Format(domain.DateLayout)
	endBeyond := today.AddDate(0, 0, 60).Format(domain.DateLayout)
	endPast := today.AddDate(0, 0, -5).Format(domain.DateLayout)

	testutil.CreateTestContract(t, db, property.ID, client.ID, func(c *domain.Contract) {
		c.EndDate = &endInWindow
		c.Status = "active"
	})
	testutil.CreateTestContract(t, db, property.ID, client.ID, func(c *domain.Contract) {
		c.EndDate = &endBeyond
	})
	testutil.CreateTestContract(t, db, property.ID, client.ID, func(c *domain.Contract) {
		c.EndDate = &endPast
	})
	// Open-ended contract never expires
	testutil.CreateTestContract(t, db, property.ID, client.ID)

	contracts, err := repo.ExpiringSoon(context.Background(), 30)
	require.NoError(t, err)
	require.Len(t, contracts, 1)
	require.NotNil(t, contracts[0].EndDate)
	assert.Equal(t, endInWindow, *contracts[0].EndDate)
	assert.NotEmpty(t, contracts[0].PropertyTitle)
}

func TestContractRepository_MonthlyRevenue(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewContractRepository(db)

	property := testutil.CreateTestProperty(t, db)
	client := testutil.CreateTestClient(t, db)

	add := func(startDate, status string, value float64) {
		testutil.CreateTestContract(t, db, property.ID, client.ID, func(c *domain.Contract) {
			c.StartDate = startDate
			c.Status = status
			c.Value = value
		})
	}

	add("2025-01-10", "active", 100000)
	add("2025-01-20", "completed", 50000)
	add("2025-02-05", "active", 200000)
	add("2025-03-01", "draft", 999999)     // excluded by status
	add("2025-04-01", "cancelled", 999999) // excluded by status

	rows, err := repo.MonthlyRevenue(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	// Most recent month first; excluded statuses leave no trace.
	assert.Equal(t, "2025-02", rows[0].Reference)
	assert.Equal(t, 200000.0, rows[0].Total)
	assert.Equal(t, "2025-01", rows[1].Reference)
	assert.Equal(t, 150000.0, rows[1].Total)
}

func TestContractRepository_MonthlyRevenueCap(t *testing.T) {
	db := testutil.SetupTestDB(t)
	repo := repository.NewContractRepository(db)

	property := testutil.CreateTestProperty(t, db)
	client := testutil.CreateTestClient(t, db)

	months := []string{"2024-09", "2024-10", "2024-11", "2024-12", "2025-01", "2025-02", "2025-03", "2025-04"}
	for _, m := range months {
		testutil.CreateTestContract(t, db, property.ID, client.ID, func(c *domain.Contract) {
			c.StartDate = m + "-15"
			c.Status = "active"
			c.Value = 1000
		})
	}

	rows, err := repo.MonthlyRevenue(context.Background(), 6)
	require.NoError(t, err)
	require.Len(t, rows, 6)
	assert.Equal(t, "2025-04", rows[0].Reference)
	assert.Equal(t, "2024-11", rows[5].Reference)
}
