package service_test

import (
	"context"
	"testing"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/service"
	"github.com/imovelhub/backoffice-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newContractService(t *testing.T) (*service.ContractService, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	svc := service.NewContractService(
		repository.NewContractRepository(db),
		repository.NewPropertyRepository(db),
		repository.NewClientRepository(db),
		zap.NewNop(),
	)
	return svc, db
}

func TestContractService_Create(t *testing.T) {
	svc, db := newContractService(t)

	property := testutil.CreateTestProperty(t, db)
	client := testutil.CreateTestClient(t, db)

	contract, err := svc.Create(context.Background(), map[string]any{
		"property_id": float64(property.ID),
		"client_id":   float64(client.ID),
		"type":        "rental",
		"start_date":  "2025-09-01",
		"end_date":    "2026-08-31",
		"value":       1200.0,
	})
	require.NoError(t, err)

	assert.Equal(t, "rental", contract.Type)
	assert.Equal(t, "draft", contract.Status)
	assert.Equal(t, "2025-09-01", contract.StartDate)
	require.NotNil(t, contract.EndDate)
	assert.Equal(t, "2026-08-31", *contract.EndDate)
	assert.Equal(t, property.Title, contract.PropertyTitle)
	assert.Equal(t, client.Name, contract.ClientName)
}

func TestContractService_CreateRequiredFields(t *testing.T) {
	svc, _ := newContractService(t)

	_, err := svc.Create(context.Background(), map[string]any{})
	require.Error(t, err)

	ve, ok := err.(*domain.ValidationError)
	require.True(t, ok)
	for _, field := range []string{"property_id", "client_id", "type", "start_date", "value"} {
		assert.Contains(t, ve.Fields, field)
	}
}

func TestContractService_CreateRejectsBadDates(t *testing.T) {
	svc, db := newContractService(t)

	property := testutil.CreateTestProperty(t, db)
	client := testutil.CreateTestClient(t, db)

	_, err := svc.Create(context.Background(), map[string]any{
		"property_id": float64(property.ID),
		"client_id":   float64(client.ID),
		"type":        "sale",
		"start_date":  "01/06/2025",
		"end_date":    "soon",
		"value":       100.0,
	})
	require.Error(t, err)

	ve, ok := err.(*domain.ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "start_date")
	assert.Contains(t, ve.Fields, "end_date")
}

func TestContractService_CreateNamesMissingReferences(t *testing.T) {
	svc, db := newContractService(t)

	property := testutil.CreateTestProperty(t, db)

	_, err := svc.Create(context.Background(), map[string]any{
		"property_id": float64(property.ID),
		"client_id":   999.0,
		"type":        "sale",
		"start_date":  "2025-09-01",
		"value":       100.0,
	})
	require.Error(t, err)

	ve, ok := err.(*domain.ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "client_id")
	assert.NotContains(t, ve.Fields, "property_id")
}

func TestContractService_UpdatePartial(t *testing.T) {
	svc, db := newContractService(t)

	property := testutil.CreateTestProperty(t, db)
	client := testutil.CreateTestClient(t, db)
	contract := testutil.CreateTestContract(t, db, property.ID, client.ID)

	updated, err := svc.Update(context.Background(), contract.ID, map[string]any{
		"status": "active",
		"value":  475000.0,
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "active", updated.Status)
	assert.Equal(t, 475000.0, updated.Value)
	assert.Equal(t, contract.StartDate, updated.StartDate)
	assert.Equal(t, contract.Type, updated.Type)
}

func TestContractService_UpdateMissing(t *testing.T) {
	svc, _ := newContractService(t)

	updated, err := svc.Update(context.Background(), 999, map[string]any{"status": "active"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}
