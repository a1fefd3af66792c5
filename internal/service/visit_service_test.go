package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/imovelhub/backoffice-api/internal/repository"
	"github.com/imovelhub/backoffice-api/internal/service"
	"github.com/imovelhub/backoffice-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func newVisitService(t *testing.T) (*service.VisitService, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	svc := service.NewVisitService(
		repository.NewVisitRepository(db),
		repository.NewPropertyRepository(db),
		repository.NewClientRepository(db),
		zap.NewNop(),
	)
	return svc, db
}

func TestVisitService_Create(t *testing.T) {
	svc, db := newVisitService(t)

	property := testutil.CreateTestProperty(t, db)
	client := testutil.CreateTestClient(t, db)

	scheduledAt := time.Now().Add(24 * time.Hour).Format(domain.TimestampLayout)
	visit, err := svc.Create(context.Background(), map[string]any{
		"property_id":  float64(property.ID),
		"client_id":    float64(client.ID),
		"scheduled_at": scheduledAt,
	})
	require.NoError(t, err)

	assert.Equal(t, property.ID, visit.PropertyID)
	assert.Equal(t, client.ID, visit.ClientID)
	assert.Equal(t, "scheduled", visit.Status)
	assert.Equal(t, property.Title, visit.PropertyTitle)
	assert.Equal(t, client.Name, visit.ClientName)
}

func TestVisitService_CreateNamesMissingReferences(t *testing.T) {
	svc, db := newVisitService(t)

	client := testutil.CreateTestClient(t, db)

	_, err := svc.Create(context.Background(), map[string]any{
		"property_id":  999.0,
		"client_id":    float64(client.ID),
		"scheduled_at": domain.Now(),
	})
	require.Error(t, err)

	ve, ok := err.(*domain.ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "property_id")
	assert.NotContains(t, ve.Fields, "client_id")
}

func TestVisitService_CreateRequiredFields(t *testing.T) {
	svc, _ := newVisitService(t)

	_, err := svc.Create(context.Background(), map[string]any{})
	require.Error(t, err)

	ve, ok := err.(*domain.ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "property_id")
	assert.Contains(t, ve.Fields, "client_id")
	assert.Contains(t, ve.Fields, "scheduled_at")
}

func TestVisitService_CreateRejectsBadTimestamp(t *testing.T) {
	svc, db := newVisitService(t)

	property := testutil.CreateTestProperty(t, db)
	client := testutil.CreateTestClient(t, db)

	_, err := svc.Create(context.Background(), map[string]any{
		"property_id":  float64(property.ID),
		"client_id":    float64(client.ID),
		"scheduled_at": "tomorrow at noon",
	})
	require.Error(t, err)

	ve, ok := err.(*domain.ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "scheduled_at")
}

func TestVisitService_UpdateChecksNewReferences(t *testing.T) {
	svc, db := newVisitService(t)

	property := testutil.CreateTestProperty(t, db)
	client := testutil.CreateTestClient(t, db)
	visit := testutil.CreateTestVisit(t, db, property.ID, client.ID)

	t.Run("status change passes", func(t *testing.T) {
		updated, err := svc.Update(context.Background(), visit.ID, map[string]any{
			"status": "completed",
		})
		require.NoError(t, err)
		assert.Equal(t, "completed", updated.Status)
	})

	t.Run("dangling reference rejected", func(t *testing.T) {
		_, err := svc.Update(context.Background(), visit.ID, map[string]any{
			"property_id": 999.0,
		})
		require.Error(t, err)

		ve, ok := err.(*domain.ValidationError)
		require.True(t, ok)
		assert.Contains(t, ve.Fields, "property_id")
	})
}

func TestVisitService_UpdateMissing(t *testing.T) {
	svc, _ := newVisitService(t)

	updated, err := svc.Update(context.Background(), 999, map[string]any{"status": "cancelled"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}
