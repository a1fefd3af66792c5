package service_test

import (
	"context"
	"regexp"
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

var codePattern = regexp.MustCompile(`^IMV-[0-9A-F]{6}$`)

func newPropertyService(t *testing.T) (*service.PropertyService, *gorm.DB) {
	db := testutil.SetupTestDB(t)
	return service.NewPropertyService(repository.NewPropertyRepository(db), zap.NewNop()), db
}

func TestPropertyService_CreateAppliesDefaults(t *testing.T) {
	svc, _ := newPropertyService(t)

	property, err := svc.Create(context.Background(), map[string]any{
		"title": "Studio downtown",
		"type":  "residential",
		"price": 180000.0,
	})
	require.NoError(t, err)
	require.NotNil(t, property)

	assert.Regexp(t, codePattern, property.Code)
	assert.Equal(t, "available", property.Status)
	assert.Equal(t, "Studio downtown", property.Title)
	assert.Equal(t, 180000.0, property.Price)
	assert.NotEmpty(t, property.CreatedAt)
	assert.Equal(t, property.CreatedAt, property.UpdatedAt)
}

func TestPropertyService_CreateUniqueCodes(t *testing.T) {
	svc, _ := newPropertyService(t)

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		property, err := svc.Create(context.Background(), map[string]any{
			"title": "Unit",
			"type":  "residential",
			"price": 100000.0,
		})
		require.NoError(t, err)
		assert.False(t, seen[property.Code], "code %s assigned twice", property.Code)
		seen[property.Code] = true
	}
}

func TestPropertyService_CreateReportsAllMissingFields(t *testing.T) {
	svc, _ := newPropertyService(t)

	_, err := svc.Create(context.Background(), map[string]any{
		"title":       "",
		"owner_email": "not-an-email",
	})
	require.Error(t, err)

	ve, ok := err.(*domain.ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "title")
	assert.Contains(t, ve.Fields, "type")
	assert.Contains(t, ve.Fields, "price")
	assert.Contains(t, ve.Fields, "owner_email")
}

func TestPropertyService_CreateAcceptsNumericStrings(t *testing.T) {
	svc, _ := newPropertyService(t)

	property, err := svc.Create(context.Background(), map[string]any{
		"title":    "Parsed",
		"type":     "commercial",
		"price":    "250000.50",
		"bedrooms": "3",
	})
	require.NoError(t, err)
	assert.Equal(t, 250000.50, property.Price)
	assert.Equal(t, 3, property.Bedrooms)
}

func TestPropertyService_UpdatePartial(t *testing.T) {
	svc, _ := newPropertyService(t)

	created, err := svc.Create(context.Background(), map[string]any{
		"title": "Original title",
		"type":  "residential",
		"price": 300000.0,
		"city":  "Faro",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, map[string]any{
		"status": "reserved",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "reserved", updated.Status)
	assert.Equal(t, "Original title", updated.Title)
	assert.Equal(t, "Faro", updated.City)
	assert.Equal(t, created.Code, updated.Code)
}

func TestPropertyService_UpdateEmptyStringLeavesUnchanged(t *testing.T) {
	svc, _ := newPropertyService(t)

	created, err := svc.Create(context.Background(), map[string]any{
		"title": "Keep me",
		"type":  "residential",
		"price": 300000.0,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, map[string]any{
		"title":  "",
		"status": "sold",
	})
	require.NoError(t, err)
	assert.Equal(t, "Keep me", updated.Title)
	assert.Equal(t, "sold", updated.Status)
}

func TestPropertyService_UpdateEmptyPayloadIsARead(t *testing.T) {
	svc, _ := newPropertyService(t)

	created, err := svc.Create(context.Background(), map[string]any{
		"title": "Untouched",
		"type":  "residential",
		"price": 300000.0,
	})
	require.NoError(t, err)

	read, err := svc.Update(context.Background(), created.ID, map[string]any{})
	require.NoError(t, err)
	require.NotNil(t, read)
	assert.Equal(t, created.UpdatedAt, read.UpdatedAt)
}

func TestPropertyService_UpdateMissing(t *testing.T) {
	svc, _ := newPropertyService(t)

	updated, err := svc.Update(context.Background(), 999, map[string]any{"status": "sold"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}

func TestPropertyService_Delete(t *testing.T) {
	svc, _ := newPropertyService(t)

	created, err := svc.Create(context.Background(), map[string]any{
		"title": "Short lived",
		"type":  "residential",
		"price": 100000.0,
	})
	require.NoError(t, err)

	deleted, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)
}
