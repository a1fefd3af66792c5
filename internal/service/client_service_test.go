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
)

func newClientService(t *testing.T) *service.ClientService {
	db := testutil.SetupTestDB(t)
	return service.NewClientService(repository.NewClientRepository(db), zap.NewNop())
}

func TestClientService_CreateAppliesDefaults(t *testing.T) {
	svc := newClientService(t)

	client, err := svc.Create(context.Background(), map[string]any{
		"name": "Pedro Martins",
	})
	require.NoError(t, err)

	assert.Equal(t, "Pedro Martins", client.Name)
	assert.Equal(t, "buyer", client.Type)
	assert.Equal(t, "new", client.Stage)
	assert.NotEmpty(t, client.CreatedAt)
}

func TestClientService_CreateRequiresName(t *testing.T) {
	svc := newClientService(t)

	_, err := svc.Create(context.Background(), map[string]any{"email": "a@b.com"})
	require.Error(t, err)

	ve, ok := err.(*domain.ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "name")
}

func TestClientService_CreateRejectsBadEmail(t *testing.T) {
	svc := newClientService(t)

	_, err := svc.Create(context.Background(), map[string]any{
		"name":  "Pedro",
		"email": "not-an-email",
	})
	require.Error(t, err)

	ve, ok := err.(*domain.ValidationError)
	require.True(t, ok)
	assert.Contains(t, ve.Fields, "email")
}

func TestClientService_UpdatePartial(t *testing.T) {
	svc := newClientService(t)

	created, err := svc.Create(context.Background(), map[string]any{
		"name":  "Ines Lopes",
		"email": "ines@example.com",
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, map[string]any{
		"stage": "contacted",
		"email": "",
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, "contacted", updated.Stage)
	assert.Equal(t, "ines@example.com", updated.Email)
	assert.Equal(t, "Ines Lopes", updated.Name)
}

func TestClientService_UpdateMissing(t *testing.T) {
	svc := newClientService(t)

	updated, err := svc.Update(context.Background(), 999, map[string]any{"stage": "won"})
	require.NoError(t, err)
	assert.Nil(t, updated)
}
