// Package testutil provides shared fixtures for package tests.
package testutil

import (
	"crypto/rand"
	"fmt"
	"testing"

	"github.com/imovelhub/backoffice-api/internal/domain"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB opens a private in-memory sqlite database with the full schema
// applied. Each call gets its own database, so tests stay independent.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err, "failed to open in-memory database")

	require.NoError(t, db.Exec("PRAGMA foreign_keys = ON").Error)

	require.NoError(t, db.AutoMigrate(
		&domain.Property{},
		&domain.Client{},
		&domain.Visit{},
		&domain.Contract{},
	))

	return db
}

// CreateTestProperty inserts a property with sane defaults, applying any
// mutations first.
func CreateTestProperty(t *testing.T, db *gorm.DB, mutate ...func(*domain.Property)) *domain.Property {
	t.Helper()

	now := domain.Now()
	property := &domain.Property{
		Code:      "IMV-" + randomHex(t),
		Title:     "Two bedroom apartment",
		Type:      string(domain.PropertyTypeResidential),
		Status:    string(domain.PropertyStatusAvailable),
		Price:     450000,
		City:      "Lisbon",
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, m := range mutate {
		m(property)
	}
	require.NoError(t, db.Create(property).Error)
	return property
}

func randomHex(t *testing.T) string {
	t.Helper()
	buf := make([]byte, 3)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return fmt.Sprintf("%X", buf)
}

// CreateTestClient inserts a client with sane defaults.
func CreateTestClient(t *testing.T, db *gorm.DB, mutate ...func(*domain.Client)) *domain.Client {
	t.Helper()

	now := domain.Now()
	client := &domain.Client{
		Name:      "Maria Silva",
		Email:     "maria@example.com",
		Type:      string(domain.ClientTypeBuyer),
		Stage:     string(domain.ClientStageNew),
		CreatedAt: now,
		UpdatedAt: now,
	}
	for _, m := range mutate {
		m(client)
	}
	require.NoError(t, db.Create(client).Error)
	return client
}

// CreateTestVisit inserts a visit referencing the given parents.
func CreateTestVisit(t *testing.T, db *gorm.DB, propertyID, clientID uint, mutate ...func(*domain.Visit)) *domain.Visit {
	t.Helper()

	now := domain.Now()
	visit := &domain.Visit{
		PropertyID:  propertyID,
		ClientID:    clientID,
		ScheduledAt: now,
		Status:      string(domain.VisitStatusScheduled),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, m := range mutate {
		m(visit)
	}
	require.NoError(t, db.Create(visit).Error)
	return visit
}

// CreateTestContract inserts a contract referencing the given parents.
func CreateTestContract(t *testing.T, db *gorm.DB, propertyID, clientID uint, mutate ...func(*domain.Contract)) *domain.Contract {
	t.Helper()

	now := domain.Now()
	contract := &domain.Contract{
		PropertyID: propertyID,
		ClientID:   clientID,
		Type:       string(domain.ContractTypeSale),
		StartDate:  "2025-06-01",
		Value:      450000,
		Status:     string(domain.ContractStatusDraft),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	for _, m := range mutate {
		m(contract)
	}
	require.NoError(t, db.Create(contract).Error)
	return contract
}
