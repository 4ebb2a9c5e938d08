package store_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/satheeshds/property/db"
	"github.com/satheeshds/property/models"
	"github.com/satheeshds/property/store"
)

// newTestStore opens a fresh in-memory database with the real migrations
// applied.
func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	sqlDB, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.Migrate(sqlDB))
	return store.New(sqlDB)
}

func createLandlord(t *testing.T, s *store.Store, name string) models.Contact {
	t.Helper()
	c, err := s.CreateContact(models.ContactInput{Name: name, ContactType: models.ContactLandlord})
	require.NoError(t, err)
	return c
}

func createTenant(t *testing.T, s *store.Store, name string) models.Contact {
	t.Helper()
	c, err := s.CreateContact(models.ContactInput{Name: name, ContactType: models.ContactTenant})
	require.NoError(t, err)
	return c
}

func createUnit(t *testing.T, s *store.Store, ownerID int, unitNumber, status string) models.Unit {
	t.Helper()
	u, err := s.CreateUnit(models.UnitInput{
		UnitNumber: unitNumber,
		Type:       models.UnitApartment,
		Location:   "1 Test St",
		Value:      250000,
		Status:     status,
		OwnerID:    ownerID,
	})
	require.NoError(t, err)
	return u
}

func leaseInput(unitID, tenantID, landlordID int) models.LeaseInput {
	return models.LeaseInput{
		UnitID:           unitID,
		TenantID:         tenantID,
		LandlordID:       landlordID,
		StartDate:        "2025-01-01",
		DurationMonths:   12,
		RentAmount:       1500,
		PaymentFrequency: models.FreqMonthly,
	}
}

// requireKind asserts err is a store.Error of the given kind.
func requireKind(t *testing.T, err error, kind store.Kind) *store.Error {
	t.Helper()
	require.Error(t, err)
	se, ok := err.(*store.Error)
	require.True(t, ok, "expected *store.Error, got %T: %v", err, err)
	require.Equal(t, kind, se.Kind, "unexpected error kind: %v", err)
	return se
}
