package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satheeshds/property/models"
	"github.com/satheeshds/property/store"
)

func TestDashboardEmptyStore(t *testing.T) {
	s := newTestStore(t)

	d, err := s.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 0, d.UnitsSummary.Total)
	assert.Equal(t, "0%", d.UnitsSummary.OccupancyRate)
	assert.Empty(t, d.LandlordsSummary)
	assert.Equal(t, 0.0, d.RentIncomeSummary.TotalRent)
	assert.Equal(t, "0.00", d.RentIncomeSummary.AverageRent)
	assert.Nil(t, d.LatestLease)
}

func TestDashboardOccupancyRate(t *testing.T) {
	s := newTestStore(t)
	landlord := createLandlord(t, s, "John Doe")

	createUnit(t, s, landlord.ID, "A1", models.StatusVacant)
	createUnit(t, s, landlord.ID, "A2", models.StatusOccupied)
	createUnit(t, s, landlord.ID, "A3", models.StatusOccupied)

	d, err := s.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 3, d.UnitsSummary.Total)
	assert.Equal(t, 1, d.UnitsSummary.Vacant)
	assert.Equal(t, 2, d.UnitsSummary.Occupied)
	assert.Equal(t, 0, d.UnitsSummary.Maintenance)
	assert.Equal(t, "66.67%", d.UnitsSummary.OccupancyRate)
}

func TestDashboardLandlordsSummary(t *testing.T) {
	s := newTestStore(t)
	alice := createLandlord(t, s, "Alice")
	bob := createLandlord(t, s, "Bob")
	createTenant(t, s, "Carol")

	createUnit(t, s, alice.ID, "A1", models.StatusVacant)
	createUnit(t, s, alice.ID, "A2", models.StatusVacant)

	d, err := s.Dashboard()
	require.NoError(t, err)

	require.Len(t, d.LandlordsSummary, 2)
	assert.Equal(t, store.LandlordSummary{ID: alice.ID, Name: "Alice", UnitsCount: 2}, d.LandlordsSummary[0])
	// Landlords without units still appear, with a zero count
	assert.Equal(t, store.LandlordSummary{ID: bob.ID, Name: "Bob", UnitsCount: 0}, d.LandlordsSummary[1])
}

func TestDashboardRentSummary(t *testing.T) {
	s := newTestStore(t)
	landlord := createLandlord(t, s, "John Doe")
	tenant := createTenant(t, s, "Jane Smith")

	frequencies := []struct {
		freq string
		rent float64
	}{
		{models.FreqMonthly, 1500},
		{models.FreqMonthly, 500},
		{models.FreqQuarterly, 4500},
		{models.FreqAnnual, 18000},
	}
	numbers := []string{"A1", "A2", "A3", "A4"}
	for i, f := range frequencies {
		unit := createUnit(t, s, landlord.ID, numbers[i], models.StatusVacant)
		input := leaseInput(unit.ID, tenant.ID, landlord.ID)
		input.PaymentFrequency = f.freq
		input.RentAmount = f.rent
		_, err := s.CreateLease(input)
		require.NoError(t, err)
	}

	d, err := s.Dashboard()
	require.NoError(t, err)

	assert.Equal(t, 2000.0, d.RentIncomeSummary.TotalMonthlyRent)
	assert.Equal(t, 4500.0, d.RentIncomeSummary.TotalQuarterlyRent)
	assert.Equal(t, 0.0, d.RentIncomeSummary.TotalSemiAnnualRent)
	assert.Equal(t, 18000.0, d.RentIncomeSummary.TotalAnnualRent)
	assert.Equal(t, 24500.0, d.RentIncomeSummary.TotalRent)
	// 24500 across 4 occupied units
	assert.Equal(t, "6125.00", d.RentIncomeSummary.AverageRent)

	require.NotNil(t, d.LatestLease)
	assert.Equal(t, "A4", d.LatestLease.UnitNumber)
}

func TestRelationshipsEmptyStore(t *testing.T) {
	s := newTestStore(t)

	r, err := s.Relationships()
	require.NoError(t, err)

	assert.Nil(t, r.TestData.Landlord)
	assert.Nil(t, r.TestData.Tenant)
	assert.Nil(t, r.TestData.Unit)
	assert.Nil(t, r.TestData.Lease)
	assert.Empty(t, r.Relationships)
}

func TestRelationshipsPartialData(t *testing.T) {
	s := newTestStore(t)
	landlord := createLandlord(t, s, "John Doe")
	createUnit(t, s, landlord.ID, "A1", models.StatusVacant)

	r, err := s.Relationships()
	require.NoError(t, err)

	require.NotNil(t, r.TestData.Landlord)
	require.NotNil(t, r.TestData.Unit)
	assert.Nil(t, r.TestData.Tenant)
	assert.Nil(t, r.TestData.Lease)

	// Only the ownership edge exists without a tenant and lease
	require.Len(t, r.Relationships, 1)
	assert.Equal(t, store.Relationship{
		Type: "Landlord owns Unit",
		From: "Landlord: John Doe",
		To:   "Unit: A1",
	}, r.Relationships[0])
}

func TestRelationshipsFullGraph(t *testing.T) {
	s := newTestStore(t)
	landlord := createLandlord(t, s, "John Doe")
	tenant := createTenant(t, s, "Jane Smith")
	unit := createUnit(t, s, landlord.ID, "A1", models.StatusVacant)
	_, err := s.CreateLease(leaseInput(unit.ID, tenant.ID, landlord.ID))
	require.NoError(t, err)

	// Later records must not displace the first-created ones
	createLandlord(t, s, "Second Landlord")
	createTenant(t, s, "Second Tenant")

	r, err := s.Relationships()
	require.NoError(t, err)

	require.NotNil(t, r.TestData.Landlord)
	assert.Equal(t, "John Doe", r.TestData.Landlord.Name)
	require.NotNil(t, r.TestData.Tenant)
	assert.Equal(t, "Jane Smith", r.TestData.Tenant.Name)
	require.NotNil(t, r.TestData.Unit)
	require.NotNil(t, r.TestData.Lease)

	require.Len(t, r.Relationships, 3)
	assert.Equal(t, "Landlord owns Unit", r.Relationships[0].Type)
	assert.Equal(t, "Tenant leases Unit", r.Relationships[1].Type)
	assert.Equal(t, store.Relationship{
		Type: "Landlord leases to Tenant",
		From: "Landlord: John Doe",
		To:   "Tenant: Jane Smith",
	}, r.Relationships[2])
}
