package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/satheeshds/property/models"
	"github.com/satheeshds/property/store"
)

func TestContactCRUD(t *testing.T) {
	s := newTestStore(t)

	email := "john.doe@example.com"
	created, err := s.CreateContact(models.ContactInput{
		Name:        "John Doe",
		ContactType: models.ContactLandlord,
		Email:       &email,
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, models.ContactLandlord, created.ContactType)
	require.NotNil(t, created.Email)
	assert.Equal(t, email, *created.Email)
	assert.False(t, created.CreatedAt.IsZero())

	got, err := s.GetContact(created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "John Doe", got.Name)

	updated, err := s.UpdateContact(created.ID, models.ContactInput{
		Name:        "John Q. Doe",
		ContactType: models.ContactLandlord,
	})
	require.NoError(t, err)
	assert.Equal(t, "John Q. Doe", updated.Name)

	require.NoError(t, s.DeleteContact(created.ID))
	_, err = s.GetContact(created.ID)
	requireKind(t, err, store.KindNotFound)
}

func TestCreateContactValidation(t *testing.T) {
	s := newTestStore(t)

	_, err := s.CreateContact(models.ContactInput{ContactType: models.ContactTenant})
	requireKind(t, err, store.KindValidation)

	_, err = s.CreateContact(models.ContactInput{Name: "X", ContactType: "OWNER"})
	requireKind(t, err, store.KindValidation)
}

func TestListContactsFilter(t *testing.T) {
	s := newTestStore(t)

	createLandlord(t, s, "Alice Landlord")
	createLandlord(t, s, "Bob Landlord")
	createTenant(t, s, "Carol Tenant")

	landlords, err := s.ListContacts(store.ContactFilter{ContactType: models.ContactLandlord})
	require.NoError(t, err)
	assert.Len(t, landlords, 2)

	tenants, err := s.ListContacts(store.ContactFilter{ContactType: models.ContactTenant})
	require.NoError(t, err)
	assert.Len(t, tenants, 1)
	assert.Equal(t, "Carol Tenant", tenants[0].Name)

	found, err := s.ListContacts(store.ContactFilter{Search: "bob"})
	require.NoError(t, err)
	assert.Len(t, found, 1)
	assert.Equal(t, "Bob Landlord", found[0].Name)

	all, err := s.ListContacts(store.ContactFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)
	// Ordered by name
	assert.Equal(t, "Alice Landlord", all[0].Name)
}

func TestContactTypeImmutableWhileReferenced(t *testing.T) {
	s := newTestStore(t)

	landlord := createLandlord(t, s, "John Doe")
	createUnit(t, s, landlord.ID, "A1", models.StatusVacant)

	_, err := s.UpdateContact(landlord.ID, models.ContactInput{
		Name:        "John Doe",
		ContactType: models.ContactTenant,
	})
	se := requireKind(t, err, store.KindValidation)
	assert.Equal(t, "contact_type", se.Field)

	// Still a landlord
	got, err := s.GetContact(landlord.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContactLandlord, got.ContactType)

	// Unreferenced contacts may switch type
	free := createTenant(t, s, "Jane Smith")
	switched, err := s.UpdateContact(free.ID, models.ContactInput{
		Name:        "Jane Smith",
		ContactType: models.ContactLandlord,
	})
	require.NoError(t, err)
	assert.Equal(t, models.ContactLandlord, switched.ContactType)
}

func TestDeleteContactCascades(t *testing.T) {
	s := newTestStore(t)

	landlord := createLandlord(t, s, "John Doe")
	tenant := createTenant(t, s, "Jane Smith")
	unit := createUnit(t, s, landlord.ID, "A1", models.StatusVacant)
	lease, err := s.CreateLease(leaseInput(unit.ID, tenant.ID, landlord.ID))
	require.NoError(t, err)

	require.NoError(t, s.DeleteContact(landlord.ID))

	_, err = s.GetUnit(unit.ID)
	requireKind(t, err, store.KindNotFound)
	_, err = s.GetLease(lease.ID)
	requireKind(t, err, store.KindNotFound)

	// The tenant is untouched
	_, err = s.GetContact(tenant.ID)
	require.NoError(t, err)
}

func TestDeleteContactAsTenantCascadesLeaseOnly(t *testing.T) {
	s := newTestStore(t)

	landlord := createLandlord(t, s, "John Doe")
	tenant := createTenant(t, s, "Jane Smith")
	unit := createUnit(t, s, landlord.ID, "A1", models.StatusVacant)
	lease, err := s.CreateLease(leaseInput(unit.ID, tenant.ID, landlord.ID))
	require.NoError(t, err)

	require.NoError(t, s.DeleteContact(tenant.ID))

	_, err = s.GetLease(lease.ID)
	requireKind(t, err, store.KindNotFound)

	// Unit and landlord survive
	_, err = s.GetUnit(unit.ID)
	require.NoError(t, err)
	_, err = s.GetContact(landlord.ID)
	require.NoError(t, err)
}

func TestDeleteContactNotFound(t *testing.T) {
	s := newTestStore(t)
	requireKind(t, s.DeleteContact(99), store.KindNotFound)
}
