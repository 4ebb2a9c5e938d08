package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/satheeshds/property/models"
)

// UnitsSummary counts units per status.
type UnitsSummary struct {
	Total         int    `json:"total"`
	Vacant        int    `json:"vacant"`
	Occupied      int    `json:"occupied"`
	Maintenance   int    `json:"maintenance"`
	OccupancyRate string `json:"occupancy_rate"`
}

// LandlordSummary is a landlord with the number of units it owns.
type LandlordSummary struct {
	ID         int    `json:"id"`
	Name       string `json:"name"`
	UnitsCount int    `json:"units_count"`
}

// RentIncomeSummary totals rent across leases, overall and per payment
// frequency.
type RentIncomeSummary struct {
	TotalMonthlyRent    float64 `json:"total_monthly_rent"`
	TotalQuarterlyRent  float64 `json:"total_quarterly_rent"`
	TotalSemiAnnualRent float64 `json:"total_semi_annual_rent"`
	TotalAnnualRent     float64 `json:"total_annual_rent"`
	TotalRent           float64 `json:"total_rent"`
	AverageRent         string  `json:"average_rent"` // total rent / occupied units
}

// DashboardSummary aggregates the current store state for the dashboard.
type DashboardSummary struct {
	UnitsSummary      UnitsSummary      `json:"units_summary"`
	LandlordsSummary  []LandlordSummary `json:"landlords_summary"`
	RentIncomeSummary RentIncomeSummary `json:"rent_income_summary"`
	LatestLease       *models.Lease     `json:"latest_lease"`
}

// Dashboard computes all dashboard aggregates fresh from the current
// store state. Read-only.
func (s *Store) Dashboard() (DashboardSummary, error) {
	var d DashboardSummary

	rows, err := s.db.Query("SELECT status, COUNT(*) FROM units GROUP BY status")
	if err != nil {
		return d, err
	}
	defer rows.Close()
	for rows.Next() {
		var status string
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return d, err
		}
		d.UnitsSummary.Total += count
		switch status {
		case models.StatusVacant:
			d.UnitsSummary.Vacant = count
		case models.StatusOccupied:
			d.UnitsSummary.Occupied = count
		case models.StatusMaintenance:
			d.UnitsSummary.Maintenance = count
		}
	}
	if err := rows.Err(); err != nil {
		return d, err
	}

	if d.UnitsSummary.Total == 0 {
		d.UnitsSummary.OccupancyRate = "0%"
	} else {
		rate := float64(d.UnitsSummary.Occupied) / float64(d.UnitsSummary.Total) * 100
		d.UnitsSummary.OccupancyRate = fmt.Sprintf("%.2f%%", rate)
	}

	d.LandlordsSummary, err = s.landlordsSummary()
	if err != nil {
		return d, err
	}

	d.RentIncomeSummary, err = s.rentIncomeSummary(d.UnitsSummary.Occupied)
	if err != nil {
		return d, err
	}

	latest, err := scanLease(s.db.QueryRow(leaseSelectQuery + " ORDER BY l.created_at DESC, l.id DESC LIMIT 1"))
	if err == nil {
		d.LatestLease = &latest
	} else if !errors.Is(err, sql.ErrNoRows) {
		return d, err
	}

	return d, nil
}

func (s *Store) landlordsSummary() ([]LandlordSummary, error) {
	rows, err := s.db.Query(`SELECT c.id, c.name, COUNT(u.id)
		FROM contacts c
		LEFT JOIN units u ON u.owner_id = c.id
		WHERE c.contact_type = ?
		GROUP BY c.id, c.name
		ORDER BY c.id`, models.ContactLandlord)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	landlords := []LandlordSummary{}
	for rows.Next() {
		var l LandlordSummary
		if err := rows.Scan(&l.ID, &l.Name, &l.UnitsCount); err != nil {
			return nil, err
		}
		landlords = append(landlords, l)
	}
	return landlords, rows.Err()
}

func (s *Store) rentIncomeSummary(occupiedUnits int) (RentIncomeSummary, error) {
	var r RentIncomeSummary

	byFreq := map[string]*float64{
		models.FreqMonthly:    &r.TotalMonthlyRent,
		models.FreqQuarterly:  &r.TotalQuarterlyRent,
		models.FreqSemiAnnual: &r.TotalSemiAnnualRent,
		models.FreqAnnual:     &r.TotalAnnualRent,
	}

	rows, err := s.db.Query("SELECT payment_frequency, COALESCE(SUM(rent_amount), 0) FROM leases GROUP BY payment_frequency")
	if err != nil {
		return r, err
	}
	defer rows.Close()
	for rows.Next() {
		var freq string
		var total float64
		if err := rows.Scan(&freq, &total); err != nil {
			return r, err
		}
		if dst, ok := byFreq[freq]; ok {
			*dst = total
		}
		r.TotalRent += total
	}
	if err := rows.Err(); err != nil {
		return r, err
	}

	avg := 0.0
	if occupiedUnits > 0 {
		avg = r.TotalRent / float64(occupiedUnits)
	}
	r.AverageRent = fmt.Sprintf("%.2f", avg)

	return r, nil
}

// Relationship is a descriptive edge between two demo records.
type Relationship struct {
	Type string `json:"type"`
	From string `json:"from"`
	To   string `json:"to"`
}

// DemoRecords holds the first-created record of each kind. These are the
// seed records when test data has been loaded, but the query is just
// "oldest row", not a hidden link.
type DemoRecords struct {
	Landlord *models.Contact `json:"landlord"`
	Tenant   *models.Contact `json:"tenant"`
	Unit     *models.Unit    `json:"unit"`
	Lease    *models.Lease   `json:"lease"`
}

// RelationshipSummary describes how the first-created landlord, tenant,
// unit, and lease relate to each other.
type RelationshipSummary struct {
	TestData      DemoRecords    `json:"test_data"`
	Relationships []Relationship `json:"relationships"`
}

// Relationships builds the relationship summary. Each edge is present
// only when all of its constituent records exist.
func (s *Store) Relationships() (RelationshipSummary, error) {
	var r RelationshipSummary
	r.Relationships = []Relationship{}

	for _, ct := range []struct {
		contactType string
		dst         **models.Contact
	}{
		{models.ContactLandlord, &r.TestData.Landlord},
		{models.ContactTenant, &r.TestData.Tenant},
	} {
		c, err := scanContact(s.db.QueryRow(contactSelectQuery+" WHERE contact_type = ? ORDER BY id LIMIT 1", ct.contactType))
		if err == nil {
			contact := c
			*ct.dst = &contact
		} else if !errors.Is(err, sql.ErrNoRows) {
			return r, err
		}
	}

	u, err := scanUnit(s.db.QueryRow(unitSelectQuery + " ORDER BY u.id LIMIT 1"))
	if err == nil {
		r.TestData.Unit = &u
	} else if !errors.Is(err, sql.ErrNoRows) {
		return r, err
	}

	l, err := scanLease(s.db.QueryRow(leaseSelectQuery + " ORDER BY l.id LIMIT 1"))
	if err == nil {
		r.TestData.Lease = &l
	} else if !errors.Is(err, sql.ErrNoRows) {
		return r, err
	}

	if r.TestData.Landlord != nil && r.TestData.Unit != nil {
		r.Relationships = append(r.Relationships, Relationship{
			Type: "Landlord owns Unit",
			From: "Landlord: " + r.TestData.Landlord.Name,
			To:   "Unit: " + r.TestData.Unit.UnitNumber,
		})
	}
	if r.TestData.Tenant != nil && r.TestData.Lease != nil && r.TestData.Unit != nil {
		r.Relationships = append(r.Relationships, Relationship{
			Type: "Tenant leases Unit",
			From: "Tenant: " + r.TestData.Tenant.Name,
			To:   "Unit: " + r.TestData.Unit.UnitNumber,
		})
	}
	if r.TestData.Landlord != nil && r.TestData.Lease != nil && r.TestData.Tenant != nil {
		r.Relationships = append(r.Relationships, Relationship{
			Type: "Landlord leases to Tenant",
			From: "Landlord: " + r.TestData.Landlord.Name,
			To:   "Tenant: " + r.TestData.Tenant.Name,
		})
	}

	return r, nil
}
