package db

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// LoadTestData seeds a demo landlord, tenant, unit, and lease so the
// dashboard and relationship summary have something to show. Skipped when
// the demo landlord already exists.
func LoadTestData(db *sql.DB) error {
	var exists bool
	if err := db.QueryRow("SELECT EXISTS(SELECT 1 FROM contacts WHERE name = 'John Doe')").Scan(&exists); err != nil {
		return fmt.Errorf("checking for test data: %w", err)
	}
	if exists {
		slog.Info("test data already present, skipping")
		return nil
	}

	slog.Info("loading test data")

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("starting test data transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(`INSERT INTO contacts (name, contact_type, email, phone, address)
		VALUES ('John Doe', 'LANDLORD', 'john.doe@example.com', '555-123-4567', '123 Landlord St, Property City, PC 12345')`)
	if err != nil {
		return fmt.Errorf("creating test landlord: %w", err)
	}
	landlordID, _ := res.LastInsertId()

	res, err = tx.Exec(`INSERT INTO contacts (name, contact_type, email, phone, address)
		VALUES ('Jane Smith', 'TENANT', 'jane.smith@example.com', '555-765-4321', '456 Tenant Ave, Renter City, RC 54321')`)
	if err != nil {
		return fmt.Errorf("creating test tenant: %w", err)
	}
	tenantID, _ := res.LastInsertId()

	res, err = tx.Exec(`INSERT INTO units (unit_number, type, location, value, status, owner_id)
		VALUES ('A1', 'APARTMENT', '789 Property Blvd, Rental City, RC 67890', 250000.00, 'OCCUPIED', ?)`, landlordID)
	if err != nil {
		return fmt.Errorf("creating test unit: %w", err)
	}
	unitID, _ := res.LastInsertId()

	_, err = tx.Exec(`INSERT INTO leases (unit_id, tenant_id, landlord_id, start_date, duration_months, rent_amount, payment_frequency)
		VALUES (?, ?, ?, '2025-01-01', 12, 1500.00, 'MONTHLY')`, unitID, tenantID, landlordID)
	if err != nil {
		return fmt.Errorf("creating test lease: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing test data: %w", err)
	}

	slog.Info("test data created")
	return nil
}
