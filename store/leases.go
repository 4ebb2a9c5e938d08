package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/satheeshds/property/models"
)

const leaseSelectQuery = `SELECT l.id, l.unit_id, l.tenant_id, l.landlord_id,
	COALESCE(u.unit_number, ''), COALESCE(t.name, ''), COALESCE(ld.name, ''),
	l.start_date, l.duration_months, l.rent_amount, l.payment_frequency,
	l.created_at, l.updated_at
	FROM leases l
	LEFT JOIN units u ON l.unit_id = u.id
	LEFT JOIN contacts t ON l.tenant_id = t.id
	LEFT JOIN contacts ld ON l.landlord_id = ld.id`

func scanLease(scanner interface{ Scan(...any) error }) (models.Lease, error) {
	var l models.Lease
	err := scanner.Scan(&l.ID, &l.UnitID, &l.TenantID, &l.LandlordID,
		&l.UnitNumber, &l.TenantName, &l.LandlordName,
		&l.StartDate, &l.DurationMonths, &l.RentAmount, &l.PaymentFrequency,
		&l.CreatedAt, &l.UpdatedAt)
	if err == nil {
		l.EndDate = l.EndDateString()
	}
	return l, err
}

// LeaseFilter narrows ListLeases results.
type LeaseFilter struct {
	UnitID           int
	TenantID         int
	LandlordID       int
	PaymentFrequency string
	Search           string // Matches unit number, tenant name, or landlord name
}

// ListLeases returns leases ordered by start date, newest first.
func (s *Store) ListLeases(f LeaseFilter) ([]models.Lease, error) {
	query := leaseSelectQuery
	var conditions []string
	var args []any

	if f.UnitID > 0 {
		conditions = append(conditions, "l.unit_id = ?")
		args = append(args, f.UnitID)
	}
	if f.TenantID > 0 {
		conditions = append(conditions, "l.tenant_id = ?")
		args = append(args, f.TenantID)
	}
	if f.LandlordID > 0 {
		conditions = append(conditions, "l.landlord_id = ?")
		args = append(args, f.LandlordID)
	}
	if f.PaymentFrequency != "" {
		conditions = append(conditions, "l.payment_frequency = ?")
		args = append(args, f.PaymentFrequency)
	}
	if f.Search != "" {
		conditions = append(conditions, "(u.unit_number LIKE ? OR t.name LIKE ? OR ld.name LIKE ?)")
		p := "%" + f.Search + "%"
		args = append(args, p, p, p)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY l.start_date DESC"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leases := []models.Lease{}
	for rows.Next() {
		l, err := scanLease(rows)
		if err != nil {
			return nil, err
		}
		leases = append(leases, l)
	}
	return leases, rows.Err()
}

// GetLease returns a single lease by id, with joined names and the
// computed end date.
func (s *Store) GetLease(id int) (models.Lease, error) {
	l, err := scanLease(s.db.QueryRow(leaseSelectQuery+" WHERE l.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Lease{}, notFound("", "lease not found")
	}
	return l, err
}

// CreateLease validates and persists a new lease. The rule checks, the
// occupancy pre-check, and the unit status change all happen inside one
// transaction: a failed write leaves the unit exactly as it was.
func (s *Store) CreateLease(input models.LeaseInput) (models.Lease, error) {
	return s.writeLease(input, 0)
}

// UpdateLease re-validates and persists an existing lease. The occupancy
// pre-check applies to creates only; an update against the (necessarily
// occupied) unit of its own lease must not reject itself.
func (s *Store) UpdateLease(id int, input models.LeaseInput) (models.Lease, error) {
	return s.writeLease(input, id)
}

func (s *Store) writeLease(input models.LeaseInput, leaseID int) (models.Lease, error) {
	if msg := input.Validate(); msg != "" {
		return models.Lease{}, validationErr("", msg)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return models.Lease{}, err
	}
	defer tx.Rollback()

	if err := checkContactRole(tx, input.TenantID, "tenant_id", models.ContactTenant); err != nil {
		return models.Lease{}, err
	}
	if err := checkContactRole(tx, input.LandlordID, "landlord_id", models.ContactLandlord); err != nil {
		return models.Lease{}, err
	}

	var ownerID int
	var status string
	err = tx.QueryRow("SELECT owner_id, status FROM units WHERE id = ?", input.UnitID).Scan(&ownerID, &status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Lease{}, notFound("unit_id", "unit not found")
	}
	if err != nil {
		return models.Lease{}, err
	}
	if input.LandlordID != ownerID {
		return models.Lease{}, ownershipMismatch("landlord_id", "landlord must be the owner of the unit")
	}
	if leaseID == 0 && status == models.StatusOccupied {
		return models.Lease{}, alreadyOccupied("unit_id", "unit is already occupied and cannot be leased")
	}

	if status != models.StatusOccupied {
		if _, err := tx.Exec("UPDATE units SET status = 'OCCUPIED', updated_at = CURRENT_TIMESTAMP WHERE id = ?", input.UnitID); err != nil {
			return models.Lease{}, err
		}
	}

	if leaseID == 0 {
		res, err := tx.Exec(`INSERT INTO leases (unit_id, tenant_id, landlord_id, start_date, duration_months, rent_amount, payment_frequency)
			VALUES (?, ?, ?, ?, ?, ?, ?)`,
			input.UnitID, input.TenantID, input.LandlordID, input.StartDate,
			input.DurationMonths, input.RentAmount, input.PaymentFrequency)
		if err != nil {
			return models.Lease{}, err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return models.Lease{}, err
		}
		leaseID = int(id)
	} else {
		res, err := tx.Exec(`UPDATE leases SET unit_id = ?, tenant_id = ?, landlord_id = ?, start_date = ?,
			duration_months = ?, rent_amount = ?, payment_frequency = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
			input.UnitID, input.TenantID, input.LandlordID, input.StartDate,
			input.DurationMonths, input.RentAmount, input.PaymentFrequency, leaseID)
		if err != nil {
			return models.Lease{}, err
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return models.Lease{}, notFound("", "lease not found")
		}
	}

	if err := tx.Commit(); err != nil {
		return models.Lease{}, err
	}
	return s.GetLease(leaseID)
}

// DeleteLease removes a lease. The unit keeps its OCCUPIED status; nothing
// ever transitions a unit back to VACANT automatically.
func (s *Store) DeleteLease(id int) error {
	res, err := s.db.Exec("DELETE FROM leases WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("", "lease not found")
	}
	return nil
}

// checkContactRole verifies the contact exists and has the expected type.
func checkContactRole(q queryer, id int, field, want string) error {
	var contactType string
	err := q.QueryRow("SELECT contact_type FROM contacts WHERE id = ?", id).Scan(&contactType)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound(field, "contact not found")
	}
	if err != nil {
		return err
	}
	if contactType != want {
		return roleViolation(field, "contact must be of type "+want)
	}
	return nil
}
