package store

import (
	"database/sql"
	"errors"
	"strconv"
	"strings"

	"github.com/satheeshds/property/models"
)

const unitSelectQuery = `SELECT u.id, u.unit_number, u.type, u.location, u.value, u.status, u.owner_id,
	COALESCE(c.name, ''), c.email, c.phone,
	u.created_at, u.updated_at
	FROM units u
	LEFT JOIN contacts c ON u.owner_id = c.id`

func scanUnit(scanner interface{ Scan(...any) error }) (models.Unit, error) {
	var u models.Unit
	err := scanner.Scan(&u.ID, &u.UnitNumber, &u.Type, &u.Location, &u.Value, &u.Status, &u.OwnerID,
		&u.OwnerName, &u.OwnerEmail, &u.OwnerPhone, &u.CreatedAt, &u.UpdatedAt)
	return u, err
}

// UnitFilter narrows ListUnits results.
type UnitFilter struct {
	Status  string
	Type    string
	OwnerID int
	Search  string // Matches unit_number or location
}

// ListUnits returns units ordered by unit number.
func (s *Store) ListUnits(f UnitFilter) ([]models.Unit, error) {
	query := unitSelectQuery
	var conditions []string
	var args []any

	if f.Status != "" {
		conditions = append(conditions, "u.status = ?")
		args = append(args, f.Status)
	}
	if f.Type != "" {
		conditions = append(conditions, "u.type = ?")
		args = append(args, f.Type)
	}
	if f.OwnerID > 0 {
		conditions = append(conditions, "u.owner_id = ?")
		args = append(args, f.OwnerID)
	}
	if f.Search != "" {
		conditions = append(conditions, "(u.unit_number LIKE ? OR u.location LIKE ?)")
		p := "%" + f.Search + "%"
		args = append(args, p, p)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY u.unit_number"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	units := []models.Unit{}
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

// GetUnit returns a single unit by id, with owner details joined in.
func (s *Store) GetUnit(id int) (models.Unit, error) {
	u, err := scanUnit(s.db.QueryRow(unitSelectQuery+" WHERE u.id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Unit{}, notFound("", "unit not found")
	}
	return u, err
}

// CreateUnit persists a new unit after checking that its owner exists and
// is a landlord.
func (s *Store) CreateUnit(input models.UnitInput) (models.Unit, error) {
	if msg := input.Validate(); msg != "" {
		return models.Unit{}, validationErr("", msg)
	}
	if err := s.checkUnitOwner(s.db, input.OwnerID); err != nil {
		return models.Unit{}, err
	}
	if err := s.checkUnitNumber(input.UnitNumber, 0); err != nil {
		return models.Unit{}, err
	}

	res, err := s.db.Exec("INSERT INTO units (unit_number, type, location, value, status, owner_id) VALUES (?, ?, ?, ?, ?, ?)",
		input.UnitNumber, input.Type, input.Location, input.Value, input.Status, input.OwnerID)
	if err != nil {
		return models.Unit{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Unit{}, err
	}
	return s.GetUnit(int(id))
}

// UpdateUnit updates an existing unit, re-running the owner role check.
func (s *Store) UpdateUnit(id int, input models.UnitInput) (models.Unit, error) {
	if msg := input.Validate(); msg != "" {
		return models.Unit{}, validationErr("", msg)
	}
	if err := s.checkUnitOwner(s.db, input.OwnerID); err != nil {
		return models.Unit{}, err
	}
	if err := s.checkUnitNumber(input.UnitNumber, id); err != nil {
		return models.Unit{}, err
	}

	res, err := s.db.Exec(`UPDATE units SET unit_number = ?, type = ?, location = ?, value = ?, status = ?, owner_id = ?,
		updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		input.UnitNumber, input.Type, input.Location, input.Value, input.Status, input.OwnerID, id)
	if err != nil {
		return models.Unit{}, err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return models.Unit{}, notFound("", "unit not found")
	}
	return s.GetUnit(id)
}

// DeleteUnit removes a unit and its leases in one transaction.
func (s *Store) DeleteUnit(id int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM leases WHERE unit_id = ?", id); err != nil {
		return err
	}
	res, err := tx.Exec("DELETE FROM units WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("", "unit not found")
	}
	return tx.Commit()
}

// checkUnitOwner verifies the owner contact exists and is a landlord.
func (s *Store) checkUnitOwner(q queryer, ownerID int) error {
	var contactType string
	err := q.QueryRow("SELECT contact_type FROM contacts WHERE id = ?", ownerID).Scan(&contactType)
	if errors.Is(err, sql.ErrNoRows) {
		return notFound("owner_id", "owner contact not found")
	}
	if err != nil {
		return err
	}
	if contactType != models.ContactLandlord {
		return roleViolation("owner_id", "unit owner must be a contact of type LANDLORD")
	}
	return nil
}

// checkUnitNumber enforces global uniqueness of unit numbers. selfID
// excludes the unit being updated.
func (s *Store) checkUnitNumber(unitNumber string, selfID int) error {
	var taken bool
	err := s.db.QueryRow("SELECT EXISTS(SELECT 1 FROM units WHERE unit_number = ? AND id != ?)", unitNumber, selfID).Scan(&taken)
	if err != nil {
		return err
	}
	if taken {
		return validationErr("unit_number", "unit_number "+strconv.Quote(unitNumber)+" is already in use")
	}
	return nil
}
