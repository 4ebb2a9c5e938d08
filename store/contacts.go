package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/satheeshds/property/models"
)

const contactSelectQuery = `SELECT id, name, contact_type, email, phone, address, created_at, updated_at FROM contacts`

func scanContact(scanner interface{ Scan(...any) error }) (models.Contact, error) {
	var c models.Contact
	err := scanner.Scan(&c.ID, &c.Name, &c.ContactType, &c.Email, &c.Phone, &c.Address, &c.CreatedAt, &c.UpdatedAt)
	return c, err
}

// ContactFilter narrows ListContacts results.
type ContactFilter struct {
	ContactType string
	Search      string // Matches name, email, or phone
}

// ListContacts returns contacts ordered by name.
func (s *Store) ListContacts(f ContactFilter) ([]models.Contact, error) {
	query := contactSelectQuery
	var conditions []string
	var args []any

	if f.ContactType != "" {
		conditions = append(conditions, "contact_type = ?")
		args = append(args, f.ContactType)
	}
	if f.Search != "" {
		conditions = append(conditions, "(name LIKE ? OR email LIKE ? OR phone LIKE ?)")
		p := "%" + f.Search + "%"
		args = append(args, p, p, p)
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY name"

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	contacts := []models.Contact{}
	for rows.Next() {
		c, err := scanContact(rows)
		if err != nil {
			return nil, err
		}
		contacts = append(contacts, c)
	}
	return contacts, rows.Err()
}

// GetContact returns a single contact by id.
func (s *Store) GetContact(id int) (models.Contact, error) {
	c, err := scanContact(s.db.QueryRow(contactSelectQuery+" WHERE id = ?", id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, notFound("", "contact not found")
	}
	return c, err
}

// CreateContact persists a new contact.
func (s *Store) CreateContact(input models.ContactInput) (models.Contact, error) {
	if msg := input.Validate(); msg != "" {
		return models.Contact{}, validationErr("", msg)
	}

	res, err := s.db.Exec("INSERT INTO contacts (name, contact_type, email, phone, address) VALUES (?, ?, ?, ?, ?)",
		input.Name, input.ContactType, input.Email, input.Phone, input.Address)
	if err != nil {
		return models.Contact{}, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return models.Contact{}, err
	}
	return s.GetContact(int(id))
}

// UpdateContact updates an existing contact. The contact_type of a contact
// referenced by any unit or lease cannot be changed; allowing it would
// retroactively break the role rules on dependent records.
func (s *Store) UpdateContact(id int, input models.ContactInput) (models.Contact, error) {
	if msg := input.Validate(); msg != "" {
		return models.Contact{}, validationErr("", msg)
	}

	var currentType string
	err := s.db.QueryRow("SELECT contact_type FROM contacts WHERE id = ?", id).Scan(&currentType)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Contact{}, notFound("", "contact not found")
	}
	if err != nil {
		return models.Contact{}, err
	}

	if input.ContactType != currentType {
		referenced, err := s.contactReferenced(id)
		if err != nil {
			return models.Contact{}, err
		}
		if referenced {
			return models.Contact{}, validationErr("contact_type", "contact_type cannot be changed while the contact is referenced by a unit or lease")
		}
	}

	_, err = s.db.Exec(`UPDATE contacts SET name = ?, contact_type = ?, email = ?, phone = ?, address = ?,
		updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		input.Name, input.ContactType, input.Email, input.Phone, input.Address, id)
	if err != nil {
		return models.Contact{}, err
	}
	return s.GetContact(id)
}

func (s *Store) contactReferenced(id int) (bool, error) {
	var referenced bool
	err := s.db.QueryRow(`SELECT EXISTS(
		SELECT 1 FROM units WHERE owner_id = ?
		UNION ALL
		SELECT 1 FROM leases WHERE tenant_id = ? OR landlord_id = ?)`, id, id, id).Scan(&referenced)
	return referenced, err
}

// DeleteContact removes a contact and, in the same transaction, every
// dependent record: leases where it is tenant or landlord, leases on its
// owned units, and the owned units themselves.
func (s *Store) DeleteContact(id int) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM leases WHERE tenant_id = ? OR landlord_id = ?", id, id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM leases WHERE unit_id IN (SELECT id FROM units WHERE owner_id = ?)", id); err != nil {
		return err
	}
	if _, err := tx.Exec("DELETE FROM units WHERE owner_id = ?", id); err != nil {
		return err
	}

	res, err := tx.Exec("DELETE FROM contacts WHERE id = ?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return notFound("", "contact not found")
	}
	return tx.Commit()
}
