package models

import "time"

// Unit types.
const (
	UnitApartment  = "APARTMENT"
	UnitHouse      = "HOUSE"
	UnitCondo      = "CONDO"
	UnitCommercial = "COMMERCIAL"
	UnitOther      = "OTHER"
)

// Unit statuses.
const (
	StatusVacant      = "VACANT"
	StatusOccupied    = "OCCUPIED"
	StatusMaintenance = "MAINTENANCE"
)

// Unit represents a rentable property unit.
type Unit struct {
	ID         int       `json:"id"`
	UnitNumber string    `json:"unit_number"`
	Type       string    `json:"type"` // APARTMENT, HOUSE, CONDO, COMMERCIAL, OTHER
	Location   string    `json:"location"`
	Value      float64   `json:"value"`
	Status     string    `json:"status"` // VACANT, OCCUPIED, MAINTENANCE
	OwnerID    int       `json:"owner_id"`
	OwnerName  string    `json:"owner_name"`  // Joined from contacts
	OwnerEmail *string   `json:"owner_email"` // Joined from contacts
	OwnerPhone *string   `json:"owner_phone"` // Joined from contacts
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// UnitInput is used for creating/updating units.
type UnitInput struct {
	UnitNumber string  `json:"unit_number"`
	Type       string  `json:"type"`
	Location   string  `json:"location"`
	Value      float64 `json:"value"`
	Status     string  `json:"status"`
	OwnerID    int     `json:"owner_id"`
}

func (u *UnitInput) Validate() string {
	if u.UnitNumber == "" {
		return "unit_number is required"
	}
	switch u.Type {
	case UnitApartment, UnitHouse, UnitCondo, UnitCommercial, UnitOther:
	default:
		return "type must be one of: APARTMENT, HOUSE, CONDO, COMMERCIAL, OTHER"
	}
	if u.Location == "" {
		return "location is required"
	}
	if u.Value < 0 {
		return "value must not be negative"
	}
	switch u.Status {
	case StatusVacant, StatusOccupied, StatusMaintenance:
	default:
		return "status must be one of: VACANT, OCCUPIED, MAINTENANCE"
	}
	if u.OwnerID <= 0 {
		return "owner_id is required"
	}
	return ""
}
