package models

import "time"

// Contact types.
const (
	ContactLandlord = "LANDLORD"
	ContactTenant   = "TENANT"
)

// Contact represents a landlord or tenant.
type Contact struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	ContactType string    `json:"contact_type"` // LANDLORD, TENANT
	Email       *string   `json:"email"`
	Phone       *string   `json:"phone"`
	Address     *string   `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ContactInput is used for creating/updating contacts.
type ContactInput struct {
	Name        string  `json:"name"`
	ContactType string  `json:"contact_type"`
	Email       *string `json:"email"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

func (c *ContactInput) Validate() string {
	if c.Name == "" {
		return "name is required"
	}
	switch c.ContactType {
	case ContactLandlord, ContactTenant:
	default:
		return "contact_type must be one of: LANDLORD, TENANT"
	}
	return ""
}
