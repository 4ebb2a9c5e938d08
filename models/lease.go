package models

import "time"

// Payment frequencies.
const (
	FreqMonthly    = "MONTHLY"
	FreqQuarterly  = "QUARTERLY"
	FreqSemiAnnual = "SEMI_ANNUAL"
	FreqAnnual     = "ANNUAL"
)

// DateLayout is the wire format for lease dates.
const DateLayout = "2006-01-02"

// Lease represents a lease agreement between a tenant and the landlord
// owning the unit.
type Lease struct {
	ID               int       `json:"id"`
	UnitID           int       `json:"unit_id"`
	TenantID         int       `json:"tenant_id"`
	LandlordID       int       `json:"landlord_id"`
	UnitNumber       string    `json:"unit_number"`   // Joined from units
	TenantName       string    `json:"tenant_name"`   // Joined from contacts
	LandlordName     string    `json:"landlord_name"` // Joined from contacts
	StartDate        string    `json:"start_date"`
	EndDate          string    `json:"end_date"` // Computed: start_date + duration months
	DurationMonths   int       `json:"duration_months"`
	RentAmount       float64   `json:"rent_amount"`
	PaymentFrequency string    `json:"payment_frequency"` // MONTHLY, QUARTERLY, SEMI_ANNUAL, ANNUAL
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// LeaseInput is used for creating/updating leases.
type LeaseInput struct {
	UnitID           int     `json:"unit_id"`
	TenantID         int     `json:"tenant_id"`
	LandlordID       int     `json:"landlord_id"`
	StartDate        string  `json:"start_date"`
	DurationMonths   int     `json:"duration_months"`
	RentAmount       float64 `json:"rent_amount"`
	PaymentFrequency string  `json:"payment_frequency"`
}

func (l *LeaseInput) Validate() string {
	if l.UnitID <= 0 {
		return "unit_id is required"
	}
	if l.TenantID <= 0 {
		return "tenant_id is required"
	}
	if l.LandlordID <= 0 {
		return "landlord_id is required"
	}
	if _, err := time.Parse(DateLayout, l.StartDate); err != nil {
		return "start_date must be a date in YYYY-MM-DD format"
	}
	if l.DurationMonths < 1 {
		return "duration_months must be at least 1"
	}
	if l.RentAmount < 0 {
		return "rent_amount must not be negative"
	}
	switch l.PaymentFrequency {
	case FreqMonthly, FreqQuarterly, FreqSemiAnnual, FreqAnnual:
	default:
		return "payment_frequency must be one of: MONTHLY, QUARTERLY, SEMI_ANNUAL, ANNUAL"
	}
	return ""
}

// EndDate adds a number of calendar months to start, clamping the day of
// month to the last valid day of the target month (Jan 31 + 1 month is
// Feb 28, or Feb 29 in a leap year).
func EndDate(start time.Time, months int) time.Time {
	total := int(start.Month()) - 1 + months
	year := start.Year() + total/12
	month := time.Month(total%12 + 1)
	day := start.Day()
	if last := daysIn(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, start.Location())
}

// daysIn returns the number of days in the given month. Day zero of the
// following month normalizes to the last day of this one.
func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// EndDateString computes the lease end date from its start date and
// duration, in wire format. Empty when the start date is unparseable.
func (l *Lease) EndDateString() string {
	start, err := time.Parse(DateLayout, l.StartDate)
	if err != nil {
		return ""
	}
	return EndDate(start, l.DurationMonths).Format(DateLayout)
}
