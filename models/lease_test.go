package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestEndDate(t *testing.T) {
	cases := []struct {
		name   string
		start  time.Time
		months int
		want   time.Time
	}{
		{"jan 31 clamps to feb 28", date(2025, time.January, 31), 1, date(2025, time.February, 28)},
		{"jan 31 clamps to feb 29 in leap year", date(2024, time.January, 31), 1, date(2024, time.February, 29)},
		{"full year", date(2025, time.January, 1), 12, date(2026, time.January, 1)},
		{"mar 31 clamps to apr 30", date(2025, time.March, 31), 1, date(2025, time.April, 30)},
		{"crosses year boundary", date(2025, time.December, 15), 2, date(2026, time.February, 15)},
		{"no clamping needed", date(2025, time.June, 10), 6, date(2025, time.December, 10)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, EndDate(tc.start, tc.months))
		})
	}
}

func TestLeaseEndDateString(t *testing.T) {
	l := Lease{StartDate: "2025-01-01", DurationMonths: 12}
	assert.Equal(t, "2026-01-01", l.EndDateString())

	l = Lease{StartDate: "not-a-date", DurationMonths: 12}
	assert.Equal(t, "", l.EndDateString())
}

func TestLeaseInputValidate(t *testing.T) {
	valid := LeaseInput{
		UnitID:           1,
		TenantID:         2,
		LandlordID:       3,
		StartDate:        "2025-01-01",
		DurationMonths:   12,
		RentAmount:       1500,
		PaymentFrequency: FreqMonthly,
	}
	require.Empty(t, valid.Validate())

	cases := []struct {
		name   string
		mutate func(*LeaseInput)
	}{
		{"missing unit", func(l *LeaseInput) { l.UnitID = 0 }},
		{"missing tenant", func(l *LeaseInput) { l.TenantID = 0 }},
		{"missing landlord", func(l *LeaseInput) { l.LandlordID = 0 }},
		{"bad start date", func(l *LeaseInput) { l.StartDate = "01/01/2025" }},
		{"zero duration", func(l *LeaseInput) { l.DurationMonths = 0 }},
		{"negative rent", func(l *LeaseInput) { l.RentAmount = -1 }},
		{"bad frequency", func(l *LeaseInput) { l.PaymentFrequency = "WEEKLY" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := valid
			tc.mutate(&input)
			assert.NotEmpty(t, input.Validate())
		})
	}
}

func TestContactInputValidate(t *testing.T) {
	assert.Empty(t, (&ContactInput{Name: "John Doe", ContactType: ContactLandlord}).Validate())
	assert.NotEmpty(t, (&ContactInput{ContactType: ContactLandlord}).Validate())
	assert.NotEmpty(t, (&ContactInput{Name: "John Doe", ContactType: "OWNER"}).Validate())
}

func TestUnitInputValidate(t *testing.T) {
	valid := UnitInput{UnitNumber: "A1", Type: UnitApartment, Location: "somewhere", Value: 100, Status: StatusVacant, OwnerID: 1}
	assert.Empty(t, valid.Validate())

	negative := valid
	negative.Value = -5
	assert.NotEmpty(t, negative.Validate())

	badStatus := valid
	badStatus.Status = "EMPTY"
	assert.NotEmpty(t, badStatus.Validate())
}
