package engine_test

import (
	"testing"
	"time"

	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/package_pricing/internal/core/domain"
	"github.com/srgjo27/package_pricing/internal/core/engine"
)

func dec(s string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(s))
}

func date(s string) civil.Date {
	d, err := civil.ParseDate(s)
	if err != nil {
		panic(err)
	}

	return d
}

func clock(s string) civil.Time {
	t, err := domain.ParseTime(s)
	if err != nil {
		panic(err)
	}

	return t
}

func slot(d, start, end string, capacity, booked int) domain.RawAvailabilitySlot {
	return domain.RawAvailabilitySlot{Date: d, StartTime: start, EndTime: end, Capacity: capacity, Booked: booked}
}

// baseRaw is a 299 AED package with one roomy evening slot on 2024-12-20.
func baseRaw() domain.RawRuleSet {
	return domain.RawRuleSet{
		BasePrice: dec("299"),
		Availability: domain.RawAvailability{Slots: []domain.RawAvailabilitySlot{
			slot("2024-12-20", "18:00", "23:00", 50, 0),
		}},
	}
}

func request(guests int) domain.BookingRequest {
	return domain.BookingRequest{
		Date:        date("2024-12-20"),
		Time:        clock("19:30"),
		GuestCount:  guests,
		RequestedAt: time.Date(2024, 12, 1, 10, 0, 0, 0, time.UTC),
	}
}

func mustNormalize(t *testing.T, raw domain.RawRuleSet) *domain.RuleSet {
	t.Helper()

	rs, err := engine.Normalize(raw)
	require.NoError(t, err)

	return rs
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()

	assert.True(t, decimal.RequireFromString(want).Equal(got), "want %s, got %s", want, got)
}
