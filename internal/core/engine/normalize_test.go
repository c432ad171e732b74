package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srgjo27/package_pricing/internal/core/domain"
	"github.com/srgjo27/package_pricing/internal/core/engine"
)

func TestNormalize_DefaultsCurrency(t *testing.T) {
	rs := mustNormalize(t, baseRaw())

	assert.Equal(t, domain.CurrencyAED, rs.Currency)
	assertDecimal(t, "299", rs.BasePrice)
}

func TestNormalize_AcceptsLowercaseCurrency(t *testing.T) {
	raw := baseRaw()
	raw.Currency = "usd"

	rs := mustNormalize(t, raw)

	assert.Equal(t, domain.CurrencyUSD, rs.Currency)
}

func TestNormalize_DisabledRulesAreDropped(t *testing.T) {
	raw := baseRaw()
	raw.GenderPricing = &domain.RawGenderPricing{Enabled: false}
	raw.EarlyBird = &domain.RawEarlyBird{Enabled: false, Price: dec("-5")}
	raw.TimePricing = &domain.RawTimePricing{}

	rs := mustNormalize(t, raw)

	assert.Nil(t, rs.GenderPricing)
	assert.Nil(t, rs.EarlyBird)
	assert.Nil(t, rs.TimePricing)
}

func TestNormalize_SingleViolation(t *testing.T) {
	raw := baseRaw()
	raw.BasePrice = dec("0")

	rs, err := engine.Normalize(raw)

	assert.Nil(t, rs)
	ve := domain.AsValidation(err)
	require.Len(t, ve, 1)
	assert.Equal(t, "base_price", ve[0].Field)
}

func TestNormalize_CollectsEveryViolation(t *testing.T) {
	raw := domain.RawRuleSet{
		BasePrice: dec("-1"),
		Currency:  "GBP",
		GenderPricing: &domain.RawGenderPricing{
			Enabled:    true,
			GentsPrice: dec("-10"),
		},
		TimePricing: &domain.RawTimePricing{Slots: []domain.RawTimeBand{
			{StartTime: "20:00", EndTime: "18:00", Price: dec("100"), CutoffDate: "2024-12-31"},
		}},
		EarlyBird: &domain.RawEarlyBird{Enabled: true, Price: dec("150"), DiscountType: "percentage"},
		Availability: domain.RawAvailability{Slots: []domain.RawAvailabilitySlot{
			slot("2024-12-20", "18:00", "23:00", 5, 6),
		}},
	}

	_, err := engine.Normalize(raw)

	ve := domain.AsValidation(err)
	require.NotNil(t, ve)

	for _, field := range []string{
		"base_price",
		"currency",
		"gender_pricing.ladies_price",
		"gender_pricing.gents_price",
		"time_pricing.slots[0].end_time",
		"early_bird.price",
		"early_bird.valid_until",
		"availability.slots[0].booked",
	} {
		assert.True(t, ve.Has(field), "expected violation for %s, got %v", field, ve)
	}
}

func TestNormalize_SortsTimeBands(t *testing.T) {
	raw := baseRaw()
	raw.TimePricing = &domain.RawTimePricing{Slots: []domain.RawTimeBand{
		{StartTime: "20:00", EndTime: "22:00", Price: dec("350"), CutoffDate: "2024-12-31"},
		{StartTime: "10:00", EndTime: "12:00", Price: dec("199"), CutoffDate: "2024-12-31"},
		{StartTime: "12:00", EndTime: "20:00", Price: dec("249"), CutoffDate: "2024-12-31"},
	}}

	rs := mustNormalize(t, raw)

	require.Len(t, rs.TimePricing.Slots, 3)
	for i := 1; i < len(rs.TimePricing.Slots); i++ {
		prev, cur := rs.TimePricing.Slots[i-1], rs.TimePricing.Slots[i]
		assert.True(t, domain.Before(prev.StartTime, cur.StartTime))
		assert.False(t, domain.Before(cur.StartTime, prev.EndTime), "bands must not overlap")
	}
}

func TestNormalize_RejectsOverlappingBandsWithSameCutoff(t *testing.T) {
	raw := baseRaw()
	raw.TimePricing = &domain.RawTimePricing{Slots: []domain.RawTimeBand{
		{StartTime: "18:00", EndTime: "21:00", Price: dec("350"), CutoffDate: "2024-12-31"},
		{StartTime: "20:00", EndTime: "22:00", Price: dec("199"), CutoffDate: "2024-12-31"},
	}}

	_, err := engine.Normalize(raw)

	ve := domain.AsValidation(err)
	require.Len(t, ve, 1)
	assert.Equal(t, "time_pricing.slots[1]", ve[0].Field)
}

func TestNormalize_AllowsOverlappingBandsWithDifferentCutoff(t *testing.T) {
	raw := baseRaw()
	raw.TimePricing = &domain.RawTimePricing{Slots: []domain.RawTimeBand{
		{StartTime: "18:00", EndTime: "21:00", Price: dec("350"), CutoffDate: "2025-01-31"},
		{StartTime: "18:00", EndTime: "21:00", Price: dec("199"), CutoffDate: "2024-12-31"},
	}}

	rs := mustNormalize(t, raw)

	require.Len(t, rs.TimePricing.Slots, 2)
	assert.Equal(t, date("2024-12-31"), rs.TimePricing.Slots[0].CutoffDate)
}

func TestNormalize_SortsAndDeduplicatesSlots(t *testing.T) {
	raw := baseRaw()
	raw.Availability.Slots = []domain.RawAvailabilitySlot{
		slot("2024-12-21", "10:00", "12:00", 10, 0),
		slot("2024-12-20", "14:00", "16:00", 10, 2),
		slot("2024-12-20", "10:00", "12:00", 10, 0),
		slot("2024-12-20", "14:00", "16:00", 10, 2),
	}

	rs := mustNormalize(t, raw)

	slots := rs.Availability.Slots
	require.Len(t, slots, 3)
	assert.Equal(t, date("2024-12-20"), slots[0].Date)
	assert.Equal(t, clock("10:00"), slots[0].StartTime)
	assert.Equal(t, clock("14:00"), slots[1].StartTime)
	assert.Equal(t, date("2024-12-21"), slots[2].Date)
}

func TestNormalize_RejectsConflictingDuplicateSlots(t *testing.T) {
	raw := baseRaw()
	raw.Availability.Slots = []domain.RawAvailabilitySlot{
		slot("2024-12-20", "14:00", "16:00", 10, 0),
		slot("2024-12-20", "14:00", "16:00", 12, 0),
	}

	_, err := engine.Normalize(raw)

	assert.True(t, domain.AsValidation(err).Has("availability.slots[1]"))
}

func TestNormalize_RejectsOverlappingSlots(t *testing.T) {
	raw := baseRaw()
	raw.Availability.Slots = []domain.RawAvailabilitySlot{
		slot("2024-12-20", "14:00", "17:00", 10, 0),
		slot("2024-12-20", "16:00", "18:00", 10, 0),
	}

	_, err := engine.Normalize(raw)

	assert.True(t, domain.AsValidation(err).Has("availability.slots[1]"))
}

func TestNormalize_DoesNotMutateInput(t *testing.T) {
	raw := baseRaw()
	raw.Availability.Slots = []domain.RawAvailabilitySlot{
		slot("2024-12-21", "10:00", "12:00", 10, 0),
		slot("2024-12-20", "10:00", "12:00", 10, 0),
	}

	mustNormalize(t, raw)

	assert.Equal(t, "2024-12-21", raw.Availability.Slots[0].Date)
}

func TestNormalize_EarlyBirdDefaultsToFixed(t *testing.T) {
	raw := baseRaw()
	raw.EarlyBird = &domain.RawEarlyBird{Enabled: true, Price: dec("199"), ValidUntil: "2024-12-31"}

	rs := mustNormalize(t, raw)

	assert.Equal(t, domain.DiscountFixed, rs.EarlyBird.DiscountType)
	assert.Equal(t, date("2024-12-31"), rs.EarlyBird.ValidUntil)
}

func TestNormalize_RejectsPricesFinerThanMinorUnits(t *testing.T) {
	raw := baseRaw()
	raw.BasePrice = dec("299.005")
	raw.TimePricing = &domain.RawTimePricing{Slots: []domain.RawTimeBand{
		{StartTime: "18:00", EndTime: "21:00", Price: dec("320.5"), CutoffDate: "2024-12-31"},
		{StartTime: "21:00", EndTime: "23:00", Price: dec("199.999"), CutoffDate: "2024-12-31"},
	}}
	raw.EarlyBird = &domain.RawEarlyBird{Enabled: true, Price: dec("149.001"), ValidUntil: "2024-12-31"}

	rs, err := engine.Normalize(raw)

	assert.Nil(t, rs)
	ve := domain.AsValidation(err)
	assert.True(t, ve.Has("base_price"))
	assert.True(t, ve.Has("time_pricing.slots[1].price"))
	assert.True(t, ve.Has("early_bird.price"))
	assert.False(t, ve.Has("time_pricing.slots[0].price"))
}

func TestNormalize_PercentageEarlyBirdMayBeFractional(t *testing.T) {
	raw := baseRaw()
	raw.BasePrice = dec("299.50")
	raw.EarlyBird = &domain.RawEarlyBird{Enabled: true, Price: dec("12.5"), DiscountType: "percentage", ValidUntil: "2024-12-31"}

	rs := mustNormalize(t, raw)

	assertDecimal(t, "12.5", rs.EarlyBird.Price)
}
