package engine

import (
	"fmt"
	"slices"
	"strings"

	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/package_pricing/internal/core/domain"
)

var hundred = decimal.NewFromInt(100)

// Normalize validates a raw rule set and returns its canonical form: default
// currency filled, disabled rules dropped, time bands and availability slots
// sorted, duplicate slots removed. It never mutates raw.
//
// Every violation is collected; the returned error is domain.ValidationErrors.
func Normalize(raw domain.RawRuleSet) (*domain.RuleSet, error) {
	var ve domain.ValidationErrors

	rs := &domain.RuleSet{}

	switch {
	case !raw.BasePrice.Valid:
		ve.Add("base_price", "is required")
	case !raw.BasePrice.Decimal.IsPositive():
		ve.Add("base_price", "must be greater than zero")
	default:
		rs.BasePrice = raw.BasePrice.Decimal
	}

	rs.Currency = domain.CurrencyAED
	if c := strings.ToUpper(strings.TrimSpace(raw.Currency)); c != "" {
		rs.Currency = domain.Currency(c)
		if !rs.Currency.IsValid() {
			ve.Add("currency", fmt.Sprintf("unsupported currency %q", raw.Currency))
		}
	}

	rs.GenderPricing = normalizeGender(raw.GenderPricing, &ve)
	rs.TimePricing = normalizeTimePricing(raw.TimePricing, &ve)
	rs.EarlyBird = normalizeEarlyBird(raw.EarlyBird, &ve)
	rs.Availability = normalizeAvailability(raw.Availability, &ve)
	checkMinorUnits(raw, rs.Currency.MinorUnits(), &ve)

	if len(ve) > 0 {
		return nil, ve
	}

	return rs, nil
}

// checkMinorUnits rejects amounts the currency cannot express, so every
// resolved price is already at currency precision.
func checkMinorUnits(raw domain.RawRuleSet, places int32, ve *domain.ValidationErrors) {
	check := func(field string, d decimal.NullDecimal) {
		if d.Valid && !d.Decimal.Equal(d.Decimal.Round(places)) {
			ve.Add(field, fmt.Sprintf("must have at most %d decimal places", places))
		}
	}

	check("base_price", raw.BasePrice)

	if gp := raw.GenderPricing; gp != nil && gp.Enabled {
		check("gender_pricing.ladies_price", gp.LadiesPrice)
		check("gender_pricing.gents_price", gp.GentsPrice)
		check("gender_pricing.kids_price", gp.KidsPrice)
	}

	if tp := raw.TimePricing; tp != nil {
		for i, band := range tp.Slots {
			check(fmt.Sprintf("time_pricing.slots[%d].price", i), band.Price)
		}
	}

	if eb := raw.EarlyBird; eb != nil && eb.Enabled {
		if dt := strings.ToLower(strings.TrimSpace(eb.DiscountType)); dt == "" || dt == string(domain.DiscountFixed) {
			check("early_bird.price", eb.Price)
		}
	}
}

func requireNonNegative(ve *domain.ValidationErrors, field string, d decimal.NullDecimal) {
	if !d.Valid {
		ve.Add(field, "is required")
		return
	}

	if d.Decimal.IsNegative() {
		ve.Add(field, "must not be negative")
	}
}

func normalizeGender(raw *domain.RawGenderPricing, ve *domain.ValidationErrors) *domain.GenderPricing {
	if raw == nil || !raw.Enabled {
		return nil
	}

	requireNonNegative(ve, "gender_pricing.ladies_price", raw.LadiesPrice)
	requireNonNegative(ve, "gender_pricing.gents_price", raw.GentsPrice)

	if raw.KidsPrice.Valid && raw.KidsPrice.Decimal.IsNegative() {
		ve.Add("gender_pricing.kids_price", "must not be negative")
	}

	return &domain.GenderPricing{
		Enabled:     true,
		LadiesPrice: raw.LadiesPrice.Decimal,
		GentsPrice:  raw.GentsPrice.Decimal,
		KidsPrice:   raw.KidsPrice,
	}
}

type indexedBand struct {
	idx  int
	band domain.TimeBand
}

func normalizeTimePricing(raw *domain.RawTimePricing, ve *domain.ValidationErrors) *domain.TimePricing {
	if raw == nil || len(raw.Slots) == 0 {
		return nil
	}

	bands := make([]indexedBand, 0, len(raw.Slots))
	valid := true

	for i, rb := range raw.Slots {
		field := fmt.Sprintf("time_pricing.slots[%d]", i)
		band, ok := parseTimeBand(rb, field, ve)
		if !ok {
			valid = false
			continue
		}

		bands = append(bands, indexedBand{idx: i, band: band})
	}

	slices.SortStableFunc(bands, func(a, b indexedBand) int {
		if c := domain.CompareTime(a.band.StartTime, b.band.StartTime); c != 0 {
			return c
		}

		return domain.CompareDate(a.band.CutoffDate, b.band.CutoffDate)
	})

	// Bands sharing a cutoff date must not overlap. Sorted by start, a band
	// overlaps its group if it starts before the furthest end seen so far.
	lastEnd := make(map[civil.Date]indexedBand)
	for _, ib := range bands {
		prev, seen := lastEnd[ib.band.CutoffDate]
		if seen && domain.Before(ib.band.StartTime, prev.band.EndTime) {
			ve.Add(
				fmt.Sprintf("time_pricing.slots[%d]", ib.idx),
				fmt.Sprintf("overlaps time_pricing.slots[%d] with the same cutoff_date", prev.idx),
			)
			valid = false
		}

		if !seen || domain.Before(prev.band.EndTime, ib.band.EndTime) {
			lastEnd[ib.band.CutoffDate] = ib
		}
	}

	if !valid {
		return nil
	}

	out := &domain.TimePricing{Slots: make([]domain.TimeBand, 0, len(bands))}
	for _, ib := range bands {
		out.Slots = append(out.Slots, ib.band)
	}

	return out
}

func parseTimeBand(rb domain.RawTimeBand, field string, ve *domain.ValidationErrors) (domain.TimeBand, bool) {
	var band domain.TimeBand

	before := len(*ve)

	start, err := domain.ParseTime(rb.StartTime)
	if err != nil {
		ve.Add(field+".start_time", err.Error())
	}

	end, err := domain.ParseTime(rb.EndTime)
	if err != nil {
		ve.Add(field+".end_time", err.Error())
	}

	cutoff, err := domain.ParseDate(rb.CutoffDate)
	if err != nil {
		ve.Add(field+".cutoff_date", err.Error())
	}

	switch {
	case !rb.Price.Valid:
		ve.Add(field+".price", "is required")
	case !rb.Price.Decimal.IsPositive():
		ve.Add(field+".price", "must be greater than zero")
	}

	if len(*ve) == before && !domain.Before(start, end) {
		ve.Add(field+".end_time", "must be after start_time")
	}

	if len(*ve) != before {
		return band, false
	}

	return domain.TimeBand{
		StartTime:  start,
		EndTime:    end,
		Price:      rb.Price.Decimal,
		CutoffDate: cutoff,
	}, true
}

func normalizeEarlyBird(raw *domain.RawEarlyBird, ve *domain.ValidationErrors) *domain.EarlyBird {
	if raw == nil || !raw.Enabled {
		return nil
	}

	eb := &domain.EarlyBird{Enabled: true, DiscountType: domain.DiscountFixed}

	if dt := strings.ToLower(strings.TrimSpace(raw.DiscountType)); dt != "" {
		eb.DiscountType = domain.DiscountType(dt)
	}

	switch {
	case !raw.Price.Valid:
		ve.Add("early_bird.price", "is required")
	case eb.DiscountType == domain.DiscountFixed:
		if !raw.Price.Decimal.IsPositive() {
			ve.Add("early_bird.price", "must be greater than zero")
		}
	case eb.DiscountType == domain.DiscountPercentage:
		if !raw.Price.Decimal.IsPositive() || raw.Price.Decimal.GreaterThanOrEqual(hundred) {
			ve.Add("early_bird.price", "percentage must be between 0 and 100 exclusive")
		}
	default:
		ve.Add("early_bird.discount_type", fmt.Sprintf("unsupported discount type %q", raw.DiscountType))
	}

	eb.Price = raw.Price.Decimal

	validUntil, err := domain.ParseDate(raw.ValidUntil)
	if err != nil {
		ve.Add("early_bird.valid_until", err.Error())
	}

	eb.ValidUntil = validUntil

	return eb
}

type indexedSlot struct {
	idx  int
	slot domain.AvailabilitySlot
}

func normalizeAvailability(raw domain.RawAvailability, ve *domain.ValidationErrors) domain.Availability {
	slots := make([]indexedSlot, 0, len(raw.Slots))

	for i, rs := range raw.Slots {
		field := fmt.Sprintf("availability.slots[%d]", i)
		if slot, ok := parseSlot(rs, field, ve); ok {
			slots = append(slots, indexedSlot{idx: i, slot: slot})
		}
	}

	slices.SortStableFunc(slots, func(a, b indexedSlot) int {
		if c := domain.CompareDate(a.slot.Date, b.slot.Date); c != 0 {
			return c
		}

		if c := domain.CompareTime(a.slot.StartTime, b.slot.StartTime); c != 0 {
			return c
		}

		return domain.CompareTime(a.slot.EndTime, b.slot.EndTime)
	})

	out := domain.Availability{Slots: make([]domain.AvailabilitySlot, 0, len(slots))}

	var prev *indexedSlot

	for i := range slots {
		cur := &slots[i]

		if prev != nil && sameWindow(prev.slot, cur.slot) {
			if prev.slot.Capacity != cur.slot.Capacity || prev.slot.Booked != cur.slot.Booked {
				ve.Add(
					fmt.Sprintf("availability.slots[%d]", cur.idx),
					fmt.Sprintf("duplicates availability.slots[%d] with a different capacity", prev.idx),
				)
			}

			continue
		}

		if prev != nil && prev.slot.Overlaps(cur.slot) {
			ve.Add(
				fmt.Sprintf("availability.slots[%d]", cur.idx),
				fmt.Sprintf("overlaps availability.slots[%d]", prev.idx),
			)
		}

		if prev == nil || prev.slot.Date != cur.slot.Date || domain.Before(prev.slot.EndTime, cur.slot.EndTime) {
			prev = cur
		}

		out.Slots = append(out.Slots, cur.slot)
	}

	return out
}

func sameWindow(a, b domain.AvailabilitySlot) bool {
	return a.Date == b.Date &&
		domain.CompareTime(a.StartTime, b.StartTime) == 0 &&
		domain.CompareTime(a.EndTime, b.EndTime) == 0
}

func parseSlot(rs domain.RawAvailabilitySlot, field string, ve *domain.ValidationErrors) (domain.AvailabilitySlot, bool) {
	before := len(*ve)

	var id uuid.UUID
	if rs.ID != "" {
		parsed, err := uuid.Parse(rs.ID)
		if err != nil {
			ve.Add(field+".id", "must be a uuid")
		}

		id = parsed
	}

	date, err := domain.ParseDate(rs.Date)
	if err != nil {
		ve.Add(field+".date", err.Error())
	}

	start, err := domain.ParseTime(rs.StartTime)
	if err != nil {
		ve.Add(field+".start_time", err.Error())
	}

	end, err := domain.ParseTime(rs.EndTime)
	if err != nil {
		ve.Add(field+".end_time", err.Error())
	}

	if len(*ve) == before && !domain.Before(start, end) {
		ve.Add(field+".end_time", "must be after start_time")
	}

	if rs.Capacity < 0 {
		ve.Add(field+".capacity", "must not be negative")
	}

	switch {
	case rs.Booked < 0:
		ve.Add(field+".booked", "must not be negative")
	case rs.Booked > rs.Capacity:
		ve.Add(field+".booked", "must not exceed capacity")
	}

	if len(*ve) != before {
		return domain.AvailabilitySlot{}, false
	}

	return domain.AvailabilitySlot{
		ID:        id,
		Date:      date,
		StartTime: start,
		EndTime:   end,
		Capacity:  rs.Capacity,
		Booked:    rs.Booked,
	}, true
}
