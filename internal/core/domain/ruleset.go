package domain

import (
	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Currency string

const (
	CurrencyAED Currency = "AED"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

func (c Currency) IsValid() bool {
	switch c {
	case CurrencyAED, CurrencyUSD, CurrencyEUR:
		return true
	}

	return false
}

// MinorUnits is the number of decimal places prices in c are rounded to.
func (c Currency) MinorUnits() int32 {
	return 2
}

type DiscountType string

const (
	DiscountFixed      DiscountType = "fixed"
	DiscountPercentage DiscountType = "percentage"
)

// RuleSet is the normalized pricing and availability rules of one package.
// Only engine.Normalize produces it; evaluation treats it as read-only.
type RuleSet struct {
	BasePrice     decimal.Decimal `json:"base_price"`
	Currency      Currency        `json:"currency"`
	GenderPricing *GenderPricing  `json:"gender_pricing,omitempty"`
	TimePricing   *TimePricing    `json:"time_pricing,omitempty"`
	EarlyBird     *EarlyBird      `json:"early_bird,omitempty"`
	Availability  Availability    `json:"availability"`
}

type GenderPricing struct {
	Enabled     bool                `json:"enabled"`
	LadiesPrice decimal.Decimal     `json:"ladies_price"`
	GentsPrice  decimal.Decimal     `json:"gents_price"`
	KidsPrice   decimal.NullDecimal `json:"kids_price"`
}

type TimePricing struct {
	Slots []TimeBand `json:"slots"`
}

type TimeBand struct {
	StartTime  civil.Time      `json:"start_time"`
	EndTime    civil.Time      `json:"end_time"`
	Price      decimal.Decimal `json:"price"`
	CutoffDate civil.Date      `json:"cutoff_date"`
}

// Contains reports whether t falls in [StartTime, EndTime).
func (b TimeBand) Contains(t civil.Time) bool {
	return !Before(t, b.StartTime) && Before(t, b.EndTime)
}

type EarlyBird struct {
	Enabled      bool            `json:"enabled"`
	Price        decimal.Decimal `json:"price"`
	ValidUntil   civil.Date      `json:"valid_until"`
	DiscountType DiscountType    `json:"discount_type"`
}

type Availability struct {
	Slots []AvailabilitySlot `json:"slots"`
}

type AvailabilitySlot struct {
	ID        uuid.UUID  `json:"id"`
	Date      civil.Date `json:"date"`
	StartTime civil.Time `json:"start_time"`
	EndTime   civil.Time `json:"end_time"`
	Capacity  int        `json:"capacity"`
	Booked    int        `json:"booked"`
	Version   int        `json:"version"`
}

func (s AvailabilitySlot) Remaining() int {
	return s.Capacity - s.Booked
}

func (s AvailabilitySlot) Contains(d civil.Date, t civil.Time) bool {
	return s.Date == d && !Before(t, s.StartTime) && Before(t, s.EndTime)
}

func (s AvailabilitySlot) Overlaps(o AvailabilitySlot) bool {
	return s.Date == o.Date && Before(s.StartTime, o.EndTime) && Before(o.StartTime, s.EndTime)
}

func (rs *RuleSet) GenderEnabled() bool {
	return rs.GenderPricing != nil && rs.GenderPricing.Enabled
}

func (rs *RuleSet) TimeEnabled() bool {
	return rs.TimePricing != nil && len(rs.TimePricing.Slots) > 0
}

func (rs *RuleSet) EarlyBirdEnabled() bool {
	return rs.EarlyBird != nil && rs.EarlyBird.Enabled
}

// Clone returns a deep copy, so callers can hand a RuleSet out without
// sharing slices with the original.
func (rs *RuleSet) Clone() *RuleSet {
	out := *rs

	if rs.GenderPricing != nil {
		gp := *rs.GenderPricing
		out.GenderPricing = &gp
	}

	if rs.TimePricing != nil {
		out.TimePricing = &TimePricing{Slots: append([]TimeBand(nil), rs.TimePricing.Slots...)}
	}

	if rs.EarlyBird != nil {
		eb := *rs.EarlyBird
		out.EarlyBird = &eb
	}

	out.Availability = Availability{Slots: append([]AvailabilitySlot(nil), rs.Availability.Slots...)}

	return &out
}
