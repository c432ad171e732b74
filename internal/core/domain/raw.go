package domain

import "github.com/shopspring/decimal"

// RawRuleSet is the rule payload as the merchant editor submits it. Any field
// may be missing or malformed until it has been through engine.Normalize.
type RawRuleSet struct {
	BasePrice     decimal.NullDecimal `json:"base_price"`
	Currency      string              `json:"currency"`
	GenderPricing *RawGenderPricing   `json:"gender_pricing,omitempty"`
	TimePricing   *RawTimePricing     `json:"time_pricing,omitempty"`
	EarlyBird     *RawEarlyBird       `json:"early_bird,omitempty"`
	Availability  RawAvailability     `json:"availability"`
}

type RawGenderPricing struct {
	Enabled     bool                `json:"enabled"`
	LadiesPrice decimal.NullDecimal `json:"ladies_price"`
	GentsPrice  decimal.NullDecimal `json:"gents_price"`
	KidsPrice   decimal.NullDecimal `json:"kids_price"`
}

type RawTimePricing struct {
	Slots []RawTimeBand `json:"slots"`
}

type RawTimeBand struct {
	StartTime  string              `json:"start_time"`
	EndTime    string              `json:"end_time"`
	Price      decimal.NullDecimal `json:"price"`
	CutoffDate string              `json:"cutoff_date"`
}

type RawEarlyBird struct {
	Enabled      bool                `json:"enabled"`
	Price        decimal.NullDecimal `json:"price"`
	ValidUntil   string              `json:"valid_until"`
	DiscountType string              `json:"discount_type"`
}

type RawAvailability struct {
	Slots []RawAvailabilitySlot `json:"slots"`
}

type RawAvailabilitySlot struct {
	ID        string `json:"id,omitempty"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Capacity  int    `json:"capacity"`
	Booked    int    `json:"booked"`
}
