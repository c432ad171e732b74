package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type AppliedRule string

const (
	RuleBase      AppliedRule = "base"
	RuleGender    AppliedRule = "gender"
	RuleTime      AppliedRule = "time"
	RuleEarlyBird AppliedRule = "earlyBird"
)

type AvailabilityStatus string

const (
	StatusAvailable   AvailabilityStatus = "available"
	StatusLimited     AvailabilityStatus = "limited"
	StatusUnavailable AvailabilityStatus = "unavailable"
)

type PriceResult struct {
	UnitPrice   decimal.Decimal `json:"unit_price"`
	TotalPrice  decimal.Decimal `json:"total_price"`
	AppliedRule AppliedRule     `json:"applied_rule"`
}

type AvailabilityResult struct {
	Status            AvailabilityStatus `json:"status"`
	RemainingCapacity int                `json:"remaining_capacity"`
	SlotID            uuid.UUID          `json:"slot_id"`
	SlotVersion       int                `json:"-"`
}

type Quote struct {
	PackageID          uuid.UUID          `json:"package_id"`
	SlotID             uuid.UUID          `json:"slot_id"`
	Currency           Currency           `json:"currency"`
	UnitPrice          decimal.Decimal    `json:"unit_price"`
	TotalPrice         decimal.Decimal    `json:"total_price"`
	AppliedRule        AppliedRule        `json:"applied_rule"`
	AvailabilityStatus AvailabilityStatus `json:"availability_status"`
	RemainingCapacity  int                `json:"remaining_capacity"`
}
