package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingExpired   BookingStatus = "EXPIRED"
	BookingCancelled BookingStatus = "CANCELLED"
)

// Booking is a capacity hold on one availability slot. PENDING bookings
// release their guests back to the slot once ExpiresAt passes.
type Booking struct {
	ID          uuid.UUID
	PackageID   uuid.UUID
	SlotID      uuid.UUID
	UserID      uuid.UUID
	GuestCount  int
	UnitPrice   decimal.Decimal
	TotalPrice  decimal.Decimal
	Currency    Currency
	AppliedRule AppliedRule
	Status      BookingStatus
	CreatedAt   time.Time
	ExpiresAt   time.Time
	ConfirmedAt *time.Time
}

func (b *Booking) IsPending() bool {
	return b.Status == BookingPending
}

func (b *Booking) HoldExpired(now time.Time) bool {
	return b.IsPending() && now.After(b.ExpiresAt)
}
