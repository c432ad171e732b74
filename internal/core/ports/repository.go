package ports

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/package_pricing/internal/core/domain"
)

type RuleSetRepository interface {
	Save(ctx context.Context, packageID uuid.UUID, rs *domain.RuleSet) error
	GetByPackage(ctx context.Context, packageID uuid.UUID) (*domain.RuleSet, error)
	Delete(ctx context.Context, packageID uuid.UUID) error
}

type SlotRepository interface {
	// ReserveCapacity adds guests to the slot's booked count only if the
	// slot is still at currentVersion and has room for them.
	ReserveCapacity(ctx context.Context, slotID uuid.UUID, guests int, currentVersion int) error
	ReleaseCapacity(ctx context.Context, slotID uuid.UUID, guests int) error
}

type BookingRepository interface {
	CreateBooking(ctx context.Context, booking *domain.Booking) error
	GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	// ConfirmBooking only succeeds while the booking is PENDING and its hold
	// has not expired at confirmedAt.
	ConfirmBooking(ctx context.Context, bookingID uuid.UUID, confirmedAt time.Time) error
	GetExpiredBookings(ctx context.Context) ([]domain.Booking, error)
	// CancelBooking moves a live booking to status and returns its guests to
	// the slot in one transaction.
	CancelBooking(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error
}

// RuleSetCache returns a nil rule set from Get on a miss. Get also reports the
// cache generation, which must be handed back to Set: Set drops the write
// when Invalidate ran in between, so a slow reader cannot restore stale rules.
type RuleSetCache interface {
	Get(ctx context.Context, packageID uuid.UUID) (*domain.RuleSet, int64, error)
	Set(ctx context.Context, packageID uuid.UUID, rs *domain.RuleSet, generation int64) error
	Invalidate(ctx context.Context, packageID uuid.UUID) error
}
