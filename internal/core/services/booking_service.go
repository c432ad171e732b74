package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/srgjo27/package_pricing/internal/core/domain"
	"github.com/srgjo27/package_pricing/internal/core/engine"
	"github.com/srgjo27/package_pricing/internal/core/ports"
	"github.com/srgjo27/package_pricing/internal/platform/logger"
)

const maxReserveAttempts = 3

type CreateBookingRequest struct {
	UserID    string `json:"user_id"`
	PackageID string `json:"package_id"`
	QuoteRequest
}

type CreateBookingResponse struct {
	BookingID   string `json:"booking_id"`
	SlotID      string `json:"slot_id"`
	UnitPrice   string `json:"unit_price"`
	TotalAmount string `json:"total_amount"`
	Currency    string `json:"currency"`
	AppliedRule string `json:"applied_rule"`
	Status      string `json:"status"`
	ExpiresAt   string `json:"expires_at"`
}

type BookingConfig struct {
	HoldTTL         time.Duration
	CleanupInterval time.Duration
}

type BookingService struct {
	ruleRepo    ports.RuleSetRepository
	slotRepo    ports.SlotRepository
	bookingRepo ports.BookingRepository
	cache       ports.RuleSetCache
	engine      *engine.Engine
	l           *logger.Logger
	conf        BookingConfig
	now         func() time.Time
}

func NewBookingService(
	ruleRepo ports.RuleSetRepository,
	slotRepo ports.SlotRepository,
	bookingRepo ports.BookingRepository,
	cache ports.RuleSetCache,
	eng *engine.Engine,
	l *logger.Logger,
	conf BookingConfig,
) *BookingService {
	return &BookingService{
		ruleRepo:    ruleRepo,
		slotRepo:    slotRepo,
		bookingRepo: bookingRepo,
		cache:       cache,
		engine:      eng,
		l:           l,
		conf:        conf,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// CreateBooking quotes the request against freshly loaded rules and holds
// the guests on the matched slot. The hold is a compare-and-swap on the slot
// version, retried with reloaded rules when another booking got there first.
func (s *BookingService) CreateBooking(ctx context.Context, req CreateBookingRequest) (*CreateBookingResponse, error) {
	userID, err := uuid.Parse(req.UserID)
	if err != nil {
		return nil, domain.NewInvalidRequest("user_id", "must be a uuid")
	}

	packageID, err := parsePackageID(req.PackageID)
	if err != nil {
		return nil, err
	}

	now := s.now()

	br, err := req.toDomain(now)
	if err != nil {
		return nil, err
	}

	// A stored price is always evaluated at server time.
	br.RequestedAt = now

	quote, err := s.reserve(ctx, packageID, br)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		ID:          uuid.New(),
		PackageID:   packageID,
		SlotID:      quote.SlotID,
		UserID:      userID,
		GuestCount:  br.GuestCount,
		UnitPrice:   quote.UnitPrice,
		TotalPrice:  quote.TotalPrice,
		Currency:    quote.Currency,
		AppliedRule: quote.AppliedRule,
		Status:      domain.BookingPending,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.conf.HoldTTL),
	}

	if err := s.bookingRepo.CreateBooking(ctx, booking); err != nil {
		s.releaseCapacity(ctx, quote.SlotID, br.GuestCount)
		s.invalidate(ctx, packageID)

		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.invalidate(ctx, packageID)

	return &CreateBookingResponse{
		BookingID:   booking.ID.String(),
		SlotID:      booking.SlotID.String(),
		UnitPrice:   booking.UnitPrice.StringFixed(booking.Currency.MinorUnits()),
		TotalAmount: booking.TotalPrice.StringFixed(booking.Currency.MinorUnits()),
		Currency:    string(booking.Currency),
		AppliedRule: string(booking.AppliedRule),
		Status:      string(booking.Status),
		ExpiresAt:   booking.ExpiresAt.Format(time.RFC3339),
	}, nil
}

func (s *BookingService) reserve(ctx context.Context, packageID uuid.UUID, br domain.BookingRequest) (*domain.Quote, error) {
	var lastErr error

	for attempt := 1; attempt <= maxReserveAttempts; attempt++ {
		rs, err := s.ruleRepo.GetByPackage(ctx, packageID)
		if err != nil {
			return nil, fmt.Errorf("load rule set for package %s: %w", packageID, err)
		}

		quote, err := s.engine.AssembleQuote(rs, br)
		if err != nil {
			return nil, err
		}

		quote.PackageID = packageID

		err = s.slotRepo.ReserveCapacity(ctx, quote.SlotID, br.GuestCount, slotVersion(rs, quote.SlotID))
		if err == nil {
			return quote, nil
		}

		if !domain.IsConflict(err) {
			return nil, fmt.Errorf("reserve slot %s: %w", quote.SlotID, err)
		}

		s.l.LogInfo("Slot %s changed while booking (attempt %d/%d)", quote.SlotID, attempt, maxReserveAttempts)
		lastErr = err
	}

	return nil, domain.NewConflict("slot is being booked concurrently, try again", lastErr)
}

func slotVersion(rs *domain.RuleSet, slotID uuid.UUID) int {
	for _, slot := range rs.Availability.Slots {
		if slot.ID == slotID {
			return slot.Version
		}
	}

	return 0
}

func parseBookingID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, domain.NewInvalidRequest("booking_id", "must be a uuid")
	}

	return id, nil
}

func (s *BookingService) ConfirmBooking(ctx context.Context, bookingIDStr string) (*domain.Booking, error) {
	bookingID, err := parseBookingID(bookingIDStr)
	if err != nil {
		return nil, err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	if !booking.IsPending() {
		return nil, domain.NewConflict(fmt.Sprintf("booking is %s", booking.Status), nil)
	}

	confirmedAt := s.now()

	if booking.HoldExpired(confirmedAt) {
		return nil, domain.NewConflict("booking hold has expired", nil)
	}

	// The repository re-checks status and expiry, so a worker or a cancel
	// that got there first wins.
	if err := s.bookingRepo.ConfirmBooking(ctx, bookingID, confirmedAt); err != nil {
		return nil, fmt.Errorf("confirm booking %s: %w", bookingID, err)
	}

	booking.Status = domain.BookingConfirmed
	booking.ConfirmedAt = &confirmedAt

	return booking, nil
}

func (s *BookingService) CancelBooking(ctx context.Context, bookingIDStr string) error {
	bookingID, err := parseBookingID(bookingIDStr)
	if err != nil {
		return err
	}

	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}

	if booking.Status != domain.BookingPending && booking.Status != domain.BookingConfirmed {
		return domain.NewConflict(fmt.Sprintf("booking is %s", booking.Status), nil)
	}

	if err := s.bookingRepo.CancelBooking(ctx, bookingID, domain.BookingCancelled); err != nil {
		return fmt.Errorf("cancel booking %s: %w", bookingID, err)
	}

	s.invalidate(ctx, booking.PackageID)

	return nil
}

func (s *BookingService) releaseCapacity(ctx context.Context, slotID uuid.UUID, guests int) {
	if err := s.slotRepo.ReleaseCapacity(ctx, slotID, guests); err != nil {
		s.l.LogErrorf("Could not release %d guests on slot %s: %v", guests, slotID, err)
	}
}

func (s *BookingService) invalidate(ctx context.Context, packageID uuid.UUID) {
	if err := s.cache.Invalidate(ctx, packageID); err != nil {
		s.l.LogWarn("Rule set cache invalidation for %s failed: %v", packageID, err)
	}
}

func (s *BookingService) RunBackgroundCleanup(ctx context.Context) {
	ticker := time.NewTicker(s.conf.CleanupInterval)
	defer ticker.Stop()

	s.l.LogInfo("Background worker started: expiring booking holds every %s", s.conf.CleanupInterval)

	for {
		select {
		case <-ctx.Done():
			s.l.LogInfo("Background worker stopped")
			return
		case <-ticker.C:
			s.processExpiredBookings(ctx)
		}
	}
}

func (s *BookingService) processExpiredBookings(ctx context.Context) {
	bookings, err := s.bookingRepo.GetExpiredBookings(ctx)
	if err != nil {
		s.l.LogErrorf("Error fetching expired bookings: %v", err)
		return
	}

	if len(bookings) == 0 {
		return
	}

	s.l.LogInfo("Found %d expired bookings. Cleaning up...", len(bookings))

	for _, b := range bookings {
		err := s.bookingRepo.CancelBooking(ctx, b.ID, domain.BookingExpired)

		switch {
		case errors.Is(err, context.Canceled):
			return
		case err != nil:
			s.l.LogErrorf("Failed to expire booking %s: %v", b.ID, err)
		default:
			s.l.LogInfo("Booking %s expired and %d places released", b.ID, b.GuestCount)
			s.invalidate(ctx, b.PackageID)
		}
	}
}
