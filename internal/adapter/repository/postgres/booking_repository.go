package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/srgjo27/package_pricing/internal/core/domain"
)

type BookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) *BookingRepository {
	return &BookingRepository{db: db}
}

func (r *BookingRepository) CreateBooking(ctx context.Context, booking *domain.Booking) error {
	query := `
	INSERT INTO bookings (id, package_id, slot_id, user_id, guest_count, unit_price, total_price, currency, applied_rule, status, created_at, expires_at)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`

	_, err := r.db.ExecContext(ctx, query,
		booking.ID,
		booking.PackageID,
		booking.SlotID,
		booking.UserID,
		booking.GuestCount,
		booking.UnitPrice,
		booking.TotalPrice,
		string(booking.Currency),
		string(booking.AppliedRule),
		string(booking.Status),
		booking.CreatedAt,
		booking.ExpiresAt,
	)
	if err != nil {
		return mapError(fmt.Errorf("failed to insert booking: %w", err), "package or slot for booking")
	}

	return nil
}

func (r *BookingRepository) GetByID(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	query := `
	SELECT id, package_id, slot_id, user_id, guest_count, unit_price, total_price, currency, applied_rule, status, created_at, expires_at, confirmed_at
	FROM bookings
	WHERE id = $1
	`

	var b domain.Booking
	var currency, rule, status string
	var confirmedAt sql.NullTime

	err := r.db.QueryRowContext(ctx, query, bookingID).Scan(
		&b.ID,
		&b.PackageID,
		&b.SlotID,
		&b.UserID,
		&b.GuestCount,
		&b.UnitPrice,
		&b.TotalPrice,
		&currency,
		&rule,
		&status,
		&b.CreatedAt,
		&b.ExpiresAt,
		&confirmedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(fmt.Sprintf("booking %s", bookingID))
		}

		return nil, err
	}

	b.Currency = domain.Currency(currency)
	b.AppliedRule = domain.AppliedRule(rule)
	b.Status = domain.BookingStatus(status)

	if confirmedAt.Valid {
		b.ConfirmedAt = &confirmedAt.Time
	}

	return &b, nil
}

// ConfirmBooking moves a PENDING booking whose hold is still open at
// confirmedAt to CONFIRMED. A booking that was expired or cancelled in the
// meantime is a conflict.
func (r *BookingRepository) ConfirmBooking(ctx context.Context, bookingID uuid.UUID, confirmedAt time.Time) error {
	query := `
	UPDATE bookings
	SET status = 'CONFIRMED', confirmed_at = $1
	WHERE id = $2 AND status = 'PENDING' AND expires_at >= $1
	`

	result, err := r.db.ExecContext(ctx, query, confirmedAt, bookingID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewConflict(fmt.Sprintf("booking %s is no longer pending", bookingID), nil)
	}

	return nil
}

func (r *BookingRepository) GetExpiredBookings(ctx context.Context) ([]domain.Booking, error) {
	query := `
	SELECT id, package_id, slot_id, guest_count FROM bookings
	WHERE status = 'PENDING' AND expires_at < NOW()
	LIMIT 100
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b := domain.Booking{Status: domain.BookingPending}
		if err := rows.Scan(&b.ID, &b.PackageID, &b.SlotID, &b.GuestCount); err != nil {
			return nil, err
		}

		bookings = append(bookings, b)
	}

	return bookings, rows.Err()
}

// CancelBooking moves a PENDING or CONFIRMED booking to status and hands its
// guests back to the slot in the same transaction.
func (r *BookingRepository) CancelBooking(ctx context.Context, bookingID uuid.UUID, status domain.BookingStatus) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	var slotID uuid.UUID
	var guests int

	err = tx.QueryRowContext(ctx, `
	UPDATE bookings SET status = $1
	WHERE id = $2 AND status IN ('PENDING', 'CONFIRMED')
	RETURNING slot_id, guest_count
	`, string(status), bookingID).Scan(&slotID, &guests)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.NewConflict(fmt.Sprintf("booking %s is not active", bookingID), nil)
		}

		return err
	}

	_, err = tx.ExecContext(ctx, `
	UPDATE availability_slots
	SET booked = GREATEST(booked - $1, 0),
		version = version + 1
	WHERE id = $2
	`, guests, slotID)
	if err != nil {
		return err
	}

	return tx.Commit()
}
