package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/srgjo27/package_pricing/internal/core/domain"
)

type SlotRepository struct {
	db *sql.DB
}

func NewSlotRepository(db *sql.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

// ReserveCapacity is an optimistic lock: it only succeeds when the slot is
// still at currentVersion and the guests fit.
func (r *SlotRepository) ReserveCapacity(ctx context.Context, slotID uuid.UUID, guests int, currentVersion int) error {
	query := `
	UPDATE availability_slots
	SET booked = booked + $1,
		version = version + 1
	WHERE id = $2 AND version = $3 AND active AND booked + $1 <= capacity
	`

	result, err := r.db.ExecContext(ctx, query, guests, slotID, currentVersion)
	if err != nil {
		return mapError(err, "availability slot")
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewConflict(fmt.Sprintf("slot %s was modified by another transaction", slotID), nil)
	}

	return nil
}

func (r *SlotRepository) ReleaseCapacity(ctx context.Context, slotID uuid.UUID, guests int) error {
	query := `
	UPDATE availability_slots
	SET booked = booked - $1,
		version = version + 1
	WHERE id = $2 AND booked >= $1
	`

	result, err := r.db.ExecContext(ctx, query, guests, slotID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewConflict(fmt.Sprintf("slot %s has fewer than %d guests booked", slotID, guests), nil)
	}

	return nil
}
