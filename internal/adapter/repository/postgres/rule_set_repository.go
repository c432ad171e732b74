package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/package_pricing/internal/core/domain"
)

// ruleDocument is the JSONB part of a rule set. Slots live in their own
// table because booked changes on every booking.
type ruleDocument struct {
	BasePrice     decimal.Decimal       `json:"base_price"`
	GenderPricing *domain.GenderPricing `json:"gender_pricing,omitempty"`
	TimePricing   *domain.TimePricing   `json:"time_pricing,omitempty"`
	EarlyBird     *domain.EarlyBird     `json:"early_bird,omitempty"`
}

type RuleSetRepository struct {
	db *sql.DB
}

func NewRuleSetRepository(db *sql.DB) *RuleSetRepository {
	return &RuleSetRepository{db: db}
}

// Save replaces the package's rules. Slots matched by window keep their id
// and booked count; slots no longer listed are deactivated, and dropped
// entirely once nothing references them.
func (r *RuleSetRepository) Save(ctx context.Context, packageID uuid.UUID, rs *domain.RuleSet) error {
	doc, err := json.Marshal(ruleDocument{
		BasePrice:     rs.BasePrice,
		GenderPricing: rs.GenderPricing,
		TimePricing:   rs.TimePricing,
		EarlyBird:     rs.EarlyBird,
	})
	if err != nil {
		return fmt.Errorf("encode rule document: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	defer tx.Rollback()

	queryRules := `
	INSERT INTO rule_sets (package_id, currency, document, updated_at)
	VALUES ($1, $2, $3, NOW())
	ON CONFLICT (package_id) DO UPDATE
	SET currency = EXCLUDED.currency,
		document = EXCLUDED.document,
		updated_at = NOW()
	`

	if _, err = tx.ExecContext(ctx, queryRules, packageID, string(rs.Currency), doc); err != nil {
		return fmt.Errorf("failed to upsert rule set: %w", err)
	}

	if _, err = tx.ExecContext(ctx, `UPDATE availability_slots SET active = FALSE WHERE package_id = $1`, packageID); err != nil {
		return fmt.Errorf("failed to deactivate slots: %w", err)
	}

	querySlot := `
	INSERT INTO availability_slots (id, package_id, slot_date, start_time, end_time, capacity, booked, version, active)
	VALUES ($1, $2, $3, $4, $5, $6, $7, 1, TRUE)
	ON CONFLICT (package_id, slot_date, start_time, end_time) DO UPDATE
	SET capacity = EXCLUDED.capacity,
		active = TRUE,
		version = availability_slots.version + 1
	WHERE availability_slots.booked <= EXCLUDED.capacity
	`

	stmt, err := tx.PrepareContext(ctx, querySlot)
	if err != nil {
		return fmt.Errorf("failed to prepare slot statement: %w", err)
	}

	defer stmt.Close()

	for _, slot := range rs.Availability.Slots {
		id := slot.ID
		if id == uuid.Nil {
			id = uuid.New()
		}

		result, err := stmt.ExecContext(ctx,
			id, packageID, slot.Date.String(), slot.StartTime.String(), slot.EndTime.String(), slot.Capacity, slot.Booked,
		)
		if err != nil {
			return mapError(fmt.Errorf("failed to upsert slot %s %s: %w", slot.Date, slot.StartTime, err), "availability slot")
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return err
		}

		if rowsAffected == 0 {
			return domain.NewConflict(
				fmt.Sprintf("slot %s %s-%s already has more guests booked than capacity %d",
					slot.Date, slot.StartTime, slot.EndTime, slot.Capacity),
				nil,
			)
		}
	}

	_, err = tx.ExecContext(ctx, `
	DELETE FROM availability_slots s
	WHERE s.package_id = $1 AND NOT s.active AND s.booked = 0
	AND NOT EXISTS (SELECT 1 FROM bookings b WHERE b.slot_id = s.id)
	`, packageID)
	if err != nil {
		return fmt.Errorf("failed to prune slots: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *RuleSetRepository) GetByPackage(ctx context.Context, packageID uuid.UUID) (*domain.RuleSet, error) {
	var currency string
	var raw []byte

	err := r.db.QueryRowContext(ctx,
		`SELECT currency, document FROM rule_sets WHERE package_id = $1`, packageID,
	).Scan(&currency, &raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewNotFound(fmt.Sprintf("rule set for package %s", packageID))
		}

		return nil, err
	}

	var doc ruleDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode rule document: %w", err)
	}

	slots, err := r.activeSlots(ctx, packageID)
	if err != nil {
		return nil, err
	}

	return &domain.RuleSet{
		BasePrice:     doc.BasePrice,
		Currency:      domain.Currency(currency),
		GenderPricing: doc.GenderPricing,
		TimePricing:   doc.TimePricing,
		EarlyBird:     doc.EarlyBird,
		Availability:  domain.Availability{Slots: slots},
	}, nil
}

func (r *RuleSetRepository) activeSlots(ctx context.Context, packageID uuid.UUID) ([]domain.AvailabilitySlot, error) {
	query := `
	SELECT id, slot_date::text, start_time::text, end_time::text, capacity, booked, version
	FROM availability_slots
	WHERE package_id = $1 AND active
	ORDER BY slot_date, start_time, end_time
	`

	rows, err := r.db.QueryContext(ctx, query, packageID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var slots []domain.AvailabilitySlot
	for rows.Next() {
		var slot domain.AvailabilitySlot
		var date, start, end string

		if err := rows.Scan(&slot.ID, &date, &start, &end, &slot.Capacity, &slot.Booked, &slot.Version); err != nil {
			return nil, err
		}

		if slot.Date, err = domain.ParseDate(date); err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot.ID, err)
		}

		if slot.StartTime, err = domain.ParseTime(start); err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot.ID, err)
		}

		if slot.EndTime, err = domain.ParseTime(end); err != nil {
			return nil, fmt.Errorf("slot %s: %w", slot.ID, err)
		}

		slots = append(slots, slot)
	}

	return slots, rows.Err()
}

func (r *RuleSetRepository) Delete(ctx context.Context, packageID uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM rule_sets WHERE package_id = $1`, packageID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return domain.NewNotFound(fmt.Sprintf("rule set for package %s", packageID))
	}

	return nil
}
