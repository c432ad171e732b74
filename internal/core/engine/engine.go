// Package engine evaluates package rule sets: it normalizes editor input and
// turns a booking request into a priced, availability-checked quote.
//
// Evaluation is pure. An Engine holds only configuration and may be shared
// between goroutines.
package engine

import (
	"fmt"

	"github.com/srgjo27/package_pricing/internal/core/domain"
)

// DefaultLowStockThreshold is how many places may be left over after a
// booking before its slot is reported as limited.
const DefaultLowStockThreshold = 3

type Engine struct {
	lowStockThreshold int
}

func New(lowStockThreshold int) *Engine {
	if lowStockThreshold < 0 {
		lowStockThreshold = DefaultLowStockThreshold
	}

	return &Engine{lowStockThreshold: lowStockThreshold}
}

func (e *Engine) LowStockThreshold() int {
	return e.lowStockThreshold
}

// AssembleQuote prices req, then checks availability. An unavailable slot is
// reported as a domain error and the computed price is discarded.
func (e *Engine) AssembleQuote(rs *domain.RuleSet, req domain.BookingRequest) (*domain.Quote, error) {
	price, err := e.ResolvePrice(rs, req)
	if err != nil {
		return nil, err
	}

	avail, err := e.ResolveAvailability(rs, req)
	if err != nil {
		return nil, err
	}

	if avail.Status == domain.StatusUnavailable {
		return nil, domain.NewUnavailable(fmt.Sprintf(
			"%d guests on %s at %s: %d places remaining",
			req.GuestCount, req.Date, req.Time, avail.RemainingCapacity,
		))
	}

	return &domain.Quote{
		SlotID:             avail.SlotID,
		Currency:           rs.Currency,
		UnitPrice:          price.UnitPrice,
		TotalPrice:         price.TotalPrice,
		AppliedRule:        price.AppliedRule,
		AvailabilityStatus: avail.Status,
		RemainingCapacity:  avail.RemainingCapacity,
	}, nil
}
