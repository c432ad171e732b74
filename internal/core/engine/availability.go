package engine

import (
	"github.com/srgjo27/package_pricing/internal/core/domain"
)

// ResolveAvailability finds the slot containing the requested date and time
// and grades its remaining capacity against the guest count. It never
// changes Booked.
func (e *Engine) ResolveAvailability(rs *domain.RuleSet, req domain.BookingRequest) (domain.AvailabilityResult, error) {
	if err := validateRequest(req); err != nil {
		return domain.AvailabilityResult{}, err
	}

	slot, ok := findSlot(rs, req)
	if !ok {
		return domain.AvailabilityResult{Status: domain.StatusUnavailable}, nil
	}

	res := domain.AvailabilityResult{
		SlotID:            slot.ID,
		SlotVersion:       slot.Version,
		RemainingCapacity: max(slot.Remaining(), 0),
	}

	remaining := res.RemainingCapacity

	switch {
	case remaining <= 0, remaining < req.GuestCount:
		res.Status = domain.StatusUnavailable
	case remaining == req.GuestCount, remaining-req.GuestCount <= e.lowStockThreshold:
		res.Status = domain.StatusLimited
	default:
		res.Status = domain.StatusAvailable
	}

	return res, nil
}

func findSlot(rs *domain.RuleSet, req domain.BookingRequest) (domain.AvailabilitySlot, bool) {
	for _, slot := range rs.Availability.Slots {
		if slot.Contains(req.Date, req.Time) {
			return slot, true
		}
	}

	return domain.AvailabilitySlot{}, false
}
