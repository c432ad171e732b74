package services_test

import (
	"cloud.google.com/go/civil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/package_pricing/internal/core/domain"
)

func eveningRuleSet(slotID uuid.UUID, capacity, booked int) *domain.RuleSet {
	return &domain.RuleSet{
		BasePrice: decimal.NewFromInt(299),
		Currency:  domain.CurrencyAED,
		Availability: domain.Availability{Slots: []domain.AvailabilitySlot{{
			ID:        slotID,
			Date:      civil.Date{Year: 2024, Month: 12, Day: 20},
			StartTime: civil.Time{Hour: 18},
			EndTime:   civil.Time{Hour: 23},
			Capacity:  capacity,
			Booked:    booked,
			Version:   4,
		}}},
	}
}
