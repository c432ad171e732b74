package engine

import (
	"cloud.google.com/go/civil"
	"github.com/shopspring/decimal"

	"github.com/srgjo27/package_pricing/internal/core/domain"
)

// ResolvePrice picks exactly one pricing rule for req. Precedence is early
// bird, then time band, then gender, then base price; the first rule that
// matches wins.
func (e *Engine) ResolvePrice(rs *domain.RuleSet, req domain.BookingRequest) (domain.PriceResult, error) {
	if err := validateRequest(req); err != nil {
		return domain.PriceResult{}, err
	}

	if rs.GenderEnabled() && req.GuestBreakdown == nil {
		return domain.PriceResult{}, domain.NewInvalidRequest("guest_breakdown", "required when gender pricing is enabled")
	}

	guests := decimal.NewFromInt(int64(req.GuestCount))
	places := rs.Currency.MinorUnits()

	if unit, ok := earlyBirdPrice(rs, req, places); ok {
		return perGuest(unit, guests, domain.RuleEarlyBird), nil
	}

	if unit, ok := timeBandPrice(rs, req); ok {
		return perGuest(unit, guests, domain.RuleTime), nil
	}

	if rs.GenderEnabled() {
		total := genderTotal(rs.GenderPricing, *req.GuestBreakdown)

		return domain.PriceResult{
			UnitPrice:   total.Div(guests).Round(places),
			TotalPrice:  total,
			AppliedRule: domain.RuleGender,
		}, nil
	}

	return perGuest(rs.BasePrice, guests, domain.RuleBase), nil
}

func perGuest(unit, guests decimal.Decimal, rule domain.AppliedRule) domain.PriceResult {
	return domain.PriceResult{
		UnitPrice:   unit,
		TotalPrice:  unit.Mul(guests),
		AppliedRule: rule,
	}
}

// earlyBirdPrice applies while the calendar day of RequestedAt, in its own
// location, is on or before ValidUntil.
func earlyBirdPrice(rs *domain.RuleSet, req domain.BookingRequest, places int32) (decimal.Decimal, bool) {
	if !rs.EarlyBirdEnabled() {
		return decimal.Decimal{}, false
	}

	eb := rs.EarlyBird
	if civil.DateOf(req.RequestedAt).After(eb.ValidUntil) {
		return decimal.Decimal{}, false
	}

	if eb.DiscountType == domain.DiscountPercentage {
		return rs.BasePrice.Mul(hundred.Sub(eb.Price)).Div(hundred).Round(places), true
	}

	return eb.Price, true
}

// timeBandPrice returns the first band, in normalized order, containing the
// requested time whose cutoff date has not passed.
func timeBandPrice(rs *domain.RuleSet, req domain.BookingRequest) (decimal.Decimal, bool) {
	if !rs.TimeEnabled() {
		return decimal.Decimal{}, false
	}

	for _, band := range rs.TimePricing.Slots {
		if band.Contains(req.Time) && !band.CutoffDate.Before(req.Date) {
			return band.Price, true
		}
	}

	return decimal.Decimal{}, false
}

func genderTotal(gp *domain.GenderPricing, b domain.GuestBreakdown) decimal.Decimal {
	kidsPrice := gp.GentsPrice
	if gp.KidsPrice.Valid {
		kidsPrice = gp.KidsPrice.Decimal
	}

	return gp.LadiesPrice.Mul(decimal.NewFromInt(int64(b.Ladies))).
		Add(gp.GentsPrice.Mul(decimal.NewFromInt(int64(b.Gents)))).
		Add(kidsPrice.Mul(decimal.NewFromInt(int64(b.Kids))))
}

func validateRequest(req domain.BookingRequest) error {
	if req.GuestCount < 1 {
		return domain.NewInvalidRequest("guest_count", "must be at least 1")
	}

	if !req.Date.IsValid() {
		return domain.NewInvalidRequest("date", "is required")
	}

	if !req.Time.IsValid() {
		return domain.NewInvalidRequest("time", "is not a valid time of day")
	}

	if req.RequestedAt.IsZero() {
		return domain.NewInvalidRequest("requested_at", "is required")
	}

	if b := req.GuestBreakdown; b != nil {
		if b.Ladies < 0 || b.Gents < 0 || b.Kids < 0 {
			return domain.NewInvalidRequest("guest_breakdown", "counts must not be negative")
		}

		if b.Ladies > req.GuestCount || b.Gents > req.GuestCount || b.Kids > req.GuestCount {
			return domain.NewInvalidRequest("guest_breakdown", "no count may exceed guest_count")
		}

		if b.Total() != req.GuestCount {
			return domain.NewInvalidRequest("guest_breakdown", "must sum to guest_count")
		}
	}

	return nil
}
