package services

import (
	"context"
	"time"

	"github.com/srgjo27/package_pricing/internal/core/domain"
	"github.com/srgjo27/package_pricing/internal/core/engine"
)

type QuoteRequest struct {
	Date           string                 `json:"date"`
	Time           string                 `json:"time"`
	GuestCount     int                    `json:"guest_count"`
	GuestBreakdown *domain.GuestBreakdown `json:"guest_breakdown,omitempty"`
	RequestedAt    *time.Time             `json:"requested_at,omitempty"`
}

func (r QuoteRequest) toDomain(now time.Time) (domain.BookingRequest, error) {
	d, err := domain.ParseDate(r.Date)
	if err != nil {
		return domain.BookingRequest{}, domain.NewInvalidRequest("date", err.Error())
	}

	t, err := domain.ParseTime(r.Time)
	if err != nil {
		return domain.BookingRequest{}, domain.NewInvalidRequest("time", err.Error())
	}

	requestedAt := now
	if r.RequestedAt != nil {
		requestedAt = *r.RequestedAt
	}

	return domain.BookingRequest{
		Date:           d,
		Time:           t,
		GuestCount:     r.GuestCount,
		GuestBreakdown: r.GuestBreakdown,
		RequestedAt:    requestedAt,
	}, nil
}

type QuoteService struct {
	rules  *RuleSetService
	engine *engine.Engine
	now    func() time.Time
}

func NewQuoteService(rules *RuleSetService, eng *engine.Engine) *QuoteService {
	return &QuoteService{
		rules:  rules,
		engine: eng,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

// Quote prices a request against the package's current rules. It is
// read-only: no capacity is held.
func (s *QuoteService) Quote(ctx context.Context, packageIDStr string, req QuoteRequest) (*domain.Quote, error) {
	packageID, err := parsePackageID(packageIDStr)
	if err != nil {
		return nil, err
	}

	br, err := req.toDomain(s.now())
	if err != nil {
		return nil, err
	}

	rs, err := s.rules.cached(ctx, packageID)
	if err != nil {
		return nil, err
	}

	quote, err := s.engine.AssembleQuote(rs, br)
	if err != nil {
		return nil, err
	}

	quote.PackageID = packageID

	return quote, nil
}
