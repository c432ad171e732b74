package handler

import (
	"net/http"

	"github.com/srgjo27/package_pricing/internal/core/domain"
	"github.com/srgjo27/package_pricing/internal/core/services"
)

type quoteResponse struct {
	PackageID          string `json:"package_id"`
	SlotID             string `json:"slot_id"`
	Currency           string `json:"currency"`
	UnitPrice          string `json:"unit_price"`
	TotalPrice         string `json:"total_price"`
	AppliedRule        string `json:"applied_rule"`
	AvailabilityStatus string `json:"availability_status"`
	RemainingCapacity  int    `json:"remaining_capacity"`
}

func newQuoteResponse(q *domain.Quote) quoteResponse {
	places := q.Currency.MinorUnits()

	return quoteResponse{
		PackageID:          q.PackageID.String(),
		SlotID:             q.SlotID.String(),
		Currency:           string(q.Currency),
		UnitPrice:          q.UnitPrice.StringFixed(places),
		TotalPrice:         q.TotalPrice.StringFixed(places),
		AppliedRule:        string(q.AppliedRule),
		AvailabilityStatus: string(q.AvailabilityStatus),
		RemainingCapacity:  q.RemainingCapacity,
	}
}

func (h *Handler) Quote(w http.ResponseWriter, r *http.Request) {
	var req services.QuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	q, err := h.quotes.Quote(r.Context(), r.PathValue("id"), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newQuoteResponse(q))
}
