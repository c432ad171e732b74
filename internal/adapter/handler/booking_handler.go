package handler

import (
	"net/http"
	"time"

	"github.com/srgjo27/package_pricing/internal/core/domain"
	"github.com/srgjo27/package_pricing/internal/core/services"
)

type bookingResponse struct {
	BookingID   string  `json:"booking_id"`
	PackageID   string  `json:"package_id"`
	SlotID      string  `json:"slot_id"`
	GuestCount  int     `json:"guest_count"`
	UnitPrice   string  `json:"unit_price"`
	TotalAmount string  `json:"total_amount"`
	Currency    string  `json:"currency"`
	AppliedRule string  `json:"applied_rule"`
	Status      string  `json:"status"`
	ExpiresAt   string  `json:"expires_at"`
	ConfirmedAt *string `json:"confirmed_at,omitempty"`
}

func newBookingResponse(b *domain.Booking) bookingResponse {
	places := b.Currency.MinorUnits()

	resp := bookingResponse{
		BookingID:   b.ID.String(),
		PackageID:   b.PackageID.String(),
		SlotID:      b.SlotID.String(),
		GuestCount:  b.GuestCount,
		UnitPrice:   b.UnitPrice.StringFixed(places),
		TotalAmount: b.TotalPrice.StringFixed(places),
		Currency:    string(b.Currency),
		AppliedRule: string(b.AppliedRule),
		Status:      string(b.Status),
		ExpiresAt:   b.ExpiresAt.Format(time.RFC3339),
	}

	if b.ConfirmedAt != nil {
		at := b.ConfirmedAt.Format(time.RFC3339)
		resp.ConfirmedAt = &at
	}

	return resp
}

func (h *Handler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req services.CreateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	resp, err := h.bookings.CreateBooking(r.Context(), req)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) ConfirmBooking(w http.ResponseWriter, r *http.Request) {
	b, err := h.bookings.ConfirmBooking(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, newBookingResponse(b))
}

func (h *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	if err := h.bookings.CancelBooking(r.Context(), r.PathValue("id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
