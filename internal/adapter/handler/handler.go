package handler

import (
	"net/http"

	"github.com/srgjo27/package_pricing/internal/core/services"
	"github.com/srgjo27/package_pricing/internal/platform/logger"
)

type Handler struct {
	rules    *services.RuleSetService
	quotes   *services.QuoteService
	bookings *services.BookingService
	l        *logger.Logger
}

func NewHandler(
	rules *services.RuleSetService,
	quotes *services.QuoteService,
	bookings *services.BookingService,
	l *logger.Logger,
) *Handler {
	return &Handler{rules: rules, quotes: quotes, bookings: bookings, l: l}
}

// Routes returns the API mux with access logging and panic recovery applied
// to every route.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("PUT /packages/{id}/rules", h.SaveRuleSet)
	mux.HandleFunc("GET /packages/{id}/rules", h.GetRuleSet)
	mux.HandleFunc("DELETE /packages/{id}/rules", h.DeleteRuleSet)
	mux.HandleFunc("POST /packages/{id}/quotes", h.Quote)
	mux.HandleFunc("POST /bookings", h.CreateBooking)
	mux.HandleFunc("POST /bookings/{id}/confirm", h.ConfirmBooking)
	mux.HandleFunc("POST /bookings/{id}/cancel", h.CancelBooking)
	mux.HandleFunc("GET /healthz", h.Healthz)

	return applyMiddlewares(mux, h.recoverMiddleware(), h.loggerMiddleware())
}

func (h *Handler) Healthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusNoContent)
}
