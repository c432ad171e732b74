package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/srgjo27/package_pricing/internal/core/domain"
)

type errorResponse struct {
	Error  string              `json:"error"`
	Field  string              `json:"field,omitempty"`
	Fields map[string][]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid json body")
		return false
	}

	return true
}

// handleError writes the response for a service error. Anything that is not
// a known domain error is logged and reported as a 500.
func (h *Handler) handleError(w http.ResponseWriter, r *http.Request, err error) {
	if ve := domain.AsValidation(err); ve != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid rule set", Fields: ve.Fields()})
		return
	}

	var reqErr *domain.InvalidRequestError
	if errors.As(err, &reqErr) {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: reqErr.Reason, Field: reqErr.Field})
		return
	}

	var domErr *domain.DomainError
	if errors.As(err, &domErr) {
		switch domErr.Kind {
		case domain.KindNotFound:
			writeError(w, http.StatusNotFound, domErr.Error())
			return
		case domain.KindUnavailable, domain.KindConflict:
			writeError(w, http.StatusConflict, domErr.Error())
			return
		}
	}

	h.l.LogErrorf("%s %s: %v", r.Method, r.URL.Path, err)
	writeError(w, http.StatusInternalServerError, "internal server error")
}
