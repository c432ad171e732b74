package handler

import (
	"net/http"

	"github.com/srgjo27/package_pricing/internal/core/domain"
)

func (h *Handler) SaveRuleSet(w http.ResponseWriter, r *http.Request) {
	var raw domain.RawRuleSet
	if !decodeJSON(w, r, &raw) {
		return
	}

	rs, err := h.rules.SaveRuleSet(r.Context(), r.PathValue("id"), raw)
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rs)
}

func (h *Handler) GetRuleSet(w http.ResponseWriter, r *http.Request) {
	rs, err := h.rules.GetRuleSet(r.Context(), r.PathValue("id"))
	if err != nil {
		h.handleError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, rs)
}

func (h *Handler) DeleteRuleSet(w http.ResponseWriter, r *http.Request) {
	if err := h.rules.DeleteRuleSet(r.Context(), r.PathValue("id")); err != nil {
		h.handleError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
