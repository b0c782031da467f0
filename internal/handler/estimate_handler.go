package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/irodori/backend/internal/model"
	"github.com/irodori/backend/internal/service"
)

// EstimateHandler serves live price estimates for the product configurator.
type EstimateHandler struct {
	svc service.EstimateService
}

// NewEstimateHandler creates an EstimateHandler.
func NewEstimateHandler(svc service.EstimateService) *EstimateHandler {
	return &EstimateHandler{svc: svc}
}

// Estimate handles POST /api/estimate.
// The body is the full line selection; the response is the priced estimate.
// Pricing is total over well-formed input, so the client errors here are
// malformed JSON and a flow outside the lineup.
func (h *EstimateHandler) Estimate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	var in model.EstimateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	est, err := h.svc.Estimate(in)
	if err != nil {
		if errors.Is(err, service.ErrUnknownSelection) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_selection"})
			return
		}
		slog.Error("estimate failed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "estimate_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]any{"estimate": est})
}
