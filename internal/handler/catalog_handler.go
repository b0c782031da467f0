package handler

import (
	"encoding/json"
	"net/http"

	"github.com/irodori/backend/internal/model"
	"github.com/irodori/backend/internal/service"
)

// CatalogHandler exposes the active price catalog so the frontend can
// render price labels from the same table the estimator uses.
type CatalogHandler struct {
	svc service.CatalogService
}

// NewCatalogHandler creates a CatalogHandler.
func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

type catalogEntry struct {
	Flow      model.Flow    `json:"flow"`
	Variant   model.Variant `json:"variant"`
	UnitPrice int           `json:"unit_price"`
}

// Get handles GET /api/catalog.
// Base prices are flattened into rows; map keys with struct types do not
// survive JSON encoding.
func (h *CatalogHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cat := h.svc.Current()
	entries := make([]catalogEntry, 0, len(cat.BasePrices))
	for key, price := range cat.BasePrices {
		entries = append(entries, catalogEntry{Flow: key.Flow, Variant: key.Variant, UnitPrice: price})
	}

	_ = json.NewEncoder(w).Encode(map[string]any{
		"base_prices": entries,
		"fees": map[string]int{
			"color_step":              cat.ColorStepFee,
			"rainbow":                 cat.RainbowFee,
			"keyholder":               cat.KeyholderFee,
			"gift_box":                cat.GiftBoxFee,
			"submission_single":       cat.SubmissionFeeSingle,
			"submission_fullset":      cat.SubmissionFeeFullset,
			"bring_own_step":          cat.BringOwnStepFee,
			"shipping":                cat.ShippingFee,
			"free_shipping_threshold": cat.FreeShippingThreshold,
		},
		"default_color": cat.DefaultColor,
	})
}
