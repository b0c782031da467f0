package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/irodori/backend/internal/model"
	"github.com/irodori/backend/internal/repository"
	"github.com/irodori/backend/internal/service"
	"github.com/irodori/backend/pkg/carttoken"
)

// CartHandler handles cart endpoints. Cart identity comes from the signed
// cart-token cookie resolved by the carttoken.EnsureCart middleware.
type CartHandler struct {
	svc service.CartService
}

// NewCartHandler creates a CartHandler.
func NewCartHandler(svc service.CartService) *CartHandler {
	return &CartHandler{svc: svc}
}

type addItemRequest struct {
	Selection model.EstimateInput `json:"selection"`
	Title     string              `json:"title"`
	Note      string              `json:"note"`
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cartID, ok := carttoken.CartIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "cart_unresolved"})
		return
	}

	view, err := h.svc.Get(r.Context(), cartID)
	if err != nil {
		slog.Error("cart get failed", "error", err, "cart_id", cartID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "cart_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(view)
}

// AddItem handles POST /api/cart/items.
// The selection is re-priced server-side before it is stored.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cartID, ok := carttoken.CartIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "cart_unresolved"})
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_json"})
		return
	}

	item, err := h.svc.Add(r.Context(), cartID, service.AddItemInput{
		Selection: req.Selection,
		Title:     req.Title,
		Note:      req.Note,
	})
	if err != nil {
		if errors.Is(err, service.ErrUnknownSelection) {
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_selection"})
			return
		}
		slog.Error("cart add failed", "error", err, "cart_id", cartID)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "add_failed"})
		return
	}

	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{"item": item})
}

// RemoveItem handles DELETE /api/cart/items/{id}.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	cartID, ok := carttoken.CartIDFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "cart_unresolved"})
		return
	}

	id := r.PathValue("id")
	if err := h.svc.Remove(r.Context(), cartID, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"error": "not_found"})
			return
		}
		slog.Error("cart remove failed", "error", err, "cart_id", cartID, "item_id", id)
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"error": "remove_failed"})
		return
	}

	_ = json.NewEncoder(w).Encode(map[string]bool{"ok": true})
}
