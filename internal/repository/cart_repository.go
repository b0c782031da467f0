package repository

import (
	"context"

	"github.com/irodori/backend/internal/model"
)

// CartRepository stores cart lines keyed by the caller's cart token.
// Carts are session-scoped: implementations are not required to survive
// a process restart.
type CartRepository interface {
	// List returns the cart's items in insertion order.
	List(ctx context.Context, token string) ([]*model.CartItem, error)
	// Add appends one item to the cart.
	Add(ctx context.Context, token string, item *model.CartItem) error
	// Remove deletes an item by ID. Returns ErrNotFound for an unknown ID.
	Remove(ctx context.Context, token string, itemID string) error
}
