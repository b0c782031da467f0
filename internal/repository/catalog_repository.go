package repository

import (
	"context"

	"github.com/irodori/backend/internal/model"
)

// CatalogRepository loads the active price catalog.
type CatalogRepository interface {
	// LoadActive assembles the catalog from the price tables.
	// Returns ErrNotFound when no catalog rows have been seeded.
	LoadActive(ctx context.Context) (*model.PriceCatalog, error)
}
