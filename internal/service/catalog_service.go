package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/irodori/backend/internal/model"
	"github.com/irodori/backend/internal/repository"
)

// CatalogService serves the validated, process-lifetime price catalog.
// The catalog is static reference data: it is loaded and validated once at
// startup, and every estimate reads the same snapshot.
type CatalogService interface {
	Current() *model.PriceCatalog
}

type catalogService struct {
	cat *model.PriceCatalog
}

// NewCatalogService loads the catalog from the repository, falling back to
// the built-in default table when no rows have been seeded. A catalog that
// fails validation is a configuration defect: the error is returned so the
// caller can abort startup instead of serving broken prices.
func NewCatalogService(ctx context.Context, repo repository.CatalogRepository) (CatalogService, error) {
	cat, err := repo.LoadActive(ctx)
	if errors.Is(err, repository.ErrNotFound) {
		slog.Info("no catalog rows found, using built-in default catalog")
		cat = model.DefaultPriceCatalog()
	} else if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	if err := cat.Validate(); err != nil {
		return nil, fmt.Errorf("catalog validation: %w", err)
	}
	return &catalogService{cat: cat}, nil
}

func (s *catalogService) Current() *model.PriceCatalog {
	return s.cat
}
