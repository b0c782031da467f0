package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"

	"github.com/irodori/backend/internal/model"
	"github.com/irodori/backend/internal/pricing"
	"github.com/irodori/backend/internal/repository"
)

// AddItemInput carries one selection plus its display metadata.
// The selection is re-priced server-side on add; any figures the client
// computed for display are ignored.
type AddItemInput struct {
	Selection model.EstimateInput
	Title     string
	Note      string
}

// CartView is the cart page payload: the stored lines plus the
// authoritative aggregate totals.
type CartView struct {
	Items  []*model.CartItem `json:"items"`
	Totals model.CartTotals  `json:"totals"`
	Empty  bool              `json:"empty"`
}

// CartService owns cart mutation and summary.
type CartService interface {
	Add(ctx context.Context, token string, in AddItemInput) (*model.CartItem, error)
	Remove(ctx context.Context, token, itemID string) error
	Get(ctx context.Context, token string) (*CartView, error)
}

type cartService struct {
	catalog   CatalogService
	estimator EstimateService
	repo      repository.CartRepository
}

// NewCartService creates a CartService.
func NewCartService(catalog CatalogService, estimator EstimateService, repo repository.CartRepository) CartService {
	return &cartService{catalog: catalog, estimator: estimator, repo: repo}
}

// Add prices the selection and stores the subset of the estimate the
// aggregator needs ({qty, unit, optionTotal, discount}) together with the
// display metadata. The stored discount is frozen: later catalog changes
// never retroactively re-price a cart line.
func (s *cartService) Add(ctx context.Context, token string, in AddItemInput) (*model.CartItem, error) {
	est, err := s.estimator.Estimate(in.Selection)
	if err != nil {
		return nil, err
	}

	title := in.Title
	if title == "" {
		title = flowTitle(in.Selection.Flow)
	}

	extras := make([]model.ExtraRow, len(est.Extras))
	copy(extras, est.Extras)

	item := &model.CartItem{
		ID:          newCartItemID(),
		Title:       title,
		Note:        in.Note,
		Quantity:    est.Quantity,
		Unit:        est.Unit,
		OptionTotal: est.OptionTotal,
		Discount:    est.DiscountAmount,
		Extras:      extras,
	}
	if err := s.repo.Add(ctx, token, item); err != nil {
		return nil, err
	}
	return item, nil
}

// Remove deletes a cart line by ID.
func (s *cartService) Remove(ctx context.Context, token, itemID string) error {
	return s.repo.Remove(ctx, token, itemID)
}

// Get returns the cart's lines and aggregate totals.
func (s *cartService) Get(ctx context.Context, token string) (*CartView, error) {
	items, err := s.repo.List(ctx, token)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []*model.CartItem{}
	}
	return &CartView{
		Items:  items,
		Totals: pricing.ComputeCartTotals(s.catalog.Current(), items),
		Empty:  len(items) == 0,
	}, nil
}

func flowTitle(flow model.Flow) string {
	switch flow {
	case model.FlowOriginalSingle:
		return "オリジナルタイル（単品）"
	case model.FlowFullset:
		return "オリジナルタイル（フルセット）"
	default:
		return "レギュラータイル"
	}
}

func newCartItemID() string {
	b := make([]byte, 8)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
