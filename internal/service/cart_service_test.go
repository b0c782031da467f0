package service

import (
	"context"
	"errors"
	"testing"

	"github.com/irodori/backend/internal/model"
	"github.com/irodori/backend/internal/repository"
)

// ---------------------------------------------------------------------------
// Mock CartRepository
// ---------------------------------------------------------------------------

type mockCartRepo struct {
	listFunc   func(ctx context.Context, token string) ([]*model.CartItem, error)
	addFunc    func(ctx context.Context, token string, item *model.CartItem) error
	removeFunc func(ctx context.Context, token, itemID string) error
}

func (m *mockCartRepo) List(ctx context.Context, token string) ([]*model.CartItem, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, token)
	}
	return nil, nil
}
func (m *mockCartRepo) Add(ctx context.Context, token string, item *model.CartItem) error {
	if m.addFunc != nil {
		return m.addFunc(ctx, token, item)
	}
	return nil
}
func (m *mockCartRepo) Remove(ctx context.Context, token, itemID string) error {
	if m.removeFunc != nil {
		return m.removeFunc(ctx, token, itemID)
	}
	return nil
}

func newTestCartService(repo repository.CartRepository) CartService {
	catalog := &fixedCatalogService{cat: model.DefaultPriceCatalog()}
	return NewCartService(catalog, NewEstimateService(catalog), repo)
}

// ---------------------------------------------------------------------------
// Add
// ---------------------------------------------------------------------------

func TestCartService_Add_FreezesEstimateSubset(t *testing.T) {
	var stored *model.CartItem
	svc := newTestCartService(&mockCartRepo{
		addFunc: func(_ context.Context, token string, item *model.CartItem) error {
			if token != "tok-1" {
				t.Errorf("token = %q, want tok-1", token)
			}
			stored = item
			return nil
		},
	})

	cat := model.DefaultPriceCatalog()
	item, err := svc.Add(context.Background(), "tok-1", AddItemInput{
		Selection: model.EstimateInput{
			Flow:            model.FlowOriginalSingle,
			Variant:         model.VariantStandard,
			Quantity:        5,
			DesignType:      model.DesignNamePrint,
			UseUnifiedColor: true,
			UnifiedColor:    model.ColorRainbow,
		},
		Title: "名入れタイル 太郎",
		Note:  "ギフト用",
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if stored == nil {
		t.Fatal("item was not stored")
	}
	if item.ID == "" {
		t.Error("expected generated item ID")
	}

	unit := cat.BasePrices[model.PriceKey{Flow: model.FlowOriginalSingle, Variant: model.VariantStandard}]
	if stored.Unit != unit {
		t.Errorf("unit = %d, want %d", stored.Unit, unit)
	}
	if stored.Quantity != 5 {
		t.Errorf("quantity = %d, want 5", stored.Quantity)
	}
	wantOption := cat.RainbowFee * 5
	if stored.OptionTotal != wantOption {
		t.Errorf("optionTotal = %d, want %d", stored.OptionTotal, wantOption)
	}
	wantDiscount := (unit*5 + wantOption) * 10 / 100
	if stored.Discount != wantDiscount {
		t.Errorf("discount = %d, want %d", stored.Discount, wantDiscount)
	}
	if stored.Title != "名入れタイル 太郎" || stored.Note != "ギフト用" {
		t.Errorf("metadata not carried: %+v", stored)
	}
	if len(stored.Extras) != 1 || stored.Extras[0].Amount != cat.RainbowFee {
		t.Errorf("extras copy missing: %v", stored.Extras)
	}
}

func TestCartService_Add_DefaultTitleFromFlow(t *testing.T) {
	var stored *model.CartItem
	svc := newTestCartService(&mockCartRepo{
		addFunc: func(_ context.Context, _ string, item *model.CartItem) error {
			stored = item
			return nil
		},
	})
	_, err := svc.Add(context.Background(), "tok-1", AddItemInput{
		Selection: model.EstimateInput{
			Flow:       model.FlowFullset,
			Variant:    model.VariantStandard,
			Quantity:   1,
			DesignType: model.DesignCommission,
		},
	})
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if stored.Title != "オリジナルタイル（フルセット）" {
		t.Errorf("title = %q", stored.Title)
	}
}

func TestCartService_Add_UnknownFlowRejected(t *testing.T) {
	svc := newTestCartService(&mockCartRepo{
		addFunc: func(_ context.Context, _ string, item *model.CartItem) error {
			t.Errorf("line stored despite unknown flow: %+v", item)
			return nil
		},
	})
	_, err := svc.Add(context.Background(), "tok-1", AddItemInput{
		Selection: model.EstimateInput{Flow: "banana", Quantity: 3},
	})
	if !errors.Is(err, ErrUnknownSelection) {
		t.Errorf("expected ErrUnknownSelection, got %v", err)
	}
}

func TestCartService_Add_RepoError(t *testing.T) {
	svc := newTestCartService(&mockCartRepo{
		addFunc: func(_ context.Context, _ string, _ *model.CartItem) error {
			return errors.New("store failed")
		},
	})
	if _, err := svc.Add(context.Background(), "tok-1", AddItemInput{
		Selection: model.EstimateInput{Flow: model.FlowRegular, Quantity: 1, DesignType: model.DesignCommission},
	}); err == nil {
		t.Error("expected error")
	}
}

// ---------------------------------------------------------------------------
// Remove / Get
// ---------------------------------------------------------------------------

func TestCartService_Remove_NotFound(t *testing.T) {
	svc := newTestCartService(&mockCartRepo{
		removeFunc: func(_ context.Context, _, _ string) error {
			return repository.ErrNotFound
		},
	})
	err := svc.Remove(context.Background(), "tok-1", "nope")
	if !errors.Is(err, repository.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCartService_Get_EmptyCart(t *testing.T) {
	svc := newTestCartService(&mockCartRepo{})
	view, err := svc.Get(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !view.Empty {
		t.Error("expected empty=true")
	}
	if view.Items == nil || len(view.Items) != 0 {
		t.Errorf("items = %v, want empty non-nil slice", view.Items)
	}
	if view.Totals != (model.CartTotals{}) {
		t.Errorf("totals = %+v, want zeros", view.Totals)
	}
}

func TestCartService_Get_AggregatesItems(t *testing.T) {
	cat := model.DefaultPriceCatalog()
	items := []*model.CartItem{
		{ID: "a", Quantity: 4, Unit: 1650},
		{ID: "b", Quantity: 4, Unit: 1650},
	}
	svc := newTestCartService(&mockCartRepo{
		listFunc: func(_ context.Context, _ string) ([]*model.CartItem, error) {
			return items, nil
		},
	})

	view, err := svc.Get(context.Background(), "tok-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if view.Empty {
		t.Error("expected empty=false")
	}
	if view.Totals.PreMerch != 13200 {
		t.Errorf("preMerch = %d, want 13200", view.Totals.PreMerch)
	}
	// 13200 reaches the default free-shipping line.
	if cat.FreeShippingThreshold == 13200 && view.Totals.Shipping != 0 {
		t.Errorf("shipping = %d, want 0", view.Totals.Shipping)
	}
}
