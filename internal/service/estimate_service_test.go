package service

import (
	"errors"
	"testing"

	"github.com/irodori/backend/internal/model"
)

type fixedCatalogService struct {
	cat *model.PriceCatalog
}

func (f *fixedCatalogService) Current() *model.PriceCatalog { return f.cat }

func newTestEstimateService() (EstimateService, *model.PriceCatalog) {
	cat := model.DefaultPriceCatalog()
	return NewEstimateService(&fixedCatalogService{cat: cat}), cat
}

func TestEstimateService_KeyholderCountCappedAtQuantity(t *testing.T) {
	svc, cat := newTestEstimateService()
	est, err := svc.Estimate(model.EstimateInput{
		Flow:           model.FlowRegular,
		Variant:        model.VariantDefault,
		Quantity:       2,
		DesignType:     model.DesignCommission,
		KeyholderCount: 5,
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if est.OptionTotal != 2*cat.KeyholderFee {
		t.Errorf("optionTotal = %d, want keyholders capped at qty (%d)", est.OptionTotal, 2*cat.KeyholderFee)
	}
}

func TestEstimateService_UnknownFlowRejected(t *testing.T) {
	svc, _ := newTestEstimateService()
	_, err := svc.Estimate(model.EstimateInput{
		Flow:     "banana",
		Quantity: 3,
	})
	if !errors.Is(err, ErrUnknownSelection) {
		t.Fatalf("unknown flow: err = %v, want ErrUnknownSelection", err)
	}
}

func TestEstimateService_UnknownVariantAndDesignNormalized(t *testing.T) {
	svc, cat := newTestEstimateService()

	// Out-of-enum variant prices as the flow's standard entry, never as a
	// missing catalog row.
	est, err := svc.Estimate(model.EstimateInput{
		Flow:       model.FlowOriginalSingle,
		Variant:    "huge",
		Quantity:   1,
		DesignType: model.DesignCommission,
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	want := cat.BasePrices[model.PriceKey{Flow: model.FlowOriginalSingle, Variant: model.VariantStandard}]
	if est.Unit != want {
		t.Errorf("unknown variant: unit = %d, want %d", est.Unit, want)
	}

	// Out-of-enum design type behaves like commission: no design fee.
	est, err = svc.Estimate(model.EstimateInput{
		Flow:       model.FlowOriginalSingle,
		Variant:    model.VariantStandard,
		Quantity:   1,
		DesignType: "hologram",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if est.OptionTotal != 0 {
		t.Errorf("unknown design type: optionTotal = %d, want 0", est.OptionTotal)
	}
	if est.Unit == 0 {
		t.Errorf("unknown design type: unit = 0, want catalog price")
	}
}

func TestEstimateService_UnknownColorsFallBackToDefault(t *testing.T) {
	svc, _ := newTestEstimateService()

	// Unknown unified color behaves like the default color: no fee.
	est, err := svc.Estimate(model.EstimateInput{
		Flow:            model.FlowOriginalSingle,
		Variant:         model.VariantStandard,
		Quantity:        1,
		DesignType:      model.DesignNamePrint,
		UseUnifiedColor: true,
		UnifiedColor:    "sparkle",
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if est.OptionTotal != 0 {
		t.Errorf("unknown unified color: optionTotal = %d, want 0", est.OptionTotal)
	}

	// Unknown per-character colors collapse into the default color.
	est, err = svc.Estimate(model.EstimateInput{
		Flow:          model.FlowOriginalSingle,
		Variant:       model.VariantStandard,
		Quantity:      1,
		DesignType:    model.DesignNamePrint,
		NameText:      "あい",
		PerCharColors: []model.ColorKey{"sparkle", "glitter"},
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if est.OptionTotal != 0 {
		t.Errorf("unknown per-char colors: optionTotal = %d, want 0", est.OptionTotal)
	}
}

func TestEstimateService_DoesNotMutateCallerSlice(t *testing.T) {
	svc, _ := newTestEstimateService()
	colors := []model.ColorKey{"sparkle", model.ColorRed}
	_, err := svc.Estimate(model.EstimateInput{
		Flow:          model.FlowOriginalSingle,
		Variant:       model.VariantStandard,
		Quantity:      1,
		DesignType:    model.DesignNamePrint,
		NameText:      "あい",
		PerCharColors: colors,
	})
	if err != nil {
		t.Fatalf("Estimate: %v", err)
	}
	if colors[0] != "sparkle" {
		t.Errorf("caller slice was mutated: %v", colors)
	}
}
