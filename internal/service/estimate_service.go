package service

import (
	"errors"

	"github.com/irodori/backend/internal/model"
	"github.com/irodori/backend/internal/pricing"
)

// ErrUnknownSelection は商品ラインナップに存在しないフローが指定されたことを示す。
var ErrUnknownSelection = errors.New("unknown selection")

// EstimateService prices one line item. The engine itself is a total pure
// function; this layer applies the boundary policies the engine leaves to
// its caller: a flow outside the lineup is rejected, unknown variant and
// design tags collapse to their safe values, unknown color keys fall back
// to the default color, and the keyholder count is capped at the line
// quantity. Nothing reaching the engine can miss a catalog lookup.
type EstimateService interface {
	Estimate(in model.EstimateInput) (*model.Estimate, error)
}

type estimateService struct {
	catalog CatalogService
}

// NewEstimateService creates an EstimateService.
func NewEstimateService(catalog CatalogService) EstimateService {
	return &estimateService{catalog: catalog}
}

func (s *estimateService) Estimate(in model.EstimateInput) (*model.Estimate, error) {
	// フロー不明は単価の決めようがないので拒否する
	if !model.KnownFlow(in.Flow) {
		return nil, ErrUnknownSelection
	}
	cat := s.catalog.Current()
	normalized := normalizeInput(cat, in)
	est := pricing.ComputeEstimate(cat, normalized)
	return &est, nil
}

// normalizeInput defensively cleans user-supplied selections. The flow has
// already been checked; everything else only substitutes safe values so the
// estimator stays total.
func normalizeInput(cat *model.PriceCatalog, in model.EstimateInput) model.EstimateInput {
	if !model.KnownVariant(in.Variant) {
		in.Variant = model.VariantDefault
	}
	if !model.KnownDesignType(in.DesignType) {
		in.DesignType = model.DesignCommission
	}
	if !model.KnownColor(in.UnifiedColor) {
		in.UnifiedColor = cat.DefaultColor
	}
	if len(in.PerCharColors) > 0 {
		colors := make([]model.ColorKey, len(in.PerCharColors))
		for i, c := range in.PerCharColors {
			if model.KnownColor(c) {
				colors[i] = c
			} else {
				colors[i] = cat.DefaultColor
			}
		}
		in.PerCharColors = colors
	}

	// キーホルダー個数は本体数量を超えない
	qty := in.Quantity
	if qty < 1 {
		qty = 1
	}
	if in.KeyholderCount > qty {
		in.KeyholderCount = qty
	}
	return in
}
