package pricing

import "github.com/irodori/backend/internal/model"

// ComputeCartTotals aggregates already-priced cart lines. Each line's
// discount was frozen when it was added, so the sum here never re-reads
// current catalog prices. Shipping eligibility is decided once, on the
// aggregate post-discount total: the cart figure is authoritative and may
// waive shipping that every line previewed in isolation.
//
// An empty cart totals to zero across the board — no flat shipping is
// charged on nothing.
func ComputeCartTotals(cat *model.PriceCatalog, items []*model.CartItem) model.CartTotals {
	if len(items) == 0 {
		return model.CartTotals{}
	}

	preMerch := 0
	discount := 0
	for _, item := range items {
		preMerch += item.Quantity*item.Unit + item.OptionTotal
		discount += item.Discount
	}

	afterDiscount := preMerch - discount
	shipping := 0
	if afterDiscount < cat.FreeShippingThreshold {
		shipping = cat.ShippingFee
	}

	return model.CartTotals{
		PreMerch:      preMerch,
		Discount:      discount,
		AfterDiscount: afterDiscount,
		Shipping:      shipping,
		Total:         afterDiscount + shipping,
	}
}
