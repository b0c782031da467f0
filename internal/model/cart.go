package model

import "time"

// CartItem is one priced line persisted in a cart. Only qty, unit,
// option_total and discount feed cart aggregation; title, note and the
// extras copy are display metadata for the cart/receipt view.
//
// Discount is frozen at the moment the line was priced ("add to cart")
// and is never re-evaluated against later catalog prices.
type CartItem struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Note        string     `json:"note,omitempty"`
	Quantity    int        `json:"quantity"`
	Unit        int        `json:"unit"`
	OptionTotal int        `json:"option_total"`
	Discount    int        `json:"discount"`
	Extras      []ExtraRow `json:"extras"`
	CreatedAt   time.Time  `json:"created_at"`
}

// CartTotals is the cart-level summary. Shipping eligibility is decided
// on the aggregate post-discount total, which may waive shipping even
// when every line's own estimate previewed a charge.
type CartTotals struct {
	PreMerch      int `json:"pre_merch"`
	Discount      int `json:"discount"`
	AfterDiscount int `json:"after_discount"`
	Shipping      int `json:"shipping"`
	Total         int `json:"total"`
}
