package model

import "fmt"

// PriceKey identifies one base-price entry in the catalog.
type PriceKey struct {
	Flow    Flow    `json:"flow"`
	Variant Variant `json:"variant"`
}

// PriceCatalog is the static price table the estimator reads from.
// Pure data: base unit prices per (flow, variant) plus the flat fees for
// every named option. All amounts are whole yen. The table is swappable
// (DB-loaded or built-in) without touching estimator logic.
type PriceCatalog struct {
	BasePrices map[PriceKey]int `json:"base_prices"`

	ColorStepFee          int `json:"color_step_fee"`          // 追加1色ごと
	RainbowFee            int `json:"rainbow_fee"`             // レインボー（色数加算の上限を兼ねる）
	KeyholderFee          int `json:"keyholder_fee"`           // キーホルダー加工 1個
	GiftBoxFee            int `json:"gift_box_fee"`            // ギフトボックス 1個
	SubmissionFeeSingle   int `json:"submission_fee_single"`   // デザイン入稿料（単品）
	SubmissionFeeFullset  int `json:"submission_fee_fullset"`  // デザイン入稿料（フルセット）
	BringOwnStepFee       int `json:"bring_own_step_fee"`      // 入稿デザイン追加1色ごと
	ShippingFee           int `json:"shipping_fee"`            // 送料（全国一律）
	FreeShippingThreshold int `json:"free_shipping_threshold"` // 送料無料ライン

	// DefaultColor is the fallback for any unset per-character slot.
	DefaultColor ColorKey `json:"default_color"`
}

// requiredPriceKeys are the (flow, variant) combinations every valid
// catalog must carry.
var requiredPriceKeys = []PriceKey{
	{FlowOriginalSingle, VariantStandard},
	{FlowOriginalSingle, VariantMM30},
	{FlowFullset, VariantStandard},
	{FlowFullset, VariantMM30},
	{FlowRegular, VariantDefault},
}

// DefaultPriceCatalog returns the built-in JPY catalog used when no
// catalog rows exist in the database.
func DefaultPriceCatalog() *PriceCatalog {
	return &PriceCatalog{
		BasePrices: map[PriceKey]int{
			{FlowOriginalSingle, VariantStandard}: 3300,
			{FlowOriginalSingle, VariantMM30}:     2750,
			{FlowFullset, VariantStandard}:        46200,
			{FlowFullset, VariantMM30}:            38500,
			{FlowRegular, VariantDefault}:         1650,
		},
		ColorStepFee:          220,
		RainbowFee:            880,
		KeyholderFee:          440,
		GiftBoxFee:            330,
		SubmissionFeeSingle:   1100,
		SubmissionFeeFullset:  3300,
		BringOwnStepFee:       330,
		ShippingFee:           880,
		FreeShippingThreshold: 13200,
		DefaultColor:          ColorBlack,
	}
}

// Validate checks the catalog for internal consistency. A failure here is
// a configuration defect, not bad user input: callers should treat it as
// fatal at startup rather than tolerate it at estimate time.
func (c *PriceCatalog) Validate() error {
	for _, key := range requiredPriceKeys {
		price, ok := c.BasePrices[key]
		if !ok {
			return fmt.Errorf("catalog: missing base price for (%s, %s)", key.Flow, key.Variant)
		}
		if price <= 0 {
			return fmt.Errorf("catalog: non-positive base price for (%s, %s)", key.Flow, key.Variant)
		}
	}

	fees := map[string]int{
		"color_step_fee":         c.ColorStepFee,
		"rainbow_fee":            c.RainbowFee,
		"keyholder_fee":          c.KeyholderFee,
		"gift_box_fee":           c.GiftBoxFee,
		"submission_fee_single":  c.SubmissionFeeSingle,
		"submission_fee_fullset": c.SubmissionFeeFullset,
		"bring_own_step_fee":     c.BringOwnStepFee,
		"shipping_fee":           c.ShippingFee,
	}
	for name, fee := range fees {
		if fee <= 0 {
			return fmt.Errorf("catalog: non-positive fee %s", name)
		}
	}
	if c.FreeShippingThreshold <= 0 {
		return fmt.Errorf("catalog: non-positive free_shipping_threshold")
	}
	if !KnownColor(c.DefaultColor) || c.DefaultColor == ColorRainbow {
		return fmt.Errorf("catalog: invalid default color %q", c.DefaultColor)
	}
	return nil
}
