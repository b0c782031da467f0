package model

// Flow is the top-level product category a customer picks first.
type Flow string

const (
	FlowOriginalSingle Flow = "original_single" // オリジナルタイル（単品）
	FlowFullset        Flow = "fullset"         // オリジナルタイル（フルセット）
	FlowRegular        Flow = "regular"         // レギュラータイル
)

// Variant selects the size variant within a flow.
// VariantDefault is only meaningful for the regular flow; for the other
// flows it is normalized to VariantStandard before any catalog lookup.
type Variant string

const (
	VariantStandard Variant = "standard"
	VariantMM30     Variant = "mm30"
	VariantDefault  Variant = "default"
)

// DesignType determines which surcharge family applies to a line.
type DesignType string

const (
	DesignNamePrint  DesignType = "name_print" // 名入れ（カラー選択）
	DesignBringOwn   DesignType = "bring_own"  // デザイン入稿
	DesignCommission DesignType = "commission" // 別途お見積り
)

// ColorKey names one of the selectable tile colors. ColorRainbow is a
// sentinel: it is priced as a flat fee, not as additive color steps.
type ColorKey string

const (
	ColorBlack     ColorKey = "black"
	ColorWhite     ColorKey = "white"
	ColorRed       ColorKey = "red"
	ColorBlue      ColorKey = "blue"
	ColorGreen     ColorKey = "green"
	ColorYellow    ColorKey = "yellow"
	ColorPink      ColorKey = "pink"
	ColorOrange    ColorKey = "orange"
	ColorPurple    ColorKey = "purple"
	ColorLightBlue ColorKey = "light_blue"
	ColorRainbow   ColorKey = "rainbow"
)

// KnownFlow reports whether f is one of the product flows.
func KnownFlow(f Flow) bool {
	switch f {
	case FlowOriginalSingle, FlowFullset, FlowRegular:
		return true
	}
	return false
}

// KnownVariant reports whether v is one of the size variant tags.
func KnownVariant(v Variant) bool {
	switch v {
	case VariantStandard, VariantMM30, VariantDefault:
		return true
	}
	return false
}

// KnownDesignType reports whether d is one of the design methods.
func KnownDesignType(d DesignType) bool {
	switch d {
	case DesignNamePrint, DesignBringOwn, DesignCommission:
		return true
	}
	return false
}

// KnownColor reports whether c is one of the selectable colors
// (the rainbow sentinel included).
func KnownColor(c ColorKey) bool {
	switch c {
	case ColorBlack, ColorWhite, ColorRed, ColorBlue, ColorGreen,
		ColorYellow, ColorPink, ColorOrange, ColorPurple,
		ColorLightBlue, ColorRainbow:
		return true
	}
	return false
}

// EstimateInput is the immutable snapshot of one line item's configuration.
// Quantities below 1 are clamped by the estimator, never rejected.
type EstimateInput struct {
	Flow               Flow       `json:"flow"`
	Variant            Variant    `json:"variant"`
	Quantity           int        `json:"quantity"`
	DesignType         DesignType `json:"design_type"`
	UseUnifiedColor    bool       `json:"use_unified_color"`
	UnifiedColor       ColorKey   `json:"unified_color"`
	PerCharColors      []ColorKey `json:"per_char_colors"`
	NameText           string     `json:"name_text"`
	BringOwnColorCount int        `json:"bring_own_color_count"`
	KeyholderCount     int        `json:"keyholder_count"`
	GiftBoxCount       int        `json:"gift_box_count"`
}

// ExtraRow is one labeled line of the itemized surcharge breakdown.
// Amount is the per-unit fee for design rows; option rows (keyholder,
// gift box) carry their own quantity pre-multiplied instead.
type ExtraRow struct {
	Label  string `json:"label"`
	Amount int    `json:"amount"`
}

// Estimate is the priced result for a single line item. All amounts are
// whole yen. Shipping here is a per-line preview; the cart-level figure
// computed over the whole cart is the authoritative one.
type Estimate struct {
	Unit                int        `json:"unit"`
	Quantity            int        `json:"quantity"`
	Extras              []ExtraRow `json:"extras"`
	OptionTotal         int        `json:"option_total"`
	DiscountRate        float64    `json:"discount_rate"`
	DiscountAmount      int        `json:"discount_amount"`
	MerchandiseSubtotal int        `json:"merchandise_subtotal"`
	Shipping            int        `json:"shipping"`
	Total               int        `json:"total"`
}
