// Package pricing implements the estimate engine: pure functions that turn
// a line item's selection into a priced estimate, and that aggregate priced
// cart lines into cart totals. No I/O, no shared state — everything reads
// from an already-validated model.PriceCatalog.
package pricing

import (
	"fmt"
	"unicode/utf8"

	"github.com/irodori/backend/internal/model"
)

// ---------------------------------------------------------------------------
// Discount schedule
// ---------------------------------------------------------------------------

type discountTier struct {
	minQty  int
	percent int
}

// Tiers are checked high→low; only the highest applicable tier applies.
var discountSchedule = map[model.Flow][]discountTier{
	model.FlowOriginalSingle: {{10, 15}, {5, 10}},
	model.FlowFullset:        {{5, 20}},
}

func discountPercent(flow model.Flow, qty int) int {
	for _, tier := range discountSchedule[flow] {
		if qty >= tier.minQty {
			return tier.percent
		}
	}
	return 0
}

// ---------------------------------------------------------------------------
// ComputeEstimate
// ---------------------------------------------------------------------------

// ComputeEstimate prices a single line item. It is deterministic and total:
// invalid quantities are clamped, never rejected, so no user-reachable
// input can make it fail. The catalog must have passed Validate.
func ComputeEstimate(cat *model.PriceCatalog, in model.EstimateInput) model.Estimate {
	qty := clampMin(in.Quantity, 1)

	variant := resolveVariant(in.Flow, in.Variant)
	unit := cat.BasePrices[model.PriceKey{Flow: in.Flow, Variant: variant}]

	var extras []model.ExtraRow
	optionTotal := 0

	// デザイン関連の加算（1個あたり → 数量を掛けて合算）
	perPiece := designSurcharge(cat, in, &extras)
	optionTotal += perPiece * qty

	// 物理オプション（独自の数量で事前計算済み、本体数量は掛けない）
	if n := clampMin(in.KeyholderCount, 0); n > 0 {
		amount := n * cat.KeyholderFee
		extras = append(extras, model.ExtraRow{
			Label:  fmt.Sprintf("キーホルダー加工 ×%d", n),
			Amount: amount,
		})
		optionTotal += amount
	}
	if n := clampMin(in.GiftBoxCount, 0); n > 0 {
		amount := n * cat.GiftBoxFee
		extras = append(extras, model.ExtraRow{
			Label:  fmt.Sprintf("ギフトボックス ×%d", n),
			Amount: amount,
		})
		optionTotal += amount
	}

	preDiscount := unit*qty + optionTotal

	percent := discountPercent(in.Flow, qty)
	// 整数演算の切り捨て＝floor。広告以上の値引きは決して発生しない。
	discountAmount := preDiscount * percent / 100
	merch := preDiscount - discountAmount

	shipping := 0
	if merch < cat.FreeShippingThreshold {
		shipping = cat.ShippingFee
	}

	return model.Estimate{
		Unit:                unit,
		Quantity:            qty,
		Extras:              extras,
		OptionTotal:         optionTotal,
		DiscountRate:        float64(percent) / 100,
		DiscountAmount:      discountAmount,
		MerchandiseSubtotal: merch,
		Shipping:            shipping,
		Total:               merch + shipping,
	}
}

// resolveVariant maps the caller's variant tag onto a catalog key.
// The regular flow always prices as its single default entry; for the other
// flows a stray "default" tag falls back to standard so the regular-only
// tag never leaks into their lookups.
func resolveVariant(flow model.Flow, v model.Variant) model.Variant {
	if flow == model.FlowRegular {
		return model.VariantDefault
	}
	if v == model.VariantDefault {
		return model.VariantStandard
	}
	return v
}

// ---------------------------------------------------------------------------
// Design surcharge (per piece)
// ---------------------------------------------------------------------------

// designSurcharge returns the per-piece design fee and appends one row per
// contributing fee. Design fees only exist for the original flows; the
// regular flow and commission designs carry none (commission work is
// quoted manually downstream).
func designSurcharge(cat *model.PriceCatalog, in model.EstimateInput, extras *[]model.ExtraRow) int {
	switch in.DesignType {
	case model.DesignNamePrint:
		if in.Flow != model.FlowOriginalSingle {
			return 0
		}
		return namePrintFee(cat, in, extras)
	case model.DesignBringOwn:
		if in.Flow != model.FlowOriginalSingle && in.Flow != model.FlowFullset {
			return 0
		}
		return bringOwnFee(cat, in, extras)
	default:
		return 0
	}
}

// namePrintFee prices the color selection of a name-print design.
// One color is free; each additional distinct color adds one step, capped
// at the rainbow flat fee. Rainbow anywhere charges the flat fee outright.
func namePrintFee(cat *model.PriceCatalog, in model.EstimateInput, extras *[]model.ExtraRow) int {
	if in.UseUnifiedColor {
		if in.UnifiedColor == model.ColorRainbow {
			*extras = append(*extras, model.ExtraRow{Label: "レインボーカラー", Amount: cat.RainbowFee})
			return cat.RainbowFee
		}
		return 0
	}

	used := usedColors(cat, in.NameText, in.PerCharColors)
	for _, c := range used {
		if c == model.ColorRainbow {
			*extras = append(*extras, model.ExtraRow{Label: "レインボーカラー", Amount: cat.RainbowFee})
			return cat.RainbowFee
		}
	}

	steps := len(used) - 1
	if steps <= 0 {
		return 0
	}
	fee := steps * cat.ColorStepFee
	if fee > cat.RainbowFee {
		fee = cat.RainbowFee
	}
	*extras = append(*extras, model.ExtraRow{
		Label:  fmt.Sprintf("カラー追加 +%d色", steps),
		Amount: fee,
	})
	return fee
}

// usedColors returns the distinct colors actually in use, in first-seen
// order: the first N entries of colors where N is the rune count of name,
// padded with the default color when the list runs short. An empty name
// still resolves to the default color so the result is never empty.
func usedColors(cat *model.PriceCatalog, name string, colors []model.ColorKey) []model.ColorKey {
	n := utf8.RuneCountInString(name)
	if n == 0 {
		return []model.ColorKey{cat.DefaultColor}
	}

	seen := make(map[model.ColorKey]bool, n)
	var distinct []model.ColorKey
	for i := 0; i < n; i++ {
		c := cat.DefaultColor
		if i < len(colors) && colors[i] != "" {
			c = colors[i]
		}
		if !seen[c] {
			seen[c] = true
			distinct = append(distinct, c)
		}
	}
	return distinct
}

// bringOwnFee prices a customer-submitted design: a flow-specific
// submission fee plus one step per extra color beyond the first.
func bringOwnFee(cat *model.PriceCatalog, in model.EstimateInput, extras *[]model.ExtraRow) int {
	submission := cat.SubmissionFeeSingle
	label := "デザイン入稿料（単品）"
	if in.Flow == model.FlowFullset {
		submission = cat.SubmissionFeeFullset
		label = "デザイン入稿料（フルセット）"
	}
	*extras = append(*extras, model.ExtraRow{Label: label, Amount: submission})

	fee := submission
	if steps := in.BringOwnColorCount - 1; steps > 0 {
		stepFee := steps * cat.BringOwnStepFee
		*extras = append(*extras, model.ExtraRow{
			Label:  fmt.Sprintf("カラー追加 +%d色", steps),
			Amount: stepFee,
		})
		fee += stepFee
	}
	return fee
}

func clampMin(v, min int) int {
	if v < min {
		return min
	}
	return v
}
