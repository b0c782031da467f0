package repository

import (
	"context"
	"fmt"

	"github.com/irodori/backend/internal/model"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgCatalogRepository は CatalogRepository の PostgreSQL 実装
type PgCatalogRepository struct {
	pool *pgxpool.Pool
}

// NewPgCatalogRepository は PgCatalogRepository を生成する
func NewPgCatalogRepository(pool *pgxpool.Pool) *PgCatalogRepository {
	return &PgCatalogRepository{pool: pool}
}

// LoadActive は価格テーブルからカタログを組み立てる。
// 行が1件もない場合は ErrNotFound を返す（呼び出し側が組み込み既定値に
// フォールバックする）。
func (r *PgCatalogRepository) LoadActive(ctx context.Context) (*model.PriceCatalog, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT flow, variant, unit_price FROM price_catalog_entries`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	base := make(map[model.PriceKey]int)
	for rows.Next() {
		var flow, variant string
		var price int
		if err := rows.Scan(&flow, &variant, &price); err != nil {
			return nil, err
		}
		base[model.PriceKey{Flow: model.Flow(flow), Variant: model.Variant(variant)}] = price
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(base) == 0 {
		return nil, ErrNotFound
	}

	cat := &model.PriceCatalog{
		BasePrices: base,
		// 文字色の既定値はコード側の定数（スキーマには持たない）
		DefaultColor: model.ColorBlack,
	}

	feeRows, err := r.pool.Query(ctx, `SELECT fee_key, amount FROM catalog_fees`)
	if err != nil {
		return nil, err
	}
	defer feeRows.Close()

	for feeRows.Next() {
		var key string
		var amount int
		if err := feeRows.Scan(&key, &amount); err != nil {
			return nil, err
		}
		if err := assignFee(cat, key, amount); err != nil {
			return nil, err
		}
	}
	return cat, feeRows.Err()
}

func assignFee(cat *model.PriceCatalog, key string, amount int) error {
	switch key {
	case "color_step":
		cat.ColorStepFee = amount
	case "rainbow":
		cat.RainbowFee = amount
	case "keyholder":
		cat.KeyholderFee = amount
	case "gift_box":
		cat.GiftBoxFee = amount
	case "submission_single":
		cat.SubmissionFeeSingle = amount
	case "submission_fullset":
		cat.SubmissionFeeFullset = amount
	case "bring_own_step":
		cat.BringOwnStepFee = amount
	case "shipping":
		cat.ShippingFee = amount
	case "free_shipping_threshold":
		cat.FreeShippingThreshold = amount
	default:
		return fmt.Errorf("catalog: unknown fee key %q", key)
	}
	return nil
}
