package repository

import (
	"context"

	"keebshop/internal/domain/model"
)

// 商品の永続化（保存・取得）だけを約束。
// カートからは読み取り専用。
type ProductRepository interface {
	// 全商品をID昇順で返す（テスト再現性のため順序固定）。
	ListAll(ctx context.Context) ([]model.Product, error)
	// IDで商品を取得。無ければErrNotFound。
	FindByID(ctx context.Context, productID int64) (model.Product, error)
	// nameで商品を取得（完全一致）。seedの重複チェック用。
	FindByName(ctx context.Context, name string) (model.Product, error)
	// 商品の作成
	Create(ctx context.Context, p model.Product) (model.Product, error)
}
