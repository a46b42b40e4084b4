package usecase

import (
	"context"
	"errors"

	"keebshop/internal/domain/model"
	repo "keebshop/internal/repository"
)

// CatalogUsecase は商品一覧とseedの業務ロジックです。
type CatalogUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewCatalogUsecase(productRepo repo.ProductRepository) *CatalogUsecase {
	return &CatalogUsecase{productRepo: productRepo}
}

// seedの初期商品（価格はセント）。
func DefaultProducts() []model.Product {
	return []model.Product{
		{Name: "Cherry MX Pro", Price: 12999, Description: "RGB mechanical keyboard.", Image: "cherry_mx.jpg"},
		{Name: "Silent TypeMaster", Price: 8999, Description: "Quiet mechanical keyboard.", Image: "silent_typemaster.jpg"},
		{Name: "Gaming Blast X", Price: 14999, Description: "Gaming keyboard with macros.", Image: "gaming_blast.jpg"},
		{Name: "Minimalist 60%", Price: 9999, Description: "Compact wireless 60% keyboard.", Image: "minimalist.jpg"},
		{Name: "ErgoBoard Split", Price: 15999, Description: "Ergonomic split keyboard.", Image: "ergoboard.jpg"},
	}
}

// 商品一覧（ID昇順）
func (u *CatalogUsecase) ListProducts(ctx context.Context) ([]model.Product, error) {
	return u.productRepo.ListAll(ctx)
}

// SeedDefaults は初期商品を入れる。
// 同名の商品が既にあればスキップするので、何度呼んでも増えない。
// 作成した件数を返す。
func (u *CatalogUsecase) SeedDefaults(ctx context.Context) (int, error) {
	created := 0

	for _, p := range DefaultProducts() {
		_, err := u.productRepo.FindByName(ctx, p.Name)
		if err == nil {
			// 既にある
			continue
		}
		if !errors.Is(err, repo.ErrNotFound) {
			return created, err
		}

		if _, err := u.productRepo.Create(ctx, p); err != nil {
			return created, err
		}
		created++
	}

	return created, nil
}
