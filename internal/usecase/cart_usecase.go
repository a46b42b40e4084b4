package usecase

import (
	"context"
	"sort"

	"keebshop/internal/domain/model"
	repo "keebshop/internal/repository"
)

// カスタムビルド行の固定価格（セント）とラベル。
const (
	CustomBuildPrice int64 = 17500
	CustomBuildLabel       = "Custom Keyboard Build"
)

// CartUsecase はセッションのカートに対する業務ロジックです。
// カート自体はセッション側が持ち、ここでは渡されたmapを操作する。
// 価格は表示のたびにカタログから引き直す（追加時のスナップショットは持たない）。
type CartUsecase struct {
	productRepo repo.ProductRepository
}

// DI
func NewCartUsecase(productRepo repo.ProductRepository) *CartUsecase {
	return &CartUsecase{productRepo: productRepo}
}

// カートの1行。
type CartLineResponse struct {
	Key       model.CartKey `json:"key"`
	Name      string        `json:"name"`
	UnitPrice int64         `json:"unit_price"`
	Quantity  int64         `json:"quantity"`
	LineTotal int64         `json:"line_total"`
}

type CartViewResponse struct {
	Items []CartLineResponse `json:"items"`
	Total int64              `json:"total"`
}

// AddProduct は商品を1個カートに追加する（同一商品は加算）。
// 商品が無ければErrNotFound。追加した商品を返す。
func (u *CartUsecase) AddProduct(ctx context.Context, cart model.Cart, productID int64) (model.Product, error) {
	p, err := u.productRepo.FindByID(ctx, productID)
	if err != nil {
		return model.Product{}, err
	}

	cart[model.ProductKey(productID)]++
	return p, nil
}

// AddCustomBuild はカスタムビルドを1個追加する。
func (u *CartUsecase) AddCustomBuild(cart model.Cart) {
	cart[model.CustomBuildKey]++
}

// Remove はキーを丸ごと削除する。無ければ何もしない（エラーにしない）。
func (u *CartUsecase) Remove(cart model.Cart, key model.CartKey) {
	delete(cart, key)
}

// Clear はカートを空にする（checkout・logout用）。
func (u *CartUsecase) Clear(cart model.Cart) {
	for k := range cart {
		delete(cart, k)
	}
}

// BuildView はカートの明細と合計を作る。
// 商品キーが解決できなければErrNotFound（黙って落とさない）。
func (u *CartUsecase) BuildView(ctx context.Context, cart model.Cart) (CartViewResponse, error) {
	items := make([]CartLineResponse, 0, len(cart))
	var total int64 = 0

	for _, key := range sortedKeys(cart) {
		qty := cart[key]

		var name string
		var unitPrice int64

		if key.IsCustomBuild() {
			name = CustomBuildLabel
			unitPrice = CustomBuildPrice
		} else {
			productID, ok := key.ProductID()
			if !ok {
				return CartViewResponse{}, repo.ErrNotFound
			}
			p, err := u.productRepo.FindByID(ctx, productID)
			if err != nil {
				return CartViewResponse{}, err
			}
			name = p.Name
			unitPrice = p.Price
		}

		lineTotal := unitPrice * qty
		items = append(items, CartLineResponse{
			Key:       key,
			Name:      name,
			UnitPrice: unitPrice,
			Quantity:  qty,
			LineTotal: lineTotal,
		})
		total += lineTotal
	}

	return CartViewResponse{Items: items, Total: total}, nil
}

// 商品IDの昇順、カスタムビルドは最後。mapの順序揺れを消す。
func sortedKeys(cart model.Cart) []model.CartKey {
	keys := make([]model.CartKey, 0, len(cart))
	for k := range cart {
		keys = append(keys, k)
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].IsCustomBuild() {
			return false
		}
		if keys[j].IsCustomBuild() {
			return true
		}
		a, _ := keys[i].ProductID()
		b, _ := keys[j].ProductID()
		return a < b
	})

	return keys
}
