package usecase_test

import (
	"context"
	"testing"

	"keebshop/internal/domain/model"
	repo "keebshop/internal/repository"
	"keebshop/internal/usecase"

	"github.com/stretchr/testify/assert"
)

// seedの冪等性はストアの状態で確認したいので、mockではなくメモリ実装を使う。
type memProductRepo struct {
	products []model.Product
	nextID   int64
}

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{nextID: 1}
}

func (r *memProductRepo) ListAll(ctx context.Context) ([]model.Product, error) {
	out := make([]model.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *memProductRepo) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	for _, p := range r.products {
		if p.ID == productID {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *memProductRepo) FindByName(ctx context.Context, name string) (model.Product, error) {
	for _, p := range r.products {
		if p.Name == name {
			return p, nil
		}
	}
	return model.Product{}, repo.ErrNotFound
}

func (r *memProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	p.ID = r.nextID
	r.nextID++
	r.products = append(r.products, p)
	return p, nil
}

func TestCatalogUsecase_SeedDefaults_IsIdempotent(t *testing.T) {
	ctx := context.Background()

	pRepo := newMemProductRepo()
	uc := usecase.NewCatalogUsecase(pRepo)

	created, err := uc.SeedDefaults(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 5, created)

	// 2回目は増えない
	created, err = uc.SeedDefaults(ctx)
	assert.NoError(t, err)
	assert.Equal(t, 0, created)

	products, err := uc.ListProducts(ctx)
	assert.NoError(t, err)
	assert.Len(t, products, 5)
}

func TestCatalogUsecase_SeedDefaults_Data(t *testing.T) {
	ctx := context.Background()

	pRepo := newMemProductRepo()
	uc := usecase.NewCatalogUsecase(pRepo)

	_, err := uc.SeedDefaults(ctx)
	assert.NoError(t, err)

	products, err := uc.ListProducts(ctx)
	assert.NoError(t, err)

	assert.Equal(t, "Cherry MX Pro", products[0].Name)
	assert.Equal(t, int64(12999), products[0].Price)
	assert.Equal(t, "Silent TypeMaster", products[1].Name)
	assert.Equal(t, int64(8999), products[1].Price)
	assert.Equal(t, "ErgoBoard Split", products[4].Name)
	assert.Equal(t, int64(15999), products[4].Price)
}
