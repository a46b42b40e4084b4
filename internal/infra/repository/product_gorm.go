package repository

import (
	"context"
	"errors"

	"keebshop/internal/domain/model"
	domainrepo "keebshop/internal/repository"

	"gorm.io/gorm"
)

type productGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) domainrepo.ProductRepository {
	return &productGormRepository{db: db}
}

// 全商品をID昇順で返す
func (r *productGormRepository) ListAll(ctx context.Context) ([]model.Product, error) {
	var products []model.Product

	err := r.db.WithContext(ctx).
		Order("id asc").
		Find(&products).Error
	if err != nil {
		return nil, err
	}

	return products, nil
}

// IDで商品を取得
func (r *productGormRepository) FindByID(ctx context.Context, productID int64) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).First(&p, productID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}

	return p, nil
}

// nameで商品を取得（完全一致）
func (r *productGormRepository) FindByName(ctx context.Context, name string) (model.Product, error) {
	var p model.Product

	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}

	return p, nil
}

// 商品の作成
func (r *productGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}
