package repository

import (
	"context"

	"github.com/ikormushev/manjabook/pkg/model"
)

func (r *Repository) AddProduct(ctx context.Context, product model.Product, shopIDs []uint) (*model.Product, error) {
	if len(shopIDs) > 0 {
		var shops []model.Shop

		if result := r.DB.WithContext(ctx).Find(&shops, shopIDs); result.Error != nil {
			return nil, result.Error
		}

		product.Shops = shops
	}

	if result := r.DB.WithContext(ctx).Create(&product); result.Error != nil {
		return nil, result.Error
	}

	return &product, nil
}

func (r *Repository) GetProducts(ctx context.Context, search string) ([]*model.Product, error) {
	var products []*model.Product

	query := r.DB.WithContext(ctx).Preload("Shops")
	if search != "" {
		query = query.Where("name ILIKE ?", "%"+search+"%")
	}

	if result := query.Find(&products); result.Error != nil {
		return nil, result.Error
	}

	return products, nil
}

func (r *Repository) GetProductByID(ctx context.Context, productID uint) (*model.Product, error) {
	var product model.Product

	result := r.DB.WithContext(ctx).Preload("Shops").First(&product, productID)
	if result.Error != nil {
		return nil, result.Error
	}

	return &product, nil
}

func (r *Repository) AddShop(ctx context.Context, name string) (*model.Shop, error) {
	shop := model.Shop{Name: name}

	if result := r.DB.WithContext(ctx).Create(&shop); result.Error != nil {
		return nil, result.Error
	}

	return &shop, nil
}

func (r *Repository) GetShops(ctx context.Context) ([]*model.Shop, error) {
	var shops []*model.Shop

	if result := r.DB.WithContext(ctx).Order("name").Find(&shops); result.Error != nil {
		return nil, result.Error
	}

	return shops, nil
}
