package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"billu/internal/domain/product"
	"billu/internal/infrastructure/persistence/mappers"
	"billu/internal/infrastructure/persistence/models"
)

type ProductRepository struct {
	db     *gorm.DB
	mapper mappers.ProductMapper
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{
		db:     db,
		mapper: mappers.NewProductMapper(),
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *product.Product) error {
	model := r.mapper.ToModel(p)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save product: %w", err)
	}

	p.SetID(model.ID)
	return nil
}

func (r *ProductRepository) Update(ctx context.Context, p *product.Product) error {
	model := r.mapper.ToModel(p)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

func (r *ProductRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("product not found")
	}
	return nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	var model models.ProductModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("product not found")
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *ProductRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]*product.Product, error) {
	var productModels []models.ProductModel

	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&productModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return r.mapper.ToDomains(productModels), nil
}

func (r *ProductRepository) FindByOperatorID(ctx context.Context, operatorID uint) ([]*product.Product, error) {
	var productModels []models.ProductModel

	query := r.db.WithContext(ctx).Order("created_at DESC")
	if operatorID != 0 {
		query = query.Where("operator_id = ?", operatorID)
	}
	if err := query.Find(&productModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return r.mapper.ToDomains(productModels), nil
}
