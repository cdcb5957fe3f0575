package mappers

import (
	"billu/internal/domain/product"
	"billu/internal/infrastructure/persistence/models"
)

type ProductMapper struct{}

func NewProductMapper() ProductMapper {
	return ProductMapper{}
}

func (ProductMapper) ToDomain(model *models.ProductModel) *product.Product {
	if model == nil {
		return nil
	}
	return product.ReconstructProduct(product.ReconstructProductParams{
		ID:            model.ID,
		OperatorID:    model.OperatorID,
		CustomerID:    model.CustomerID,
		Name:          model.Name,
		CompanyName:   model.CompanyName,
		Brand:         model.Brand,
		Model:         model.Model,
		SerialNumber:  model.SerialNumber,
		PurchaseDate:  model.PurchaseDate,
		WarrantyUntil: model.WarrantyUntil,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	})
}

func (ProductMapper) ToModel(entity *product.Product) *models.ProductModel {
	if entity == nil {
		return nil
	}
	return &models.ProductModel{
		ID:            entity.ID(),
		OperatorID:    entity.OperatorID(),
		CustomerID:    entity.CustomerID(),
		Name:          entity.Name(),
		CompanyName:   entity.CompanyName(),
		Brand:         entity.Brand(),
		Model:         entity.Model(),
		SerialNumber:  entity.SerialNumber(),
		PurchaseDate:  entity.PurchaseDate(),
		WarrantyUntil: entity.WarrantyUntil(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m ProductMapper) ToDomains(productModels []models.ProductModel) []*product.Product {
	products := make([]*product.Product, len(productModels))
	for i := range productModels {
		products[i] = m.ToDomain(&productModels[i])
	}
	return products
}
