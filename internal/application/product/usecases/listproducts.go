package usecases

import (
	"context"

	"billu/internal/application/product/dto"
	"billu/internal/domain/product"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type ListProductsQuery struct {
	OperatorID uint
	// CustomerID narrows the listing to a single customer when set.
	CustomerID uint
}

type ListProductsResult struct {
	Products []*dto.ProductDTO
	Total    int
}

type ListProductsUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewListProductsUseCase(productRepo product.Repository, logger logger.Interface) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo, logger: logger}
}

func (uc *ListProductsUseCase) Execute(ctx context.Context, query ListProductsQuery) (*ListProductsResult, error) {
	var (
		products []*product.Product
		err      error
	)
	if query.CustomerID != 0 {
		products, err = uc.productRepo.FindByCustomerID(ctx, query.CustomerID)
	} else {
		products, err = uc.productRepo.FindByOperatorID(ctx, query.OperatorID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list products", "operator_id", query.OperatorID, "error", err)
		return nil, errors.NewPersistenceError("failed to list products", err)
	}

	if query.OperatorID != 0 {
		filtered := products[:0:0]
		for _, p := range products {
			if p.OperatorID() == query.OperatorID {
				filtered = append(filtered, p)
			}
		}
		products = filtered
	}

	return &ListProductsResult{
		Products: dto.ToProductDTOs(products),
		Total:    len(products),
	}, nil
}
