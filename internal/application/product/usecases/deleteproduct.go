package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/product"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type DeleteProductCommand struct {
	ProductID  uint
	OperatorID uint
}

type DeleteProductResult struct {
	ProductID uint
	Deleted   bool
}

type DeleteProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewDeleteProductUseCase(productRepo product.Repository, logger logger.Interface) *DeleteProductUseCase {
	return &DeleteProductUseCase{productRepo: productRepo, logger: logger}
}

func (uc *DeleteProductUseCase) Execute(ctx context.Context, cmd DeleteProductCommand) (*DeleteProductResult, error) {
	if cmd.ProductID == 0 {
		return nil, errors.NewValidationError("product ID is required")
	}

	p, err := uc.productRepo.FindByID(ctx, cmd.ProductID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %d not found", cmd.ProductID))
	}
	if cmd.OperatorID != 0 && p.OperatorID() != cmd.OperatorID {
		return nil, errors.NewForbiddenError("product belongs to another operator")
	}

	if err := uc.productRepo.Delete(ctx, cmd.ProductID); err != nil {
		uc.logger.Errorw("failed to delete product", "product_id", cmd.ProductID, "error", err)
		return nil, errors.NewPersistenceError("failed to delete product", err)
	}

	return &DeleteProductResult{ProductID: cmd.ProductID, Deleted: true}, nil
}
