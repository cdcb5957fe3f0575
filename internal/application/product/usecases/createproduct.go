package usecases

import (
	"context"
	"fmt"
	"time"

	"billu/internal/domain/customer"
	"billu/internal/domain/product"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type CreateProductCommand struct {
	OperatorID    uint
	CustomerID    uint
	Name          string
	CompanyName   string
	Brand         string
	Model         string
	SerialNumber  string
	PurchaseDate  *time.Time
	WarrantyUntil *time.Time
}

type CreateProductResult struct {
	ProductID uint
}

type CreateProductUseCase struct {
	productRepo  product.Repository
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewCreateProductUseCase(
	productRepo product.Repository,
	customerRepo customer.Repository,
	logger logger.Interface,
) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:  productRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

func (uc *CreateProductUseCase) Execute(ctx context.Context, cmd CreateProductCommand) (*CreateProductResult, error) {
	uc.logger.Infow("executing create product use case", "operator_id", cmd.OperatorID, "customer_id", cmd.CustomerID)

	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}
	owner, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer %d not found", cmd.CustomerID))
	}
	if cmd.OperatorID != 0 && owner.OperatorID() != cmd.OperatorID {
		return nil, errors.NewForbiddenError("customer belongs to another operator")
	}

	p, err := product.NewProduct(product.CreateProductParams{
		OperatorID:    owner.OperatorID(),
		CustomerID:    cmd.CustomerID,
		Name:          cmd.Name,
		CompanyName:   cmd.CompanyName,
		Brand:         cmd.Brand,
		Model:         cmd.Model,
		SerialNumber:  cmd.SerialNumber,
		PurchaseDate:  cmd.PurchaseDate,
		WarrantyUntil: cmd.WarrantyUntil,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Create(ctx, p); err != nil {
		uc.logger.Errorw("failed to save product", "error", err)
		return nil, errors.NewPersistenceError("failed to save product", err)
	}

	uc.logger.Infow("product created", "product_id", p.ID())
	return &CreateProductResult{ProductID: p.ID()}, nil
}
