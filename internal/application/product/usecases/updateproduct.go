package usecases

import (
	"context"
	"fmt"
	"time"

	"billu/internal/domain/product"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type UpdateProductCommand struct {
	ProductID  uint
	OperatorID uint

	Name          *string
	CompanyName   *string
	Brand         *string
	Model         *string
	SerialNumber  *string
	PurchaseDate  *time.Time
	WarrantyUntil *time.Time
	ClearDates    bool
}

type UpdateProductResult struct {
	ProductID uint
}

type UpdateProductUseCase struct {
	productRepo product.Repository
	logger      logger.Interface
}

func NewUpdateProductUseCase(productRepo product.Repository, logger logger.Interface) *UpdateProductUseCase {
	return &UpdateProductUseCase{productRepo: productRepo, logger: logger}
}

func (uc *UpdateProductUseCase) Execute(ctx context.Context, cmd UpdateProductCommand) (*UpdateProductResult, error) {
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

	u := product.UpdateProductParams{
		Name:          p.Name(),
		CompanyName:   p.CompanyName(),
		Brand:         p.Brand(),
		Model:         p.Model(),
		SerialNumber:  p.SerialNumber(),
		PurchaseDate:  p.PurchaseDate(),
		WarrantyUntil: p.WarrantyUntil(),
	}
	if cmd.Name != nil {
		u.Name = *cmd.Name
	}
	if cmd.CompanyName != nil {
		u.CompanyName = *cmd.CompanyName
	}
	if cmd.Brand != nil {
		u.Brand = *cmd.Brand
	}
	if cmd.Model != nil {
		u.Model = *cmd.Model
	}
	if cmd.SerialNumber != nil {
		u.SerialNumber = *cmd.SerialNumber
	}
	if cmd.ClearDates {
		u.PurchaseDate = nil
		u.WarrantyUntil = nil
	} else {
		if cmd.PurchaseDate != nil {
			u.PurchaseDate = cmd.PurchaseDate
		}
		if cmd.WarrantyUntil != nil {
			u.WarrantyUntil = cmd.WarrantyUntil
		}
	}

	if err := p.UpdateDetails(u); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.productRepo.Update(ctx, p); err != nil {
		uc.logger.Errorw("failed to update product", "product_id", cmd.ProductID, "error", err)
		return nil, errors.NewPersistenceError("failed to update product", err)
	}

	return &UpdateProductResult{ProductID: p.ID()}, nil
}
