package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/customer"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type DeleteCustomerCommand struct {
	CustomerID uint
	OperatorID uint
}

type DeleteCustomerResult struct {
	CustomerID uint
	Deleted    bool
}

// DeleteCustomerUseCase removes the customer record only. Products and
// tickets are never cascaded.
type DeleteCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewDeleteCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *DeleteCustomerUseCase {
	return &DeleteCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *DeleteCustomerUseCase) Execute(ctx context.Context, cmd DeleteCustomerCommand) (*DeleteCustomerResult, error) {
	if cmd.CustomerID == 0 {
		return nil, errors.NewValidationError("customer ID is required")
	}

	c, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer %d not found", cmd.CustomerID))
	}
	if cmd.OperatorID != 0 && c.OperatorID() != cmd.OperatorID {
		return nil, errors.NewForbiddenError("customer belongs to another operator")
	}

	if err := uc.customerRepo.Delete(ctx, cmd.CustomerID); err != nil {
		uc.logger.Errorw("failed to delete customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, errors.NewPersistenceError("failed to delete customer", err)
	}

	return &DeleteCustomerResult{CustomerID: cmd.CustomerID, Deleted: true}, nil
}
