package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/customer"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type UpdateCustomerCommand struct {
	CustomerID uint
	OperatorID uint

	Name    *string
	Phone   *string
	Email   *string
	Address *string
}

type UpdateCustomerResult struct {
	CustomerID uint
}

// UpdateCustomerUseCase edits the customer book. Existing tickets keep the
// snapshot taken at their creation.
type UpdateCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewUpdateCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *UpdateCustomerUseCase {
	return &UpdateCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *UpdateCustomerUseCase) Execute(ctx context.Context, cmd UpdateCustomerCommand) (*UpdateCustomerResult, error) {
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

	name, phone, email, address := c.Name(), c.Phone(), c.Email(), c.Address()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Phone != nil {
		phone = *cmd.Phone
	}
	if cmd.Email != nil {
		email = *cmd.Email
	}
	if cmd.Address != nil {
		address = utils.SanitizeText(*cmd.Address)
	}

	if err := c.UpdateDetails(name, phone, email, address); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customerRepo.Update(ctx, c); err != nil {
		uc.logger.Errorw("failed to update customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, errors.NewPersistenceError("failed to update customer", err)
	}

	return &UpdateCustomerResult{CustomerID: c.ID()}, nil
}
