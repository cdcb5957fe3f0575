package usecases

import (
	"context"
	"strings"
	"time"

	"billu/internal/domain/customer"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type CreateCustomerCommand struct {
	OperatorID uint
	Name       string
	Phone      string
	Email      string
	Address    string
	JoinedAt   *time.Time
}

type CreateCustomerResult struct {
	CustomerID uint
}

type CreateCustomerUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewCreateCustomerUseCase(customerRepo customer.Repository, logger logger.Interface) *CreateCustomerUseCase {
	return &CreateCustomerUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *CreateCustomerUseCase) Execute(ctx context.Context, cmd CreateCustomerCommand) (*CreateCustomerResult, error) {
	uc.logger.Infow("executing create customer use case", "operator_id", cmd.OperatorID, "name", cmd.Name)

	if cmd.OperatorID == 0 {
		return nil, errors.NewValidationError("operator ID is required")
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return nil, errors.NewValidationError("customer name is required")
	}
	if strings.TrimSpace(cmd.Phone) == "" {
		return nil, errors.NewValidationError("customer phone is required")
	}

	joinedAt := time.Time{}
	if cmd.JoinedAt != nil {
		joinedAt = *cmd.JoinedAt
	}

	c, err := customer.NewCustomer(cmd.OperatorID, cmd.Name, cmd.Phone, cmd.Email, utils.SanitizeText(cmd.Address), joinedAt)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.customerRepo.Create(ctx, c); err != nil {
		uc.logger.Errorw("failed to save customer", "error", err)
		return nil, errors.NewPersistenceError("failed to save customer", err)
	}

	uc.logger.Infow("customer created", "customer_id", c.ID())
	return &CreateCustomerResult{CustomerID: c.ID()}, nil
}
