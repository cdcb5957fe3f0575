package usecases

import (
	"context"
	"strings"

	"billu/internal/application/customer/dto"
	"billu/internal/domain/customer"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type ListCustomersQuery struct {
	OperatorID uint
	// Search matches name or phone by substring when set.
	Search string
}

type ListCustomersResult struct {
	Customers []*dto.CustomerDTO
	Total     int
}

type ListCustomersUseCase struct {
	customerRepo customer.Repository
	logger       logger.Interface
}

func NewListCustomersUseCase(customerRepo customer.Repository, logger logger.Interface) *ListCustomersUseCase {
	return &ListCustomersUseCase{customerRepo: customerRepo, logger: logger}
}

func (uc *ListCustomersUseCase) Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error) {
	var (
		customers []*customer.Customer
		err       error
	)
	if search := strings.TrimSpace(query.Search); search != "" {
		customers, err = uc.customerRepo.Search(ctx, query.OperatorID, search)
	} else {
		customers, err = uc.customerRepo.FindByOperatorID(ctx, query.OperatorID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list customers", "operator_id", query.OperatorID, "error", err)
		return nil, errors.NewPersistenceError("failed to list customers", err)
	}

	return &ListCustomersResult{
		Customers: dto.ToCustomerDTOs(customers),
		Total:     len(customers),
	}, nil
}
