package usecases

import "context"

type CreateCustomerExecutor interface {
	Execute(ctx context.Context, cmd CreateCustomerCommand) (*CreateCustomerResult, error)
}

type UpdateCustomerExecutor interface {
	Execute(ctx context.Context, cmd UpdateCustomerCommand) (*UpdateCustomerResult, error)
}

type DeleteCustomerExecutor interface {
	Execute(ctx context.Context, cmd DeleteCustomerCommand) (*DeleteCustomerResult, error)
}

type ListCustomersExecutor interface {
	Execute(ctx context.Context, query ListCustomersQuery) (*ListCustomersResult, error)
}
