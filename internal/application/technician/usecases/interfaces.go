package usecases

import "context"

type CreateTechnicianExecutor interface {
	Execute(ctx context.Context, cmd CreateTechnicianCommand) (*CreateTechnicianResult, error)
}

type UpdateTechnicianExecutor interface {
	Execute(ctx context.Context, cmd UpdateTechnicianCommand) (*UpdateTechnicianResult, error)
}

type DeleteTechnicianExecutor interface {
	Execute(ctx context.Context, cmd DeleteTechnicianCommand) (*DeleteTechnicianResult, error)
}

type ListTechniciansExecutor interface {
	Execute(ctx context.Context, query ListTechniciansQuery) (*ListTechniciansResult, error)
}

type GetWalletExecutor interface {
	Execute(ctx context.Context, query GetWalletQuery) (*GetWalletResult, error)
}

type GetPointsExecutor interface {
	Execute(ctx context.Context, query GetPointsQuery) (*GetPointsResult, error)
}

type AddTransactionExecutor interface {
	Execute(ctx context.Context, cmd AddTransactionCommand) (*AddTransactionResult, error)
}

type ListTransactionsExecutor interface {
	Execute(ctx context.Context, query ListTransactionsQuery) (*ListTransactionsResult, error)
}

type PortalLoginExecutor interface {
	Execute(ctx context.Context, cmd PortalLoginCommand) (*PortalLoginResult, error)
}
