package usecases

import "context"

type CreateServiceCenterExecutor interface {
	Execute(ctx context.Context, cmd CreateServiceCenterCommand) (*CreateServiceCenterResult, error)
}

type UpdateServiceCenterExecutor interface {
	Execute(ctx context.Context, cmd UpdateServiceCenterCommand) (*UpdateServiceCenterResult, error)
}

type DeleteServiceCenterExecutor interface {
	Execute(ctx context.Context, cmd DeleteServiceCenterCommand) (*DeleteServiceCenterResult, error)
}

type ListServiceCentersExecutor interface {
	Execute(ctx context.Context, query ListServiceCentersQuery) (*ListServiceCentersResult, error)
}

type RecommendServiceCentersExecutor interface {
	Execute(ctx context.Context, query RecommendServiceCentersQuery) (*RecommendServiceCentersResult, error)
}
