package usecases

import "context"

type GetOverviewExecutor interface {
	Execute(ctx context.Context, query GetOverviewQuery) (*GetOverviewResult, error)
}
