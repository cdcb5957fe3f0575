package usecases

import (
	"context"

	"billu/internal/application/admin/dto"
	"billu/internal/shared/authorization"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

// SnapshotProvider hands out the latest aggregation snapshot. Backed by the
// background poller, not by a live query.
type SnapshotProvider interface {
	Latest(ctx context.Context) (*dto.OverviewSnapshot, error)
}

type GetOverviewQuery struct {
	Role authorization.UserRole
}

type GetOverviewResult struct {
	Snapshot *dto.OverviewSnapshot
}

type GetOverviewUseCase struct {
	snapshots SnapshotProvider
	logger    logger.Interface
}

func NewGetOverviewUseCase(snapshots SnapshotProvider, logger logger.Interface) *GetOverviewUseCase {
	return &GetOverviewUseCase{snapshots: snapshots, logger: logger}
}

func (uc *GetOverviewUseCase) Execute(ctx context.Context, query GetOverviewQuery) (*GetOverviewResult, error) {
	if !query.Role.IsSuperAdmin() {
		return nil, errors.NewForbiddenError("overview requires the super admin role")
	}

	snapshot, err := uc.snapshots.Latest(ctx)
	if err != nil {
		uc.logger.Errorw("failed to load overview snapshot", "error", err)
		return nil, errors.NewInternalError("overview snapshot unavailable")
	}
	if snapshot == nil {
		// First poll has not completed yet.
		return nil, errors.NewNotFoundError("overview snapshot not ready")
	}

	return &GetOverviewResult{Snapshot: snapshot}, nil
}
