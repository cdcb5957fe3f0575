package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/servicecenter"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type DeleteServiceCenterCommand struct {
	ServiceCenterID uint
	OperatorID      uint
}

type DeleteServiceCenterResult struct {
	ServiceCenterID uint
	Deleted         bool
}

// DeleteServiceCenterUseCase removes a roster entry. Tickets that reference
// it keep their denormalized center name; no cascade.
type DeleteServiceCenterUseCase struct {
	centerRepo servicecenter.Repository
	logger     logger.Interface
}

func NewDeleteServiceCenterUseCase(centerRepo servicecenter.Repository, logger logger.Interface) *DeleteServiceCenterUseCase {
	return &DeleteServiceCenterUseCase{centerRepo: centerRepo, logger: logger}
}

func (uc *DeleteServiceCenterUseCase) Execute(ctx context.Context, cmd DeleteServiceCenterCommand) (*DeleteServiceCenterResult, error) {
	if cmd.ServiceCenterID == 0 {
		return nil, errors.NewValidationError("service center ID is required")
	}

	sc, err := uc.centerRepo.FindByID(ctx, cmd.ServiceCenterID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("service center %d not found", cmd.ServiceCenterID))
	}
	if cmd.OperatorID != 0 && sc.OperatorID() != cmd.OperatorID {
		return nil, errors.NewForbiddenError("service center belongs to another operator")
	}

	if err := uc.centerRepo.Delete(ctx, cmd.ServiceCenterID); err != nil {
		uc.logger.Errorw("failed to delete service center", "service_center_id", cmd.ServiceCenterID, "error", err)
		return nil, errors.NewPersistenceError("failed to delete service center", err)
	}

	return &DeleteServiceCenterResult{ServiceCenterID: cmd.ServiceCenterID, Deleted: true}, nil
}
