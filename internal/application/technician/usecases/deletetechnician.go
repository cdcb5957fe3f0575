package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/technician"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type DeleteTechnicianCommand struct {
	TechnicianID uint
	OperatorID   uint
}

type DeleteTechnicianResult struct {
	TechnicianID uint
	Deleted      bool
}

// DeleteTechnicianUseCase removes the roster entry. Tickets referencing the
// technician keep their denormalized snapshot untouched; there is no cascade.
type DeleteTechnicianUseCase struct {
	techRepo technician.Repository
	logger   logger.Interface
}

func NewDeleteTechnicianUseCase(techRepo technician.Repository, logger logger.Interface) *DeleteTechnicianUseCase {
	return &DeleteTechnicianUseCase{techRepo: techRepo, logger: logger}
}

func (uc *DeleteTechnicianUseCase) Execute(ctx context.Context, cmd DeleteTechnicianCommand) (*DeleteTechnicianResult, error) {
	if cmd.TechnicianID == 0 {
		return nil, errors.NewValidationError("technician ID is required")
	}

	tech, err := uc.techRepo.FindByID(ctx, cmd.TechnicianID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("technician %d not found", cmd.TechnicianID))
	}
	if cmd.OperatorID != 0 && tech.OperatorID() != cmd.OperatorID {
		return nil, errors.NewForbiddenError("technician belongs to another operator")
	}

	if err := uc.techRepo.Delete(ctx, cmd.TechnicianID); err != nil {
		uc.logger.Errorw("failed to delete technician", "technician_id", cmd.TechnicianID, "error", err)
		return nil, errors.NewPersistenceError("failed to delete technician", err)
	}

	uc.logger.Infow("technician deleted", "technician_id", cmd.TechnicianID)
	return &DeleteTechnicianResult{TechnicianID: cmd.TechnicianID, Deleted: true}, nil
}
