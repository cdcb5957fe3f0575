package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/servicecenter"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type UpdateServiceCenterCommand struct {
	ServiceCenterID uint
	OperatorID      uint

	Name          *string
	CompanyName   *string
	Address       *string
	ContactNumber *string
	Category      *string
}

type UpdateServiceCenterResult struct {
	ServiceCenterID uint
}

type UpdateServiceCenterUseCase struct {
	centerRepo servicecenter.Repository
	logger     logger.Interface
}

func NewUpdateServiceCenterUseCase(centerRepo servicecenter.Repository, logger logger.Interface) *UpdateServiceCenterUseCase {
	return &UpdateServiceCenterUseCase{centerRepo: centerRepo, logger: logger}
}

func (uc *UpdateServiceCenterUseCase) Execute(ctx context.Context, cmd UpdateServiceCenterCommand) (*UpdateServiceCenterResult, error) {
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

	name, company := sc.Name(), sc.CompanyName()
	address, contact, category := sc.Address(), sc.ContactNumber(), sc.Category()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.CompanyName != nil {
		company = *cmd.CompanyName
	}
	if cmd.Address != nil {
		address = utils.SanitizeText(*cmd.Address)
	}
	if cmd.ContactNumber != nil {
		contact = *cmd.ContactNumber
	}
	if cmd.Category != nil {
		category = *cmd.Category
	}

	if err := sc.UpdateDetails(name, company, address, contact, category); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.centerRepo.Update(ctx, sc); err != nil {
		uc.logger.Errorw("failed to update service center", "service_center_id", cmd.ServiceCenterID, "error", err)
		return nil, errors.NewPersistenceError("failed to update service center", err)
	}

	return &UpdateServiceCenterResult{ServiceCenterID: sc.ID()}, nil
}
