package usecases

import (
	"context"
	"strings"

	"billu/internal/domain/servicecenter"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type CreateServiceCenterCommand struct {
	OperatorID    uint
	Name          string
	CompanyName   string
	Address       string
	ContactNumber string
	Category      string
}

type CreateServiceCenterResult struct {
	ServiceCenterID uint
}

type CreateServiceCenterUseCase struct {
	centerRepo servicecenter.Repository
	logger     logger.Interface
}

func NewCreateServiceCenterUseCase(centerRepo servicecenter.Repository, logger logger.Interface) *CreateServiceCenterUseCase {
	return &CreateServiceCenterUseCase{centerRepo: centerRepo, logger: logger}
}

func (uc *CreateServiceCenterUseCase) Execute(ctx context.Context, cmd CreateServiceCenterCommand) (*CreateServiceCenterResult, error) {
	uc.logger.Infow("executing create service center use case", "operator_id", cmd.OperatorID, "name", cmd.Name)

	if cmd.OperatorID == 0 {
		return nil, errors.NewValidationError("operator ID is required")
	}
	name := strings.TrimSpace(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("service center name is required")
	}

	// Duplicate detection is engine-side: exact name match within the
	// operator's roster.
	if existing, err := uc.centerRepo.FindByName(ctx, cmd.OperatorID, name); err == nil && existing != nil {
		return nil, errors.NewConflictError("a service center with this name already exists")
	}

	sc, err := servicecenter.NewServiceCenter(
		cmd.OperatorID,
		name,
		cmd.CompanyName,
		utils.SanitizeText(cmd.Address),
		cmd.ContactNumber,
		cmd.Category,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.centerRepo.Create(ctx, sc); err != nil {
		uc.logger.Errorw("failed to save service center", "error", err)
		return nil, errors.NewPersistenceError("failed to save service center", err)
	}

	uc.logger.Infow("service center created", "service_center_id", sc.ID())
	return &CreateServiceCenterResult{ServiceCenterID: sc.ID()}, nil
}
