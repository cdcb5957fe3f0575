package usecases

import (
	"context"
	"strings"

	"billu/internal/domain/technician"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type CreateTechnicianCommand struct {
	OperatorID uint
	Name       string
	Email      string
	Phone      string
	Address    string
	Skills     string
	PortalUser string
	PortalPass string
}

type CreateTechnicianResult struct {
	TechnicianID uint
}

type CreateTechnicianUseCase struct {
	techRepo technician.Repository
	logger   logger.Interface
}

func NewCreateTechnicianUseCase(techRepo technician.Repository, logger logger.Interface) *CreateTechnicianUseCase {
	return &CreateTechnicianUseCase{techRepo: techRepo, logger: logger}
}

func (uc *CreateTechnicianUseCase) Execute(ctx context.Context, cmd CreateTechnicianCommand) (*CreateTechnicianResult, error) {
	uc.logger.Infow("executing create technician use case", "operator_id", cmd.OperatorID, "name", cmd.Name)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create technician command", "error", err)
		return nil, err
	}

	if cmd.PortalUser != "" {
		if existing, err := uc.techRepo.FindByPortalUser(ctx, cmd.PortalUser); err == nil && existing != nil {
			return nil, errors.NewConflictError("portal user ID is already taken")
		}
	}

	tech, err := technician.NewTechnician(technician.CreateTechnicianParams{
		OperatorID: cmd.OperatorID,
		Name:       cmd.Name,
		Email:      cmd.Email,
		Phone:      cmd.Phone,
		Address:    utils.SanitizeText(cmd.Address),
		Skills:     utils.SanitizeText(cmd.Skills),
		PortalUser: cmd.PortalUser,
		PortalPass: cmd.PortalPass,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.techRepo.Create(ctx, tech); err != nil {
		uc.logger.Errorw("failed to save technician", "error", err)
		return nil, errors.NewPersistenceError("failed to save technician", err)
	}

	uc.logger.Infow("technician created", "technician_id", tech.ID())
	return &CreateTechnicianResult{TechnicianID: tech.ID()}, nil
}

func (uc *CreateTechnicianUseCase) validateCommand(cmd CreateTechnicianCommand) error {
	if cmd.OperatorID == 0 {
		return errors.NewValidationError("operator ID is required")
	}
	if strings.TrimSpace(cmd.Name) == "" {
		return errors.NewValidationError("technician name is required")
	}
	if (cmd.PortalUser == "") != (cmd.PortalPass == "") {
		return errors.NewValidationError("portal user ID and password must be set together")
	}
	return nil
}
