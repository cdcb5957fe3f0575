package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/technician"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type UpdateTechnicianCommand struct {
	TechnicianID uint
	OperatorID   uint

	Name    *string
	Email   *string
	Phone   *string
	Address *string
	Skills  *string

	PortalUser *string
	PortalPass *string
}

type UpdateTechnicianResult struct {
	TechnicianID uint
}

type UpdateTechnicianUseCase struct {
	techRepo technician.Repository
	logger   logger.Interface
}

func NewUpdateTechnicianUseCase(techRepo technician.Repository, logger logger.Interface) *UpdateTechnicianUseCase {
	return &UpdateTechnicianUseCase{techRepo: techRepo, logger: logger}
}

func (uc *UpdateTechnicianUseCase) Execute(ctx context.Context, cmd UpdateTechnicianCommand) (*UpdateTechnicianResult, error) {
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

	name, email, phone := tech.Name(), tech.Email(), tech.Phone()
	address, skills := tech.Address(), tech.Skills()
	if cmd.Name != nil {
		name = *cmd.Name
	}
	if cmd.Email != nil {
		email = *cmd.Email
	}
	if cmd.Phone != nil {
		phone = *cmd.Phone
	}
	if cmd.Address != nil {
		address = utils.SanitizeText(*cmd.Address)
	}
	if cmd.Skills != nil {
		skills = utils.SanitizeText(*cmd.Skills)
	}
	if err := tech.UpdateDetails(name, email, phone, address, skills); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.PortalUser != nil && cmd.PortalPass != nil {
		if existing, err := uc.techRepo.FindByPortalUser(ctx, *cmd.PortalUser); err == nil && existing != nil && existing.ID() != tech.ID() {
			return nil, errors.NewConflictError("portal user ID is already taken")
		}
		if err := tech.SetPortalCredentials(*cmd.PortalUser, *cmd.PortalPass); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.techRepo.Update(ctx, tech); err != nil {
		uc.logger.Errorw("failed to update technician", "technician_id", cmd.TechnicianID, "error", err)
		return nil, errors.NewPersistenceError("failed to update technician", err)
	}

	return &UpdateTechnicianResult{TechnicianID: tech.ID()}, nil
}
