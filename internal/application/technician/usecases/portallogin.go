package usecases

import (
	"context"
	"strings"

	"billu/internal/application/technician/dto"
	"billu/internal/domain/technician"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type PortalLoginCommand struct {
	PortalUser string
	PortalPass string
}

type PortalLoginResult struct {
	Technician *dto.TechnicianDTO
}

// PortalLoginUseCase checks a technician's self-service credentials. The
// stored pair is plaintext and compared by equality, matching the system of
// record; it is deliberately separate from operator authentication. The
// failure message never reveals whether the user ID exists.
type PortalLoginUseCase struct {
	techRepo technician.Repository
	logger   logger.Interface
}

func NewPortalLoginUseCase(techRepo technician.Repository, logger logger.Interface) *PortalLoginUseCase {
	return &PortalLoginUseCase{techRepo: techRepo, logger: logger}
}

func (uc *PortalLoginUseCase) Execute(ctx context.Context, cmd PortalLoginCommand) (*PortalLoginResult, error) {
	if strings.TrimSpace(cmd.PortalUser) == "" || cmd.PortalPass == "" {
		return nil, errors.NewValidationError("user ID and password are required")
	}

	tech, err := uc.techRepo.FindByPortalUser(ctx, strings.TrimSpace(cmd.PortalUser))
	if err != nil || tech == nil {
		uc.logger.Warnw("portal login failed: unknown user", "portal_user", cmd.PortalUser)
		return nil, errors.NewUnauthorizedError("invalid user ID or password")
	}

	if !tech.VerifyPortalCredentials(cmd.PortalUser, cmd.PortalPass) {
		uc.logger.Warnw("portal login failed: bad credentials", "technician_id", tech.ID())
		return nil, errors.NewUnauthorizedError("invalid user ID or password")
	}

	uc.logger.Infow("portal login succeeded", "technician_id", tech.ID())
	return &PortalLoginResult{Technician: dto.ToTechnicianDTO(tech)}, nil
}
