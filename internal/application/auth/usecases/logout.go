package usecases

import (
	"context"

	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type LogoutCommand struct {
	AccessToken string
}

type LogoutUseCase struct {
	tokens TokenService
	logger logger.Interface
}

func NewLogoutUseCase(tokens TokenService, logger logger.Interface) *LogoutUseCase {
	return &LogoutUseCase{tokens: tokens, logger: logger}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) error {
	if cmd.AccessToken == "" {
		return errors.NewValidationError("access token is required")
	}
	if err := uc.tokens.Invalidate(ctx, cmd.AccessToken); err != nil {
		uc.logger.Errorw("failed to invalidate token", "error", err)
		return errors.NewInternalError("failed to log out")
	}
	return nil
}
