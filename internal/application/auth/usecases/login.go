package usecases

import (
	"context"
	"strings"

	"billu/internal/application/auth/dto"
	"billu/internal/domain/user"
	"billu/internal/shared/authorization"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type LoginCommand struct {
	Email    string
	Password string
}

type LoginResult struct {
	User         *dto.UserDTO
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

type LoginUseCase struct {
	userRepo        user.Repository
	hasher          PasswordHasher
	tokens          TokenService
	superAdminEmail string
	logger          logger.Interface
}

func NewLoginUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	tokens TokenService,
	superAdminEmail string,
	logger logger.Interface,
) *LoginUseCase {
	return &LoginUseCase{
		userRepo:        userRepo,
		hasher:          hasher,
		tokens:          tokens,
		superAdminEmail: strings.ToLower(strings.TrimSpace(superAdminEmail)),
		logger:          logger,
	}
}

func (uc *LoginUseCase) Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	// The same message for unknown email and wrong password keeps account
	// existence unguessable.
	u, err := uc.userRepo.FindByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if !u.IsActive() {
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}
	if err := uc.hasher.Compare(u.PasswordHash(), cmd.Password); err != nil {
		uc.logger.Warnw("failed login attempt", "email", email)
		return nil, errors.NewUnauthorizedError("invalid email or password")
	}

	if uc.superAdminEmail != "" && email == uc.superAdminEmail && u.Role() != authorization.RoleSuperAdmin {
		u.PromoteToSuperAdmin()
		if err := uc.userRepo.Update(ctx, u); err != nil {
			uc.logger.Errorw("failed to persist super admin promotion", "user_id", u.ID(), "error", err)
		}
	}

	pair, err := uc.tokens.Generate(u.ID(), u.Role())
	if err != nil {
		uc.logger.Errorw("failed to generate tokens", "user_id", u.ID(), "error", err)
		return nil, errors.NewInternalError("failed to generate tokens")
	}

	uc.logger.Infow("operator logged in", "user_id", u.ID(), "role", u.Role())
	return &LoginResult{
		User:         dto.ToUserDTO(u),
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		ExpiresIn:    pair.ExpiresIn,
	}, nil
}
