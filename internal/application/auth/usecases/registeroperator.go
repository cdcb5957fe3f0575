package usecases

import (
	"context"
	"strings"

	"billu/internal/domain/user"
	"billu/internal/shared/authorization"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type RegisterOperatorCommand struct {
	Name     string
	Email    string
	Password string
}

type RegisterOperatorResult struct {
	UserID uint
}

type RegisterOperatorUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewRegisterOperatorUseCase(userRepo user.Repository, hasher PasswordHasher, logger logger.Interface) *RegisterOperatorUseCase {
	return &RegisterOperatorUseCase{userRepo: userRepo, hasher: hasher, logger: logger}
}

func (uc *RegisterOperatorUseCase) Execute(ctx context.Context, cmd RegisterOperatorCommand) (*RegisterOperatorResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" {
		return nil, errors.NewValidationError("email is required")
	}
	if len(cmd.Password) < 8 {
		return nil, errors.NewValidationError("password must be at least 8 characters")
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to check email uniqueness", "error", err)
		return nil, errors.NewPersistenceError("failed to check email", err)
	}
	if exists {
		return nil, errors.NewConflictError("an account with this email already exists")
	}

	hash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, errors.NewInternalError("failed to hash password")
	}

	u, err := user.NewUser(cmd.Name, email, hash, authorization.RoleOperator)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.userRepo.Create(ctx, u); err != nil {
		uc.logger.Errorw("failed to save user", "error", err)
		return nil, errors.NewPersistenceError("failed to save user", err)
	}

	uc.logger.Infow("operator registered", "user_id", u.ID(), "email", email)
	return &RegisterOperatorResult{UserID: u.ID()}, nil
}
