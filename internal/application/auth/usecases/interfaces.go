package usecases

import (
	"context"

	"billu/internal/shared/authorization"
)

// PasswordHasher abstracts the bcrypt implementation so use cases stay
// testable without hashing cost.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
	ExpiresIn    int64
}

// TokenService issues and revokes JWT pairs for operator sessions.
type TokenService interface {
	Generate(userID uint, role authorization.UserRole) (*TokenPair, error)
	Invalidate(ctx context.Context, accessToken string) error
}

type RegisterOperatorExecutor interface {
	Execute(ctx context.Context, cmd RegisterOperatorCommand) (*RegisterOperatorResult, error)
}

type LoginExecutor interface {
	Execute(ctx context.Context, cmd LoginCommand) (*LoginResult, error)
}

type LogoutExecutor interface {
	Execute(ctx context.Context, cmd LogoutCommand) error
}
