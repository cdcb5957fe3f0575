package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billu/internal/domain/user"
	"billu/internal/shared/authorization"
	"billu/internal/shared/errors"
)

func operatorAccount(t *testing.T, email string) *user.User {
	t.Helper()
	u, err := user.NewUser("Nisha", email, "hashed:secret123", authorization.RoleOperator)
	require.NoError(t, err)
	u.SetID(5)
	return u
}

func TestLogin_Success(t *testing.T) {
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return operatorAccount(t, "nisha@navratna.example"), nil
		},
	}
	uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenService{}, "boss@navratna.example", &mockLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "Nisha@Navratna.example",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, "access", result.AccessToken)
	assert.Equal(t, "refresh", result.RefreshToken)
	assert.Equal(t, string(authorization.RoleOperator), result.User.Role)
}

func TestLogin_SuperAdminEmailPromoted(t *testing.T) {
	account := operatorAccount(t, "boss@navratna.example")
	var updated bool
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return account, nil
		},
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updated = true
			return nil
		},
	}
	uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenService{}, "boss@navratna.example", &mockLogger{})

	result, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "boss@navratna.example",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.True(t, updated)
	assert.Equal(t, string(authorization.RoleSuperAdmin), result.User.Role)
}

func TestLogin_GenericErrorHidesCause(t *testing.T) {
	tests := []struct {
		name string
		repo *mockUserRepository
		cmd  LoginCommand
	}{
		{
			"unknown email",
			&mockUserRepository{FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return nil, errors.NewNotFoundError("user not found")
			}},
			LoginCommand{Email: "ghost@navratna.example", Password: "secret123"},
		},
		{
			"wrong password",
			&mockUserRepository{FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
				return operatorAccount(t, "nisha@navratna.example"), nil
			}},
			LoginCommand{Email: "nisha@navratna.example", Password: "wrong"},
		},
		{
			"empty password",
			&mockUserRepository{},
			LoginCommand{Email: "nisha@navratna.example"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewLoginUseCase(tt.repo, &mockHasher{}, &mockTokenService{}, "", &mockLogger{})
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			appErr := errors.GetAppError(err)
			require.NotNil(t, appErr)
			assert.Equal(t, errors.ErrorTypeUnauthorized, appErr.Type)
			assert.Equal(t, "invalid email or password", appErr.Message)
		})
	}
}

func TestLogin_DeactivatedAccountRejected(t *testing.T) {
	account := operatorAccount(t, "nisha@navratna.example")
	account.Deactivate()
	repo := &mockUserRepository{
		FindByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return account, nil
		},
	}
	uc := NewLoginUseCase(repo, &mockHasher{}, &mockTokenService{}, "", &mockLogger{})

	_, err := uc.Execute(context.Background(), LoginCommand{
		Email:    "nisha@navratna.example",
		Password: "secret123",
	})

	require.Error(t, err)
}

func TestRegisterOperator_DuplicateEmail(t *testing.T) {
	repo := &mockUserRepository{
		ExistsByEmailFunc: func(ctx context.Context, email string) (bool, error) {
			return true, nil
		},
	}
	uc := NewRegisterOperatorUseCase(repo, &mockHasher{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), RegisterOperatorCommand{
		Name:     "Nisha",
		Email:    "nisha@navratna.example",
		Password: "secret123",
	})

	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}

func TestRegisterOperator_Success(t *testing.T) {
	var saved *user.User
	repo := &mockUserRepository{
		CreateFunc: func(ctx context.Context, u *user.User) error {
			u.SetID(9)
			saved = u
			return nil
		},
	}
	uc := NewRegisterOperatorUseCase(repo, &mockHasher{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), RegisterOperatorCommand{
		Name:     "Nisha",
		Email:    "Nisha@Navratna.example",
		Password: "secret123",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(9), result.UserID)
	assert.Equal(t, "nisha@navratna.example", saved.Email())
	assert.Equal(t, "hashed:secret123", saved.PasswordHash())
	assert.Equal(t, authorization.RoleOperator, saved.Role())
}
