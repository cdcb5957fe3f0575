package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billu/internal/domain/ledger"
	"billu/internal/domain/technician"
	"billu/internal/shared/errors"
)

func TestPortalLogin_Success(t *testing.T) {
	techRepo := &mockTechnicianRepository{
		FindByPortalUserFunc: func(ctx context.Context, portalUser string) (*technician.Technician, error) {
			return raj(t), nil
		},
	}
	uc := NewPortalLoginUseCase(techRepo, &mockLogger{})

	result, err := uc.Execute(context.Background(), PortalLoginCommand{PortalUser: "raj01", PortalPass: "secret"})
	require.NoError(t, err)
	assert.Equal(t, uint(7), result.Technician.ID)
	assert.Equal(t, "Raj", result.Technician.Name)
}

func TestPortalLogin_WrongPassword(t *testing.T) {
	techRepo := &mockTechnicianRepository{
		FindByPortalUserFunc: func(ctx context.Context, portalUser string) (*technician.Technician, error) {
			return raj(t), nil
		},
	}
	uc := NewPortalLoginUseCase(techRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), PortalLoginCommand{PortalUser: "raj01", PortalPass: "Secret"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user ID or password")
}

func TestPortalLogin_UnknownUserSameMessage(t *testing.T) {
	techRepo := &mockTechnicianRepository{
		FindByPortalUserFunc: func(ctx context.Context, portalUser string) (*technician.Technician, error) {
			return nil, errors.NewNotFoundError("not found")
		},
	}
	uc := NewPortalLoginUseCase(techRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), PortalLoginCommand{PortalUser: "ghost", PortalPass: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid user ID or password")
}

func TestPortalLogin_NoCredentialsIssued(t *testing.T) {
	tech, err := technician.NewTechnician(technician.CreateTechnicianParams{OperatorID: 1, Name: "NoPortal"})
	require.NoError(t, err)
	techRepo := &mockTechnicianRepository{
		FindByPortalUserFunc: func(ctx context.Context, portalUser string) (*technician.Technician, error) {
			return tech, nil
		},
	}
	uc := NewPortalLoginUseCase(techRepo, &mockLogger{})

	_, err = uc.Execute(context.Background(), PortalLoginCommand{PortalUser: "noportal", PortalPass: ""})
	require.Error(t, err)
}

func TestAddTransaction(t *testing.T) {
	techRepo := &mockTechnicianRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*technician.Technician, error) { return raj(t), nil },
	}
	var saved *ledger.Transaction
	ledgerRepo := &mockLedgerRepository{
		CreateFunc: func(ctx context.Context, tx *ledger.Transaction) error {
			saved = tx
			return nil
		},
	}

	uc := NewAddTransactionUseCase(techRepo, ledgerRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), AddTransactionCommand{
		TechnicianID: 7,
		OperatorID:   1,
		Type:         "credit",
		Amount:       "250",
	})
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.Equal(t, ledger.TransactionCredit, saved.Type())
	assert.Equal(t, 250.0, saved.Amount())
	assert.Equal(t, uint(7), saved.TechnicianID())
}

func TestAddTransaction_Invalid(t *testing.T) {
	techRepo := &mockTechnicianRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*technician.Technician, error) { return raj(t), nil },
	}
	uc := NewAddTransactionUseCase(techRepo, &mockLedgerRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), AddTransactionCommand{TechnicianID: 7, OperatorID: 1, Type: "transfer", Amount: "10"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), AddTransactionCommand{TechnicianID: 7, OperatorID: 1, Type: "debit", Amount: "abc"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))

	_, err = uc.Execute(context.Background(), AddTransactionCommand{TechnicianID: 7, OperatorID: 1, Type: "debit", Amount: "-5"})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
