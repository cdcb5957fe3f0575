package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billu/internal/domain/customer"
	"billu/internal/shared/errors"
)

func TestCreateCustomer_Success(t *testing.T) {
	var saved *customer.Customer
	repo := &mockCustomerRepository{
		CreateFunc: func(ctx context.Context, c *customer.Customer) error {
			c.SetID(11)
			saved = c
			return nil
		},
	}
	uc := NewCreateCustomerUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), CreateCustomerCommand{
		OperatorID: 3,
		Name:       "Asha Verma",
		Phone:      "9876543210",
		Email:      "asha@example.com",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(11), result.CustomerID)
	require.NotNil(t, saved)
	assert.Equal(t, "Asha Verma", saved.Name())
	assert.False(t, saved.JoinedAt().IsZero())
}

func TestCreateCustomer_ExplicitJoinedAt(t *testing.T) {
	joined := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	repo := &mockCustomerRepository{}
	uc := NewCreateCustomerUseCase(repo, &mockLogger{})

	var saved *customer.Customer
	repo.CreateFunc = func(ctx context.Context, c *customer.Customer) error {
		saved = c
		return nil
	}

	_, err := uc.Execute(context.Background(), CreateCustomerCommand{
		OperatorID: 3,
		Name:       "Asha Verma",
		Phone:      "9876543210",
		JoinedAt:   &joined,
	})

	require.NoError(t, err)
	assert.True(t, saved.JoinedAt().Equal(joined))
}

func TestCreateCustomer_Validation(t *testing.T) {
	uc := NewCreateCustomerUseCase(&mockCustomerRepository{}, &mockLogger{})

	tests := []struct {
		name string
		cmd  CreateCustomerCommand
	}{
		{"missing operator", CreateCustomerCommand{Name: "A", Phone: "1"}},
		{"missing name", CreateCustomerCommand{OperatorID: 3, Phone: "1"}},
		{"missing phone", CreateCustomerCommand{OperatorID: 3, Name: "A"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestUpdateCustomer_CrossOperatorForbidden(t *testing.T) {
	existing, err := customer.NewCustomer(3, "Asha Verma", "9876543210", "", "", time.Time{})
	require.NoError(t, err)
	existing.SetID(11)

	repo := &mockCustomerRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*customer.Customer, error) {
			return existing, nil
		},
	}
	uc := NewUpdateCustomerUseCase(repo, &mockLogger{})

	name := "Someone Else"
	_, err = uc.Execute(context.Background(), UpdateCustomerCommand{
		CustomerID: 11,
		OperatorID: 4,
		Name:       &name,
	})

	require.Error(t, err)
	appErr := errors.GetAppError(err)
	require.NotNil(t, appErr)
	assert.Equal(t, errors.ErrorTypeForbidden, appErr.Type)
}

func TestListCustomers_SearchDelegates(t *testing.T) {
	var gotQuery string
	repo := &mockCustomerRepository{
		SearchFunc: func(ctx context.Context, operatorID uint, query string) ([]*customer.Customer, error) {
			gotQuery = query
			return nil, nil
		},
	}
	uc := NewListCustomersUseCase(repo, &mockLogger{})

	result, err := uc.Execute(context.Background(), ListCustomersQuery{OperatorID: 3, Search: "  asha "})

	require.NoError(t, err)
	assert.Equal(t, "asha", gotQuery)
	assert.Equal(t, 0, result.Total)
}
