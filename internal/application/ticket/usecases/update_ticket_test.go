package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"billu/internal/domain/servicecenter"
	"billu/internal/domain/technician"
	"billu/internal/domain/ticket"
	vo "billu/internal/domain/ticket/valueobjects"
	"billu/internal/shared/errors"
)

func strPtr(s string) *string { return &s }
func uintPtr(u uint) *uint    { return &u }

func storedTechTicket(t *testing.T) *ticket.Ticket {
	t.Helper()
	tk, err := ticket.NewTicket(ticket.CreateTicketParams{
		TicketNumber:     "123456789",
		OperatorID:       1,
		CustomerID:       10,
		CustomerName:     "Asha Verma",
		CustomerPhone:    "9876543210",
		ProductID:        20,
		ProductName:      "Microwave M90",
		Category:         vo.CategoryInStore,
		IssueType:        "Quick Fix",
		Priority:         vo.PriorityMedium,
		TechnicianID:     7,
		TechnicianName:   "Raj",
		ServiceAmount:    500,
		CommissionAmount: 150,
	})
	require.NoError(t, err)
	tk.SetID(100)
	return tk
}

func TestUpdateTicket_EditableFields(t *testing.T) {
	tk := storedTicket(t, 1)
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := NewUpdateTicketUseCase(repo, &mockServiceCenterRepository{}, &mockTechnicianRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:    100,
		OperatorID:  1,
		Description: strPtr("Updated notes"),
		IssueType:   strPtr("Diagnostic"),
		Priority:    strPtr("Low"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Updated notes", tk.Description())
	assert.Equal(t, "Diagnostic", tk.IssueType().String())
	assert.Equal(t, vo.PriorityLow, tk.Priority())
}

func TestUpdateTicket_CrossCategoryIssueTypeRejected(t *testing.T) {
	tk := storedTicket(t, 1)
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := NewUpdateTicketUseCase(repo, &mockServiceCenterRepository{}, &mockTechnicianRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:   100,
		OperatorID: 1,
		IssueType:  strPtr("Quick Fix"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicket_ReassignCenterAutoProvisions(t *testing.T) {
	tk := storedTicket(t, 1)
	centerRepo := &mockServiceCenterRepository{
		FindByNameFunc: func(ctx context.Context, operatorID uint, name string) (*servicecenter.ServiceCenter, error) {
			return nil, errors.NewNotFoundError("service center not found")
		},
		CreateFunc: func(ctx context.Context, sc *servicecenter.ServiceCenter) error {
			sc.SetID(77)
			return nil
		},
	}
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := NewUpdateTicketUseCase(repo, centerRepo, &mockTechnicianRepository{}, &mockLogger{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:          100,
		OperatorID:        1,
		ServiceCenterName: strPtr("Brand New Center"),
	})
	require.NoError(t, err)

	assert.True(t, result.CenterAutoCreated)
	assert.Equal(t, uint(77), tk.CenterDetails().ServiceCenterID())
	assert.Equal(t, "Brand New Center", tk.CenterDetails().ServiceCenterName())
}

func TestUpdateTicket_SentinelRejected(t *testing.T) {
	tk := storedTicket(t, 1)
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := NewUpdateTicketUseCase(repo, &mockServiceCenterRepository{}, &mockTechnicianRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:          100,
		OperatorID:        1,
		ServiceCenterName: strPtr("__new__"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicket_ReassignTechnicianAndAmounts(t *testing.T) {
	tk := storedTechTicket(t)
	techRepo := &mockTechnicianRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*technician.Technician, error) {
			tech, err := technician.NewTechnician(technician.CreateTechnicianParams{OperatorID: 1, Name: "Priya"})
			require.NoError(t, err)
			tech.SetID(id)
			return tech, nil
		},
	}
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := NewUpdateTicketUseCase(repo, &mockServiceCenterRepository{}, techRepo, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:      100,
		OperatorID:    1,
		TechnicianID:  uintPtr(9),
		ServiceAmount: strPtr("800"),
	})
	require.NoError(t, err)

	td := tk.TechDetails()
	assert.Equal(t, uint(9), td.TechnicianID())
	assert.Equal(t, "Priya", td.TechnicianName())
	assert.Equal(t, 800.0, td.ServiceAmount())
	// Untouched amounts carried over.
	assert.Equal(t, 150.0, td.CommissionAmount())
}

func TestUpdateTicket_AmountsOnly(t *testing.T) {
	tk := storedTechTicket(t)
	repo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	uc := NewUpdateTicketUseCase(repo, &mockServiceCenterRepository{}, &mockTechnicianRepository{}, &mockLogger{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		TicketID:         100,
		OperatorID:       1,
		CommissionAmount: strPtr("junk"),
		AmountReceived:   strPtr("350"),
	})
	require.NoError(t, err)

	td := tk.TechDetails()
	assert.Equal(t, 500.0, td.ServiceAmount())
	assert.Equal(t, 0.0, td.CommissionAmount())
	assert.Equal(t, 350.0, td.AmountReceived())
}
