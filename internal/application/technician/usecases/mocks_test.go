package usecases

import (
	"context"

	"billu/internal/domain/ledger"
	"billu/internal/domain/technician"
	"billu/internal/domain/ticket"
	"billu/internal/shared/logger"
)

type mockTechnicianRepository struct {
	CreateFunc           func(ctx context.Context, t *technician.Technician) error
	UpdateFunc           func(ctx context.Context, t *technician.Technician) error
	DeleteFunc           func(ctx context.Context, id uint) error
	FindByIDFunc         func(ctx context.Context, id uint) (*technician.Technician, error)
	FindByPortalUserFunc func(ctx context.Context, portalUser string) (*technician.Technician, error)
	FindByOperatorIDFunc func(ctx context.Context, operatorID uint) ([]*technician.Technician, error)
	FindAllFunc          func(ctx context.Context) ([]*technician.Technician, error)
}

func (m *mockTechnicianRepository) Create(ctx context.Context, t *technician.Technician) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTechnicianRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTechnicianRepository) FindByID(ctx context.Context, id uint) (*technician.Technician, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) FindByPortalUser(ctx context.Context, portalUser string) (*technician.Technician, error) {
	if m.FindByPortalUserFunc != nil {
		return m.FindByPortalUserFunc(ctx, portalUser)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) FindByOperatorID(ctx context.Context, operatorID uint) ([]*technician.Technician, error) {
	if m.FindByOperatorIDFunc != nil {
		return m.FindByOperatorIDFunc(ctx, operatorID)
	}
	return nil, nil
}

func (m *mockTechnicianRepository) FindAll(ctx context.Context) ([]*technician.Technician, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

type mockTicketRepository struct {
	CreateFunc                func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc                func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc                func(ctx context.Context, id uint) error
	FindByIDFunc              func(ctx context.Context, id uint) (*ticket.Ticket, error)
	FindByTicketNumberFunc    func(ctx context.Context, number string) (*ticket.Ticket, error)
	FindByOperatorIDFunc      func(ctx context.Context, operatorID uint) ([]*ticket.Ticket, error)
	FindAllFunc               func(ctx context.Context) ([]*ticket.Ticket, error)
	FindByTechnicianIDFunc    func(ctx context.Context, technicianID uint) ([]*ticket.Ticket, error)
	FindByServiceCenterIDFunc func(ctx context.Context, serviceCenterID uint) ([]*ticket.Ticket, error)
	CountByOperatorIDFunc     func(ctx context.Context, operatorID uint) (int64, error)
}

func (m *mockTicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByTicketNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	if m.FindByTicketNumberFunc != nil {
		return m.FindByTicketNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByOperatorID(ctx context.Context, operatorID uint) ([]*ticket.Ticket, error) {
	if m.FindByOperatorIDFunc != nil {
		return m.FindByOperatorIDFunc(ctx, operatorID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindAll(ctx context.Context) ([]*ticket.Ticket, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByTechnicianID(ctx context.Context, technicianID uint) ([]*ticket.Ticket, error) {
	if m.FindByTechnicianIDFunc != nil {
		return m.FindByTechnicianIDFunc(ctx, technicianID)
	}
	return nil, nil
}

func (m *mockTicketRepository) FindByServiceCenterID(ctx context.Context, serviceCenterID uint) ([]*ticket.Ticket, error) {
	if m.FindByServiceCenterIDFunc != nil {
		return m.FindByServiceCenterIDFunc(ctx, serviceCenterID)
	}
	return nil, nil
}

func (m *mockTicketRepository) CountByOperatorID(ctx context.Context, operatorID uint) (int64, error) {
	if m.CountByOperatorIDFunc != nil {
		return m.CountByOperatorIDFunc(ctx, operatorID)
	}
	return 0, nil
}

type mockLedgerRepository struct {
	CreateFunc             func(ctx context.Context, tx *ledger.Transaction) error
	FindByTechnicianIDFunc func(ctx context.Context, technicianID uint) ([]*ledger.Transaction, error)
	FindAllFunc            func(ctx context.Context) ([]*ledger.Transaction, error)
}

func (m *mockLedgerRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx)
	}
	return nil
}

func (m *mockLedgerRepository) FindByTechnicianID(ctx context.Context, technicianID uint) ([]*ledger.Transaction, error) {
	if m.FindByTechnicianIDFunc != nil {
		return m.FindByTechnicianIDFunc(ctx, technicianID)
	}
	return nil, nil
}

func (m *mockLedgerRepository) FindAll(ctx context.Context) ([]*ledger.Transaction, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
