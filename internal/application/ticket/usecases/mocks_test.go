package usecases

import (
	"context"

	"billu/internal/domain/customer"
	"billu/internal/domain/product"
	"billu/internal/domain/servicecenter"
	"billu/internal/domain/technician"
	"billu/internal/domain/ticket"
	"billu/internal/shared/logger"
)

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

type mockCustomerRepository struct {
	CreateFunc           func(ctx context.Context, c *customer.Customer) error
	UpdateFunc           func(ctx context.Context, c *customer.Customer) error
	DeleteFunc           func(ctx context.Context, id uint) error
	FindByIDFunc         func(ctx context.Context, id uint) (*customer.Customer, error)
	FindByOperatorIDFunc func(ctx context.Context, operatorID uint) ([]*customer.Customer, error)
	SearchFunc           func(ctx context.Context, operatorID uint, query string) ([]*customer.Customer, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, c)
	}
	return nil
}

func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepository) FindByOperatorID(ctx context.Context, operatorID uint) ([]*customer.Customer, error) {
	if m.FindByOperatorIDFunc != nil {
		return m.FindByOperatorIDFunc(ctx, operatorID)
	}
	return nil, nil
}

func (m *mockCustomerRepository) Search(ctx context.Context, operatorID uint, query string) ([]*customer.Customer, error) {
	if m.SearchFunc != nil {
		return m.SearchFunc(ctx, operatorID, query)
	}
	return nil, nil
}

type mockProductRepository struct {
	CreateFunc           func(ctx context.Context, p *product.Product) error
	UpdateFunc           func(ctx context.Context, p *product.Product) error
	DeleteFunc           func(ctx context.Context, id uint) error
	FindByIDFunc         func(ctx context.Context, id uint) (*product.Product, error)
	FindByCustomerIDFunc func(ctx context.Context, customerID uint) ([]*product.Product, error)
	FindByOperatorIDFunc func(ctx context.Context, operatorID uint) ([]*product.Product, error)
}

func (m *mockProductRepository) Create(ctx context.Context, p *product.Product) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Update(ctx context.Context, p *product.Product) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, p)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uint) (*product.Product, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductRepository) FindByCustomerID(ctx context.Context, customerID uint) ([]*product.Product, error) {
	if m.FindByCustomerIDFunc != nil {
		return m.FindByCustomerIDFunc(ctx, customerID)
	}
	return nil, nil
}

func (m *mockProductRepository) FindByOperatorID(ctx context.Context, operatorID uint) ([]*product.Product, error) {
	if m.FindByOperatorIDFunc != nil {
		return m.FindByOperatorIDFunc(ctx, operatorID)
	}
	return nil, nil
}

type mockServiceCenterRepository struct {
	CreateFunc           func(ctx context.Context, sc *servicecenter.ServiceCenter) error
	UpdateFunc           func(ctx context.Context, sc *servicecenter.ServiceCenter) error
	DeleteFunc           func(ctx context.Context, id uint) error
	FindByIDFunc         func(ctx context.Context, id uint) (*servicecenter.ServiceCenter, error)
	FindByNameFunc       func(ctx context.Context, operatorID uint, name string) (*servicecenter.ServiceCenter, error)
	FindByOperatorIDFunc func(ctx context.Context, operatorID uint) ([]*servicecenter.ServiceCenter, error)
	FindAllFunc          func(ctx context.Context) ([]*servicecenter.ServiceCenter, error)
}

func (m *mockServiceCenterRepository) Create(ctx context.Context, sc *servicecenter.ServiceCenter) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, sc)
	}
	return nil
}

func (m *mockServiceCenterRepository) Update(ctx context.Context, sc *servicecenter.ServiceCenter) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, sc)
	}
	return nil
}

func (m *mockServiceCenterRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockServiceCenterRepository) FindByID(ctx context.Context, id uint) (*servicecenter.ServiceCenter, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockServiceCenterRepository) FindByName(ctx context.Context, operatorID uint, name string) (*servicecenter.ServiceCenter, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, operatorID, name)
	}
	return nil, nil
}

func (m *mockServiceCenterRepository) FindByOperatorID(ctx context.Context, operatorID uint) ([]*servicecenter.ServiceCenter, error) {
	if m.FindByOperatorIDFunc != nil {
		return m.FindByOperatorIDFunc(ctx, operatorID)
	}
	return nil, nil
}

func (m *mockServiceCenterRepository) FindAll(ctx context.Context) ([]*servicecenter.ServiceCenter, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

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

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                    {}
func (m *mockLogger) Info(msg string, args ...any)                     {}
func (m *mockLogger) Warn(msg string, args ...any)                     {}
func (m *mockLogger) Error(msg string, args ...any)                    {}
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})   {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) With(args ...any) logger.Interface                { return m }
func (m *mockLogger) Named(name string) logger.Interface               { return m }
