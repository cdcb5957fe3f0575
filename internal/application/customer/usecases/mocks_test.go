package usecases

import (
	"context"

	"billu/internal/domain/customer"
	"billu/internal/shared/logger"
)

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
