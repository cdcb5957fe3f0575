package usecases

import (
	"context"

	"billu/internal/domain/customer"
	"billu/internal/domain/product"
	"billu/internal/shared/logger"
)

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

type mockCustomerRepository struct {
	FindByIDFunc func(ctx context.Context, id uint) (*customer.Customer, error)
}

func (m *mockCustomerRepository) Create(ctx context.Context, c *customer.Customer) error { return nil }
func (m *mockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error { return nil }
func (m *mockCustomerRepository) Delete(ctx context.Context, id uint) error              { return nil }

func (m *mockCustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockCustomerRepository) FindByOperatorID(ctx context.Context, operatorID uint) ([]*customer.Customer, error) {
	return nil, nil
}

func (m *mockCustomerRepository) Search(ctx context.Context, operatorID uint, query string) ([]*customer.Customer, error) {
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
