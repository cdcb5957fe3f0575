package usecases

import (
	"context"

	"billu/internal/domain/servicecenter"
	"billu/internal/shared/logger"
)

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
