package servicecenter

import "context"

// Repository persists service centers.
type Repository interface {
	Create(ctx context.Context, sc *ServiceCenter) error
	Update(ctx context.Context, sc *ServiceCenter) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*ServiceCenter, error)
	// FindByName performs a case-sensitive exact match on the center name.
	// Auto-provisioning uses it to decide whether a typed name already
	// exists.
	FindByName(ctx context.Context, operatorID uint, name string) (*ServiceCenter, error)
	FindByOperatorID(ctx context.Context, operatorID uint) ([]*ServiceCenter, error)
	FindAll(ctx context.Context) ([]*ServiceCenter, error)
}
