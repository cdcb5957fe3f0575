package product

import "context"

// Repository persists products.
type Repository interface {
	Create(ctx context.Context, p *Product) error
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Product, error)
	FindByCustomerID(ctx context.Context, customerID uint) ([]*Product, error)
	FindByOperatorID(ctx context.Context, operatorID uint) ([]*Product, error)
}
