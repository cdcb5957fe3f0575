package customer

import "context"

// Repository persists customers.
type Repository interface {
	Create(ctx context.Context, c *Customer) error
	Update(ctx context.Context, c *Customer) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Customer, error)
	FindByOperatorID(ctx context.Context, operatorID uint) ([]*Customer, error)
	// Search matches name or phone by substring within an operator's book.
	Search(ctx context.Context, operatorID uint, query string) ([]*Customer, error)
}
