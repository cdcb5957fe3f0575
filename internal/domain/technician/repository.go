package technician

import "context"

// Repository persists technicians.
type Repository interface {
	Create(ctx context.Context, t *Technician) error
	Update(ctx context.Context, t *Technician) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Technician, error)
	// FindByPortalUser resolves a portal login across all operators.
	FindByPortalUser(ctx context.Context, portalUser string) (*Technician, error)
	FindByOperatorID(ctx context.Context, operatorID uint) ([]*Technician, error)
	FindAll(ctx context.Context) ([]*Technician, error)
}
