package ticket

import "context"

// Repository persists tickets.
type Repository interface {
	Create(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	FindByTicketNumber(ctx context.Context, number string) (*Ticket, error)
	// FindByOperatorID returns the operator's tickets newest first.
	FindByOperatorID(ctx context.Context, operatorID uint) ([]*Ticket, error)
	// FindAll returns every operator's tickets newest first. Reserved for
	// super-admin views and cross-operator aggregation.
	FindAll(ctx context.Context) ([]*Ticket, error)
	// FindByTechnicianID returns tickets assigned to a technician, any
	// category, newest first.
	FindByTechnicianID(ctx context.Context, technicianID uint) ([]*Ticket, error)
	// FindByServiceCenterID returns tickets assigned to a service center.
	FindByServiceCenterID(ctx context.Context, serviceCenterID uint) ([]*Ticket, error)
	CountByOperatorID(ctx context.Context, operatorID uint) (int64, error)
}
