package ledger

import "context"

// Repository persists wallet transactions. Append-only: no update or delete.
type Repository interface {
	Create(ctx context.Context, tx *Transaction) error
	FindByTechnicianID(ctx context.Context, technicianID uint) ([]*Transaction, error)
	FindAll(ctx context.Context) ([]*Transaction, error)
}
