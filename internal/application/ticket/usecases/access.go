package usecases

import (
	"billu/internal/domain/ticket"
	"billu/internal/shared/errors"
)

// ensureTicketAccess rejects cross-operator access. OperatorID 0 is the
// super-admin wildcard set by the interface layer after a role check.
func ensureTicketAccess(t *ticket.Ticket, operatorID uint) error {
	if operatorID != 0 && t.OperatorID() != operatorID {
		return errors.NewForbiddenError("ticket belongs to another operator")
	}
	return nil
}
