package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/ticket"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type DeleteTicketCommand struct {
	TicketID   uint
	OperatorID uint
	// Confirm guards against accidental deletes, same as resolving.
	Confirm bool
}

type DeleteTicketResult struct {
	TicketID uint
	Deleted  bool
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if !cmd.Confirm {
		return nil, errors.NewValidationError("deleting a ticket requires confirmation")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}
	if err := ensureTicketAccess(t, cmd.OperatorID); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to delete ticket")
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)

	return &DeleteTicketResult{TicketID: cmd.TicketID, Deleted: true}, nil
}
