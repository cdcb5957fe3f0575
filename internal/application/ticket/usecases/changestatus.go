package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/ticket"
	vo "billu/internal/domain/ticket/valueobjects"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type ChangeStatusCommand struct {
	TicketID   uint
	OperatorID uint
	NewStatus  string
	// Confirm must be true to enter Resolved.
	Confirm bool
}

type ChangeStatusResult struct {
	TicketID  uint
	OldStatus string
	NewStatus string
}

type ChangeStatusUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewChangeStatusUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ChangeStatusUseCase {
	return &ChangeStatusUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ChangeStatusUseCase) Execute(ctx context.Context, cmd ChangeStatusCommand) (*ChangeStatusResult, error) {
	uc.logger.Infow("executing change status use case", "ticket_id", cmd.TicketID, "new_status", cmd.NewStatus)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid change status command", "error", err)
		return nil, err
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}
	if err := ensureTicketAccess(t, cmd.OperatorID); err != nil {
		return nil, err
	}

	oldStatus := t.Status()

	if err := t.ChangeStatus(vo.Status(cmd.NewStatus), cmd.Confirm); err != nil {
		uc.logger.Errorw("failed to change ticket status", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket status changed", "ticket_id", cmd.TicketID, "old_status", oldStatus, "new_status", t.Status())

	return &ChangeStatusResult{
		TicketID:  t.ID(),
		OldStatus: oldStatus.String(),
		NewStatus: t.Status().String(),
	}, nil
}

func (uc *ChangeStatusUseCase) validateCommand(cmd ChangeStatusCommand) error {
	if cmd.TicketID == 0 {
		return errors.NewValidationError("ticket ID is required")
	}
	if !vo.Status(cmd.NewStatus).IsValid() {
		return errors.NewValidationError("invalid status")
	}
	return nil
}
