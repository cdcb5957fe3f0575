package usecases

import (
	"context"
	"fmt"

	"billu/internal/application/ticket/dto"
	"billu/internal/domain/ticket"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID   uint
	OperatorID uint
}

type GetTicketUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(ticketRepo ticket.Repository, logger logger.Interface) *GetTicketUseCase {
	return &GetTicketUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", query.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", query.TicketID))
	}
	if err := ensureTicketAccess(t, query.OperatorID); err != nil {
		return nil, err
	}

	return dto.ToTicketDTO(t), nil
}
