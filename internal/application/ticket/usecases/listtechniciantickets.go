package usecases

import (
	"context"

	"billu/internal/application/ticket/dto"
	"billu/internal/domain/ticket"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

// ListTechnicianTicketsQuery serves the technician portal: tickets for one
// technician regardless of which operator created them.
type ListTechnicianTicketsQuery struct {
	TechnicianID uint
}

type ListTechnicianTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int
}

type ListTechnicianTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTechnicianTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTechnicianTicketsUseCase {
	return &ListTechnicianTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTechnicianTicketsUseCase) Execute(ctx context.Context, query ListTechnicianTicketsQuery) (*ListTechnicianTicketsResult, error) {
	if query.TechnicianID == 0 {
		return nil, errors.NewValidationError("technician ID is required")
	}

	tickets, err := uc.ticketRepo.FindByTechnicianID(ctx, query.TechnicianID)
	if err != nil {
		uc.logger.Errorw("failed to list technician tickets", "technician_id", query.TechnicianID, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	return &ListTechnicianTicketsResult{
		Tickets: dto.ToTicketDTOs(tickets),
		Total:   len(tickets),
	}, nil
}
