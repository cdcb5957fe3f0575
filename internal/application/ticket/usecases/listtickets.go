package usecases

import (
	"context"

	"billu/internal/application/ticket/dto"
	"billu/internal/domain/ticket"
	vo "billu/internal/domain/ticket/valueobjects"
	"billu/internal/shared/biztime"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type ListTicketsQuery struct {
	// OperatorID scopes the listing; zero means all operators (super admin).
	OperatorID uint

	Category        string
	Date            string // YYYY-MM-DD, interpreted in the business timezone
	Priority        string
	ExcludeResolved bool
}

type ListTicketsResult struct {
	Tickets []*dto.TicketDTO
	Total   int
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.Repository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{ticketRepo: ticketRepo, logger: logger}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(query)
	if err != nil {
		return nil, err
	}

	var tickets []*ticket.Ticket
	if query.OperatorID == 0 {
		tickets, err = uc.ticketRepo.FindAll(ctx)
	} else {
		tickets, err = uc.ticketRepo.FindByOperatorID(ctx, query.OperatorID)
	}
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "operator_id", query.OperatorID, "error", err)
		return nil, errors.NewInternalError("failed to list tickets")
	}

	visible := filter.Apply(tickets)

	return &ListTicketsResult{
		Tickets: dto.ToTicketDTOs(visible),
		Total:   len(visible),
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(query ListTicketsQuery) (ticket.Filter, error) {
	filter := ticket.Filter{
		Category:        query.Category,
		ExcludeResolved: query.ExcludeResolved,
	}

	if query.Priority != "" {
		p := vo.Priority(query.Priority)
		if !p.IsValid() {
			return ticket.Filter{}, errors.NewValidationError("invalid priority filter")
		}
		filter.Priority = p
	}

	if query.Date != "" {
		day, err := biztime.ParseDateInBizTimezone(query.Date)
		if err != nil {
			return ticket.Filter{}, errors.NewValidationError("invalid date filter, expected YYYY-MM-DD")
		}
		filter.Date = &day
	}

	return filter, nil
}
