package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/compensation"
	"billu/internal/domain/technician"
	"billu/internal/domain/ticket"
	"billu/internal/shared/biztime"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type GetPointsQuery struct {
	TechnicianID uint
	OperatorID   uint
}

type GetPointsResult struct {
	TechnicianID      uint
	TotalPoints       int
	TotalTickets      int
	CompletedTickets  int
	MaxPossiblePoints int
}

type GetPointsUseCase struct {
	techRepo   technician.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewGetPointsUseCase(
	techRepo technician.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *GetPointsUseCase {
	return &GetPointsUseCase{techRepo: techRepo, ticketRepo: ticketRepo, logger: logger}
}

func (uc *GetPointsUseCase) Execute(ctx context.Context, query GetPointsQuery) (*GetPointsResult, error) {
	if query.TechnicianID == 0 {
		return nil, errors.NewValidationError("technician ID is required")
	}

	tech, err := uc.techRepo.FindByID(ctx, query.TechnicianID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("technician %d not found", query.TechnicianID))
	}
	if query.OperatorID != 0 && tech.OperatorID() != query.OperatorID {
		return nil, errors.NewForbiddenError("technician belongs to another operator")
	}

	tickets, err := uc.ticketRepo.FindByTechnicianID(ctx, tech.ID())
	if err != nil {
		uc.logger.Errorw("failed to load technician tickets", "technician_id", tech.ID(), "error", err)
		return nil, errors.NewPersistenceError("failed to load technician tickets", err)
	}

	report := compensation.PerformancePoints(tech.ID(), tickets, biztime.NowUTC())

	return &GetPointsResult{
		TechnicianID:      tech.ID(),
		TotalPoints:       report.TotalPoints,
		TotalTickets:      report.TotalTickets,
		CompletedTickets:  report.CompletedTickets,
		MaxPossiblePoints: report.MaxPossiblePoints,
	}, nil
}
