package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/compensation"
	"billu/internal/domain/ledger"
	"billu/internal/domain/technician"
	"billu/internal/domain/ticket"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type GetWalletQuery struct {
	TechnicianID uint
	OperatorID   uint
}

type GetWalletResult struct {
	TechnicianID    uint
	Balance         float64
	AssignedTickets int
}

// GetWalletUseCase computes the live wallet balance from the technician's
// ticket contributions and ledger entries. Nothing is stored; every read
// recomputes.
type GetWalletUseCase struct {
	techRepo   technician.Repository
	ticketRepo ticket.Repository
	ledgerRepo ledger.Repository
	logger     logger.Interface
}

func NewGetWalletUseCase(
	techRepo technician.Repository,
	ticketRepo ticket.Repository,
	ledgerRepo ledger.Repository,
	logger logger.Interface,
) *GetWalletUseCase {
	return &GetWalletUseCase{
		techRepo:   techRepo,
		ticketRepo: ticketRepo,
		ledgerRepo: ledgerRepo,
		logger:     logger,
	}
}

func (uc *GetWalletUseCase) Execute(ctx context.Context, query GetWalletQuery) (*GetWalletResult, error) {
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
	transactions, err := uc.ledgerRepo.FindByTechnicianID(ctx, tech.ID())
	if err != nil {
		uc.logger.Errorw("failed to load technician transactions", "technician_id", tech.ID(), "error", err)
		return nil, errors.NewPersistenceError("failed to load technician transactions", err)
	}

	return &GetWalletResult{
		TechnicianID:    tech.ID(),
		Balance:         compensation.WalletBalance(tech.ID(), tickets, transactions),
		AssignedTickets: len(compensation.AssignedTickets(tech.ID(), tickets)),
	}, nil
}
