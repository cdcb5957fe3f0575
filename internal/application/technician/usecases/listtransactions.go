package usecases

import (
	"context"
	"fmt"

	"billu/internal/application/technician/dto"
	"billu/internal/domain/ledger"
	"billu/internal/domain/technician"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
)

type ListTransactionsQuery struct {
	TechnicianID uint
	OperatorID   uint
}

type ListTransactionsResult struct {
	Transactions []*dto.TransactionDTO
	Total        int
}

type ListTransactionsUseCase struct {
	techRepo   technician.Repository
	ledgerRepo ledger.Repository
	logger     logger.Interface
}

func NewListTransactionsUseCase(
	techRepo technician.Repository,
	ledgerRepo ledger.Repository,
	logger logger.Interface,
) *ListTransactionsUseCase {
	return &ListTransactionsUseCase{techRepo: techRepo, ledgerRepo: ledgerRepo, logger: logger}
}

func (uc *ListTransactionsUseCase) Execute(ctx context.Context, query ListTransactionsQuery) (*ListTransactionsResult, error) {
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

	txs, err := uc.ledgerRepo.FindByTechnicianID(ctx, tech.ID())
	if err != nil {
		uc.logger.Errorw("failed to load technician transactions", "technician_id", tech.ID(), "error", err)
		return nil, errors.NewPersistenceError("failed to load technician transactions", err)
	}

	return &ListTransactionsResult{
		Transactions: dto.ToTransactionDTOs(txs),
		Total:        len(txs),
	}, nil
}
