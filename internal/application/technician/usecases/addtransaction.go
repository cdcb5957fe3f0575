package usecases

import (
	"context"
	"fmt"

	"billu/internal/domain/ledger"
	"billu/internal/domain/technician"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type AddTransactionCommand struct {
	TechnicianID uint
	OperatorID   uint
	Type         string
	// Amount arrives as a string from the form; it must parse to a positive
	// number, unlike ticket amounts which default to zero.
	Amount string
	Note   string
}

type AddTransactionResult struct {
	TransactionID uint
}

type AddTransactionUseCase struct {
	techRepo   technician.Repository
	ledgerRepo ledger.Repository
	logger     logger.Interface
}

func NewAddTransactionUseCase(
	techRepo technician.Repository,
	ledgerRepo ledger.Repository,
	logger logger.Interface,
) *AddTransactionUseCase {
	return &AddTransactionUseCase{techRepo: techRepo, ledgerRepo: ledgerRepo, logger: logger}
}

func (uc *AddTransactionUseCase) Execute(ctx context.Context, cmd AddTransactionCommand) (*AddTransactionResult, error) {
	uc.logger.Infow("executing add transaction use case", "technician_id", cmd.TechnicianID, "type", cmd.Type)

	if cmd.TechnicianID == 0 {
		return nil, errors.NewValidationError("technician ID is required")
	}

	txType, err := ledger.NewTransactionType(cmd.Type)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	amount := utils.ParseAmount(cmd.Amount)
	if amount <= 0 {
		return nil, errors.NewValidationError("transaction amount must be a positive number")
	}

	tech, err := uc.techRepo.FindByID(ctx, cmd.TechnicianID)
	if err != nil {
		return nil, errors.NewNotFoundError(fmt.Sprintf("technician %d not found", cmd.TechnicianID))
	}
	if cmd.OperatorID != 0 && tech.OperatorID() != cmd.OperatorID {
		return nil, errors.NewForbiddenError("technician belongs to another operator")
	}

	operatorID := cmd.OperatorID
	if operatorID == 0 {
		operatorID = tech.OperatorID()
	}

	tx, err := ledger.NewTransaction(operatorID, tech.ID(), txType, amount, utils.SanitizeText(cmd.Note))
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ledgerRepo.Create(ctx, tx); err != nil {
		uc.logger.Errorw("failed to save transaction", "technician_id", cmd.TechnicianID, "error", err)
		return nil, errors.NewPersistenceError("failed to save transaction", err)
	}

	uc.logger.Infow("transaction recorded", "transaction_id", tx.ID(), "technician_id", tech.ID(), "type", txType, "amount", amount)
	return &AddTransactionResult{TransactionID: tx.ID()}, nil
}
