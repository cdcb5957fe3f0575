package mappers

import (
	"billu/internal/domain/ledger"
	"billu/internal/infrastructure/persistence/models"
)

type TransactionMapper struct{}

func NewTransactionMapper() TransactionMapper {
	return TransactionMapper{}
}

func (TransactionMapper) ToDomain(model *models.TransactionModel) *ledger.Transaction {
	if model == nil {
		return nil
	}
	return ledger.ReconstructTransaction(
		model.ID,
		model.OperatorID,
		model.TechnicianID,
		ledger.TransactionType(model.Type),
		model.Amount,
		model.Note,
		model.RecordedAt,
	)
}

func (TransactionMapper) ToModel(entity *ledger.Transaction) *models.TransactionModel {
	if entity == nil {
		return nil
	}
	return &models.TransactionModel{
		ID:           entity.ID(),
		OperatorID:   entity.OperatorID(),
		TechnicianID: entity.TechnicianID(),
		Type:         entity.Type().String(),
		Amount:       entity.Amount(),
		Note:         entity.Note(),
		RecordedAt:   entity.RecordedAt(),
	}
}

func (m TransactionMapper) ToDomains(transactionModels []models.TransactionModel) []*ledger.Transaction {
	transactions := make([]*ledger.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = m.ToDomain(&transactionModels[i])
	}
	return transactions
}
