package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"billu/internal/domain/ledger"
	"billu/internal/infrastructure/persistence/mappers"
	"billu/internal/infrastructure/persistence/models"
)

// LedgerRepository is append-only; the interface exposes no update or
// delete and neither does the implementation.
type LedgerRepository struct {
	db     *gorm.DB
	mapper mappers.TransactionMapper
}

func NewLedgerRepository(db *gorm.DB) *LedgerRepository {
	return &LedgerRepository{
		db:     db,
		mapper: mappers.NewTransactionMapper(),
	}
}

func (r *LedgerRepository) Create(ctx context.Context, tx *ledger.Transaction) error {
	model := r.mapper.ToModel(tx)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save transaction: %w", err)
	}

	tx.SetID(model.ID)
	return nil
}

func (r *LedgerRepository) FindByTechnicianID(ctx context.Context, technicianID uint) ([]*ledger.Transaction, error) {
	var transactionModels []models.TransactionModel

	if err := r.db.WithContext(ctx).
		Where("technician_id = ?", technicianID).
		Order("recorded_at DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return r.mapper.ToDomains(transactionModels), nil
}

func (r *LedgerRepository) FindAll(ctx context.Context) ([]*ledger.Transaction, error) {
	var transactionModels []models.TransactionModel

	if err := r.db.WithContext(ctx).
		Order("recorded_at DESC").
		Find(&transactionModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	return r.mapper.ToDomains(transactionModels), nil
}
