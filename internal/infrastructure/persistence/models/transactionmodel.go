package models

import "time"

// TransactionModel rows are append-only; there is no update path.
type TransactionModel struct {
	ID           uint    `gorm:"primarykey"`
	OperatorID   uint    `gorm:"not null;index:idx_transactions_operator"`
	TechnicianID uint    `gorm:"not null;index:idx_transactions_technician"`
	Type         string  `gorm:"not null;size:10"`
	Amount       float64 `gorm:"not null;type:decimal(12,2)"`
	Note         string  `gorm:"size:500"`
	RecordedAt   time.Time
	CreatedAt    time.Time
}

func (TransactionModel) TableName() string {
	return "technician_transactions"
}
