package ledger

import (
	"fmt"
	"time"
)

// TransactionType is the direction of a manual wallet adjustment.
type TransactionType string

const (
	TransactionCredit TransactionType = "credit"
	TransactionDebit  TransactionType = "debit"
)

func (t TransactionType) IsValid() bool {
	return t == TransactionCredit || t == TransactionDebit
}

func (t TransactionType) String() string {
	return string(t)
}

func NewTransactionType(s string) (TransactionType, error) {
	t := TransactionType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid transaction type: %s", s)
	}
	return t, nil
}

// Transaction is an append-only manual adjustment to a technician's wallet.
// There is no update or reversal; mistakes are corrected with an opposite
// entry.
type Transaction struct {
	id           uint
	technicianID uint
	operatorID   uint
	txType       TransactionType
	amount       float64
	note         string
	recordedAt   time.Time
}

func NewTransaction(operatorID, technicianID uint, txType TransactionType, amount float64, note string) (*Transaction, error) {
	if technicianID == 0 {
		return nil, fmt.Errorf("technician is required")
	}
	if operatorID == 0 {
		return nil, fmt.Errorf("operator ID is required")
	}
	if !txType.IsValid() {
		return nil, fmt.Errorf("invalid transaction type: %s", txType)
	}
	if amount <= 0 {
		return nil, fmt.Errorf("transaction amount must be positive")
	}
	return &Transaction{
		technicianID: technicianID,
		operatorID:   operatorID,
		txType:       txType,
		amount:       amount,
		note:         note,
		recordedAt:   time.Now().UTC(),
	}, nil
}

func ReconstructTransaction(id, operatorID, technicianID uint, txType TransactionType, amount float64, note string, recordedAt time.Time) *Transaction {
	return &Transaction{
		id:           id,
		technicianID: technicianID,
		operatorID:   operatorID,
		txType:       txType,
		amount:       amount,
		note:         note,
		recordedAt:   recordedAt,
	}
}

func (t *Transaction) ID() uint                  { return t.id }
func (t *Transaction) TechnicianID() uint        { return t.technicianID }
func (t *Transaction) OperatorID() uint          { return t.operatorID }
func (t *Transaction) Type() TransactionType     { return t.txType }
func (t *Transaction) Amount() float64           { return t.amount }
func (t *Transaction) Note() string              { return t.note }
func (t *Transaction) RecordedAt() time.Time     { return t.recordedAt }

func (t *Transaction) SetID(id uint) {
	t.id = id
}

// SignedAmount is positive for credits and negative for debits.
func (t *Transaction) SignedAmount() float64 {
	if t.txType == TransactionDebit {
		return -t.amount
	}
	return t.amount
}
