package dto

import (
	"time"

	"billu/internal/domain/ledger"
	"billu/internal/domain/technician"
)

type TechnicianDTO struct {
	ID         uint      `json:"id"`
	OperatorID uint      `json:"operator_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Address    string    `json:"address,omitempty"`
	Skills     string    `json:"skills,omitempty"`
	PortalUser string    `json:"portal_user,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToTechnicianDTO(t *technician.Technician) *TechnicianDTO {
	if t == nil {
		return nil
	}
	return &TechnicianDTO{
		ID:         t.ID(),
		OperatorID: t.OperatorID(),
		Name:       t.Name(),
		Email:      t.Email(),
		Phone:      t.Phone(),
		Address:    t.Address(),
		Skills:     t.Skills(),
		PortalUser: t.PortalUser(),
		CreatedAt:  t.CreatedAt(),
		UpdatedAt:  t.UpdatedAt(),
	}
}

func ToTechnicianDTOs(techs []*technician.Technician) []*TechnicianDTO {
	out := make([]*TechnicianDTO, 0, len(techs))
	for _, t := range techs {
		out = append(out, ToTechnicianDTO(t))
	}
	return out
}

type TransactionDTO struct {
	ID           uint      `json:"id"`
	TechnicianID uint      `json:"technician_id"`
	Type         string    `json:"type"`
	Amount       float64   `json:"amount"`
	Note         string    `json:"note,omitempty"`
	RecordedAt   time.Time `json:"recorded_at"`
}

func ToTransactionDTO(tx *ledger.Transaction) *TransactionDTO {
	if tx == nil {
		return nil
	}
	return &TransactionDTO{
		ID:           tx.ID(),
		TechnicianID: tx.TechnicianID(),
		Type:         tx.Type().String(),
		Amount:       tx.Amount(),
		Note:         tx.Note(),
		RecordedAt:   tx.RecordedAt(),
	}
}

func ToTransactionDTOs(txs []*ledger.Transaction) []*TransactionDTO {
	out := make([]*TransactionDTO, 0, len(txs))
	for _, tx := range txs {
		out = append(out, ToTransactionDTO(tx))
	}
	return out
}
