package dto

import (
	"time"

	"billu/internal/domain/customer"
)

type CustomerDTO struct {
	ID         uint      `json:"id"`
	OperatorID uint      `json:"operator_id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone"`
	Email      string    `json:"email,omitempty"`
	Address    string    `json:"address,omitempty"`
	JoinedAt   time.Time `json:"joined_at"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func ToCustomerDTO(c *customer.Customer) *CustomerDTO {
	if c == nil {
		return nil
	}
	return &CustomerDTO{
		ID:         c.ID(),
		OperatorID: c.OperatorID(),
		Name:       c.Name(),
		Phone:      c.Phone(),
		Email:      c.Email(),
		Address:    c.Address(),
		JoinedAt:   c.JoinedAt(),
		CreatedAt:  c.CreatedAt(),
		UpdatedAt:  c.UpdatedAt(),
	}
}

func ToCustomerDTOs(customers []*customer.Customer) []*CustomerDTO {
	out := make([]*CustomerDTO, 0, len(customers))
	for _, c := range customers {
		out = append(out, ToCustomerDTO(c))
	}
	return out
}
