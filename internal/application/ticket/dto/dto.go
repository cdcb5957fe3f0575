package dto

import (
	"time"

	"billu/internal/domain/ticket"
)

type TicketDTO struct {
	ID            uint       `json:"id"`
	TicketNumber  string     `json:"ticket_number"`
	OperatorID    uint       `json:"operator_id"`
	CustomerID    uint       `json:"customer_id"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone"`
	ProductID     uint       `json:"product_id"`
	ProductName   string     `json:"product_name"`
	SerialNumber  string     `json:"serial_number,omitempty"`
	CompanyName   string     `json:"company_name,omitempty"`
	Brand         string     `json:"brand,omitempty"`
	Model         string     `json:"model,omitempty"`
	Category      string     `json:"category"`
	IssueType     string     `json:"issue_type"`
	Description   string     `json:"description,omitempty"`
	Status        string     `json:"status"`
	Priority      string     `json:"priority"`
	EndDate       *time.Time `json:"end_date,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Demo/Service only.
	ServiceCenterID   uint   `json:"service_center_id,omitempty"`
	ServiceCenterName string `json:"service_center_name,omitempty"`
	CallID            string `json:"call_id,omitempty"`
	UniqueID          string `json:"unique_id,omitempty"`

	// Third Party/In Store only.
	TechnicianID     uint     `json:"technician_id,omitempty"`
	TechnicianName   string   `json:"technician_name,omitempty"`
	ServiceAmount    *float64 `json:"service_amount,omitempty"`
	CommissionAmount *float64 `json:"commission_amount,omitempty"`
	AmountReceived   *float64 `json:"amount_received,omitempty"`
}

func ToTicketDTO(t *ticket.Ticket) *TicketDTO {
	if t == nil {
		return nil
	}

	d := &TicketDTO{
		ID:            t.ID(),
		TicketNumber:  t.TicketNumber(),
		OperatorID:    t.OperatorID(),
		CustomerID:    t.CustomerID(),
		CustomerName:  t.CustomerName(),
		CustomerPhone: t.CustomerPhone(),
		ProductID:     t.ProductID(),
		ProductName:   t.ProductName(),
		SerialNumber:  t.SerialNumber(),
		CompanyName:   t.CompanyName(),
		Brand:         t.Brand(),
		Model:         t.Model(),
		Category:      t.Category().String(),
		IssueType:     t.IssueType().String(),
		Description:   t.Description(),
		Status:        t.Status().String(),
		Priority:      t.Priority().String(),
		EndDate:       t.EndDate(),
		CreatedAt:     t.CreatedAt(),
		UpdatedAt:     t.UpdatedAt(),
	}

	if cd := t.CenterDetails(); cd != nil {
		d.ServiceCenterID = cd.ServiceCenterID()
		d.ServiceCenterName = cd.ServiceCenterName()
		d.CallID = cd.CallID()
		d.UniqueID = cd.UniqueID()
	}
	if td := t.TechDetails(); td != nil {
		sa, ca, ar := td.ServiceAmount(), td.CommissionAmount(), td.AmountReceived()
		d.TechnicianID = td.TechnicianID()
		d.TechnicianName = td.TechnicianName()
		d.ServiceAmount = &sa
		d.CommissionAmount = &ca
		d.AmountReceived = &ar
	}
	return d
}

func ToTicketDTOs(tickets []*ticket.Ticket) []*TicketDTO {
	out := make([]*TicketDTO, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, ToTicketDTO(t))
	}
	return out
}
