package models

import "time"

// TicketModel is the flat persistence shape of a ticket. Center and
// technician columns are nullable; which side is populated follows the
// category.
type TicketModel struct {
	ID            uint   `gorm:"primarykey"`
	TicketNumber  string `gorm:"not null;size:9;index:idx_tickets_number"`
	OperatorID    uint   `gorm:"not null;index:idx_tickets_operator"`
	CustomerID    uint   `gorm:"not null;index:idx_tickets_customer"`
	CustomerName  string `gorm:"not null;size:255"`
	CustomerPhone string `gorm:"not null;size:32"`
	ProductID     uint   `gorm:"not null"`
	ProductName   string `gorm:"not null;size:255"`
	SerialNumber  string `gorm:"size:100"`
	CompanyName   string `gorm:"size:255"`
	Brand         string `gorm:"size:100"`
	Model         string `gorm:"size:100"`
	Category      string `gorm:"not null;size:20;index:idx_tickets_category"`
	IssueType     string `gorm:"not null;size:100"`
	Description   string `gorm:"type:text"`
	Status        string `gorm:"not null;default:Pending;size:20;index:idx_tickets_status"`
	Priority      string `gorm:"not null;default:Medium;size:10"`

	ServiceCenterID   *uint   `gorm:"index:idx_tickets_service_center"`
	ServiceCenterName *string `gorm:"size:255"`
	CallID            *string `gorm:"size:100"`
	UniqueID          *string `gorm:"size:100"`

	TechnicianID     *uint    `gorm:"index:idx_tickets_technician"`
	TechnicianName   *string  `gorm:"size:255"`
	ServiceAmount    *float64 `gorm:"type:decimal(12,2)"`
	CommissionAmount *float64 `gorm:"type:decimal(12,2)"`
	AmountReceived   *float64 `gorm:"type:decimal(12,2)"`

	EndDate   *time.Time
	CreatedAt time.Time `gorm:"index:idx_tickets_created_at"`
	UpdatedAt time.Time
}

func (TicketModel) TableName() string {
	return "tickets"
}
