package models

import "time"

type TechnicianModel struct {
	ID         uint   `gorm:"primarykey"`
	OperatorID uint   `gorm:"not null;index:idx_technicians_operator"`
	Name       string `gorm:"not null;size:255"`
	Email      string `gorm:"size:255"`
	Phone      string `gorm:"size:32"`
	Address    string `gorm:"size:500"`
	Skills     string `gorm:"size:500"`
	// Portal credentials are stored as typed, matching the legacy roster
	// import. Empty PortalUser means no portal access.
	PortalUser string `gorm:"size:100;index:idx_technicians_portal_user"`
	PortalPass string `gorm:"size:100"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (TechnicianModel) TableName() string {
	return "technicians"
}
