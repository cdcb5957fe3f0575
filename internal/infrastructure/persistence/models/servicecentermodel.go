package models

import "time"

type ServiceCenterModel struct {
	ID            uint   `gorm:"primarykey"`
	OperatorID    uint   `gorm:"not null;index:idx_service_centers_operator;uniqueIndex:idx_service_centers_operator_name"`
	Name          string `gorm:"not null;size:255;uniqueIndex:idx_service_centers_operator_name"`
	CompanyName   string `gorm:"not null;size:255;index:idx_service_centers_company"`
	Address       string `gorm:"size:500"`
	ContactNumber string `gorm:"size:32"`
	Category      string `gorm:"size:20"`
	AutoCreated   bool   `gorm:"not null;default:false"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ServiceCenterModel) TableName() string {
	return "service_centers"
}
