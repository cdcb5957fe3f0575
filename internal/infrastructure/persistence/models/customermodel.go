package models

import "time"

type CustomerModel struct {
	ID         uint   `gorm:"primarykey"`
	OperatorID uint   `gorm:"not null;index:idx_customers_operator"`
	Name       string `gorm:"not null;size:255;index:idx_customers_name"`
	Phone      string `gorm:"not null;size:32;index:idx_customers_phone"`
	Email      string `gorm:"size:255"`
	Address    string `gorm:"size:500"`
	JoinedAt   time.Time
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

func (CustomerModel) TableName() string {
	return "customers"
}
