package models

import "time"

type ProductModel struct {
	ID            uint   `gorm:"primarykey"`
	OperatorID    uint   `gorm:"not null;index:idx_products_operator"`
	CustomerID    uint   `gorm:"not null;index:idx_products_customer"`
	Name          string `gorm:"not null;size:255"`
	CompanyName   string `gorm:"size:255"`
	Brand         string `gorm:"size:100"`
	Model         string `gorm:"size:100"`
	SerialNumber  string `gorm:"size:100"`
	PurchaseDate  *time.Time
	WarrantyUntil *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (ProductModel) TableName() string {
	return "products"
}
