package product

import (
	"fmt"
	"strings"
	"time"
)

// Product is an appliance registered against a customer. Tickets snapshot
// the product fields at creation; later edits here do not touch tickets.
type Product struct {
	id            uint
	operatorID    uint
	customerID    uint
	name          string
	companyName   string
	brand         string
	model         string
	serialNumber  string
	purchaseDate  *time.Time
	warrantyUntil *time.Time
	createdAt     time.Time
	updatedAt     time.Time
}

type CreateProductParams struct {
	OperatorID    uint
	CustomerID    uint
	Name          string
	CompanyName   string
	Brand         string
	Model         string
	SerialNumber  string
	PurchaseDate  *time.Time
	WarrantyUntil *time.Time
}

func NewProduct(p CreateProductParams) (*Product, error) {
	name := strings.TrimSpace(p.Name)
	if name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if p.CustomerID == 0 {
		return nil, fmt.Errorf("customer is required")
	}
	if p.OperatorID == 0 {
		return nil, fmt.Errorf("operator ID is required")
	}
	if p.PurchaseDate != nil && p.WarrantyUntil != nil && p.WarrantyUntil.Before(*p.PurchaseDate) {
		return nil, fmt.Errorf("warranty cannot end before the purchase date")
	}
	now := time.Now().UTC()
	return &Product{
		operatorID:    p.OperatorID,
		customerID:    p.CustomerID,
		name:          name,
		companyName:   strings.TrimSpace(p.CompanyName),
		brand:         strings.TrimSpace(p.Brand),
		model:         strings.TrimSpace(p.Model),
		serialNumber:  strings.TrimSpace(p.SerialNumber),
		purchaseDate:  p.PurchaseDate,
		warrantyUntil: p.WarrantyUntil,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

type ReconstructProductParams struct {
	ID            uint
	OperatorID    uint
	CustomerID    uint
	Name          string
	CompanyName   string
	Brand         string
	Model         string
	SerialNumber  string
	PurchaseDate  *time.Time
	WarrantyUntil *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func ReconstructProduct(p ReconstructProductParams) *Product {
	return &Product{
		id:            p.ID,
		operatorID:    p.OperatorID,
		customerID:    p.CustomerID,
		name:          p.Name,
		companyName:   p.CompanyName,
		brand:         p.Brand,
		model:         p.Model,
		serialNumber:  p.SerialNumber,
		purchaseDate:  p.PurchaseDate,
		warrantyUntil: p.WarrantyUntil,
		createdAt:     p.CreatedAt,
		updatedAt:     p.UpdatedAt,
	}
}

func (p *Product) ID() uint                  { return p.id }
func (p *Product) OperatorID() uint          { return p.operatorID }
func (p *Product) CustomerID() uint          { return p.customerID }
func (p *Product) Name() string              { return p.name }
func (p *Product) CompanyName() string       { return p.companyName }
func (p *Product) Brand() string             { return p.brand }
func (p *Product) Model() string             { return p.model }
func (p *Product) SerialNumber() string      { return p.serialNumber }
func (p *Product) PurchaseDate() *time.Time  { return p.purchaseDate }
func (p *Product) WarrantyUntil() *time.Time { return p.warrantyUntil }
func (p *Product) CreatedAt() time.Time      { return p.createdAt }
func (p *Product) UpdatedAt() time.Time      { return p.updatedAt }

func (p *Product) SetID(id uint) {
	p.id = id
}

// UnderWarrantyAt reports whether the product's warranty covers the instant.
func (p *Product) UnderWarrantyAt(at time.Time) bool {
	return p.warrantyUntil != nil && !at.After(*p.warrantyUntil)
}

type UpdateProductParams struct {
	Name          string
	CompanyName   string
	Brand         string
	Model         string
	SerialNumber  string
	PurchaseDate  *time.Time
	WarrantyUntil *time.Time
}

func (p *Product) UpdateDetails(u UpdateProductParams) error {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return fmt.Errorf("product name is required")
	}
	if u.PurchaseDate != nil && u.WarrantyUntil != nil && u.WarrantyUntil.Before(*u.PurchaseDate) {
		return fmt.Errorf("warranty cannot end before the purchase date")
	}
	p.name = name
	p.companyName = strings.TrimSpace(u.CompanyName)
	p.brand = strings.TrimSpace(u.Brand)
	p.model = strings.TrimSpace(u.Model)
	p.serialNumber = strings.TrimSpace(u.SerialNumber)
	p.purchaseDate = u.PurchaseDate
	p.warrantyUntil = u.WarrantyUntil
	p.updatedAt = time.Now().UTC()
	return nil
}
