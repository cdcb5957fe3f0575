package dto

import (
	"time"

	"billu/internal/domain/product"
)

type ProductDTO struct {
	ID            uint       `json:"id"`
	OperatorID    uint       `json:"operator_id"`
	CustomerID    uint       `json:"customer_id"`
	Name          string     `json:"name"`
	CompanyName   string     `json:"company_name,omitempty"`
	Brand         string     `json:"brand,omitempty"`
	Model         string     `json:"model,omitempty"`
	SerialNumber  string     `json:"serial_number,omitempty"`
	PurchaseDate  *time.Time `json:"purchase_date,omitempty"`
	WarrantyUntil *time.Time `json:"warranty_until,omitempty"`
	UnderWarranty bool       `json:"under_warranty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func ToProductDTO(p *product.Product) *ProductDTO {
	if p == nil {
		return nil
	}
	return &ProductDTO{
		ID:            p.ID(),
		OperatorID:    p.OperatorID(),
		CustomerID:    p.CustomerID(),
		Name:          p.Name(),
		CompanyName:   p.CompanyName(),
		Brand:         p.Brand(),
		Model:         p.Model(),
		SerialNumber:  p.SerialNumber(),
		PurchaseDate:  p.PurchaseDate(),
		WarrantyUntil: p.WarrantyUntil(),
		UnderWarranty: p.UnderWarrantyAt(time.Now().UTC()),
		CreatedAt:     p.CreatedAt(),
		UpdatedAt:     p.UpdatedAt(),
	}
}

func ToProductDTOs(products []*product.Product) []*ProductDTO {
	out := make([]*ProductDTO, 0, len(products))
	for _, p := range products {
		out = append(out, ToProductDTO(p))
	}
	return out
}
