package dto

import (
	"time"

	"billu/internal/domain/servicecenter"
)

type ServiceCenterDTO struct {
	ID            uint      `json:"id"`
	OperatorID    uint      `json:"operator_id"`
	Name          string    `json:"name"`
	CompanyName   string    `json:"company_name"`
	Address       string    `json:"address,omitempty"`
	ContactNumber string    `json:"contact_number,omitempty"`
	Category      string    `json:"category,omitempty"`
	AutoCreated   bool      `json:"auto_created"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

func ToServiceCenterDTO(sc *servicecenter.ServiceCenter) *ServiceCenterDTO {
	if sc == nil {
		return nil
	}
	return &ServiceCenterDTO{
		ID:            sc.ID(),
		OperatorID:    sc.OperatorID(),
		Name:          sc.Name(),
		CompanyName:   sc.CompanyName(),
		Address:       sc.Address(),
		ContactNumber: sc.ContactNumber(),
		Category:      sc.Category(),
		AutoCreated:   sc.AutoCreated(),
		CreatedAt:     sc.CreatedAt(),
		UpdatedAt:     sc.UpdatedAt(),
	}
}

func ToServiceCenterDTOs(centers []*servicecenter.ServiceCenter) []*ServiceCenterDTO {
	out := make([]*ServiceCenterDTO, 0, len(centers))
	for _, sc := range centers {
		out = append(out, ToServiceCenterDTO(sc))
	}
	return out
}
