package mappers

import (
	"billu/internal/domain/servicecenter"
	"billu/internal/infrastructure/persistence/models"
)

type ServiceCenterMapper struct{}

func NewServiceCenterMapper() ServiceCenterMapper {
	return ServiceCenterMapper{}
}

func (ServiceCenterMapper) ToDomain(model *models.ServiceCenterModel) *servicecenter.ServiceCenter {
	if model == nil {
		return nil
	}
	return servicecenter.ReconstructServiceCenter(
		model.ID,
		model.OperatorID,
		model.Name,
		model.CompanyName,
		model.Address,
		model.ContactNumber,
		model.Category,
		model.AutoCreated,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (ServiceCenterMapper) ToModel(entity *servicecenter.ServiceCenter) *models.ServiceCenterModel {
	if entity == nil {
		return nil
	}
	return &models.ServiceCenterModel{
		ID:            entity.ID(),
		OperatorID:    entity.OperatorID(),
		Name:          entity.Name(),
		CompanyName:   entity.CompanyName(),
		Address:       entity.Address(),
		ContactNumber: entity.ContactNumber(),
		Category:      entity.Category(),
		AutoCreated:   entity.AutoCreated(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}
}

func (m ServiceCenterMapper) ToDomains(centerModels []models.ServiceCenterModel) []*servicecenter.ServiceCenter {
	centers := make([]*servicecenter.ServiceCenter, len(centerModels))
	for i := range centerModels {
		centers[i] = m.ToDomain(&centerModels[i])
	}
	return centers
}
