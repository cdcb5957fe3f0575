package mappers

import (
	"billu/internal/domain/technician"
	"billu/internal/infrastructure/persistence/models"
)

type TechnicianMapper struct{}

func NewTechnicianMapper() TechnicianMapper {
	return TechnicianMapper{}
}

func (TechnicianMapper) ToDomain(model *models.TechnicianModel) *technician.Technician {
	if model == nil {
		return nil
	}
	return technician.ReconstructTechnician(technician.ReconstructTechnicianParams{
		ID:         model.ID,
		OperatorID: model.OperatorID,
		Name:       model.Name,
		Email:      model.Email,
		Phone:      model.Phone,
		Address:    model.Address,
		Skills:     model.Skills,
		PortalUser: model.PortalUser,
		PortalPass: model.PortalPass,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	})
}

func (TechnicianMapper) ToModel(entity *technician.Technician) *models.TechnicianModel {
	if entity == nil {
		return nil
	}
	return &models.TechnicianModel{
		ID:         entity.ID(),
		OperatorID: entity.OperatorID(),
		Name:       entity.Name(),
		Email:      entity.Email(),
		Phone:      entity.Phone(),
		Address:    entity.Address(),
		Skills:     entity.Skills(),
		PortalUser: entity.PortalUser(),
		PortalPass: entity.PortalPass(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m TechnicianMapper) ToDomains(technicianModels []models.TechnicianModel) []*technician.Technician {
	technicians := make([]*technician.Technician, len(technicianModels))
	for i := range technicianModels {
		technicians[i] = m.ToDomain(&technicianModels[i])
	}
	return technicians
}
