package mappers

import (
	"billu/internal/domain/customer"
	"billu/internal/infrastructure/persistence/models"
)

type CustomerMapper struct{}

func NewCustomerMapper() CustomerMapper {
	return CustomerMapper{}
}

func (CustomerMapper) ToDomain(model *models.CustomerModel) *customer.Customer {
	if model == nil {
		return nil
	}
	return customer.ReconstructCustomer(
		model.ID,
		model.OperatorID,
		model.Name,
		model.Phone,
		model.Email,
		model.Address,
		model.JoinedAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (CustomerMapper) ToModel(entity *customer.Customer) *models.CustomerModel {
	if entity == nil {
		return nil
	}
	return &models.CustomerModel{
		ID:         entity.ID(),
		OperatorID: entity.OperatorID(),
		Name:       entity.Name(),
		Phone:      entity.Phone(),
		Email:      entity.Email(),
		Address:    entity.Address(),
		JoinedAt:   entity.JoinedAt(),
		CreatedAt:  entity.CreatedAt(),
		UpdatedAt:  entity.UpdatedAt(),
	}
}

func (m CustomerMapper) ToDomains(customerModels []models.CustomerModel) []*customer.Customer {
	customers := make([]*customer.Customer, len(customerModels))
	for i := range customerModels {
		customers[i] = m.ToDomain(&customerModels[i])
	}
	return customers
}
