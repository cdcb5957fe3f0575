package mappers

import (
	"billu/internal/domain/user"
	"billu/internal/infrastructure/persistence/models"
	"billu/internal/shared/authorization"
)

type UserMapper struct{}

func NewUserMapper() UserMapper {
	return UserMapper{}
}

func (UserMapper) ToDomain(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return user.ReconstructUser(
		model.ID,
		model.Name,
		model.Email,
		model.PasswordHash,
		authorization.UserRole(model.Role),
		model.Active,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

func (UserMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		Name:         entity.Name(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		Role:         string(entity.Role()),
		Active:       entity.IsActive(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}
