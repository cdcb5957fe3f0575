package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"billu/internal/domain/servicecenter"
	"billu/internal/infrastructure/persistence/mappers"
	"billu/internal/infrastructure/persistence/models"
)

type ServiceCenterRepository struct {
	db     *gorm.DB
	mapper mappers.ServiceCenterMapper
}

func NewServiceCenterRepository(db *gorm.DB) *ServiceCenterRepository {
	return &ServiceCenterRepository{
		db:     db,
		mapper: mappers.NewServiceCenterMapper(),
	}
}

func (r *ServiceCenterRepository) Create(ctx context.Context, s *servicecenter.ServiceCenter) error {
	model := r.mapper.ToModel(s)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save service center: %w", err)
	}

	s.SetID(model.ID)
	return nil
}

func (r *ServiceCenterRepository) Update(ctx context.Context, s *servicecenter.ServiceCenter) error {
	model := r.mapper.ToModel(s)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update service center: %w", err)
	}
	return nil
}

func (r *ServiceCenterRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ServiceCenterModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete service center: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("service center not found")
	}
	return nil
}

func (r *ServiceCenterRepository) FindByID(ctx context.Context, id uint) (*servicecenter.ServiceCenter, error) {
	var model models.ServiceCenterModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("service center not found")
		}
		return nil, fmt.Errorf("failed to find service center: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// FindByName matches the center name exactly, case sensitive, within one
// operator. The default utf8mb4 collation compares case-insensitively, so
// candidates are re-checked byte-exact here.
func (r *ServiceCenterRepository) FindByName(ctx context.Context, operatorID uint, name string) (*servicecenter.ServiceCenter, error) {
	var centerModels []models.ServiceCenterModel

	if err := r.db.WithContext(ctx).
		Where("operator_id = ? AND name = ?", operatorID, name).
		Find(&centerModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find service center: %w", err)
	}

	for i := range centerModels {
		if centerModels[i].Name == name {
			return r.mapper.ToDomain(&centerModels[i]), nil
		}
	}
	return nil, fmt.Errorf("service center not found")
}

func (r *ServiceCenterRepository) FindByOperatorID(ctx context.Context, operatorID uint) ([]*servicecenter.ServiceCenter, error) {
	var centerModels []models.ServiceCenterModel

	query := r.db.WithContext(ctx).Order("name ASC")
	if operatorID != 0 {
		query = query.Where("operator_id = ?", operatorID)
	}
	if err := query.Find(&centerModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list service centers: %w", err)
	}

	return r.mapper.ToDomains(centerModels), nil
}

func (r *ServiceCenterRepository) FindAll(ctx context.Context) ([]*servicecenter.ServiceCenter, error) {
	return r.FindByOperatorID(ctx, 0)
}
