package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"billu/internal/domain/technician"
	"billu/internal/infrastructure/persistence/mappers"
	"billu/internal/infrastructure/persistence/models"
)

type TechnicianRepository struct {
	db     *gorm.DB
	mapper mappers.TechnicianMapper
}

func NewTechnicianRepository(db *gorm.DB) *TechnicianRepository {
	return &TechnicianRepository{
		db:     db,
		mapper: mappers.NewTechnicianMapper(),
	}
}

func (r *TechnicianRepository) Create(ctx context.Context, t *technician.Technician) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save technician: %w", err)
	}

	t.SetID(model.ID)
	return nil
}

func (r *TechnicianRepository) Update(ctx context.Context, t *technician.Technician) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update technician: %w", err)
	}
	return nil
}

func (r *TechnicianRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TechnicianModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete technician: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("technician not found")
	}
	return nil
}

func (r *TechnicianRepository) FindByID(ctx context.Context, id uint) (*technician.Technician, error) {
	var model models.TechnicianModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("technician not found")
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// FindByPortalUser resolves portal logins. Usernames are global, not scoped
// to an operator, so the lookup crosses tenants.
func (r *TechnicianRepository) FindByPortalUser(ctx context.Context, portalUser string) (*technician.Technician, error) {
	var model models.TechnicianModel

	if err := r.db.WithContext(ctx).
		Where("portal_user = ? AND portal_user <> ''", portalUser).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("technician not found")
		}
		return nil, fmt.Errorf("failed to find technician: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *TechnicianRepository) FindByOperatorID(ctx context.Context, operatorID uint) ([]*technician.Technician, error) {
	var technicianModels []models.TechnicianModel

	query := r.db.WithContext(ctx).Order("name ASC")
	if operatorID != 0 {
		query = query.Where("operator_id = ?", operatorID)
	}
	if err := query.Find(&technicianModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list technicians: %w", err)
	}

	return r.mapper.ToDomains(technicianModels), nil
}

func (r *TechnicianRepository) FindAll(ctx context.Context) ([]*technician.Technician, error) {
	return r.FindByOperatorID(ctx, 0)
}
