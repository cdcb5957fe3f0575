package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"billu/internal/domain/customer"
	"billu/internal/infrastructure/persistence/mappers"
	"billu/internal/infrastructure/persistence/models"
)

type CustomerRepository struct {
	db     *gorm.DB
	mapper mappers.CustomerMapper
}

func NewCustomerRepository(db *gorm.DB) *CustomerRepository {
	return &CustomerRepository{
		db:     db,
		mapper: mappers.NewCustomerMapper(),
	}
}

func (r *CustomerRepository) Create(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save customer: %w", err)
	}

	c.SetID(model.ID)
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	model := r.mapper.ToModel(c)

	if err := r.db.WithContext(ctx).Save(model).Error; err != nil {
		return fmt.Errorf("failed to update customer: %w", err)
	}
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CustomerModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete customer: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("customer not found")
	}
	return nil
}

func (r *CustomerRepository) FindByID(ctx context.Context, id uint) (*customer.Customer, error) {
	var model models.CustomerModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("customer not found")
		}
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

func (r *CustomerRepository) FindByOperatorID(ctx context.Context, operatorID uint) ([]*customer.Customer, error) {
	var customerModels []models.CustomerModel

	query := r.db.WithContext(ctx).Order("name ASC")
	if operatorID != 0 {
		query = query.Where("operator_id = ?", operatorID)
	}
	if err := query.Find(&customerModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list customers: %w", err)
	}

	return r.mapper.ToDomains(customerModels), nil
}

func (r *CustomerRepository) Search(ctx context.Context, operatorID uint, q string) ([]*customer.Customer, error) {
	var customerModels []models.CustomerModel

	pattern := "%" + q + "%"
	query := r.db.WithContext(ctx).
		Where("name LIKE ? OR phone LIKE ?", pattern, pattern).
		Order("name ASC")
	if operatorID != 0 {
		query = query.Where("operator_id = ?", operatorID)
	}
	if err := query.Find(&customerModels).Error; err != nil {
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	return r.mapper.ToDomains(customerModels), nil
}
