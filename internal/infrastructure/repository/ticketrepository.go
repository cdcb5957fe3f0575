package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"billu/internal/domain/ticket"
	"billu/internal/infrastructure/persistence/mappers"
	"billu/internal/infrastructure/persistence/models"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	t.SetID(model.ID)
	return nil
}

func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	// Save rather than Updates: nullable center/technician columns must be
	// written even when nil after a reassignment.
	result := r.db.WithContext(ctx).Save(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}
	return nil
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("ticket not found")
	}
	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindByTicketNumber(ctx context.Context, number string) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).
		Where("ticket_number = ?", number).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) FindByOperatorID(ctx context.Context, operatorID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel

	if err := r.db.WithContext(ctx).
		Where("operator_id = ?", operatorID).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToDomains(ticketModels)
}

func (r *TicketRepository) FindAll(ctx context.Context) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel

	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	return r.mapper.ToDomains(ticketModels)
}

func (r *TicketRepository) FindByTechnicianID(ctx context.Context, technicianID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel

	if err := r.db.WithContext(ctx).
		Where("technician_id = ?", technicianID).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list technician tickets: %w", err)
	}

	return r.mapper.ToDomains(ticketModels)
}

func (r *TicketRepository) FindByServiceCenterID(ctx context.Context, serviceCenterID uint) ([]*ticket.Ticket, error) {
	var ticketModels []models.TicketModel

	if err := r.db.WithContext(ctx).
		Where("service_center_id = ?", serviceCenterID).
		Order("created_at DESC").
		Find(&ticketModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list service center tickets: %w", err)
	}

	return r.mapper.ToDomains(ticketModels)
}

func (r *TicketRepository) CountByOperatorID(ctx context.Context, operatorID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.TicketModel{}).
		Where("operator_id = ?", operatorID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count tickets: %w", err)
	}
	return count, nil
}
