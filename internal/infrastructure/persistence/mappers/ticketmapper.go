package mappers

import (
	"fmt"

	"billu/internal/domain/ticket"
	"billu/internal/domain/ticket/valueobjects"
	"billu/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between domain entities and persistence models.
type TicketMapper interface {
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ToModel(entity *ticket.Ticket) *models.TicketModel
	ToDomains(models []models.TicketModel) ([]*ticket.Ticket, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

func (m *ticketMapper) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	if model == nil {
		return nil, nil
	}

	category, err := valueobjects.NewCategory(model.Category)
	if err != nil {
		return nil, fmt.Errorf("invalid category on ticket %d: %w", model.ID, err)
	}
	status, err := valueobjects.NewStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status on ticket %d: %w", model.ID, err)
	}
	priority, err := valueobjects.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority on ticket %d: %w", model.ID, err)
	}

	params := ticket.ReconstructTicketParams{
		ID:            model.ID,
		TicketNumber:  model.TicketNumber,
		OperatorID:    model.OperatorID,
		CustomerID:    model.CustomerID,
		CustomerName:  model.CustomerName,
		CustomerPhone: model.CustomerPhone,
		ProductID:     model.ProductID,
		ProductName:   model.ProductName,
		SerialNumber:  model.SerialNumber,
		CompanyName:   model.CompanyName,
		Brand:         model.Brand,
		Model:         model.Model,
		Category:      category,
		IssueType:     model.IssueType,
		Description:   model.Description,
		Status:        status,
		Priority:      priority,
		EndDate:       model.EndDate,
		CreatedAt:     model.CreatedAt,
		UpdatedAt:     model.UpdatedAt,
	}

	if category.UsesServiceCenter() {
		var centerID uint
		if model.ServiceCenterID != nil {
			centerID = *model.ServiceCenterID
		}
		params.CenterDetails = ticket.ReconstructCenterDetails(
			centerID,
			deref(model.ServiceCenterName),
			deref(model.CallID),
			deref(model.UniqueID),
		)
	} else {
		var techID uint
		if model.TechnicianID != nil {
			techID = *model.TechnicianID
		}
		params.TechDetails = ticket.ReconstructTechDetails(
			techID,
			deref(model.TechnicianName),
			derefFloat(model.ServiceAmount),
			derefFloat(model.CommissionAmount),
			derefFloat(model.AmountReceived),
		)
	}

	return ticket.ReconstructTicket(params), nil
}

func (m *ticketMapper) ToModel(entity *ticket.Ticket) *models.TicketModel {
	if entity == nil {
		return nil
	}

	model := &models.TicketModel{
		ID:            entity.ID(),
		TicketNumber:  entity.TicketNumber(),
		OperatorID:    entity.OperatorID(),
		CustomerID:    entity.CustomerID(),
		CustomerName:  entity.CustomerName(),
		CustomerPhone: entity.CustomerPhone(),
		ProductID:     entity.ProductID(),
		ProductName:   entity.ProductName(),
		SerialNumber:  entity.SerialNumber(),
		CompanyName:   entity.CompanyName(),
		Brand:         entity.Brand(),
		Model:         entity.Model(),
		Category:      entity.Category().String(),
		IssueType:     string(entity.IssueType()),
		Description:   entity.Description(),
		Status:        entity.Status().String(),
		Priority:      entity.Priority().String(),
		EndDate:       entity.EndDate(),
		CreatedAt:     entity.CreatedAt(),
		UpdatedAt:     entity.UpdatedAt(),
	}

	if cd := entity.CenterDetails(); cd != nil {
		centerID := cd.ServiceCenterID()
		centerName := cd.ServiceCenterName()
		callID := cd.CallID()
		uniqueID := cd.UniqueID()
		model.ServiceCenterID = &centerID
		model.ServiceCenterName = &centerName
		model.CallID = &callID
		model.UniqueID = &uniqueID
	}

	if td := entity.TechDetails(); td != nil {
		techID := td.TechnicianID()
		techName := td.TechnicianName()
		serviceAmount := td.ServiceAmount()
		commissionAmount := td.CommissionAmount()
		amountReceived := td.AmountReceived()
		model.TechnicianID = &techID
		model.TechnicianName = &techName
		model.ServiceAmount = &serviceAmount
		model.CommissionAmount = &commissionAmount
		model.AmountReceived = &amountReceived
	}

	return model
}

func (m *ticketMapper) ToDomains(ticketModels []models.TicketModel) ([]*ticket.Ticket, error) {
	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i := range ticketModels {
		t, err := m.ToDomain(&ticketModels[i])
		if err != nil {
			return nil, err
		}
		tickets[i] = t
	}
	return tickets, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefFloat(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}
