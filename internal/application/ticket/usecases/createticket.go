package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"billu/internal/domain/customer"
	"billu/internal/domain/product"
	"billu/internal/domain/servicecenter"
	"billu/internal/domain/technician"
	"billu/internal/domain/ticket"
	vo "billu/internal/domain/ticket/valueobjects"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type CreateTicketCommand struct {
	OperatorID  uint
	CustomerID  uint
	ProductID   uint
	Category    string
	IssueType   string
	Description string
	Priority    string
	EndDate     *time.Time

	// Demo/Service: free-text center name typed or picked by the operator.
	ServiceCenterName string
	CallID            string
	UniqueID          string

	// Third Party/In Store: roster pick plus financials. Amounts arrive as
	// strings; blank or non-numeric values count as zero.
	TechnicianID     uint
	ServiceAmount    string
	CommissionAmount string
	AmountReceived   string
}

type CreateTicketResult struct {
	TicketID     uint
	TicketNumber string
	Status       string
	CreatedAt    time.Time
	// CenterAutoCreated reports that the typed center name was provisioned
	// as a new roster entry during this create.
	CenterAutoCreated bool
	// CenterProvisionFailed reports that provisioning was attempted and
	// failed; the ticket was still saved.
	CenterProvisionFailed bool
}

type CreateTicketUseCase struct {
	ticketRepo   ticket.Repository
	customerRepo customer.Repository
	productRepo  product.Repository
	centerRepo   servicecenter.Repository
	techRepo     technician.Repository
	logger       logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	customerRepo customer.Repository,
	productRepo product.Repository,
	centerRepo servicecenter.Repository,
	techRepo technician.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:   ticketRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		centerRepo:   centerRepo,
		techRepo:     techRepo,
		logger:       logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "operator_id", cmd.OperatorID, "customer_id", cmd.CustomerID, "category", cmd.Category)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	category := vo.Category(cmd.Category)
	priority := vo.Priority(cmd.Priority)
	if cmd.Priority == "" {
		priority = vo.PriorityMedium
	}

	cust, err := uc.customerRepo.FindByID(ctx, cmd.CustomerID)
	if err != nil {
		uc.logger.Errorw("failed to get customer", "customer_id", cmd.CustomerID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("customer %d not found", cmd.CustomerID))
	}
	if strings.TrimSpace(cust.Name()) == "" {
		return nil, errors.NewValidationError("customer name is required")
	}

	prod, err := uc.productRepo.FindByID(ctx, cmd.ProductID)
	if err != nil {
		uc.logger.Errorw("failed to get product", "product_id", cmd.ProductID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("product %d not found", cmd.ProductID))
	}

	params := ticket.CreateTicketParams{
		OperatorID:    cmd.OperatorID,
		CustomerID:    cust.ID(),
		CustomerName:  cust.Name(),
		CustomerPhone: cust.Phone(),
		ProductID:     prod.ID(),
		ProductName:   prod.Name(),
		SerialNumber:  prod.SerialNumber(),
		CompanyName:   prod.CompanyName(),
		Brand:         prod.Brand(),
		Model:         prod.Model(),
		Category:      category,
		IssueType:     cmd.IssueType,
		Description:   utils.SanitizeText(cmd.Description),
		Priority:      priority,
	}

	result := &CreateTicketResult{}

	if category.UsesServiceCenter() {
		centerID, autoCreated, provisionFailed := uc.resolveServiceCenter(ctx, cmd, cust, prod)
		params.ServiceCenterID = centerID
		params.ServiceCenterName = strings.TrimSpace(cmd.ServiceCenterName)
		params.CallID = cmd.CallID
		params.UniqueID = cmd.UniqueID
		result.CenterAutoCreated = autoCreated
		result.CenterProvisionFailed = provisionFailed
	} else {
		tech, err := uc.techRepo.FindByID(ctx, cmd.TechnicianID)
		if err != nil {
			uc.logger.Errorw("failed to get technician", "technician_id", cmd.TechnicianID, "error", err)
			return nil, errors.NewNotFoundError(fmt.Sprintf("technician %d not found", cmd.TechnicianID))
		}
		params.TechnicianID = tech.ID()
		params.TechnicianName = tech.Name()
		params.ServiceAmount = utils.ParseAmount(cmd.ServiceAmount)
		params.CommissionAmount = utils.ParseAmount(cmd.CommissionAmount)
		params.AmountReceived = utils.ParseAmount(cmd.AmountReceived)
	}

	number, err := ticket.GenerateTicketNumber()
	if err != nil {
		uc.logger.Errorw("failed to generate ticket number", "error", err)
		return nil, errors.NewInternalError("failed to generate ticket number")
	}
	params.TicketNumber = number

	newTicket, err := ticket.NewTicket(params)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if cmd.EndDate != nil {
		if err := newTicket.SetEndDate(*cmd.EndDate); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Create(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "ticket_number", newTicket.TicketNumber())

	result.TicketID = newTicket.ID()
	result.TicketNumber = newTicket.TicketNumber()
	result.Status = newTicket.Status().String()
	result.CreatedAt = newTicket.CreatedAt()
	return result, nil
}

// resolveServiceCenter matches the typed center name against the roster by
// exact name. Unknown names are provisioned on the spot; a provisioning
// failure is logged and reported in the result but never blocks the ticket.
func (uc *CreateTicketUseCase) resolveServiceCenter(ctx context.Context, cmd CreateTicketCommand, cust *customer.Customer, prod *product.Product) (centerID uint, autoCreated, provisionFailed bool) {
	name := strings.TrimSpace(cmd.ServiceCenterName)

	existing, err := uc.centerRepo.FindByName(ctx, cmd.OperatorID, name)
	if err == nil && existing != nil {
		return existing.ID(), false, false
	}

	company := prod.CompanyName()
	if company == "" {
		company = prod.Brand()
	}
	sc, err := servicecenter.AutoProvision(cmd.OperatorID, name, company, cust.Phone(), cmd.Category)
	if err != nil {
		uc.logger.Warnw("failed to build auto-provisioned service center", "name", name, "error", err)
		return 0, false, true
	}
	if err := uc.centerRepo.Create(ctx, sc); err != nil {
		uc.logger.Warnw("failed to save auto-provisioned service center, continuing with ticket", "name", name, "error", err)
		return 0, false, true
	}

	uc.logger.Infow("auto-provisioned service center from ticket", "service_center_id", sc.ID(), "name", name)
	return sc.ID(), true, false
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if cmd.OperatorID == 0 {
		return errors.NewValidationError("operator ID is required")
	}
	if cmd.CustomerID == 0 {
		return errors.NewValidationError("customer is required")
	}
	if cmd.ProductID == 0 {
		return errors.NewValidationError("product is required")
	}

	category := vo.Category(cmd.Category)
	if !category.IsValid() {
		return errors.NewValidationError("invalid category")
	}

	if err := vo.ValidateIssueType(category, strings.TrimSpace(cmd.IssueType)); err != nil {
		return errors.NewValidationError(err.Error())
	}

	if cmd.Priority != "" && !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	if category.UsesServiceCenter() {
		name := strings.TrimSpace(cmd.ServiceCenterName)
		if name == "" {
			return errors.NewValidationError("service center name is required")
		}
		if name == ticket.NewAssigneeSentinel {
			return errors.NewValidationError("service center name placeholder was not resolved")
		}
	} else if cmd.TechnicianID == 0 {
		return errors.NewValidationError("technician is required")
	}

	return nil
}
