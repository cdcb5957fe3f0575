package usecases

import (
	"context"
	"fmt"
	"strings"
	"time"

	"billu/internal/domain/servicecenter"
	"billu/internal/domain/technician"
	"billu/internal/domain/ticket"
	vo "billu/internal/domain/ticket/valueobjects"
	"billu/internal/shared/errors"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

// UpdateTicketCommand carries partial edits; nil pointers leave the field
// untouched. The category itself is immutable after creation.
type UpdateTicketCommand struct {
	TicketID   uint
	OperatorID uint

	Description *string
	IssueType   *string
	Priority    *string
	EndDate     *time.Time
	ClearEndDate bool

	// Demo/Service reassignment by free-text name, same auto-provision
	// semantics as create.
	ServiceCenterName *string
	CallID            *string
	UniqueID          *string

	// Third Party/In Store reassignment and financials.
	TechnicianID     *uint
	ServiceAmount    *string
	CommissionAmount *string
	AmountReceived   *string
}

type UpdateTicketResult struct {
	TicketID          uint
	UpdatedAt         time.Time
	CenterAutoCreated bool
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	centerRepo servicecenter.Repository
	techRepo   technician.Repository
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	centerRepo servicecenter.Repository,
	techRepo technician.Repository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		centerRepo: centerRepo,
		techRepo:   techRepo,
		logger:     logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		uc.logger.Errorw("failed to get ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewNotFoundError(fmt.Sprintf("ticket %d not found", cmd.TicketID))
	}
	if err := ensureTicketAccess(t, cmd.OperatorID); err != nil {
		return nil, err
	}

	result := &UpdateTicketResult{}

	if cmd.Description != nil {
		t.UpdateDescription(utils.SanitizeText(*cmd.Description))
	}
	if cmd.IssueType != nil {
		if err := t.UpdateIssueType(*cmd.IssueType); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Priority != nil {
		if err := t.UpdatePriority(vo.Priority(*cmd.Priority)); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.ServiceCenterName != nil {
		autoCreated, err := uc.reassignCenter(ctx, t, *cmd.ServiceCenterName)
		if err != nil {
			return nil, err
		}
		result.CenterAutoCreated = autoCreated
	}
	if cmd.CallID != nil || cmd.UniqueID != nil {
		callID, uniqueID := "", ""
		if cd := t.CenterDetails(); cd != nil {
			callID, uniqueID = cd.CallID(), cd.UniqueID()
		}
		if cmd.CallID != nil {
			callID = *cmd.CallID
		}
		if cmd.UniqueID != nil {
			uniqueID = *cmd.UniqueID
		}
		if err := t.SetCallTracking(callID, uniqueID); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.TechnicianID != nil {
		if err := uc.reassignTechnician(ctx, t, *cmd.TechnicianID, cmd); err != nil {
			return nil, err
		}
	} else if cmd.ServiceAmount != nil || cmd.CommissionAmount != nil || cmd.AmountReceived != nil {
		if err := uc.updateAmounts(t, cmd); err != nil {
			return nil, err
		}
	}

	if cmd.ClearEndDate {
		t.ClearEndDate()
	} else if cmd.EndDate != nil {
		if err := t.SetEndDate(*cmd.EndDate); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, errors.NewInternalError("failed to update ticket")
	}

	uc.logger.Infow("ticket updated", "ticket_id", t.ID())

	result.TicketID = t.ID()
	result.UpdatedAt = t.UpdatedAt()
	return result, nil
}

func (uc *UpdateTicketUseCase) reassignCenter(ctx context.Context, t *ticket.Ticket, name string) (bool, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return false, errors.NewValidationError("service center name is required")
	}
	if name == ticket.NewAssigneeSentinel {
		return false, errors.NewValidationError("service center name placeholder was not resolved")
	}

	autoCreated := false
	var centerID uint
	if existing, err := uc.centerRepo.FindByName(ctx, t.OperatorID(), name); err == nil && existing != nil {
		centerID = existing.ID()
	} else {
		sc, err := servicecenter.AutoProvision(t.OperatorID(), name, t.CompanyName(), t.CustomerPhone(), t.Category().String())
		if err == nil {
			if err := uc.centerRepo.Create(ctx, sc); err != nil {
				uc.logger.Warnw("failed to save auto-provisioned service center, continuing with ticket", "name", name, "error", err)
			} else {
				centerID = sc.ID()
				autoCreated = true
			}
		}
	}

	if err := t.ReassignServiceCenter(centerID, name); err != nil {
		return false, errors.NewValidationError(err.Error())
	}
	return autoCreated, nil
}

func (uc *UpdateTicketUseCase) reassignTechnician(ctx context.Context, t *ticket.Ticket, techID uint, cmd UpdateTicketCommand) error {
	tech, err := uc.techRepo.FindByID(ctx, techID)
	if err != nil {
		return errors.NewNotFoundError(fmt.Sprintf("technician %d not found", techID))
	}

	service, commission, received := currentAmounts(t)
	if cmd.ServiceAmount != nil {
		service = utils.ParseAmount(*cmd.ServiceAmount)
	}
	if cmd.CommissionAmount != nil {
		commission = utils.ParseAmount(*cmd.CommissionAmount)
	}
	if cmd.AmountReceived != nil {
		received = utils.ParseAmount(*cmd.AmountReceived)
	}

	if err := t.ReassignTechnician(tech.ID(), tech.Name(), service, commission, received); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

func (uc *UpdateTicketUseCase) updateAmounts(t *ticket.Ticket, cmd UpdateTicketCommand) error {
	service, commission, received := currentAmounts(t)
	if cmd.ServiceAmount != nil {
		service = utils.ParseAmount(*cmd.ServiceAmount)
	}
	if cmd.CommissionAmount != nil {
		commission = utils.ParseAmount(*cmd.CommissionAmount)
	}
	if cmd.AmountReceived != nil {
		received = utils.ParseAmount(*cmd.AmountReceived)
	}
	if err := t.UpdateAmounts(service, commission, received); err != nil {
		return errors.NewValidationError(err.Error())
	}
	return nil
}

func currentAmounts(t *ticket.Ticket) (service, commission, received float64) {
	if td := t.TechDetails(); td != nil {
		return td.ServiceAmount(), td.CommissionAmount(), td.AmountReceived()
	}
	return 0, 0, 0
}
