package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"billu/internal/application/ticket/usecases"
	"billu/internal/interfaces/http/middleware"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC *usecases.CreateTicketUseCase
	updateTicketUC *usecases.UpdateTicketUseCase
	changeStatusUC *usecases.ChangeStatusUseCase
	deleteTicketUC *usecases.DeleteTicketUseCase
	getTicketUC    *usecases.GetTicketUseCase
	listTicketsUC  *usecases.ListTicketsUseCase
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC *usecases.CreateTicketUseCase,
	updateTicketUC *usecases.UpdateTicketUseCase,
	changeStatusUC *usecases.ChangeStatusUseCase,
	deleteTicketUC *usecases.DeleteTicketUseCase,
	getTicketUC *usecases.GetTicketUseCase,
	listTicketsUC *usecases.ListTicketsUseCase,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		updateTicketUC: updateTicketUC,
		changeStatusUC: changeStatusUC,
		deleteTicketUC: deleteTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		logger:         logger.NewLogger(),
	}
}

type CreateTicketRequest struct {
	CustomerID  uint   `json:"customer_id" binding:"required"`
	ProductID   uint   `json:"product_id" binding:"required"`
	Category    string `json:"category" binding:"required"`
	IssueType   string `json:"issue_type"`
	Description string `json:"description"`
	Priority    string `json:"priority"`
	EndDate     string `json:"end_date"`

	ServiceCenterName string `json:"service_center_name"`
	CallID            string `json:"call_id"`
	UniqueID          string `json:"unique_id"`

	TechnicianID     uint   `json:"technician_id"`
	ServiceAmount    string `json:"service_amount"`
	CommissionAmount string `json:"commission_amount"`
	AmountReceived   string `json:"amount_received"`
}

type UpdateTicketRequest struct {
	Description  *string `json:"description"`
	IssueType    *string `json:"issue_type"`
	Priority     *string `json:"priority"`
	EndDate      *string `json:"end_date"`
	ClearEndDate bool    `json:"clear_end_date"`

	ServiceCenterName *string `json:"service_center_name"`
	CallID            *string `json:"call_id"`
	UniqueID          *string `json:"unique_id"`

	TechnicianID     *uint   `json:"technician_id"`
	ServiceAmount    *string `json:"service_amount"`
	CommissionAmount *string `json:"commission_amount"`
	AmountReceived   *string `json:"amount_received"`
}

type ChangeTicketStatusRequest struct {
	Status  string `json:"status" binding:"required"`
	Confirm bool   `json:"confirm"`
}

func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	endDate, err := parseDateField(req.EndDate, "end_date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateTicketCommand{
		OperatorID:        middleware.UserID(c),
		CustomerID:        req.CustomerID,
		ProductID:         req.ProductID,
		Category:          req.Category,
		IssueType:         req.IssueType,
		Description:       req.Description,
		Priority:          req.Priority,
		EndDate:           endDate,
		ServiceCenterName: req.ServiceCenterName,
		CallID:            req.CallID,
		UniqueID:          req.UniqueID,
		TechnicianID:      req.TechnicianID,
		ServiceAmount:     req.ServiceAmount,
		CommissionAmount:  req.CommissionAmount,
		AmountReceived:    req.AmountReceived,
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"ticket_id":               result.TicketID,
		"ticket_number":           result.TicketNumber,
		"status":                  result.Status,
		"created_at":              result.CreatedAt,
		"center_auto_created":     result.CenterAutoCreated,
		"center_provision_failed": result.CenterProvisionFailed,
	}, "ticket created")
}

func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	var endDate *time.Time
	if req.EndDate != nil {
		endDate, err = parseDateField(*req.EndDate, "end_date")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	cmd := usecases.UpdateTicketCommand{
		TicketID:          ticketID,
		OperatorID:        middleware.OperatorScope(c),
		Description:       req.Description,
		IssueType:         req.IssueType,
		Priority:          req.Priority,
		EndDate:           endDate,
		ClearEndDate:      req.ClearEndDate,
		ServiceCenterName: req.ServiceCenterName,
		CallID:            req.CallID,
		UniqueID:          req.UniqueID,
		TechnicianID:      req.TechnicianID,
		ServiceAmount:     req.ServiceAmount,
		CommissionAmount:  req.CommissionAmount,
		AmountReceived:    req.AmountReceived,
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated", gin.H{
		"ticket_id":           result.TicketID,
		"updated_at":          result.UpdatedAt,
		"center_auto_created": result.CenterAutoCreated,
	})
}

func (h *TicketHandler) ChangeStatus(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req ChangeTicketStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.ChangeStatusCommand{
		TicketID:   ticketID,
		OperatorID: middleware.OperatorScope(c),
		NewStatus:  req.Status,
		Confirm:    req.Confirm,
	}

	result, err := h.changeStatusUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket status changed", gin.H{
		"ticket_id":  result.TicketID,
		"old_status": result.OldStatus,
		"new_status": result.NewStatus,
	})
}

func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTicketCommand{
		TicketID:   ticketID,
		OperatorID: middleware.OperatorScope(c),
		Confirm:    c.Query("confirm") == "true",
	}

	result, err := h.deleteTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket deleted", gin.H{
		"ticket_id": result.TicketID,
		"deleted":   result.Deleted,
	})
}

func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID:   ticketID,
		OperatorID: middleware.OperatorScope(c),
	}

	ticketDTO, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket retrieved", ticketDTO)
}

func (h *TicketHandler) ListTickets(c *gin.Context) {
	query := usecases.ListTicketsQuery{
		OperatorID:      middleware.OperatorScope(c),
		Category:        strings.TrimSpace(c.Query("category")),
		Date:            strings.TrimSpace(c.Query("date")),
		Priority:        strings.TrimSpace(c.Query("priority")),
		ExcludeResolved: c.Query("exclude_resolved") == "true",
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tickets retrieved", gin.H{
		"tickets": result.Tickets,
		"total":   result.Total,
	})
}
