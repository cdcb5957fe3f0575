package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	techusecases "billu/internal/application/technician/usecases"
	ticketusecases "billu/internal/application/ticket/usecases"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

const portalContextKeyTechnicianID = "portal_technician_id"

// PortalHandler serves the technician self-service surface. It is
// deliberately separate from the operator JWT flow: technicians
// authenticate with their roster credentials on every request, via the
// X-Portal-User and X-Portal-Pass headers.
type PortalHandler struct {
	portalLoginUC      *techusecases.PortalLoginUseCase
	listTechTicketsUC  *ticketusecases.ListTechnicianTicketsUseCase
	getWalletUC        *techusecases.GetWalletUseCase
	getPointsUC        *techusecases.GetPointsUseCase
	listTransactionsUC *techusecases.ListTransactionsUseCase
	logger             logger.Interface
}

func NewPortalHandler(
	portalLoginUC *techusecases.PortalLoginUseCase,
	listTechTicketsUC *ticketusecases.ListTechnicianTicketsUseCase,
	getWalletUC *techusecases.GetWalletUseCase,
	getPointsUC *techusecases.GetPointsUseCase,
	listTransactionsUC *techusecases.ListTransactionsUseCase,
) *PortalHandler {
	return &PortalHandler{
		portalLoginUC:      portalLoginUC,
		listTechTicketsUC:  listTechTicketsUC,
		getWalletUC:        getWalletUC,
		getPointsUC:        getPointsUC,
		listTransactionsUC: listTransactionsUC,
		logger:             logger.NewLogger(),
	}
}

type PortalLoginRequest struct {
	UserID   string `json:"user_id" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *PortalHandler) Login(c *gin.Context) {
	var req PortalLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := techusecases.PortalLoginCommand{
		PortalUser: req.UserID,
		PortalPass: req.Password,
	}

	result, err := h.portalLoginUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "portal login successful", result.Technician)
}

// Authenticate validates the portal credential headers and stashes the
// technician ID for the scoped read handlers.
func (h *PortalHandler) Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := c.GetHeader("X-Portal-User")
		pass := c.GetHeader("X-Portal-Pass")
		if user == "" || pass == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing portal credentials")
			c.Abort()
			return
		}

		cmd := techusecases.PortalLoginCommand{PortalUser: user, PortalPass: pass}
		result, err := h.portalLoginUC.Execute(c.Request.Context(), cmd)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			c.Abort()
			return
		}

		c.Set(portalContextKeyTechnicianID, result.Technician.ID)
		c.Next()
	}
}

func (h *PortalHandler) technicianID(c *gin.Context) uint {
	if v, ok := c.Get(portalContextKeyTechnicianID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

func (h *PortalHandler) MyTickets(c *gin.Context) {
	query := ticketusecases.ListTechnicianTicketsQuery{
		TechnicianID: h.technicianID(c),
	}

	result, err := h.listTechTicketsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "tickets retrieved", gin.H{
		"tickets": result.Tickets,
		"total":   result.Total,
	})
}

func (h *PortalHandler) MyWallet(c *gin.Context) {
	query := techusecases.GetWalletQuery{
		TechnicianID: h.technicianID(c),
	}

	result, err := h.getWalletUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "wallet retrieved", gin.H{
		"technician_id":    result.TechnicianID,
		"balance":          result.Balance,
		"assigned_tickets": result.AssignedTickets,
	})
}

func (h *PortalHandler) MyPoints(c *gin.Context) {
	query := techusecases.GetPointsQuery{
		TechnicianID: h.technicianID(c),
	}

	result, err := h.getPointsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "points retrieved", gin.H{
		"technician_id":       result.TechnicianID,
		"total_points":        result.TotalPoints,
		"total_tickets":       result.TotalTickets,
		"completed_tickets":   result.CompletedTickets,
		"max_possible_points": result.MaxPossiblePoints,
	})
}

func (h *PortalHandler) MyTransactions(c *gin.Context) {
	query := techusecases.ListTransactionsQuery{
		TechnicianID: h.technicianID(c),
	}

	result, err := h.listTransactionsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "transactions retrieved", gin.H{
		"transactions": result.Transactions,
		"total":        result.Total,
	})
}
