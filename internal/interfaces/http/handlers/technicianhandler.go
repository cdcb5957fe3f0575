package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billu/internal/application/technician/usecases"
	"billu/internal/interfaces/http/middleware"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type TechnicianHandler struct {
	createTechnicianUC *usecases.CreateTechnicianUseCase
	updateTechnicianUC *usecases.UpdateTechnicianUseCase
	deleteTechnicianUC *usecases.DeleteTechnicianUseCase
	listTechniciansUC  *usecases.ListTechniciansUseCase
	getWalletUC        *usecases.GetWalletUseCase
	getPointsUC        *usecases.GetPointsUseCase
	addTransactionUC   *usecases.AddTransactionUseCase
	listTransactionsUC *usecases.ListTransactionsUseCase
	logger             logger.Interface
}

func NewTechnicianHandler(
	createTechnicianUC *usecases.CreateTechnicianUseCase,
	updateTechnicianUC *usecases.UpdateTechnicianUseCase,
	deleteTechnicianUC *usecases.DeleteTechnicianUseCase,
	listTechniciansUC *usecases.ListTechniciansUseCase,
	getWalletUC *usecases.GetWalletUseCase,
	getPointsUC *usecases.GetPointsUseCase,
	addTransactionUC *usecases.AddTransactionUseCase,
	listTransactionsUC *usecases.ListTransactionsUseCase,
) *TechnicianHandler {
	return &TechnicianHandler{
		createTechnicianUC: createTechnicianUC,
		updateTechnicianUC: updateTechnicianUC,
		deleteTechnicianUC: deleteTechnicianUC,
		listTechniciansUC:  listTechniciansUC,
		getWalletUC:        getWalletUC,
		getPointsUC:        getPointsUC,
		addTransactionUC:   addTransactionUC,
		listTransactionsUC: listTransactionsUC,
		logger:             logger.NewLogger(),
	}
}

type CreateTechnicianRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	Skills     string `json:"skills"`
	PortalUser string `json:"portal_user"`
	PortalPass string `json:"portal_pass"`
}

type UpdateTechnicianRequest struct {
	Name       *string `json:"name"`
	Email      *string `json:"email"`
	Phone      *string `json:"phone"`
	Address    *string `json:"address"`
	Skills     *string `json:"skills"`
	PortalUser *string `json:"portal_user"`
	PortalPass *string `json:"portal_pass"`
}

type AddTransactionRequest struct {
	Type   string `json:"type" binding:"required,oneof=credit debit"`
	Amount string `json:"amount" binding:"required"`
	Note   string `json:"note"`
}

func (h *TechnicianHandler) CreateTechnician(c *gin.Context) {
	var req CreateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create technician", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreateTechnicianCommand{
		OperatorID: middleware.UserID(c),
		Name:       req.Name,
		Email:      req.Email,
		Phone:      req.Phone,
		Address:    req.Address,
		Skills:     req.Skills,
		PortalUser: req.PortalUser,
		PortalPass: req.PortalPass,
	}

	result, err := h.createTechnicianUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"technician_id": result.TechnicianID}, "technician created")
}

func (h *TechnicianHandler) UpdateTechnician(c *gin.Context) {
	technicianID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTechnicianRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdateTechnicianCommand{
		TechnicianID: technicianID,
		OperatorID:   middleware.OperatorScope(c),
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
		Skills:       req.Skills,
		PortalUser:   req.PortalUser,
		PortalPass:   req.PortalPass,
	}

	result, err := h.updateTechnicianUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "technician updated", gin.H{"technician_id": result.TechnicianID})
}

func (h *TechnicianHandler) DeleteTechnician(c *gin.Context) {
	technicianID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTechnicianCommand{
		TechnicianID: technicianID,
		OperatorID:   middleware.OperatorScope(c),
	}

	result, err := h.deleteTechnicianUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "technician deleted", gin.H{
		"technician_id": result.TechnicianID,
		"deleted":       result.Deleted,
	})
}

func (h *TechnicianHandler) ListTechnicians(c *gin.Context) {
	query := usecases.ListTechniciansQuery{
		OperatorID: middleware.OperatorScope(c),
	}

	result, err := h.listTechniciansUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "technicians retrieved", gin.H{
		"technicians": result.Technicians,
		"total":       result.Total,
	})
}

func (h *TechnicianHandler) GetWallet(c *gin.Context) {
	technicianID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetWalletQuery{
		TechnicianID: technicianID,
		OperatorID:   middleware.OperatorScope(c),
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

func (h *TechnicianHandler) GetPoints(c *gin.Context) {
	technicianID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetPointsQuery{
		TechnicianID: technicianID,
		OperatorID:   middleware.OperatorScope(c),
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

func (h *TechnicianHandler) AddTransaction(c *gin.Context) {
	technicianID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.AddTransactionCommand{
		TechnicianID: technicianID,
		OperatorID:   middleware.OperatorScope(c),
		Type:         req.Type,
		Amount:       req.Amount,
		Note:         req.Note,
	}

	result, err := h.addTransactionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"transaction_id": result.TransactionID}, "transaction recorded")
}

func (h *TechnicianHandler) ListTransactions(c *gin.Context) {
	technicianID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.ListTransactionsQuery{
		TechnicianID: technicianID,
		OperatorID:   middleware.OperatorScope(c),
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
