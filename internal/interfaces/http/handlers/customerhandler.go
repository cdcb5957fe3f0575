package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"billu/internal/application/customer/usecases"
	"billu/internal/interfaces/http/middleware"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type CustomerHandler struct {
	createCustomerUC *usecases.CreateCustomerUseCase
	updateCustomerUC *usecases.UpdateCustomerUseCase
	deleteCustomerUC *usecases.DeleteCustomerUseCase
	listCustomersUC  *usecases.ListCustomersUseCase
	logger           logger.Interface
}

func NewCustomerHandler(
	createCustomerUC *usecases.CreateCustomerUseCase,
	updateCustomerUC *usecases.UpdateCustomerUseCase,
	deleteCustomerUC *usecases.DeleteCustomerUseCase,
	listCustomersUC *usecases.ListCustomersUseCase,
) *CustomerHandler {
	return &CustomerHandler{
		createCustomerUC: createCustomerUC,
		updateCustomerUC: updateCustomerUC,
		deleteCustomerUC: deleteCustomerUC,
		listCustomersUC:  listCustomersUC,
		logger:           logger.NewLogger(),
	}
}

type CreateCustomerRequest struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Email    string `json:"email"`
	Address  string `json:"address"`
	JoinedAt string `json:"joined_at"`
}

type UpdateCustomerRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email"`
	Address *string `json:"address"`
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create customer", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	joinedAt, err := parseDateField(req.JoinedAt, "joined_at")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateCustomerCommand{
		OperatorID: middleware.UserID(c),
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
		JoinedAt:   joinedAt,
	}

	result, err := h.createCustomerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"customer_id": result.CustomerID}, "customer created")
}

func (h *CustomerHandler) UpdateCustomer(c *gin.Context) {
	customerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdateCustomerCommand{
		CustomerID: customerID,
		OperatorID: middleware.OperatorScope(c),
		Name:       req.Name,
		Phone:      req.Phone,
		Email:      req.Email,
		Address:    req.Address,
	}

	result, err := h.updateCustomerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "customer updated", gin.H{"customer_id": result.CustomerID})
}

func (h *CustomerHandler) DeleteCustomer(c *gin.Context) {
	customerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteCustomerCommand{
		CustomerID: customerID,
		OperatorID: middleware.OperatorScope(c),
	}

	result, err := h.deleteCustomerUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "customer deleted", gin.H{
		"customer_id": result.CustomerID,
		"deleted":     result.Deleted,
	})
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	query := usecases.ListCustomersQuery{
		OperatorID: middleware.OperatorScope(c),
		Search:     strings.TrimSpace(c.Query("search")),
	}

	result, err := h.listCustomersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "customers retrieved", gin.H{
		"customers": result.Customers,
		"total":     result.Total,
	})
}
