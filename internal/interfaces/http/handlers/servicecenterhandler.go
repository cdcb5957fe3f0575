package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"billu/internal/application/servicecenter/usecases"
	"billu/internal/interfaces/http/middleware"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type ServiceCenterHandler struct {
	createCenterUC     *usecases.CreateServiceCenterUseCase
	updateCenterUC     *usecases.UpdateServiceCenterUseCase
	deleteCenterUC     *usecases.DeleteServiceCenterUseCase
	listCentersUC      *usecases.ListServiceCentersUseCase
	recommendCentersUC *usecases.RecommendServiceCentersUseCase
	logger             logger.Interface
}

func NewServiceCenterHandler(
	createCenterUC *usecases.CreateServiceCenterUseCase,
	updateCenterUC *usecases.UpdateServiceCenterUseCase,
	deleteCenterUC *usecases.DeleteServiceCenterUseCase,
	listCentersUC *usecases.ListServiceCentersUseCase,
	recommendCentersUC *usecases.RecommendServiceCentersUseCase,
) *ServiceCenterHandler {
	return &ServiceCenterHandler{
		createCenterUC:     createCenterUC,
		updateCenterUC:     updateCenterUC,
		deleteCenterUC:     deleteCenterUC,
		listCentersUC:      listCentersUC,
		recommendCentersUC: recommendCentersUC,
		logger:             logger.NewLogger(),
	}
}

type CreateServiceCenterRequest struct {
	Name          string `json:"name" binding:"required"`
	CompanyName   string `json:"company_name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contact_number"`
	Category      string `json:"category"`
}

type UpdateServiceCenterRequest struct {
	Name          *string `json:"name"`
	CompanyName   *string `json:"company_name"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contact_number"`
	Category      *string `json:"category"`
}

func (h *ServiceCenterHandler) CreateServiceCenter(c *gin.Context) {
	var req CreateServiceCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create service center", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CreateServiceCenterCommand{
		OperatorID:    middleware.UserID(c),
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		Address:       req.Address,
		ContactNumber: req.ContactNumber,
		Category:      req.Category,
	}

	result, err := h.createCenterUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"service_center_id": result.ServiceCenterID}, "service center created")
}

func (h *ServiceCenterHandler) UpdateServiceCenter(c *gin.Context) {
	centerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateServiceCenterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdateServiceCenterCommand{
		ServiceCenterID: centerID,
		OperatorID:      middleware.OperatorScope(c),
		Name:            req.Name,
		CompanyName:     req.CompanyName,
		Address:         req.Address,
		ContactNumber:   req.ContactNumber,
		Category:        req.Category,
	}

	result, err := h.updateCenterUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "service center updated", gin.H{"service_center_id": result.ServiceCenterID})
}

func (h *ServiceCenterHandler) DeleteServiceCenter(c *gin.Context) {
	centerID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteServiceCenterCommand{
		ServiceCenterID: centerID,
		OperatorID:      middleware.OperatorScope(c),
	}

	result, err := h.deleteCenterUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "service center deleted", gin.H{
		"service_center_id": result.ServiceCenterID,
		"deleted":           result.Deleted,
	})
}

func (h *ServiceCenterHandler) ListServiceCenters(c *gin.Context) {
	query := usecases.ListServiceCentersQuery{
		OperatorID: middleware.OperatorScope(c),
	}

	result, err := h.listCentersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "service centers retrieved", gin.H{
		"service_centers": result.ServiceCenters,
		"total":           result.Total,
	})
}

func (h *ServiceCenterHandler) RecommendServiceCenters(c *gin.Context) {
	query := usecases.RecommendServiceCentersQuery{
		OperatorID: middleware.OperatorScope(c),
		Company:    strings.TrimSpace(c.Query("company")),
	}

	result, err := h.recommendCentersUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "service centers recommended", gin.H{
		"service_centers": result.ServiceCenters,
	})
}
