package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billu/internal/application/product/usecases"
	"billu/internal/interfaces/http/middleware"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type ProductHandler struct {
	createProductUC *usecases.CreateProductUseCase
	updateProductUC *usecases.UpdateProductUseCase
	deleteProductUC *usecases.DeleteProductUseCase
	listProductsUC  *usecases.ListProductsUseCase
	logger          logger.Interface
}

func NewProductHandler(
	createProductUC *usecases.CreateProductUseCase,
	updateProductUC *usecases.UpdateProductUseCase,
	deleteProductUC *usecases.DeleteProductUseCase,
	listProductsUC *usecases.ListProductsUseCase,
) *ProductHandler {
	return &ProductHandler{
		createProductUC: createProductUC,
		updateProductUC: updateProductUC,
		deleteProductUC: deleteProductUC,
		listProductsUC:  listProductsUC,
		logger:          logger.NewLogger(),
	}
}

type CreateProductRequest struct {
	CustomerID    uint   `json:"customer_id" binding:"required"`
	Name          string `json:"name" binding:"required"`
	CompanyName   string `json:"company_name"`
	Brand         string `json:"brand"`
	Model         string `json:"model"`
	SerialNumber  string `json:"serial_number"`
	PurchaseDate  string `json:"purchase_date"`
	WarrantyUntil string `json:"warranty_until"`
}

type UpdateProductRequest struct {
	Name          *string `json:"name"`
	CompanyName   *string `json:"company_name"`
	Brand         *string `json:"brand"`
	Model         *string `json:"model"`
	SerialNumber  *string `json:"serial_number"`
	PurchaseDate  *string `json:"purchase_date"`
	WarrantyUntil *string `json:"warranty_until"`
	ClearDates    bool    `json:"clear_dates"`
}

func (h *ProductHandler) CreateProduct(c *gin.Context) {
	var req CreateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create product", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	purchaseDate, err := parseDateField(req.PurchaseDate, "purchase_date")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	warrantyUntil, err := parseDateField(req.WarrantyUntil, "warranty_until")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.CreateProductCommand{
		OperatorID:    middleware.OperatorScope(c),
		CustomerID:    req.CustomerID,
		Name:          req.Name,
		CompanyName:   req.CompanyName,
		Brand:         req.Brand,
		Model:         req.Model,
		SerialNumber:  req.SerialNumber,
		PurchaseDate:  purchaseDate,
		WarrantyUntil: warrantyUntil,
	}

	result, err := h.createProductUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{"product_id": result.ProductID}, "product created")
}

func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	productID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.UpdateProductCommand{
		ProductID:    productID,
		OperatorID:   middleware.OperatorScope(c),
		Name:         req.Name,
		CompanyName:  req.CompanyName,
		Brand:        req.Brand,
		Model:        req.Model,
		SerialNumber: req.SerialNumber,
		ClearDates:   req.ClearDates,
	}
	if req.PurchaseDate != nil {
		cmd.PurchaseDate, err = parseDateField(*req.PurchaseDate, "purchase_date")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}
	if req.WarrantyUntil != nil {
		cmd.WarrantyUntil, err = parseDateField(*req.WarrantyUntil, "warranty_until")
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
	}

	result, err := h.updateProductUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "product updated", gin.H{"product_id": result.ProductID})
}

func (h *ProductHandler) DeleteProduct(c *gin.Context) {
	productID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteProductCommand{
		ProductID:  productID,
		OperatorID: middleware.OperatorScope(c),
	}

	result, err := h.deleteProductUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "product deleted", gin.H{
		"product_id": result.ProductID,
		"deleted":    result.Deleted,
	})
}

func (h *ProductHandler) ListProducts(c *gin.Context) {
	query := usecases.ListProductsQuery{
		OperatorID: middleware.OperatorScope(c),
		CustomerID: utils.ParseUint(c.Query("customer_id")),
	}

	result, err := h.listProductsUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "products retrieved", gin.H{
		"products": result.Products,
		"total":    result.Total,
	})
}
