package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billu/internal/application/admin/usecases"
	"billu/internal/shared/authorization"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

type AdminHandler struct {
	getOverviewUC *usecases.GetOverviewUseCase
	logger        logger.Interface
}

func NewAdminHandler(getOverviewUC *usecases.GetOverviewUseCase) *AdminHandler {
	return &AdminHandler{
		getOverviewUC: getOverviewUC,
		logger:        logger.NewLogger(),
	}
}

func (h *AdminHandler) GetOverview(c *gin.Context) {
	query := usecases.GetOverviewQuery{
		Role: authorization.UserRole(c.GetString(authorization.ContextKeyUserRole)),
	}

	result, err := h.getOverviewUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "overview retrieved", result.Snapshot)
}
