package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"billu/internal/shared/errors"
)

// ParseIDParam extracts a positive numeric :id path parameter.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewBadRequestError("invalid " + name + " parameter")
	}
	return uint(id), nil
}

// ParsePagination extracts page/page_size query parameters with defaults.
func ParsePagination(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 20
	}
	return page, pageSize
}
