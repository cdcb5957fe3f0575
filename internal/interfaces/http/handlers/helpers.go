package handlers

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"billu/internal/shared/biztime"
	"billu/internal/shared/errors"
)

func bearerTokenFromHeader(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return ""
	}
	return parts[1]
}

// parseDateField converts an optional YYYY-MM-DD form value into a
// business-timezone timestamp. Empty strings map to nil.
func parseDateField(s, field string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	t, err := biztime.ParseDateInBizTimezone(s)
	if err != nil {
		return nil, errors.NewValidationError(field + " must be a YYYY-MM-DD date")
	}
	return &t, nil
}
