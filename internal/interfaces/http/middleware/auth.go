package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"billu/internal/infrastructure/auth"
	"billu/internal/shared/authorization"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

const (
	ContextKeyUserID = "user_id"
)

type AuthMiddleware struct {
	jwtService *auth.JWTService
	logger     logger.Interface
}

func NewAuthMiddleware(jwtService *auth.JWTService, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		logger:     logger,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			utils.ErrorResponse(c, http.StatusUnauthorized, "missing authorization token")
			c.Abort()
			return
		}

		claims, err := m.jwtService.Verify(c.Request.Context(), token)
		if err != nil {
			m.logger.Warnw("failed to verify token", "error", err)
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid or expired token")
			c.Abort()
			return
		}

		if claims.TokenType != auth.TokenTypeAccess {
			utils.ErrorResponse(c, http.StatusUnauthorized, "invalid token type")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, claims.UserID)
		c.Set(authorization.ContextKeyUserRole, string(claims.Role))

		c.Next()
	}
}

// RequireSuperAdmin must run after RequireAuth.
func (m *AuthMiddleware) RequireSuperAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := authorization.UserRole(c.GetString(authorization.ContextKeyUserRole))
		if !role.IsSuperAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "super admin role required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
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

// UserID reads the authenticated user's ID from the gin context.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(ContextKeyUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}

// OperatorScope resolves the tenant partition for the request: the
// operator's own ID, or 0 (all operators) for super admins.
func OperatorScope(c *gin.Context) uint {
	role := authorization.UserRole(c.GetString(authorization.ContextKeyUserRole))
	if role.IsSuperAdmin() {
		return 0
	}
	return UserID(c)
}
