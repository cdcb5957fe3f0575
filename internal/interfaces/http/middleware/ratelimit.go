package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billu/internal/infrastructure/ratelimit"
	"billu/internal/shared/logger"
	"billu/internal/shared/utils"
)

// LoginRateLimit throttles login attempts per client IP. Fails open when
// redis is unreachable; a broken limiter must not lock everyone out.
func LoginRateLimit(limiter ratelimit.RateLimiter, log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil {
			c.Next()
			return
		}

		allowed, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Warnw("rate limiter unavailable", "error", err)
			c.Next()
			return
		}
		if !allowed {
			utils.ErrorResponse(c, http.StatusTooManyRequests, "too many login attempts, try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
