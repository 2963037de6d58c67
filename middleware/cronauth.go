package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/farllon89/agendamento-lk-unhas/config"
)

// CronAuthMiddleware guards the reminder-run endpoint with a shared bearer
// token. With no CRON_SECRET configured the endpoint stays open, matching the
// public deployment where the platform scheduler calls it directly.
func CronAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.CronSecret == "" {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] != cfg.CronSecret {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "Authorization required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
