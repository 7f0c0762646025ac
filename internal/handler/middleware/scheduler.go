package middleware

import (
	"crypto/subtle"
	"net/http"

	"letterdesk/internal/pkg/config"

	"github.com/gin-gonic/gin"
)

const schedulerTokenHeader = "X-Scheduler-Token"

// RequireSchedulerToken guards the internal scheduler endpoints with a
// shared secret. A mismatch fails before any handler side effect.
func RequireSchedulerToken(cfg config.SchedulerConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader(schedulerTokenHeader)
		if token == "" || subtle.ConstantTimeCompare([]byte(token), []byte(cfg.Token)) != 1 {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid scheduler token",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
