package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/chaintrace/custody-api/internal/logger"
)

// AuthConfig holds API-key authentication configuration
type AuthConfig struct {
	APIKeys []string
}

// APIKeyAuth gates a route behind "Authorization: Bearer <key>". With no keys
// configured the route stays open; the ledger contract still enforces its own
// access control on administrative writes.
func APIKeyAuth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(cfg.APIKeys) == 0 {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			unauthorized(c, "missing or malformed Authorization header")
			return
		}

		for _, key := range cfg.APIKeys {
			if key != "" && subtle.ConstantTimeCompare([]byte(parts[1]), []byte(key)) == 1 {
				c.Next()
				return
			}
		}

		unauthorized(c, "invalid API key")
	}
}

func unauthorized(c *gin.Context, reason string) {
	logger.Warn("Authentication failed",
		zap.String("reason", reason),
		zap.String("path", c.Request.URL.Path),
		zap.String("client_ip", c.ClientIP()),
	)
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"error": gin.H{
			"code":    "unauthorized",
			"message": "Authentication failed",
		},
	})
}
