package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// getClientIP extracts the originating client IP, honoring X-Forwarded-For
// when the service runs behind a proxy.
func getClientIP(c *gin.Context) string {
	forwarded := c.GetHeader("X-Forwarded-For")
	if forwarded != "" {
		// The header may contain a comma-separated list of IPs. Use the first one.
		parts := strings.Split(forwarded, ",")
		return strings.TrimSpace(parts[0])
	}
	return c.ClientIP()
}
