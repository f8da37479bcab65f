package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/tkexclusiv/catalog_api/internal/utils"
)

// AdminKeyHeader carries the shared admin secret.
const AdminKeyHeader = "X-Admin-Key"

// AdminKeyMiddleware rejects requests whose X-Admin-Key does not match secret.
// It runs before any handler touches storage.
func AdminKeyMiddleware(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(AdminKeyHeader)
		if key == "" || secret == "" || !utils.SecureCompare(key, secret) {
			log.Warn().
				Str("request_id", c.GetString("request_id")).
				Str("path", c.Request.URL.Path).
				Str("ip", c.ClientIP()).
				Msg("Rejected admin request")
			utils.Error(c, http.StatusUnauthorized, string(utils.KindAuth), "Unauthorized")
			c.Abort()
			return
		}
		c.Next()
	}
}
