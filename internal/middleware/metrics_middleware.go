package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tkexclusiv/catalog_api/internal/metrics"
)

// MetricsMiddleware records every request in m. The route label is the
// registered path template, empty for unmatched requests.
func MetricsMiddleware(m *metrics.HTTPMetrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		m.Observe(c.Request.Method, c.FullPath(), c.Query("resource"), c.Writer.Status(), time.Since(start))
	}
}
