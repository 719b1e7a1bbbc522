package middleware

import (
	"strconv"
	"time"

	"github.com/Modeva-Ecommerce/modeva-storefront/metrics"
	"github.com/gin-gonic/gin"
)

// Metrics records count and latency of every routed request
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.HTTPRequestsInFlight.Inc()
		defer m.HTTPRequestsInFlight.Dec()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(c.Writer.Status()), time.Since(start))
	}
}
