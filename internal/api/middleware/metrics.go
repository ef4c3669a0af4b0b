package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"apichat/internal/observability"
)

// unmatchedRoute labels requests that hit no route, keeping label cardinality bounded
const unmatchedRoute = "unmatched"

// MetricsMiddleware instruments requests for Prometheus
func MetricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := routePatternOrUnmatched(c)
		observability.HTTPInflight.WithLabelValues(path).Inc()
		defer observability.HTTPInflight.WithLabelValues(path).Dec()

		start := time.Now()
		c.Next()
		observability.ObserveHTTP(path, c.Request.Method, c.Writer.Status(), time.Since(start))
	}
}

// routePatternOrUnmatched returns the gin route pattern (e.g. /swagger/*any)
// instead of the raw URL path.
func routePatternOrUnmatched(c *gin.Context) string {
	if p := c.FullPath(); p != "" {
		return p
	}
	return unmatchedRoute
}
