package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/eventdeskhq/eventdesk-api/internal/metrics"
)

// Metrics records request counts, latency and in-flight gauge per
// route. The route template is used instead of the raw path so that
// /projects/1 and /projects/2 share a series.
func Metrics() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		metrics.HTTPRequestsInFlight.Inc()

		ctx.Next()

		metrics.HTTPRequestsInFlight.Dec()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}

		method := ctx.Request.Method
		status := strconv.Itoa(ctx.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}
