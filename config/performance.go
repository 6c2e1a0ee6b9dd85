package config

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

const slowRequestThreshold = 200 * time.Millisecond

func PerformanceLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		attrs := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration_ms", latency.Milliseconds(),
		}
		if userID, ok := c.Get("userId"); ok {
			attrs = append(attrs, "user_id", userID)
		}

		slog.Info("request", attrs...)

		// Slow requests usually mean the reservation workflow is stalling.
		if latency > slowRequestThreshold {
			slog.Warn("slow request", attrs...)
		}
	}
}
