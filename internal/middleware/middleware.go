package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/technova/placement/internal/pkg/logger"
)

// RequestLogger logs one line per request once it completes
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		event := logger.Info()
		if status >= 500 {
			event = logger.Error()
		} else if status >= 400 {
			event = logger.Warn()
		}

		event.
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Str("client_ip", c.ClientIP()).
			Dur("latency", time.Since(start)).
			Msg("Request handled")
	}
}
