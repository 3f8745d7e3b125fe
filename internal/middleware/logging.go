package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/therealutkarshpriyadarshi/subfix/internal/logging"
	"github.com/therealutkarshpriyadarshi/subfix/internal/metrics"
)

// RequestIDKey is the context key under which the request ID is stored
const RequestIDKey = "request_id"

// Logger middleware logs request details and records HTTP metrics
func Logger(log *logging.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		requestID := c.GetHeader("X-Request-ID")
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(RequestIDKey, requestID)
		c.Header("X-Request-ID", requestID)

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		log.WithRequestID(requestID).
			LogHTTPRequest(c.Request.Method, path, c.ClientIP(), status, duration)

		route := c.FullPath()
		if route == "" {
			route = path
		}
		metrics.RecordHTTPRequest(c.Request.Method, route, strconv.Itoa(status), duration.Seconds())
	}
}
