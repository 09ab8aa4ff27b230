package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/transaction-report-service/internal/domain/port/core"
)

// Logger middleware logs incoming requests and their responses
func Logger(logger coreport.Logger, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		statusCode := c.Writer.Status()
		fields := map[string]any{
			"method":      method,
			"path":        path,
			"status":      statusCode,
			"latency_ms":  time.Duration(timeProvider.Since(start)).Milliseconds(),
			"ip":          c.ClientIP(),
			"request_id":  GetRequestID(c),
			"user_agent":  c.Request.UserAgent(),
			"status_text": statusText(statusCode),
		}
		if len(c.Errors) > 0 {
			fields["errors"] = c.Errors.Errors()
		}

		if statusCode >= 500 {
			logger.Warn("Request processed", fields)
			return
		}
		logger.Info("Request processed", fields)
	}
}

// statusText returns the class of the HTTP status code
func statusText(code int) string {
	switch {
	case code >= 100 && code < 200:
		return "Informational"
	case code >= 200 && code < 300:
		return "Success"
	case code >= 300 && code < 400:
		return "Redirect"
	case code >= 400 && code < 500:
		return "Client Error"
	default:
		return "Server Error"
	}
}
