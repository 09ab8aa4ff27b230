package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/amirhossein-jamali/transaction-report-service/internal/infrastructure/adapter/database"
)

// RequestIDHeader carries the request id in both directions
const RequestIDHeader = "X-Request-ID"

const requestIDKey = "request_id"

// RequestID propagates the caller's X-Request-ID or generates one, echoes it
// on the response and attaches it to the request context for SQL tracing
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(database.WithRequestID(c.Request.Context(), requestID))

		c.Next()
	}
}

// GetRequestID returns the id assigned by RequestID, or the raw header when
// the middleware did not run
func GetRequestID(c *gin.Context) string {
	if id := c.GetString(requestIDKey); id != "" {
		return id
	}
	return c.GetHeader(RequestIDHeader)
}
