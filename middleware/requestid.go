package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request identifier on both directions.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the Gin context key the identifier is stored under.
const RequestIDKey = "request_id"

// RequestID tags every request with an identifier for log correlation.
// An inbound X-Request-ID is kept; otherwise a fresh UUID is generated.
// The identifier is echoed on the response.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)
		c.Next()
	}
}
