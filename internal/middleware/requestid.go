package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDKey is the gin context key under which the request
// identifier travels.
const RequestIDKey = "request_id"

// RequestID injects a fresh UUID into each request so that logs and
// clients can correlate a command submission with its outcome. The id
// is stored in the gin context and echoed back in the X-Request-ID
// response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := uuid.NewString()
		c.Set(RequestIDKey, id)
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}
