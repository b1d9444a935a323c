package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDKey    = "request_id"
	RequestIDHeader = "X-Request-ID"
)

// maxRequestIDLen bounds a caller supplied request id.
const maxRequestIDLen = 64

// RequestID is a Gin middleware that tags each request with an identifier.
//
// Behavior:
//   - Reuses the caller's X-Request-ID when it is present and short enough,
//     otherwise generates a new UUID (v4).
//   - Stores it in the Gin context under the key "request_id".
//   - Echoes it in the "X-Request-ID" response header.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Writer.Header().Set(RequestIDHeader, id)

		c.Next()
	}
}
