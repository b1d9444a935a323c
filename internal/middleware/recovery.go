package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/idxboard/internal/domain/dto"
	"github.com/guttosm/idxboard/internal/logger"
)

// RecoveryMiddleware returns a Gin middleware that recovers from panics,
// logs the stack trace and responds with a 500 failure envelope.
func RecoveryMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				rid, _ := c.Get(RequestIDKey)
				logger.L().Error().
					Str("request_id", toString(rid)).
					Str("panic", fmt.Sprintf("%v", r)).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
			}
		}()

		c.Next()
	}
}
