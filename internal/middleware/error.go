package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/idxboard/internal/domain/dto"
	"github.com/guttosm/idxboard/internal/logger"
)

// ErrorHandler turns errors attached with c.Error into a 500 failure envelope
// when the handler has not written a response itself. The errors are logged,
// never returned to the client.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 {
		return
	}

	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Str("request_id", toString(rid)).
		Str("path", c.Request.URL.Path).
		Strs("errors", c.Errors.Errors()).
		Msg("request failed")

	if !c.Writer.Written() {
		c.JSON(http.StatusInternalServerError, dto.Fail("Internal server error"))
	}
}

// AbortWithError logs err tagged with the resolver that failed (its matched
// route) and aborts the request with status and a failure
// envelope carrying only message.
func AbortWithError(c *gin.Context, status int, message string, err error) {
	rid, _ := c.Get(RequestIDKey)
	ev := logger.L().Error()
	if status < http.StatusInternalServerError {
		ev = logger.L().Warn()
	}
	ev.Str("request_id", toString(rid)).
		Str("resolver", c.FullPath()).
		Int("status", status).
		Err(err).
		Msg(message)

	c.AbortWithStatusJSON(status, dto.Fail(message))
}
