package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/idxboard/internal/domain/dto"
	"github.com/guttosm/idxboard/internal/logger"
)

// RequestLogger is a Gin middleware that logs method, path, status code,
// request latency, and request ID (if available).
//
// Example log output:
//
//	request_id=123e4567-e89b-12d3-a456-426614174000 method=GET path=/api/news status=200 latency_ms=15
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		method := c.Request.Method
		path := c.Request.URL.Path

		c.Next()

		latency := time.Since(start)
		status := c.Writer.Status()
		rid, _ := c.Get(RequestIDKey)

		ev := logger.L().Info()
		if status >= http.StatusInternalServerError {
			ev = logger.L().Error()
		}
		ev.Str("request_id", toString(rid)).
			Str("method", method).
			Str("path", path).
			Str("query", c.Request.URL.RawQuery).
			Int("status", status).
			Int64("latency_ms", latency.Milliseconds()).
			Str("client_ip", c.ClientIP()).
			Msg("http_request")
	}
}

func toString(v any) string {
	if v == nil {
		return ""
	}
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// client represents a rate-limited client with request count and window start.
type client struct {
	windowStart time.Time
	count       int
}

// In-memory store for rate limiting, per process.
var (
	clients         = make(map[string]*client)
	window          = time.Minute
	lastSweep       time.Time
	rateLimiterLock sync.Mutex
)

// RateLimiter limits each client IP to limit requests per window (one minute).
// Exceeding the limit yields HTTP 429 with a failure envelope. Clients whose
// window has elapsed are swept at most once per window.
func RateLimiter(limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		rateLimiterLock.Lock()
		if now.Sub(lastSweep) > window {
			sweepClients(now)
		}
		cl, ok := clients[ip]
		if !ok || now.Sub(cl.windowStart) > window {
			cl = &client{windowStart: now}
			clients[ip] = cl
		}
		cl.count++
		exceeded := cl.count > limit
		rateLimiterLock.Unlock()

		if exceeded {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, dto.Fail("rate limit exceeded"))
			return
		}

		c.Next()
	}
}

// sweepClients drops clients whose window has elapsed. Callers hold rateLimiterLock.
func sweepClients(now time.Time) {
	for ip, cl := range clients {
		if now.Sub(cl.windowStart) > window {
			delete(clients, ip)
		}
	}
	lastSweep = now
}

// resetRateLimiter clears all client windows.
func resetRateLimiter() {
	rateLimiterLock.Lock()
	clients = make(map[string]*client)
	lastSweep = time.Time{}
	rateLimiterLock.Unlock()
}
