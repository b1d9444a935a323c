package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps h so that browsers on allowedOrigins can call the read-only API.
// "*" allows any origin.
func CORS(allowedOrigins []string, h http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", RequestIDHeader},
		ExposedHeaders: []string{RequestIDHeader},
		MaxAge:         600,
	})
	return c.Handler(h)
}
