package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS wraps the whole router so preflight requests are answered before
// route matching.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "X-Requested-With", "Accept", "Origin", RequestIDHeader},
		ExposedHeaders:   []string{"Content-Length", RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})

	return c.Handler
}
