// Package middleware provides the HTTP middleware wrapped around the
// Ventureline API router.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler lets the browser front-end at allowedOrigins call the API.
// Origins are full scheme+host values without a trailing slash. The method
// list matches the API surface: reads, favorite toggles (PUT) and bookings (POST).
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Disposition"},
	})
	return c.Handler
}
