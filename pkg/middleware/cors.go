package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4/middleware"
)

// CORSConfig returns the CORS configuration used by the application.
// Centralised here so that both main.go and tests reference the same config.
func CORSConfig(extraOrigins []string) middleware.CORSConfig {
	origins := []string{
		"http://localhost:3001",     // Development frontend
		"https://tracklane.io",      // Production
		"https://www.tracklane.io",  // Production WWW
		"https://app.tracklane.io",  // Production app
	}
	origins = append(origins, extraOrigins...)

	return middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodPatch,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowCredentials: true,
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
		},
	}
}
