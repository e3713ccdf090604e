package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"
)

// SecurityHeadersConfig holds configuration for the security headers
// middleware. All fields are optional; empty values fall back to defaults
// covering the marketplace's external surfaces (Stripe checkout, Circle
// transfers).
type SecurityHeadersConfig struct {
	ContentSecurityPolicy string
	ReferrerPolicy        string
	PermissionsPolicy     string

	// ExtraConnectSources are appended to the default CSP connect-src
	// directive (e.g. a self-hosted Circle mock in staging). Ignored when
	// ContentSecurityPolicy is set explicitly.
	ExtraConnectSources []string
}

// defaultConnectSources are the payment APIs the backend talks to:
// Stripe for license checkout, Circle (live and sandbox) for USDC payouts.
var defaultConnectSources = []string{
	"'self'",
	"https://api.stripe.com",
	"https://checkout.stripe.com",
	"https://api.circle.com",
	"https://api-sandbox.circle.com",
}

// buildCSP assembles the default Content-Security-Policy with any extra
// connect-src hosts appended.
func buildCSP(extraConnectSources []string) string {
	connectSrc := append(append([]string{}, defaultConnectSources...), extraConnectSources...)

	directives := []string{
		"default-src 'self'",
		"script-src 'self' https://js.stripe.com",
		"style-src 'self' 'unsafe-inline'",
		"img-src 'self' data: https:",
		"font-src 'self'",
		"connect-src " + strings.Join(connectSrc, " "),
		"frame-src https://checkout.stripe.com https://js.stripe.com",
		"frame-ancestors 'none'",
		"base-uri 'self'",
		"form-action 'self'",
	}
	return strings.Join(directives, "; ")
}

// DefaultSecurityHeadersConfig returns the default security headers configuration.
func DefaultSecurityHeadersConfig() SecurityHeadersConfig {
	return SecurityHeadersConfig{
		ContentSecurityPolicy: buildCSP(nil),
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		PermissionsPolicy:     "camera=(), microphone=(), geolocation=(), payment=(self)",
	}
}

// SecurityHeaders returns an Echo middleware that sets Content-Security-Policy,
// Referrer-Policy, and Permissions-Policy headers on every response.
func SecurityHeaders(config SecurityHeadersConfig) echo.MiddlewareFunc {
	defaults := DefaultSecurityHeadersConfig()

	if config.ContentSecurityPolicy == "" {
		if len(config.ExtraConnectSources) > 0 {
			config.ContentSecurityPolicy = buildCSP(config.ExtraConnectSources)
		} else {
			config.ContentSecurityPolicy = defaults.ContentSecurityPolicy
		}
	}
	if config.ReferrerPolicy == "" {
		config.ReferrerPolicy = defaults.ReferrerPolicy
	}
	if config.PermissionsPolicy == "" {
		config.PermissionsPolicy = defaults.PermissionsPolicy
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			res := c.Response()
			res.Header().Set("Content-Security-Policy", config.ContentSecurityPolicy)
			res.Header().Set("Referrer-Policy", config.ReferrerPolicy)
			res.Header().Set("Permissions-Policy", config.PermissionsPolicy)
			return next(c)
		}
	}
}
