package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func securityHeadersRequest(t *testing.T, cfg SecurityHeadersConfig, next echo.HandlerFunc) (*httptest.ResponseRecorder, error) {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := SecurityHeaders(cfg)(next)(c)
	return rec, err
}

func okHandler(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func TestSecurityHeaders_DefaultHeaders(t *testing.T) {
	rec, err := securityHeadersRequest(t, SecurityHeadersConfig{}, okHandler)
	assert.NoError(t, err)

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "default-src 'self'")
	assert.Contains(t, csp, "script-src 'self' https://js.stripe.com")
	assert.Contains(t, csp, "style-src 'self' 'unsafe-inline'")
	assert.Contains(t, csp, "frame-ancestors 'none'")
	assert.Contains(t, csp, "base-uri 'self'")
	assert.Contains(t, csp, "form-action 'self'")

	assert.Equal(t, "strict-origin-when-cross-origin", rec.Header().Get("Referrer-Policy"))

	pp := rec.Header().Get("Permissions-Policy")
	assert.Contains(t, pp, "camera=()")
	assert.Contains(t, pp, "microphone=()")
	assert.Contains(t, pp, "geolocation=()")
	assert.Contains(t, pp, "payment=(self)")
}

func TestSecurityHeaders_ConnectSrcCoversPaymentAPIs(t *testing.T) {
	rec, err := securityHeadersRequest(t, SecurityHeadersConfig{}, okHandler)
	assert.NoError(t, err)

	// Checkout goes through Stripe and payouts through Circle; both hosts
	// must be reachable under the default policy.
	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "connect-src 'self'")
	assert.Contains(t, csp, "https://api.stripe.com")
	assert.Contains(t, csp, "https://checkout.stripe.com")
	assert.Contains(t, csp, "https://api.circle.com")
	assert.Contains(t, csp, "https://api-sandbox.circle.com")
	assert.Contains(t, csp, "frame-src https://checkout.stripe.com")
}

func TestSecurityHeaders_ExtraConnectSources(t *testing.T) {
	rec, err := securityHeadersRequest(t, SecurityHeadersConfig{
		ExtraConnectSources: []string{"https://circle-mock.staging.tracklane.io"},
	}, okHandler)
	assert.NoError(t, err)

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "https://circle-mock.staging.tracklane.io")
	// Defaults are appended to, not replaced
	assert.Contains(t, csp, "https://api.stripe.com")
	assert.Contains(t, csp, "https://api.circle.com")
}

func TestSecurityHeaders_ExplicitCSPWinsOverExtraSources(t *testing.T) {
	customCSP := "default-src 'none'"
	rec, err := securityHeadersRequest(t, SecurityHeadersConfig{
		ContentSecurityPolicy: customCSP,
		ExtraConnectSources:   []string{"https://ignored.example.com"},
	}, okHandler)
	assert.NoError(t, err)

	assert.Equal(t, customCSP, rec.Header().Get("Content-Security-Policy"))
}

func TestSecurityHeaders_CustomReferrerPolicy(t *testing.T) {
	rec, err := securityHeadersRequest(t, SecurityHeadersConfig{
		ReferrerPolicy: "no-referrer",
	}, okHandler)
	assert.NoError(t, err)

	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	// Other headers still carry defaults
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
}

func TestSecurityHeaders_AllCustom(t *testing.T) {
	rec, err := securityHeadersRequest(t, SecurityHeadersConfig{
		ContentSecurityPolicy: "default-src 'none'",
		ReferrerPolicy:        "no-referrer",
		PermissionsPolicy:     "camera=(self), microphone=(self)",
	}, okHandler)
	assert.NoError(t, err)

	assert.Equal(t, "default-src 'none'", rec.Header().Get("Content-Security-Policy"))
	assert.Equal(t, "no-referrer", rec.Header().Get("Referrer-Policy"))
	assert.Equal(t, "camera=(self), microphone=(self)", rec.Header().Get("Permissions-Policy"))
}

func TestSecurityHeaders_HandlerCalled(t *testing.T) {
	called := false
	rec, err := securityHeadersRequest(t, SecurityHeadersConfig{}, func(c echo.Context) error {
		called = true
		return c.String(http.StatusOK, "OK")
	})

	assert.NoError(t, err)
	assert.True(t, called, "next handler should be called")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSecurityHeaders_HandlerError(t *testing.T) {
	rec, err := securityHeadersRequest(t, SecurityHeadersConfig{}, func(c echo.Context) error {
		return echo.ErrInternalServerError
	})

	assert.Error(t, err)
	// Headers are set before the handler runs, so they survive errors
	assert.NotEmpty(t, rec.Header().Get("Content-Security-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Referrer-Policy"))
	assert.NotEmpty(t, rec.Header().Get("Permissions-Policy"))
}
