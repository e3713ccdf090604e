package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doLimitedRequest(rrl *RoleRateLimiter, userID int, role string) int {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if userID > 0 {
		c.Set("user_id", userID)
		c.Set("user_role", role)
	}

	handler := rrl.Middleware()(func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	_ = handler(c)
	return rec.Code
}

func TestRoleRateLimiter_AllowsWithinBurst(t *testing.T) {
	rrl := NewRoleRateLimiter()

	limits, ok := rrl.GetRoleLimits("client")
	require.True(t, ok)

	for i := 0; i < limits.Burst; i++ {
		assert.Equal(t, http.StatusOK, doLimitedRequest(rrl, 1, "client"))
	}
}

func TestRoleRateLimiter_BlocksBeyondBurst(t *testing.T) {
	rrl := NewRoleRateLimiter()
	rrl.SetRoleLimits("client", 60, 2)

	assert.Equal(t, http.StatusOK, doLimitedRequest(rrl, 1, "client"))
	assert.Equal(t, http.StatusOK, doLimitedRequest(rrl, 1, "client"))
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(rrl, 1, "client"))
}

func TestRoleRateLimiter_UsersAreIndependent(t *testing.T) {
	rrl := NewRoleRateLimiter()
	rrl.SetRoleLimits("client", 60, 1)

	assert.Equal(t, http.StatusOK, doLimitedRequest(rrl, 1, "client"))
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(rrl, 1, "client"))
	assert.Equal(t, http.StatusOK, doLimitedRequest(rrl, 2, "client"))
}

func TestRoleRateLimiter_AdminGetsHigherLimits(t *testing.T) {
	rrl := NewRoleRateLimiter()

	clientLimits, ok := rrl.GetRoleLimits("client")
	require.True(t, ok)
	adminLimits, ok := rrl.GetRoleLimits("admin")
	require.True(t, ok)

	assert.Greater(t, adminLimits.RequestsPerMinute, clientLimits.RequestsPerMinute)
}

func TestRoleRateLimiter_UnknownRoleFallsBackToClient(t *testing.T) {
	rrl := NewRoleRateLimiter()
	rrl.SetRoleLimits("client", 60, 1)

	assert.Equal(t, http.StatusOK, doLimitedRequest(rrl, 5, "superuser"))
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(rrl, 5, "superuser"))
}

func TestRoleRateLimiter_UnauthenticatedUsesIPLimits(t *testing.T) {
	rrl := NewRoleRateLimiter()

	code := doLimitedRequest(rrl, 0, "")
	assert.Equal(t, http.StatusOK, code)
}
