package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"golang.org/x/time/rate"
)

// RoleLimits defines rate limits for a user role
type RoleLimits struct {
	RequestsPerMinute int
	Burst             int
}

// RoleRateLimiter rate-limits authenticated requests per user based on
// their role, and unauthenticated requests per IP.
type RoleRateLimiter struct {
	userLimiters map[int]*rate.Limiter
	ipLimiters   map[string]*rate.Limiter
	mu           sync.RWMutex

	roleLimits map[string]RoleLimits

	// Limits for unauthenticated requests
	defaultLimits RoleLimits
}

// NewRoleRateLimiter creates a new role-based rate limiter
func NewRoleRateLimiter() *RoleRateLimiter {
	rrl := &RoleRateLimiter{
		userLimiters: make(map[int]*rate.Limiter),
		ipLimiters:   make(map[string]*rate.Limiter),
		roleLimits: map[string]RoleLimits{
			"client": {
				RequestsPerMinute: 120,
				Burst:             20,
			},
			"producer": {
				RequestsPerMinute: 300,
				Burst:             50,
			},
			"admin": {
				// Bulk payout operations fire many requests in a row
				RequestsPerMinute: 600,
				Burst:             100,
			},
		},
		defaultLimits: RoleLimits{
			RequestsPerMinute: 30,
			Burst:             5,
		},
	}

	go rrl.cleanupLimiters()

	return rrl
}

// getUserLimiter returns or creates a rate limiter for a user based on their role
func (rrl *RoleRateLimiter) getUserLimiter(userID int, role string) *rate.Limiter {
	rrl.mu.Lock()
	defer rrl.mu.Unlock()

	if limiter, exists := rrl.userLimiters[userID]; exists {
		return limiter
	}

	limits, exists := rrl.roleLimits[role]
	if !exists {
		limits = rrl.roleLimits["client"]
	}

	rps := float64(limits.RequestsPerMinute) / 60.0
	limiter := rate.NewLimiter(rate.Limit(rps), limits.Burst)
	rrl.userLimiters[userID] = limiter

	return limiter
}

// getIPLimiter returns or creates a rate limiter for an IP address
func (rrl *RoleRateLimiter) getIPLimiter(ip string) *rate.Limiter {
	rrl.mu.Lock()
	defer rrl.mu.Unlock()

	if limiter, exists := rrl.ipLimiters[ip]; exists {
		return limiter
	}

	rps := float64(rrl.defaultLimits.RequestsPerMinute) / 60.0
	limiter := rate.NewLimiter(rate.Limit(rps), rrl.defaultLimits.Burst)
	rrl.ipLimiters[ip] = limiter

	return limiter
}

// cleanupLimiters removes inactive limiters every 5 minutes
func (rrl *RoleRateLimiter) cleanupLimiters() {
	for {
		time.Sleep(5 * time.Minute)

		rrl.mu.Lock()

		for userID, limiter := range rrl.userLimiters {
			// A limiter at full burst hasn't been used recently
			if limiter.Tokens() >= float64(limiter.Burst()) {
				delete(rrl.userLimiters, userID)
			}
		}
		for ip, limiter := range rrl.ipLimiters {
			if limiter.Tokens() >= float64(limiter.Burst()) {
				delete(rrl.ipLimiters, ip)
			}
		}

		rrl.mu.Unlock()
	}
}

// Middleware creates an Echo middleware for role-based rate limiting
func (rrl *RoleRateLimiter) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			var limiter *rate.Limiter

			userID, hasUserID := c.Get("user_id").(int)
			role, hasRole := c.Get("user_role").(string)

			if hasUserID && hasRole {
				limiter = rrl.getUserLimiter(userID, role)
			} else {
				ip := c.RealIP()
				if ip == "" {
					ip = c.Request().RemoteAddr
				}
				limiter = rrl.getIPLimiter(ip)
			}

			if !limiter.Allow() {
				roleInfo := "unauthenticated"
				if hasRole {
					roleInfo = role
				}

				return c.JSON(http.StatusTooManyRequests, map[string]interface{}{
					"error":   "rate_limit_exceeded",
					"message": "Rate limit exceeded. Please try again later.",
					"role":    roleInfo,
				})
			}

			return next(c)
		}
	}
}

// GetRoleLimits returns the rate limits for a specific role
func (rrl *RoleRateLimiter) GetRoleLimits(role string) (RoleLimits, bool) {
	rrl.mu.RLock()
	defer rrl.mu.RUnlock()

	limits, exists := rrl.roleLimits[role]
	return limits, exists
}

// SetRoleLimits allows customizing rate limits for a role
func (rrl *RoleRateLimiter) SetRoleLimits(role string, requestsPerMinute, burst int) {
	rrl.mu.Lock()
	defer rrl.mu.Unlock()

	rrl.roleLimits[role] = RoleLimits{
		RequestsPerMinute: requestsPerMinute,
		Burst:             burst,
	}
}
