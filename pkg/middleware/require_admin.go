package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/user"
)

// RequireAdmin middleware ensures the authenticated user has the admin role.
// The role is re-read from the database rather than trusted from the JWT so a
// demoted admin loses access as soon as the row changes, not at token expiry.
// This middleware should be applied AFTER JWT authentication middleware.
func RequireAdmin(db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Authentication required",
				})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
			defer cancel()

			u, err := db.User.Get(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "user_not_found",
					"message": "User not found",
				})
			}

			if u.Role != user.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error":   "insufficient_permissions",
					"message": "Admin access required",
					"details": map[string]interface{}{
						"required_role": "admin",
						"current_role":  u.Role.String(),
					},
				})
			}

			c.Set("user_role", u.Role.String())

			return next(c)
		}
	}
}

// RequireProducer middleware ensures the authenticated user is a producer or admin
func RequireProducer(db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userID, ok := c.Get("user_id").(int)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "unauthorized",
					"message": "Authentication required",
				})
			}

			ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
			defer cancel()

			u, err := db.User.Get(ctx, userID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error":   "user_not_found",
					"message": "User not found",
				})
			}

			if u.Role != user.RoleProducer && u.Role != user.RoleAdmin {
				return c.JSON(http.StatusForbidden, map[string]interface{}{
					"error":   "insufficient_permissions",
					"message": "Producer access required",
					"details": map[string]interface{}{
						"required_role": "producer or admin",
						"current_role":  u.Role.String(),
					},
				})
			}

			c.Set("user_role", u.Role.String())

			return next(c)
		}
	}
}
