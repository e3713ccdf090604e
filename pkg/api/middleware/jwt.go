package middleware

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/pkg/auth"
	"github.com/tracklane/tracklane/pkg/models"
)

// JWTMiddleware creates a JWT authentication middleware
func JWTMiddleware(secret string) echo.MiddlewareFunc {
	return JWTMiddlewareWithDB(secret, nil)
}

// JWTMiddlewareWithBlacklist creates a JWT authentication middleware
// that additionally rejects tokens revoked via logout
func JWTMiddlewareWithBlacklist(secret string, blacklist *auth.TokenBlacklist, db *ent.Client) echo.MiddlewareFunc {
	base := JWTMiddlewareWithDB(secret, db)
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return base(func(c echo.Context) error {
			token, _ := c.Get("token").(string)
			if blacklist != nil && token != "" {
				ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
				defer cancel()

				revoked, err := blacklist.IsRevoked(ctx, token)
				if err == nil && revoked {
					return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
						Error:   "token_revoked",
						Message: "This token has been revoked",
					})
				}
			}
			return next(c)
		})
	}
}

// JWTMiddlewareWithDB creates a JWT authentication middleware that also
// rejects tokens belonging to soft-deleted accounts
func JWTMiddlewareWithDB(secret string, db *ent.Client) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "missing_token",
					Message: "Authorization header is required",
				})
			}

			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token_format",
					Message: "Authorization header must be 'Bearer {token}'",
				})
			}

			claims, err := auth.ValidateJWT(parts[1], secret)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
					Error:   "invalid_token",
					Message: err.Error(),
				})
			}

			if db != nil {
				ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
				defer cancel()

				u, err := db.User.Get(ctx, claims.UserID)
				if err != nil {
					return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
						Error:   "user_not_found",
						Message: "User account not found",
					})
				}
				if u.DeletedAt != nil {
					return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
						Error:   "account_deleted",
						Message: "This account has been deleted",
					})
				}
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)
			c.Set("user_role", claims.Role)
			c.Set("token", parts[1])
			if claims.ExpiresAt != nil {
				c.Set("token_expires_at", claims.ExpiresAt.Time)
			}

			return next(c)
		}
	}
}
