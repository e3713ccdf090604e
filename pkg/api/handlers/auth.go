package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/tracklane/tracklane/config"
	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/user"
	apierrors "github.com/tracklane/tracklane/pkg/api/errors"
	"github.com/tracklane/tracklane/pkg/auth"
	"github.com/tracklane/tracklane/pkg/email"
	"github.com/tracklane/tracklane/pkg/metrics"
	"github.com/tracklane/tracklane/pkg/models"
	"github.com/tracklane/tracklane/pkg/payout"
)

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	db           *ent.Client
	config       *config.Config
	blacklist    *auth.TokenBlacklist
	emailService *email.Service
	metrics      *metrics.Metrics
	validator    *validator.Validate
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(db *ent.Client, cfg *config.Config, blacklist *auth.TokenBlacklist, emailService *email.Service, m *metrics.Metrics) *AuthHandler {
	return &AuthHandler{
		db:           db,
		config:       cfg,
		blacklist:    blacklist,
		emailService: emailService,
		metrics:      m,
		validator:    validator.New(),
	}
}

// Register godoc
// @Summary Register a new user
// @Description Create a new client or producer account with email and password
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "Registration data"
// @Success 201 {object} models.AuthResponse "User registered successfully"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 409 {object} models.ErrorResponse "User already exists"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Check if user already exists
	exists, err := h.db.User.Query().Where(user.EmailEQ(req.Email)).Exist(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}
	if exists {
		return c.JSON(http.StatusConflict, models.ErrorResponse{
			Error:   "user_exists",
			Message: "User with this email already exists",
		})
	}

	hashedPassword, err := auth.HashPassword(req.Password)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "password_hashing_error",
		})
	}

	role := user.RoleClient
	if req.Role == string(user.RoleProducer) {
		role = user.RoleProducer
	}

	create := h.db.User.Create().
		SetEmail(req.Email).
		SetPasswordHash(hashedPassword).
		SetName(req.Name).
		SetRole(role).
		SetActive(true)
	if req.ArtistName != "" {
		create.SetArtistName(req.ArtistName)
	}

	newUser, err := create.Save(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "user_creation_error",
		})
	}

	if h.metrics != nil {
		h.metrics.UsersRegistered.Inc()
	}

	// Send welcome email (async)
	if h.emailService != nil {
		go h.emailService.SendWelcomeEmail(newUser.Email, newUser.Name)
	}

	token, err := auth.GenerateJWT(
		newUser.ID,
		newUser.Email,
		string(newUser.Role),
		h.config.JWTSecret,
		h.config.JWTExpirationHours,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "token_generation_error",
		})
	}

	return c.JSON(http.StatusCreated, models.AuthResponse{
		Token: token,
		User:  userInfo(newUser),
	})
}

// Login godoc
// @Summary Login user
// @Description Authenticate user with email and password, returns JWT token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "Login credentials"
// @Success 200 {object} models.AuthResponse "Login successful"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Invalid credentials"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Query().
		Where(user.EmailEQ(req.Email), user.DeletedAtIsNil()).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			h.countLogin("failure")
			return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
				Error:   "invalid_credentials",
				Message: "Invalid email or password",
			})
		}
		return apierrors.DatabaseError(c, err)
	}

	if !auth.CheckPassword(u.PasswordHash, req.Password) {
		h.countLogin("failure")
		return c.JSON(http.StatusUnauthorized, models.ErrorResponse{
			Error:   "invalid_credentials",
			Message: "Invalid email or password",
		})
	}

	h.countLogin("success")

	token, err := auth.GenerateJWT(
		u.ID,
		u.Email,
		string(u.Role),
		h.config.JWTSecret,
		h.config.JWTExpirationHours,
	)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: "token_generation_error",
		})
	}

	return c.JSON(http.StatusOK, models.AuthResponse{
		Token: token,
		User:  userInfo(u),
	})
}

// Logout godoc
// @Summary Logout user
// @Description Revoke the current JWT so it can no longer be used
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.SuccessResponse "Logged out"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token, ok := c.Get("token").(string)
	if !ok || token == "" {
		return apierrors.UnauthorizedError(c, "Authentication required")
	}

	if h.blacklist != nil {
		// Keep the entry only for the token's remaining lifetime
		remaining := time.Duration(h.config.JWTExpirationHours) * time.Hour
		if expiresAt, ok := c.Get("token_expires_at").(time.Time); ok {
			remaining = time.Until(expiresAt)
		}
		if remaining > 0 {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()

			if err := h.blacklist.Revoke(ctx, token, remaining); err != nil {
				return c.JSON(http.StatusInternalServerError, models.ErrorResponse{
					Error: "logout_failed",
				})
			}
		}
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{
		Success: true,
		Message: "Logged out",
	})
}

// Me godoc
// @Summary Current user
// @Description Return the authenticated user's profile
// @Tags Authentication
// @Produce json
// @Success 200 {object} models.UserInfo "Current user"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 404 {object} models.ErrorResponse "User not found"
// @Security BearerAuth
// @Router /auth/me [get]
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "Authentication required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.Get(ctx, userID)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "User")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, userInfo(u))
}

// UpdateWallet godoc
// @Summary Update payout wallet
// @Description Set the wallet address used for monthly payouts (producers only)
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body models.UpdateWalletRequest true "Wallet address"
// @Success 200 {object} models.UserInfo "Wallet updated"
// @Failure 400 {object} models.ErrorResponse "Invalid wallet address"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /auth/wallet [put]
func (h *AuthHandler) UpdateWallet(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "Authentication required")
	}

	var req models.UpdateWalletRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	if !payout.ValidWallet(req.WalletAddress) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_wallet",
			Message: "Wallet address must be a 0x-prefixed 40-character hex string",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.db.User.UpdateOneID(userID).
		SetWalletAddress(req.WalletAddress).
		Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "User")
		}
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, userInfo(u))
}

func (h *AuthHandler) countLogin(result string) {
	if h.metrics != nil {
		h.metrics.LoginAttempts.WithLabelValues(result).Inc()
	}
}

func userInfo(u *ent.User) *models.UserInfo {
	return &models.UserInfo{
		ID:            u.ID,
		Email:         u.Email,
		Name:          u.Name,
		Role:          string(u.Role),
		ArtistName:    u.ArtistName,
		WalletAddress: u.WalletAddress,
	}
}
