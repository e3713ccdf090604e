package handlers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	apierrors "github.com/tracklane/tracklane/pkg/api/errors"
	"github.com/tracklane/tracklane/pkg/billing"
	"github.com/tracklane/tracklane/pkg/models"
)

// BillingHandler handles license checkout endpoints
type BillingHandler struct {
	service   *billing.Service
	validator *validator.Validate
}

// NewBillingHandler creates a new billing handler
func NewBillingHandler(service *billing.Service) *BillingHandler {
	return &BillingHandler{
		service:   service,
		validator: validator.New(),
	}
}

// Checkout godoc
// @Summary Create a license checkout session
// @Description Start a Stripe checkout for a standard or exclusive track license
// @Tags Billing
// @Accept json
// @Produce json
// @Param request body models.CheckoutRequest true "Checkout data"
// @Success 200 {object} models.CheckoutResponse "Checkout session created"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /billing/checkout [post]
func (h *BillingHandler) Checkout(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "Authentication required")
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	resp, err := h.service.CreateCheckoutSession(ctx, userID, req)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "checkout_failed",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, resp)
}

// Webhook godoc
// @Summary Stripe webhook
// @Description Receive Stripe events (checkout completion, refunds)
// @Tags Billing
// @Accept json
// @Produce json
// @Success 200 {object} models.SuccessResponse "Event processed"
// @Failure 400 {object} models.ErrorResponse "Invalid signature or payload"
// @Router /billing/webhook [post]
func (h *BillingHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_payload",
			Message: "Could not read webhook payload",
		})
	}

	signature := c.Request().Header.Get("Stripe-Signature")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	if err := h.service.HandleWebhook(ctx, payload, signature); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "webhook_error",
			Message: err.Error(),
		})
	}

	return c.JSON(http.StatusOK, models.SuccessResponse{Success: true})
}
