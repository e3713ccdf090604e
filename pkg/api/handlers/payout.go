package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tracklane/tracklane/ent"
	"github.com/tracklane/tracklane/ent/payoutrecord"
	apierrors "github.com/tracklane/tracklane/pkg/api/errors"
	"github.com/tracklane/tracklane/pkg/models"
	"github.com/tracklane/tracklane/pkg/payout"
)

// PayoutHandler handles the monthly payout pipeline endpoints
type PayoutHandler struct {
	db      *ent.Client
	service *payout.Service
}

// NewPayoutHandler creates a new payout handler
func NewPayoutHandler(db *ent.Client, service *payout.Service) *PayoutHandler {
	return &PayoutHandler{db: db, service: service}
}

// Generate godoc
// @Summary Generate monthly payout records
// @Description Computes each active producer's earnings for the month and inserts one payout record per producer
// @Tags Payouts
// @Accept json
// @Produce json
// @Param request body models.GeneratePayoutsRequest true "Generation parameters"
// @Success 200 {object} models.GeneratePayoutsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/payouts/generate [post]
func (h *PayoutHandler) Generate(c echo.Context) error {
	var req models.GeneratePayoutsRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Minute)
	defer cancel()

	userID, _ := c.Get("user_id").(int)

	resp, err := h.service.Generate(ctx, req.Month, req.ForceRegenerate, userID)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Disburse godoc
// @Summary Disburse pending payouts for a month
// @Description Transfers funds for the month's pending payout records via the payment API; dryRun simulates without mutating
// @Tags Payouts
// @Accept json
// @Produce json
// @Param request body models.DisbursePayoutsRequest true "Disbursement parameters"
// @Success 200 {object} models.DisbursePayoutsResponse
// @Failure 400 {object} models.ErrorResponse
// @Failure 409 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/payouts/disburse [post]
func (h *PayoutHandler) Disburse(c echo.Context) error {
	var req models.DisbursePayoutsRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	// Transfers against a live payment API can be slow; budget generously
	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Minute)
	defer cancel()

	userID, _ := c.Get("user_id").(int)

	resp, err := h.service.Disburse(ctx, req.Month, req.DryRun, userID)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Retry godoc
// @Summary Retry failed payout disbursements
// @Description Re-attempts pending payouts whose retry count is under maxRetries; optionally scoped to one month
// @Tags Payouts
// @Accept json
// @Produce json
// @Param request body models.RetryPayoutsRequest true "Retry parameters"
// @Success 200 {object} models.RetryPayoutsResponse
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/payouts/retry [post]
func (h *PayoutHandler) Retry(c echo.Context) error {
	var req models.RetryPayoutsRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if req.MaxRetries == 0 {
		req.MaxRetries = payout.DefaultMaxRetries
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 15*time.Minute)
	defer cancel()

	resp, err := h.service.Retry(ctx, req.MaxRetries, req.Month)
	if err != nil {
		return h.mapServiceError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// List godoc
// @Summary List payout records for a month
// @Tags Payouts
// @Produce json
// @Param month query string true "Month key (YYYY-MM)"
// @Success 200 {array} object
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/payouts [get]
func (h *PayoutHandler) List(c echo.Context) error {
	month := c.QueryParam("month")
	if !payout.ValidMonth(month) {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_month",
			Message: "month must be in YYYY-MM format",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	records, err := h.db.PayoutRecord.Query().
		Where(payoutrecord.MonthEQ(month)).
		Order(ent.Asc(payoutrecord.FieldProducerID)).
		All(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, records)
}

func (h *PayoutHandler) mapServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, payout.ErrInvalidMonth):
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_month",
			Message: err.Error(),
		})
	case errors.Is(err, payout.ErrRunInProgress):
		return apierrors.ConflictError(c, err.Error())
	default:
		return apierrors.InternalError(c, err)
	}
}
