package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tracklane/tracklane/pkg/analytics"
	apierrors "github.com/tracklane/tracklane/pkg/api/errors"
	"github.com/tracklane/tracklane/pkg/models"
	"github.com/tracklane/tracklane/pkg/payout"
)

// AnalyticsHandler handles marketplace analytics endpoints
type AnalyticsHandler struct {
	service *analytics.Service
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(service *analytics.Service) *AnalyticsHandler {
	return &AnalyticsHandler{service: service}
}

// Revenue godoc
// @Summary Monthly revenue
// @Description Gross marketplace revenue for a month, broken down by license type
// @Tags Analytics
// @Produce json
// @Param month query string true "Month in YYYY-MM format"
// @Success 200 {object} analytics.MonthlyRevenue "Revenue summary"
// @Failure 400 {object} models.ErrorResponse "Invalid month"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/analytics/revenue [get]
func (h *AnalyticsHandler) Revenue(c echo.Context) error {
	month := c.QueryParam("month")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	result, err := h.service.GetMonthlyRevenue(ctx, month)
	if err != nil {
		if err == payout.ErrInvalidMonth {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_month",
				Message: "Month must be in YYYY-MM format",
			})
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// TopProducers godoc
// @Summary Top producers
// @Description Producers ranked by completed sales gross for a month
// @Tags Analytics
// @Produce json
// @Param month query string true "Month in YYYY-MM format"
// @Param limit query int false "Maximum producers to return (default 10)"
// @Success 200 {array} analytics.ProducerRevenue "Ranked producers"
// @Failure 400 {object} models.ErrorResponse "Invalid month"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/analytics/top-producers [get]
func (h *AnalyticsHandler) TopProducers(c echo.Context) error {
	month := c.QueryParam("month")
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	result, err := h.service.GetTopProducers(ctx, month, limit)
	if err != nil {
		if err == payout.ErrInvalidMonth {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_month",
				Message: "Month must be in YYYY-MM format",
			})
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}

// PayoutTotals godoc
// @Summary Payout totals
// @Description Status counts and amounts for a month's payout records
// @Tags Analytics
// @Produce json
// @Param month query string true "Month in YYYY-MM format"
// @Success 200 {object} analytics.PayoutTotals "Payout summary"
// @Failure 400 {object} models.ErrorResponse "Invalid month"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/analytics/payout-totals [get]
func (h *AnalyticsHandler) PayoutTotals(c echo.Context) error {
	month := c.QueryParam("month")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 30*time.Second)
	defer cancel()

	result, err := h.service.GetPayoutTotals(ctx, month)
	if err != nil {
		if err == payout.ErrInvalidMonth {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_month",
				Message: "Month must be in YYYY-MM format",
			})
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, result)
}
