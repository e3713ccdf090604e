package handlers

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/labstack/echo/v4"
	apierrors "github.com/tracklane/tracklane/pkg/api/errors"
	"github.com/tracklane/tracklane/pkg/export"
	"github.com/tracklane/tracklane/pkg/models"
	"github.com/tracklane/tracklane/pkg/payout"
)

// ExportHandler handles payout report downloads
type ExportHandler struct {
	service *export.Service
}

// NewExportHandler creates a new export handler
func NewExportHandler(service *export.Service) *ExportHandler {
	return &ExportHandler{service: service}
}

// PayoutReport godoc
// @Summary Download payout report
// @Description Generate and download an Excel report of a month's payout records
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param month query string true "Month in YYYY-MM format"
// @Success 200 {file} file "Payout report"
// @Failure 400 {object} models.ErrorResponse "Invalid month"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Security BearerAuth
// @Router /admin/payouts/export [get]
func (h *ExportHandler) PayoutReport(c echo.Context) error {
	month := c.QueryParam("month")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Minute)
	defer cancel()

	path, err := h.service.GeneratePayoutReport(ctx, month)
	if err != nil {
		if err == payout.ErrInvalidMonth {
			return c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "invalid_month",
				Message: "Month must be in YYYY-MM format",
			})
		}
		return apierrors.InternalError(c, err)
	}

	return c.Attachment(path, fmt.Sprintf("payouts-%s%s", month, filepath.Ext(path)))
}
