package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/tracklane/tracklane/ent"
	apierrors "github.com/tracklane/tracklane/pkg/api/errors"
	"github.com/tracklane/tracklane/pkg/models"
	"github.com/tracklane/tracklane/pkg/payout"
)

// SettingsHandler handles the compensation settings singleton
type SettingsHandler struct {
	db *ent.Client
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(db *ent.Client) *SettingsHandler {
	return &SettingsHandler{db: db}
}

// Get godoc
// @Summary Get compensation settings
// @Description Returns the current compensation rates, or the hardcoded defaults if never saved
// @Tags Settings
// @Produce json
// @Success 200 {object} models.CompensationSettingsResponse
// @Security BearerAuth
// @Router /api/v1/admin/settings/compensation [get]
func (h *SettingsHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	rates, err := payout.LoadRates(ctx, h.db)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.CompensationSettingsResponse{
		StandardRate:         rates.Standard,
		ExclusiveRate:        rates.Exclusive,
		SyncFeeRate:          rates.SyncFee,
		VolumeBonusRate:      rates.VolumeBonus,
		VolumeBonusThreshold: rates.VolumeBonusThreshold,
	})
}

// Update godoc
// @Summary Update compensation settings
// @Description Upserts the compensation rates singleton used by the payout generator
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body models.CompensationSettingsRequest true "New rates"
// @Success 200 {object} models.CompensationSettingsResponse
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /api/v1/admin/settings/compensation [put]
func (h *SettingsHandler) Update(c echo.Context) error {
	var req models.CompensationSettingsRequest
	if err := c.Bind(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	// Upsert by the fixed singleton ID
	exists, err := h.db.CompensationSettings.Query().Exist(ctx)
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	if exists {
		err = h.db.CompensationSettings.UpdateOneID(1).
			SetStandardRate(req.StandardRate).
			SetExclusiveRate(req.ExclusiveRate).
			SetSyncFeeRate(req.SyncFeeRate).
			SetVolumeBonusRate(req.VolumeBonusRate).
			SetVolumeBonusThreshold(req.VolumeBonusThreshold).
			Exec(ctx)
	} else {
		err = h.db.CompensationSettings.Create().
			SetID(1).
			SetStandardRate(req.StandardRate).
			SetExclusiveRate(req.ExclusiveRate).
			SetSyncFeeRate(req.SyncFeeRate).
			SetVolumeBonusRate(req.VolumeBonusRate).
			SetVolumeBonusThreshold(req.VolumeBonusThreshold).
			Exec(ctx)
	}
	if err != nil {
		return apierrors.DatabaseError(c, err)
	}

	return c.JSON(http.StatusOK, models.CompensationSettingsResponse{
		StandardRate:         req.StandardRate,
		ExclusiveRate:        req.ExclusiveRate,
		SyncFeeRate:          req.SyncFeeRate,
		VolumeBonusRate:      req.VolumeBonusRate,
		VolumeBonusThreshold: req.VolumeBonusThreshold,
	})
}
