package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/tracklane/tracklane/ent"
	apierrors "github.com/tracklane/tracklane/pkg/api/errors"
	"github.com/tracklane/tracklane/pkg/catalog"
	"github.com/tracklane/tracklane/pkg/models"
)

// TrackHandler handles catalog endpoints
type TrackHandler struct {
	service   *catalog.Service
	validator *validator.Validate
}

// NewTrackHandler creates a new track handler
func NewTrackHandler(service *catalog.Service) *TrackHandler {
	return &TrackHandler{
		service:   service,
		validator: validator.New(),
	}
}

// List godoc
// @Summary List published tracks
// @Description Browse the public catalog with genre, BPM and title filters
// @Tags Catalog
// @Produce json
// @Param genre query string false "Genre filter"
// @Param search query string false "Title search (case-insensitive)"
// @Param min_bpm query int false "Minimum BPM"
// @Param max_bpm query int false "Maximum BPM"
// @Param limit query int false "Page size (max 100)"
// @Param offset query int false "Page offset"
// @Success 200 {object} models.TrackListResponse "Track listing"
// @Failure 500 {object} models.ErrorResponse "Internal server error"
// @Router /tracks [get]
func (h *TrackHandler) List(c echo.Context) error {
	var filters models.TrackFilters
	if err := c.Bind(&filters); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid query parameters",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	resp, err := h.service.List(ctx, filters)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, resp)
}

// Get godoc
// @Summary Get a track
// @Description Fetch a single published track by ID
// @Tags Catalog
// @Produce json
// @Param id path int true "Track ID"
// @Success 200 {object} models.TrackInfo "Track"
// @Failure 404 {object} models.ErrorResponse "Track not found"
// @Router /tracks/{id} [get]
func (h *TrackHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid track ID",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	info, err := h.service.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return apierrors.NotFoundError(c, "Track")
		}
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusOK, info)
}

// Create godoc
// @Summary Create a track
// @Description Add a new draft track to the producer's catalog
// @Tags Catalog
// @Accept json
// @Produce json
// @Param request body models.CreateTrackRequest true "Track data"
// @Success 201 {object} models.TrackInfo "Created track"
// @Failure 400 {object} models.ErrorResponse "Invalid request"
// @Failure 401 {object} models.ErrorResponse "Unauthorized"
// @Failure 403 {object} models.ErrorResponse "Producer role required"
// @Security BearerAuth
// @Router /tracks [post]
func (h *TrackHandler) Create(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "Authentication required")
	}

	var req models.CreateTrackRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid request body",
		})
	}

	if err := h.validator.Struct(req); err != nil {
		return apierrors.ValidationError(c, err)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	info, err := h.service.Create(ctx, userID, req)
	if err != nil {
		return apierrors.InternalError(c, err)
	}

	return c.JSON(http.StatusCreated, info)
}

// Publish godoc
// @Summary Publish a track
// @Description Move a draft track into the public catalog
// @Tags Catalog
// @Produce json
// @Param id path int true "Track ID"
// @Success 200 {object} models.TrackInfo "Published track"
// @Failure 403 {object} models.ErrorResponse "Not the track owner"
// @Failure 404 {object} models.ErrorResponse "Track not found"
// @Failure 409 {object} models.ErrorResponse "Track exclusively sold"
// @Security BearerAuth
// @Router /tracks/{id}/publish [post]
func (h *TrackHandler) Publish(c echo.Context) error {
	userID, ok := c.Get("user_id").(int)
	if !ok {
		return apierrors.UnauthorizedError(c, "Authentication required")
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Invalid track ID",
		})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	info, err := h.service.Publish(ctx, userID, id)
	if err != nil {
		switch {
		case ent.IsNotFound(err):
			return apierrors.NotFoundError(c, "Track")
		case err == catalog.ErrNotOwner:
			return apierrors.ForbiddenError(c, "You can only publish your own tracks")
		case err == catalog.ErrExclusivelySold:
			return apierrors.ConflictError(c, "Track has been sold exclusively and cannot be republished")
		default:
			return apierrors.InternalError(c, err)
		}
	}

	return c.JSON(http.StatusOK, info)
}
