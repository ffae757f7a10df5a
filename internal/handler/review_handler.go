package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "tourguide/internal/errors"
	"tourguide/internal/service"
)

// ReviewHandler handles destination review endpoints.
type ReviewHandler struct {
	reviewService service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(reviewService service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

// CreateReviewRequest represents a new review payload.
type CreateReviewRequest struct {
	DestinationID string   `json:"destination_id" validate:"required,uuid"`
	Rate          int      `json:"rate" validate:"required,min=1,max=5"`
	Review        string   `json:"review" validate:"required"`
	ImageURLs     []string `json:"image_urls"`
}

// UpdateReviewRequest represents a partial review update.
type UpdateReviewRequest struct {
	Rate      *int     `json:"rate" validate:"omitempty,min=1,max=5"`
	Review    *string  `json:"review"`
	ImageURLs []string `json:"image_urls"`
}

// CreateReview godoc
// @Summary Create a review for a destination
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateReviewRequest true "Review payload"
// @Success 201 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	destinationID, err := uuid.Parse(req.DestinationID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid destination id")
	}

	review, err := h.reviewService.Create(c.Request().Context(), principalFrom(c), service.CreateReviewInput{
		DestinationID: destinationID,
		Rate:          req.Rate,
		Review:        req.Review,
		ImageURLs:     req.ImageURLs,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

// UpdateReview godoc
// @Summary Update a review (author only)
// @Tags reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body UpdateReviewRequest true "Fields to update"
// @Success 200 {object} model.Review
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [put]
func (h *ReviewHandler) UpdateReview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviewService.Update(c.Request().Context(), principalFrom(c), id, service.UpdateReviewInput{
		Rate:      req.Rate,
		Review:    req.Review,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, review)
}

// DeleteReview godoc
// @Summary Delete a review (author or admin)
// @Tags reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [delete]
func (h *ReviewHandler) DeleteReview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.reviewService.Delete(c.Request().Context(), principalFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "review deleted"})
}

// GetReview godoc
// @Summary Get a review by id
// @Tags reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} model.Review
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews/{id} [get]
func (h *ReviewHandler) GetReview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	review, err := h.reviewService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, review)
}

// ListDestinationReviews godoc
// @Summary List reviews for a destination
// @Tags reviews
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {array} model.Review
// @Router /destinations/{id}/reviews [get]
func (h *ReviewHandler) ListDestinationReviews(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	reviews, err := h.reviewService.ListByDestination(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListMyReviews godoc
// @Summary List the caller's reviews
// @Tags reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Review
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/reviews [get]
func (h *ReviewHandler) ListMyReviews(c echo.Context) error {
	principal := principalFrom(c)
	if principal == nil {
		return respondError(apperrors.ErrUnauthorized)
	}
	reviews, err := h.reviewService.ListByAuthor(c.Request().Context(), principal.ID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// GetRatingSummary godoc
// @Summary Aggregate rating for a destination
// @Tags reviews
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} model.RatingSummary
// @Router /destinations/{id}/rating [get]
func (h *ReviewHandler) GetRatingSummary(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	summary, err := h.reviewService.RatingSummary(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
