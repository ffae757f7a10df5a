package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "tourguide/internal/errors"
	"tourguide/internal/service"
)

// EventReviewHandler handles event review endpoints.
type EventReviewHandler struct {
	eventReviewService service.EventReviewService
}

// NewEventReviewHandler creates a new event review handler.
func NewEventReviewHandler(eventReviewService service.EventReviewService) *EventReviewHandler {
	return &EventReviewHandler{eventReviewService: eventReviewService}
}

// CreateEventReviewRequest represents a new event review payload.
type CreateEventReviewRequest struct {
	EventID   string   `json:"event_id" validate:"required,uuid"`
	Rate      int      `json:"rate" validate:"required,min=1,max=5"`
	Review    string   `json:"review" validate:"required"`
	ImageURLs []string `json:"image_urls"`
}

// UpdateEventReviewRequest represents a partial event review update.
type UpdateEventReviewRequest struct {
	Rate      *int     `json:"rate" validate:"omitempty,min=1,max=5"`
	Review    *string  `json:"review"`
	ImageURLs []string `json:"image_urls"`
}

// CreateEventReview godoc
// @Summary Create a review for an event
// @Tags event-reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateEventReviewRequest true "Review payload"
// @Success 201 {object} model.EventReview
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /event-reviews [post]
func (h *EventReviewHandler) CreateEventReview(c echo.Context) error {
	var req CreateEventReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	eventID, err := uuid.Parse(req.EventID)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid event id")
	}

	review, err := h.eventReviewService.Create(c.Request().Context(), principalFrom(c), service.CreateEventReviewInput{
		EventID:   eventID,
		Rate:      req.Rate,
		Review:    req.Review,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, review)
}

// UpdateEventReview godoc
// @Summary Update an event review (author only)
// @Tags event-reviews
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Param request body UpdateEventReviewRequest true "Fields to update"
// @Success 200 {object} model.EventReview
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /event-reviews/{id} [put]
func (h *EventReviewHandler) UpdateEventReview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateEventReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	review, err := h.eventReviewService.Update(c.Request().Context(), principalFrom(c), id, service.UpdateEventReviewInput{
		Rate:      req.Rate,
		Review:    req.Review,
		ImageURLs: req.ImageURLs,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, review)
}

// DeleteEventReview godoc
// @Summary Delete an event review (author or admin)
// @Tags event-reviews
// @Security BearerAuth
// @Param id path string true "Review ID"
// @Success 200 {object} map[string]string
// @Failure 401 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /event-reviews/{id} [delete]
func (h *EventReviewHandler) DeleteEventReview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.eventReviewService.Delete(c.Request().Context(), principalFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "review deleted"})
}

// GetEventReview godoc
// @Summary Get an event review by id
// @Tags event-reviews
// @Produce json
// @Param id path string true "Review ID"
// @Success 200 {object} model.EventReview
// @Failure 404 {object} errors.ErrorResponse
// @Router /event-reviews/{id} [get]
func (h *EventReviewHandler) GetEventReview(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	review, err := h.eventReviewService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, review)
}

// ListEventReviews godoc
// @Summary List reviews for an event
// @Tags event-reviews
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {array} model.EventReview
// @Router /events/{id}/reviews [get]
func (h *EventReviewHandler) ListEventReviews(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	reviews, err := h.eventReviewService.ListByEvent(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// ListMyEventReviews godoc
// @Summary List the caller's event reviews
// @Tags event-reviews
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.EventReview
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/event-reviews [get]
func (h *EventReviewHandler) ListMyEventReviews(c echo.Context) error {
	principal := principalFrom(c)
	if principal == nil {
		return respondError(apperrors.ErrUnauthorized)
	}
	reviews, err := h.eventReviewService.ListByAuthor(c.Request().Context(), principal.ID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, reviews)
}

// GetEventRatingSummary godoc
// @Summary Aggregate rating for an event
// @Tags event-reviews
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} model.EventRatingSummary
// @Router /events/{id}/rating [get]
func (h *EventReviewHandler) GetEventRatingSummary(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	summary, err := h.eventReviewService.RatingSummary(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, summary)
}
