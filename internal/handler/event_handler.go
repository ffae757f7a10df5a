package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"tourguide/internal/model"
	"tourguide/internal/service"
)

// EventHandler handles event catalog endpoints.
type EventHandler struct {
	eventService service.EventService
}

// NewEventHandler creates a new event handler.
func NewEventHandler(eventService service.EventService) *EventHandler {
	return &EventHandler{eventService: eventService}
}

// EventRequest represents an event create/update payload.
type EventRequest struct {
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description"`
	Location    string    `json:"location" validate:"required"`
	Start       time.Time `json:"start" validate:"required"`
	End         time.Time `json:"end"`
	ImageURLs   []string  `json:"image_urls"`
}

func (r *EventRequest) toInput() service.CreateEventInput {
	return service.CreateEventInput{
		Title:       r.Title,
		Description: r.Description,
		Location:    r.Location,
		Start:       r.Start,
		End:         r.End,
		ImageURLs:   r.ImageURLs,
	}
}

// EventResponse wraps an event with caller-specific flags. IsFavorite is
// present only when a principal was resolved for the request.
type EventResponse struct {
	*model.Event
	IsFavorite *bool `json:"is_favorite,omitempty"`
}

// CreateEvent godoc
// @Summary Create an event (admin)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body EventRequest true "Event payload"
// @Success 201 {object} model.Event
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /events [post]
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.eventService.Create(c.Request().Context(), principalFrom(c), req.toInput())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, event)
}

// UpdateEvent godoc
// @Summary Update an event (admin)
// @Tags events
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Param request body EventRequest true "Event payload"
// @Success 200 {object} model.Event
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [put]
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req EventRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	event, err := h.eventService.Update(c.Request().Context(), principalFrom(c), id, req.toInput())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, event)
}

// DeleteEvent godoc
// @Summary Delete an event (admin)
// @Tags events
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [delete]
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.eventService.Delete(c.Request().Context(), principalFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "event deleted"})
}

// GetEvent godoc
// @Summary Get an event by id
// @Tags events
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} EventResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /events/{id} [get]
func (h *EventHandler) GetEvent(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	event, err := h.eventService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}

	resp := EventResponse{Event: event}
	if principal := principalFrom(c); principal != nil {
		favorite := principal.FavoriteEventIDs.Has(id)
		resp.IsFavorite = &favorite
	}
	return c.JSON(http.StatusOK, resp)
}

// ListEvents godoc
// @Summary List events
// @Tags events
// @Produce json
// @Success 200 {array} model.Event
// @Router /events [get]
func (h *EventHandler) ListEvents(c echo.Context) error {
	events, err := h.eventService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, events)
}
