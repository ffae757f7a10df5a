package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"tourguide/internal/model"
	"tourguide/internal/service"
)

// DestinationHandler handles destination catalog endpoints.
type DestinationHandler struct {
	destinationService service.DestinationService
}

// NewDestinationHandler creates a new destination handler.
func NewDestinationHandler(destinationService service.DestinationService) *DestinationHandler {
	return &DestinationHandler{destinationService: destinationService}
}

// DestinationRequest represents a destination create/update payload.
type DestinationRequest struct {
	Title             string   `json:"title" validate:"required"`
	Description       string   `json:"description"`
	Location          string   `json:"location" validate:"required"`
	Latitude          float64  `json:"latitude"`
	Longitude         float64  `json:"longitude"`
	BestSeasonToVisit string   `json:"best_season_to_visit"`
	ImageURLs         []string `json:"image_urls"`
}

func (r *DestinationRequest) toInput() service.CreateDestinationInput {
	return service.CreateDestinationInput{
		Title:             r.Title,
		Description:       r.Description,
		Location:          r.Location,
		Latitude:          r.Latitude,
		Longitude:         r.Longitude,
		BestSeasonToVisit: r.BestSeasonToVisit,
		ImageURLs:         r.ImageURLs,
	}
}

// DestinationResponse wraps a destination with caller-specific flags.
// IsFavorite is present only when a principal was resolved for the request.
type DestinationResponse struct {
	*model.Destination
	IsFavorite *bool `json:"is_favorite,omitempty"`
}

// CreateDestination godoc
// @Summary Create a destination (admin)
// @Tags destinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body DestinationRequest true "Destination payload"
// @Success 201 {object} model.Destination
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /destinations [post]
func (h *DestinationHandler) CreateDestination(c echo.Context) error {
	var req DestinationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	destination, err := h.destinationService.Create(c.Request().Context(), principalFrom(c), req.toInput())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, destination)
}

// UpdateDestination godoc
// @Summary Update a destination (admin)
// @Tags destinations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Param request body DestinationRequest true "Destination payload"
// @Success 200 {object} model.Destination
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /destinations/{id} [put]
func (h *DestinationHandler) UpdateDestination(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req DestinationRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	destination, err := h.destinationService.Update(c.Request().Context(), principalFrom(c), id, req.toInput())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, destination)
}

// DeleteDestination godoc
// @Summary Delete a destination (admin)
// @Tags destinations
// @Security BearerAuth
// @Param id path string true "Destination ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /destinations/{id} [delete]
func (h *DestinationHandler) DeleteDestination(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.destinationService.Delete(c.Request().Context(), principalFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "destination deleted"})
}

// GetDestination godoc
// @Summary Get a destination by id
// @Tags destinations
// @Produce json
// @Param id path string true "Destination ID"
// @Success 200 {object} DestinationResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /destinations/{id} [get]
func (h *DestinationHandler) GetDestination(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	destination, err := h.destinationService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}

	resp := DestinationResponse{Destination: destination}
	if principal := principalFrom(c); principal != nil {
		favorite := principal.FavoriteDestinationIDs.Has(id)
		resp.IsFavorite = &favorite
	}
	return c.JSON(http.StatusOK, resp)
}

// ListDestinations godoc
// @Summary List destinations
// @Tags destinations
// @Produce json
// @Success 200 {array} model.Destination
// @Router /destinations [get]
func (h *DestinationHandler) ListDestinations(c echo.Context) error {
	destinations, err := h.destinationService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, destinations)
}
