package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "tourguide/internal/errors"
	"tourguide/internal/service"
)

// HotelHandler handles hotel listing endpoints.
type HotelHandler struct {
	hotelService service.HotelService
}

// NewHotelHandler creates a new hotel handler.
func NewHotelHandler(hotelService service.HotelService) *HotelHandler {
	return &HotelHandler{hotelService: hotelService}
}

// CreateHotelRequest represents a new hotel listing payload.
type CreateHotelRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Location    string   `json:"location" validate:"required"`
	PriceRange  string   `json:"price_range"`
	Amenities   []string `json:"amenities"`
	ImageURLs   []string `json:"image_urls"`
}

// UpdateHotelRequest represents a partial hotel update.
type UpdateHotelRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Location    *string  `json:"location"`
	PriceRange  *string  `json:"price_range"`
	Amenities   []string `json:"amenities"`
	ImageURLs   []string `json:"image_urls"`
}

// CreateHotel godoc
// @Summary Create a hotel listing
// @Description First listing by a non-admin user grants the HOTEL_OWNER role.
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateHotelRequest true "Hotel payload"
// @Success 201 {object} model.Hotel
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Router /hotels [post]
func (h *HotelHandler) CreateHotel(c echo.Context) error {
	var req CreateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	hotel, err := h.hotelService.Create(c.Request().Context(), principalFrom(c), service.CreateHotelInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		PriceRange:  req.PriceRange,
		Amenities:   req.Amenities,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusCreated, hotel)
}

// UpdateHotel godoc
// @Summary Update a hotel listing (owner or admin)
// @Tags hotels
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Param request body UpdateHotelRequest true "Fields to update"
// @Success 200 {object} model.Hotel
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /hotels/{id} [put]
func (h *HotelHandler) UpdateHotel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateHotelRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	hotel, err := h.hotelService.Update(c.Request().Context(), principalFrom(c), id, service.UpdateHotelInput{
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
		PriceRange:  req.PriceRange,
		Amenities:   req.Amenities,
		ImageURLs:   req.ImageURLs,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, hotel)
}

// DeleteHotel godoc
// @Summary Delete a hotel listing (owner or admin)
// @Tags hotels
// @Security BearerAuth
// @Param id path string true "Hotel ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /hotels/{id} [delete]
func (h *HotelHandler) DeleteHotel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.hotelService.Delete(c.Request().Context(), principalFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "hotel deleted"})
}

// GetHotel godoc
// @Summary Get a hotel by id
// @Tags hotels
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} model.Hotel
// @Failure 404 {object} errors.ErrorResponse
// @Router /hotels/{id} [get]
func (h *HotelHandler) GetHotel(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	hotel, err := h.hotelService.GetByID(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, hotel)
}

// ListHotels godoc
// @Summary List hotels
// @Tags hotels
// @Produce json
// @Success 200 {array} model.Hotel
// @Router /hotels [get]
func (h *HotelHandler) ListHotels(c echo.Context) error {
	hotels, err := h.hotelService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, hotels)
}

// ListMyHotels godoc
// @Summary List the caller's hotel listings
// @Tags hotels
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Hotel
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/hotels [get]
func (h *HotelHandler) ListMyHotels(c echo.Context) error {
	principal := principalFrom(c)
	if principal == nil {
		return respondError(apperrors.ErrUnauthorized)
	}
	hotels, err := h.hotelService.ListByOwner(c.Request().Context(), principal.ID)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, hotels)
}
