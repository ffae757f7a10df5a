package handler

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"tourguide/internal/service"
)

// UserHandler handles user profile and administration endpoints.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// UpdateUserRequest represents a partial profile update.
type UpdateUserRequest struct {
	Username    *string `json:"username" validate:"omitempty,min=3,max=20"`
	Email       *string `json:"email" validate:"omitempty,email"`
	FirstName   *string `json:"first_name"`
	LastName    *string `json:"last_name"`
	PhoneNumber *string `json:"phone_number"`
}

func parseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// ListUsers godoc
// @Summary List all users (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.UserSummary
// @Failure 403 {object} errors.ErrorResponse
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.userService.List(c.Request().Context())
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, users)
}

// GetUser godoc
// @Summary Get user by id
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} model.UserSummary
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userService.GetSummary(c.Request().Context(), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// GetUserByUsername godoc
// @Summary Get user by username
// @Tags users
// @Produce json
// @Param username path string true "Username"
// @Success 200 {object} model.UserSummary
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/by-username/{username} [get]
func (h *UserHandler) GetUserByUsername(c echo.Context) error {
	user, err := h.userService.GetByUsername(c.Request().Context(), c.Param("username"))
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateUser godoc
// @Summary Update profile fields (owner or admin)
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Param request body UpdateUserRequest true "Fields to update"
// @Success 200 {object} model.UserSummary
// @Failure 400 {object} errors.ErrorResponse
// @Failure 403 {object} errors.ErrorResponse
// @Router /users/{id} [put]
func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.userService.UpdateProfile(c.Request().Context(), principalFrom(c), id, service.UpdateProfileInput{
		Username:    req.Username,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		PhoneNumber: req.PhoneNumber,
	})
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// DeleteUser godoc
// @Summary Delete a user (admin)
// @Tags users
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.userService.Delete(c.Request().Context(), principalFrom(c), id); err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "user deleted"})
}

// ToggleUserStatus godoc
// @Summary Toggle a user's enabled flag (admin)
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param id path string true "User ID"
// @Success 200 {object} model.UserSummary
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /users/{id}/status [patch]
func (h *UserHandler) ToggleUserStatus(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	user, err := h.userService.ToggleEnabled(c.Request().Context(), principalFrom(c), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, user)
}

// AddFavoriteDestination godoc
// @Summary Add a destination to the caller's favorites
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param destinationId path string true "Destination ID"
// @Success 200 {array} string
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/favorites/destinations/{destinationId} [post]
func (h *UserHandler) AddFavoriteDestination(c echo.Context) error {
	id, err := parseID(c, "destinationId")
	if err != nil {
		return err
	}
	favorites, err := h.userService.AddFavoriteDestination(c.Request().Context(), principalFrom(c), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, favorites)
}

// RemoveFavoriteDestination godoc
// @Summary Remove a destination from the caller's favorites
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param destinationId path string true "Destination ID"
// @Success 200 {array} string
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/favorites/destinations/{destinationId} [delete]
func (h *UserHandler) RemoveFavoriteDestination(c echo.Context) error {
	id, err := parseID(c, "destinationId")
	if err != nil {
		return err
	}
	favorites, err := h.userService.RemoveFavoriteDestination(c.Request().Context(), principalFrom(c), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, favorites)
}

// AddFavoriteEvent godoc
// @Summary Add an event to the caller's favorites
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {array} string
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/favorites/events/{eventId} [post]
func (h *UserHandler) AddFavoriteEvent(c echo.Context) error {
	id, err := parseID(c, "eventId")
	if err != nil {
		return err
	}
	favorites, err := h.userService.AddFavoriteEvent(c.Request().Context(), principalFrom(c), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, favorites)
}

// RemoveFavoriteEvent godoc
// @Summary Remove an event from the caller's favorites
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param eventId path string true "Event ID"
// @Success 200 {array} string
// @Failure 401 {object} errors.ErrorResponse
// @Router /me/favorites/events/{eventId} [delete]
func (h *UserHandler) RemoveFavoriteEvent(c echo.Context) error {
	id, err := parseID(c, "eventId")
	if err != nil {
		return err
	}
	favorites, err := h.userService.RemoveFavoriteEvent(c.Request().Context(), principalFrom(c), id)
	if err != nil {
		return respondError(err)
	}
	return c.JSON(http.StatusOK, favorites)
}
