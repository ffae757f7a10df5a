package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"tourguide/internal/auth"
	"tourguide/internal/handler"
	"tourguide/internal/model"
	"tourguide/internal/repository"
)

// Handlers bundles everything Register wires into the Echo instance.
type Handlers struct {
	Auth        *handler.AuthHandler
	User        *handler.UserHandler
	Destination *handler.DestinationHandler
	Event       *handler.EventHandler
	EventReview *handler.EventReviewHandler
	Hotel       *handler.HotelHandler
	Review      *handler.ReviewHandler
}

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	tokens *auth.TokenService,
	users repository.UserRepository,
	h Handlers,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")

	// Public routes
	api.POST("/auth/register", h.Auth.Register)
	api.POST("/auth/login", h.Auth.Login)
	api.GET("/users/:id", h.User.GetUser)
	api.GET("/users/by-username/:username", h.User.GetUserByUsername)
	api.GET("/destinations", h.Destination.ListDestinations)
	api.GET("/destinations/:id", h.Destination.GetDestination, OptionalAuthenticated(tokens, users))
	api.GET("/destinations/:id/reviews", h.Review.ListDestinationReviews)
	api.GET("/destinations/:id/rating", h.Review.GetRatingSummary)
	api.GET("/events", h.Event.ListEvents)
	api.GET("/events/:id", h.Event.GetEvent, OptionalAuthenticated(tokens, users))
	api.GET("/events/:id/reviews", h.EventReview.ListEventReviews)
	api.GET("/events/:id/rating", h.EventReview.GetEventRatingSummary)
	api.GET("/hotels", h.Hotel.ListHotels)
	api.GET("/hotels/:id", h.Hotel.GetHotel)
	api.GET("/reviews/:id", h.Review.GetReview)
	api.GET("/event-reviews/:id", h.EventReview.GetEventReview)

	// Secured routes: token verification plus live-record principal resolution.
	secured := api.Group("", Authenticated(tokens, users)...)

	secured.GET("/auth/me", h.Auth.Me)
	secured.POST("/auth/password", h.Auth.ChangePassword)

	secured.PUT("/users/:id", h.User.UpdateUser)

	secured.POST("/reviews", h.Review.CreateReview)
	secured.PUT("/reviews/:id", h.Review.UpdateReview)
	secured.DELETE("/reviews/:id", h.Review.DeleteReview)

	secured.POST("/event-reviews", h.EventReview.CreateEventReview)
	secured.PUT("/event-reviews/:id", h.EventReview.UpdateEventReview)
	secured.DELETE("/event-reviews/:id", h.EventReview.DeleteEventReview)

	secured.POST("/hotels", h.Hotel.CreateHotel)
	secured.PUT("/hotels/:id", h.Hotel.UpdateHotel)
	secured.DELETE("/hotels/:id", h.Hotel.DeleteHotel)
	secured.GET("/me/hotels", h.Hotel.ListMyHotels)
	secured.GET("/me/reviews", h.Review.ListMyReviews)
	secured.GET("/me/event-reviews", h.EventReview.ListMyEventReviews)

	secured.POST("/me/favorites/destinations/:destinationId", h.User.AddFavoriteDestination)
	secured.DELETE("/me/favorites/destinations/:destinationId", h.User.RemoveFavoriteDestination)
	secured.POST("/me/favorites/events/:eventId", h.User.AddFavoriteEvent)
	secured.DELETE("/me/favorites/events/:eventId", h.User.RemoveFavoriteEvent)

	// Admin routes. The services re-check privilege; the route guard exists
	// so unauthorized callers fail before touching them.
	admin := secured.Group("", RequireRoles(model.RoleAdmin))

	admin.GET("/users", h.User.ListUsers)
	admin.DELETE("/users/:id", h.User.DeleteUser)
	admin.PATCH("/users/:id/status", h.User.ToggleUserStatus)

	admin.POST("/destinations", h.Destination.CreateDestination)
	admin.PUT("/destinations/:id", h.Destination.UpdateDestination)
	admin.DELETE("/destinations/:id", h.Destination.DeleteDestination)

	admin.POST("/events", h.Event.CreateEvent)
	admin.PUT("/events/:id", h.Event.UpdateEvent)
	admin.DELETE("/events/:id", h.Event.DeleteEvent)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
