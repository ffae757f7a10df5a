package main

import (
	"log"
	"net/http"

	_ "tourguide/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"tourguide/internal/auth"
	"tourguide/internal/cache"
	"tourguide/internal/config"
	"tourguide/internal/db"
	"tourguide/internal/handler"
	"tourguide/internal/model"
	"tourguide/internal/repository"
	"tourguide/internal/router"
	"tourguide/internal/service"
)

// @title Tour Guide API
// @version 1.0
// @description Travel platform API with destinations, events, hotels, reviews and JWT authentication.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Destination{},
		&model.Event{},
		&model.EventReview{},
		&model.Hotel{},
		&model.Review{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	destinationRepo := repository.NewDestinationRepository(gormDB)
	eventRepo := repository.NewEventRepository(gormDB)
	eventReviewRepo := repository.NewEventReviewRepository(gormDB)
	hotelRepo := repository.NewHotelRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)

	// Initialize auth components
	tokenService := auth.NewTokenService(cfg.JWTSecret, cfg.JWTTTL)

	// Initialize services
	authService := service.NewAuthService(userRepo, tokenService)
	userService := service.NewUserService(userRepo, cacheClient)
	destinationService := service.NewDestinationService(destinationRepo)
	eventService := service.NewEventService(eventRepo)
	eventReviewService := service.NewEventReviewService(eventReviewRepo, eventRepo, cacheClient)
	hotelService := service.NewHotelService(hotelRepo, userRepo)
	reviewService := service.NewReviewService(reviewRepo, destinationRepo, cacheClient)

	// Register routes
	router.Register(e, tokenService, userRepo, router.Handlers{
		Auth:        handler.NewAuthHandler(authService, userService),
		User:        handler.NewUserHandler(userService),
		Destination: handler.NewDestinationHandler(destinationService),
		Event:       handler.NewEventHandler(eventService),
		EventReview: handler.NewEventReviewHandler(eventReviewService),
		Hotel:       handler.NewHotelHandler(hotelService),
		Review:      handler.NewReviewHandler(reviewService),
	})

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: %s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
