package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"tourguide/internal/auth"
	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
	"tourguide/internal/repository"
)

// CreateHotelInput holds a new hotel listing.
type CreateHotelInput struct {
	Name        string
	Description string
	Location    string
	PriceRange  string
	Amenities   []string
	ImageURLs   []string
}

// UpdateHotelInput holds the fields an owner may change. Nil means "leave
// unchanged".
type UpdateHotelInput struct {
	Name        *string
	Description *string
	Location    *string
	PriceRange  *string
	Amenities   []string
	ImageURLs   []string
}

// HotelService manages hotel listings. Creating a first listing grants the
// HOTEL_OWNER role to non-admin users; callers holding an older token see the
// new role on their next request because principals are rebuilt from the live
// record.
type HotelService interface {
	Create(ctx context.Context, principal *auth.Principal, input CreateHotelInput) (*model.Hotel, error)
	Update(ctx context.Context, principal *auth.Principal, hotelID uuid.UUID, input UpdateHotelInput) (*model.Hotel, error)
	Delete(ctx context.Context, principal *auth.Principal, hotelID uuid.UUID) error
	GetByID(ctx context.Context, hotelID uuid.UUID) (*model.Hotel, error)
	List(ctx context.Context) ([]model.Hotel, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Hotel, error)
}

type hotelService struct {
	hotels repository.HotelRepository
	users  repository.UserRepository
}

// NewHotelService creates a hotel service.
func NewHotelService(hotels repository.HotelRepository, users repository.UserRepository) HotelService {
	return &hotelService{hotels: hotels, users: users}
}

func (s *hotelService) Create(ctx context.Context, principal *auth.Principal, input CreateHotelInput) (*model.Hotel, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}

	hotel := &model.Hotel{
		Name:        input.Name,
		Description: input.Description,
		Location:    input.Location,
		PriceRange:  input.PriceRange,
		Amenities:   input.Amenities,
		ImageURLs:   input.ImageURLs,
		OwnerID:     principal.ID,
	}
	if err := s.hotels.Create(ctx, hotel); err != nil {
		return nil, err
	}

	if err := s.grantOwnerRole(ctx, principal); err != nil {
		// The listing exists; a failed role grant should not undo it.
		log.Printf("grant HOTEL_OWNER to %s: %v", principal.Username, err)
	}

	return hotel, nil
}

// grantOwnerRole adds HOTEL_OWNER to the live user record unless the user is
// an admin or already carries it.
func (s *hotelService) grantOwnerRole(ctx context.Context, principal *auth.Principal) error {
	if principal.HasRole(model.RoleAdmin) {
		return nil
	}

	user, err := s.users.FindByID(ctx, principal.ID)
	if err != nil {
		return fmt.Errorf("look up user: %w", err)
	}
	if !user.Roles.Add(model.RoleHotelOwner) {
		return nil
	}
	return s.users.Update(ctx, user)
}

func (s *hotelService) Update(ctx context.Context, principal *auth.Principal, hotelID uuid.UUID, input UpdateHotelInput) (*model.Hotel, error) {
	hotel, err := s.hotels.FindByID(ctx, hotelID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if err := auth.RequireOwnerOr(principal, hotel.OwnerID, model.RoleAdmin); err != nil {
		return nil, err
	}

	if input.Name != nil {
		hotel.Name = *input.Name
	}
	if input.Description != nil {
		hotel.Description = *input.Description
	}
	if input.Location != nil {
		hotel.Location = *input.Location
	}
	if input.PriceRange != nil {
		hotel.PriceRange = *input.PriceRange
	}
	if input.Amenities != nil {
		hotel.Amenities = input.Amenities
	}
	if input.ImageURLs != nil {
		hotel.ImageURLs = input.ImageURLs
	}

	if err := s.hotels.Update(ctx, hotel); err != nil {
		return nil, err
	}
	return hotel, nil
}

func (s *hotelService) Delete(ctx context.Context, principal *auth.Principal, hotelID uuid.UUID) error {
	hotel, err := s.hotels.FindByID(ctx, hotelID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrNotFound
		}
		return err
	}

	if err := auth.RequireOwnerOrModerator(principal, hotel.OwnerID); err != nil {
		return err
	}

	return s.hotels.Delete(ctx, hotelID)
}

func (s *hotelService) GetByID(ctx context.Context, hotelID uuid.UUID) (*model.Hotel, error) {
	hotel, err := s.hotels.FindByID(ctx, hotelID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return hotel, nil
}

func (s *hotelService) List(ctx context.Context) ([]model.Hotel, error) {
	return s.hotels.List(ctx)
}

func (s *hotelService) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Hotel, error) {
	return s.hotels.ListByOwner(ctx, ownerID)
}
