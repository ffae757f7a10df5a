package service

import (
	"context"

	"github.com/google/uuid"

	"tourguide/internal/auth"
	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
	"tourguide/internal/repository"
)

// CreateDestinationInput holds a new destination.
type CreateDestinationInput struct {
	Title             string
	Description       string
	Location          string
	Latitude          float64
	Longitude         float64
	BestSeasonToVisit string
	ImageURLs         []string
}

// DestinationService manages the destination catalog. Reads are public;
// mutations are admin-gated.
type DestinationService interface {
	Create(ctx context.Context, principal *auth.Principal, input CreateDestinationInput) (*model.Destination, error)
	Update(ctx context.Context, principal *auth.Principal, id uuid.UUID, input CreateDestinationInput) (*model.Destination, error)
	Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Destination, error)
	List(ctx context.Context) ([]model.Destination, error)
}

type destinationService struct {
	destinations repository.DestinationRepository
}

// NewDestinationService creates a destination service.
func NewDestinationService(destinations repository.DestinationRepository) DestinationService {
	return &destinationService{destinations: destinations}
}

func (s *destinationService) Create(ctx context.Context, principal *auth.Principal, input CreateDestinationInput) (*model.Destination, error) {
	if err := auth.RequireRoles(principal, model.RoleAdmin); err != nil {
		return nil, err
	}

	destination := &model.Destination{
		Title:             input.Title,
		Description:       input.Description,
		Location:          input.Location,
		Latitude:          input.Latitude,
		Longitude:         input.Longitude,
		BestSeasonToVisit: input.BestSeasonToVisit,
		ImageURLs:         input.ImageURLs,
		CreatedBy:         principal.ID,
	}
	if err := s.destinations.Create(ctx, destination); err != nil {
		return nil, err
	}
	return destination, nil
}

func (s *destinationService) Update(ctx context.Context, principal *auth.Principal, id uuid.UUID, input CreateDestinationInput) (*model.Destination, error) {
	if err := auth.RequireRoles(principal, model.RoleAdmin); err != nil {
		return nil, err
	}

	destination, err := s.destinations.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	destination.Title = input.Title
	destination.Description = input.Description
	destination.Location = input.Location
	destination.Latitude = input.Latitude
	destination.Longitude = input.Longitude
	destination.BestSeasonToVisit = input.BestSeasonToVisit
	destination.ImageURLs = input.ImageURLs

	if err := s.destinations.Update(ctx, destination); err != nil {
		return nil, err
	}
	return destination, nil
}

func (s *destinationService) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	if err := auth.RequireRoles(principal, model.RoleAdmin); err != nil {
		return err
	}
	if err := s.destinations.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *destinationService) GetByID(ctx context.Context, id uuid.UUID) (*model.Destination, error) {
	destination, err := s.destinations.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return destination, nil
}

func (s *destinationService) List(ctx context.Context) ([]model.Destination, error) {
	return s.destinations.List(ctx)
}
