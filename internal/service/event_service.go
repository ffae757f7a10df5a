package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tourguide/internal/auth"
	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
	"tourguide/internal/repository"
)

// CreateEventInput holds a new event.
type CreateEventInput struct {
	Title       string
	Description string
	Location    string
	Start       time.Time
	End         time.Time
	ImageURLs   []string
}

// EventService manages the event catalog. Reads are public; mutations are
// admin-gated.
type EventService interface {
	Create(ctx context.Context, principal *auth.Principal, input CreateEventInput) (*model.Event, error)
	Update(ctx context.Context, principal *auth.Principal, id uuid.UUID, input CreateEventInput) (*model.Event, error)
	Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	List(ctx context.Context) ([]model.Event, error)
}

type eventService struct {
	events repository.EventRepository
}

// NewEventService creates an event service.
func NewEventService(events repository.EventRepository) EventService {
	return &eventService{events: events}
}

func validateEventWindow(start, end time.Time) error {
	if !end.IsZero() && end.Before(start) {
		return fmt.Errorf("event end precedes start: %w", apperrors.ErrInvalidInput)
	}
	return nil
}

func (s *eventService) Create(ctx context.Context, principal *auth.Principal, input CreateEventInput) (*model.Event, error) {
	if err := auth.RequireRoles(principal, model.RoleAdmin); err != nil {
		return nil, err
	}
	if err := validateEventWindow(input.Start, input.End); err != nil {
		return nil, err
	}

	event := &model.Event{
		Title:       input.Title,
		Description: input.Description,
		Location:    input.Location,
		Start:       input.Start,
		End:         input.End,
		ImageURLs:   input.ImageURLs,
		CreatedBy:   principal.ID,
	}
	if err := s.events.Create(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Update(ctx context.Context, principal *auth.Principal, id uuid.UUID, input CreateEventInput) (*model.Event, error) {
	if err := auth.RequireRoles(principal, model.RoleAdmin); err != nil {
		return nil, err
	}
	if err := validateEventWindow(input.Start, input.End); err != nil {
		return nil, err
	}

	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	event.Title = input.Title
	event.Description = input.Description
	event.Location = input.Location
	event.Start = input.Start
	event.End = input.End
	event.ImageURLs = input.ImageURLs

	if err := s.events.Update(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	if err := auth.RequireRoles(principal, model.RoleAdmin); err != nil {
		return err
	}
	if err := s.events.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrNotFound
		}
		return err
	}
	return nil
}

func (s *eventService) GetByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return event, nil
}

func (s *eventService) List(ctx context.Context) ([]model.Event, error) {
	return s.events.List(ctx)
}
