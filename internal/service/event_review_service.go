package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"

	"tourguide/internal/auth"
	"tourguide/internal/cache"
	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
	"tourguide/internal/repository"
)

// CreateEventReviewInput holds a new event review.
type CreateEventReviewInput struct {
	EventID   uuid.UUID
	Rate      int
	Review    string
	ImageURLs []string
}

// UpdateEventReviewInput holds the fields an event review author may change.
// Nil means "leave unchanged".
type UpdateEventReviewInput struct {
	Rate      *int
	Review    *string
	ImageURLs []string
}

// EventReviewService manages event reviews under the same policy as
// destination reviews: create requires an authenticated principal, update is
// author-only, delete is author or moderation capability.
type EventReviewService interface {
	Create(ctx context.Context, principal *auth.Principal, input CreateEventReviewInput) (*model.EventReview, error)
	Update(ctx context.Context, principal *auth.Principal, reviewID uuid.UUID, input UpdateEventReviewInput) (*model.EventReview, error)
	Delete(ctx context.Context, principal *auth.Principal, reviewID uuid.UUID) error
	GetByID(ctx context.Context, reviewID uuid.UUID) (*model.EventReview, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.EventReview, error)
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]model.EventReview, error)
	RatingSummary(ctx context.Context, eventID uuid.UUID) (*model.EventRatingSummary, error)
}

type eventReviewService struct {
	reviews repository.EventReviewRepository
	events  repository.EventRepository
	cache   *cache.Client
}

// NewEventReviewService creates an event review service.
func NewEventReviewService(reviews repository.EventReviewRepository, events repository.EventRepository, cache *cache.Client) EventReviewService {
	return &eventReviewService{reviews: reviews, events: events, cache: cache}
}

func (s *eventReviewService) ratingKey(eventID uuid.UUID) string {
	return fmt.Sprintf("rating:event:%s", eventID)
}

func (s *eventReviewService) Create(ctx context.Context, principal *auth.Principal, input CreateEventReviewInput) (*model.EventReview, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if input.Rate < 1 || input.Rate > 5 {
		return nil, fmt.Errorf("rate must be between 1 and 5: %w", apperrors.ErrInvalidInput)
	}

	if _, err := s.events.FindByID(ctx, input.EventID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	review := &model.EventReview{
		EventID:   input.EventID,
		UserID:    principal.ID,
		Rate:      input.Rate,
		Review:    input.Review,
		ImageURLs: input.ImageURLs,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.ratingKey(input.EventID))
	return review, nil
}

// Update applies partial changes. Only the author may edit; there is no
// moderator override for edits.
func (s *eventReviewService) Update(ctx context.Context, principal *auth.Principal, reviewID uuid.UUID, input UpdateEventReviewInput) (*model.EventReview, error) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if err := auth.RequireOwnerOr(principal, review.UserID); err != nil {
		return nil, err
	}

	if input.Rate != nil {
		if *input.Rate < 1 || *input.Rate > 5 {
			return nil, fmt.Errorf("rate must be between 1 and 5: %w", apperrors.ErrInvalidInput)
		}
		review.Rate = *input.Rate
	}
	if input.Review != nil {
		review.Review = *input.Review
	}
	if input.ImageURLs != nil {
		review.ImageURLs = input.ImageURLs
	}

	if err := s.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.ratingKey(review.EventID))
	return review, nil
}

// Delete removes a review when the principal is its author or carries the
// delete-any moderation capability.
func (s *eventReviewService) Delete(ctx context.Context, principal *auth.Principal, reviewID uuid.UUID) error {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrNotFound
		}
		return err
	}

	if err := auth.RequireOwnerOrModerator(principal, review.UserID); err != nil {
		return err
	}

	if err := s.reviews.Delete(ctx, reviewID); err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, s.ratingKey(review.EventID))
	return nil
}

func (s *eventReviewService) GetByID(ctx context.Context, reviewID uuid.UUID) (*model.EventReview, error) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *eventReviewService) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.EventReview, error) {
	return s.reviews.ListByEvent(ctx, eventID)
}

func (s *eventReviewService) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]model.EventReview, error) {
	return s.reviews.ListByUser(ctx, userID)
}

// RatingSummary aggregates per-star counts, served from cache when available.
func (s *eventReviewService) RatingSummary(ctx context.Context, eventID uuid.UUID) (*model.EventRatingSummary, error) {
	if data, _ := s.cache.Get(ctx, s.ratingKey(eventID)); data != nil {
		var cached model.EventRatingSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	counts, err := s.reviews.RatingCounts(ctx, eventID)
	if err != nil {
		return nil, err
	}

	summary := &model.EventRatingSummary{
		EventID: eventID,
		PerStar: counts,
	}
	var total, sum int64
	for star, count := range counts {
		total += int64(count)
		sum += int64(star) * int64(count)
	}
	summary.Count = total
	if total > 0 {
		summary.Average = float64(sum) / float64(total)
	}

	if payload, err := json.Marshal(summary); err == nil {
		_ = s.cache.Set(ctx, s.ratingKey(eventID), payload, ratingCacheTTL)
	}
	return summary, nil
}
