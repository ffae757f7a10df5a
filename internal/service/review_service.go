package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tourguide/internal/auth"
	"tourguide/internal/cache"
	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
	"tourguide/internal/repository"
)

const ratingCacheTTL = 10 * time.Minute

// CreateReviewInput holds a new destination review.
type CreateReviewInput struct {
	DestinationID uuid.UUID
	Rate          int
	Review        string
	ImageURLs     []string
}

// UpdateReviewInput holds the fields a review author may change. Nil means
// "leave unchanged".
type UpdateReviewInput struct {
	Rate      *int
	Review    *string
	ImageURLs []string
}

// ReviewService manages destination reviews. Create requires an
// authenticated principal, update is author-only, delete is author or
// moderation capability.
type ReviewService interface {
	Create(ctx context.Context, principal *auth.Principal, input CreateReviewInput) (*model.Review, error)
	Update(ctx context.Context, principal *auth.Principal, reviewID uuid.UUID, input UpdateReviewInput) (*model.Review, error)
	Delete(ctx context.Context, principal *auth.Principal, reviewID uuid.UUID) error
	GetByID(ctx context.Context, reviewID uuid.UUID) (*model.Review, error)
	ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]model.Review, error)
	ListByAuthor(ctx context.Context, userID uuid.UUID) ([]model.Review, error)
	RatingSummary(ctx context.Context, destinationID uuid.UUID) (*model.RatingSummary, error)
}

type reviewService struct {
	reviews      repository.ReviewRepository
	destinations repository.DestinationRepository
	cache        *cache.Client
}

// NewReviewService creates a review service.
func NewReviewService(reviews repository.ReviewRepository, destinations repository.DestinationRepository, cache *cache.Client) ReviewService {
	return &reviewService{reviews: reviews, destinations: destinations, cache: cache}
}

func (s *reviewService) ratingKey(destinationID uuid.UUID) string {
	return fmt.Sprintf("rating:summary:%s", destinationID)
}

func (s *reviewService) Create(ctx context.Context, principal *auth.Principal, input CreateReviewInput) (*model.Review, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}
	if input.Rate < 1 || input.Rate > 5 {
		return nil, fmt.Errorf("rate must be between 1 and 5: %w", apperrors.ErrInvalidInput)
	}

	if _, err := s.destinations.FindByID(ctx, input.DestinationID); err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	review := &model.Review{
		DestinationID: input.DestinationID,
		UserID:        principal.ID,
		Rate:          input.Rate,
		Review:        input.Review,
		ImageURLs:     input.ImageURLs,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.ratingKey(input.DestinationID))
	return review, nil
}

// Update applies partial changes. Only the author may edit; there is no
// moderator override for edits.
func (s *reviewService) Update(ctx context.Context, principal *auth.Principal, reviewID uuid.UUID, input UpdateReviewInput) (*model.Review, error) {
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
	_ = s.cache.Delete(ctx, s.ratingKey(review.DestinationID))
	return review, nil
}

// Delete removes a review when the principal is its author or carries the
// delete-any moderation capability.
func (s *reviewService) Delete(ctx context.Context, principal *auth.Principal, reviewID uuid.UUID) error {
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
	_ = s.cache.Delete(ctx, s.ratingKey(review.DestinationID))
	return nil
}

func (s *reviewService) GetByID(ctx context.Context, reviewID uuid.UUID) (*model.Review, error) {
	review, err := s.reviews.FindByID(ctx, reviewID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return review, nil
}

func (s *reviewService) ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]model.Review, error) {
	return s.reviews.ListByDestination(ctx, destinationID)
}

func (s *reviewService) ListByAuthor(ctx context.Context, userID uuid.UUID) ([]model.Review, error) {
	return s.reviews.ListByUser(ctx, userID)
}

// RatingSummary aggregates per-star counts, served from cache when available.
func (s *reviewService) RatingSummary(ctx context.Context, destinationID uuid.UUID) (*model.RatingSummary, error) {
	if data, _ := s.cache.Get(ctx, s.ratingKey(destinationID)); data != nil {
		var cached model.RatingSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	counts, err := s.reviews.RatingCounts(ctx, destinationID)
	if err != nil {
		return nil, err
	}

	summary := &model.RatingSummary{
		DestinationID: destinationID,
		PerStar:       counts,
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
		_ = s.cache.Set(ctx, s.ratingKey(destinationID), payload, ratingCacheTTL)
	}
	return summary, nil
}
