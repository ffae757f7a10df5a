package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourguide/internal/model"
)

// EventReviewRepository defines event review persistence operations.
type EventReviewRepository interface {
	Create(ctx context.Context, review *model.EventReview) error
	Update(ctx context.Context, review *model.EventReview) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.EventReview, error)
	ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.EventReview, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.EventReview, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RatingCounts(ctx context.Context, eventID uuid.UUID) (map[int]int, error)
}

type eventReviewRepository struct {
	db *gorm.DB
}

// NewEventReviewRepository builds a GORM-backed repository.
func NewEventReviewRepository(db *gorm.DB) EventReviewRepository {
	return &eventReviewRepository{db: db}
}

func (r *eventReviewRepository) Create(ctx context.Context, review *model.EventReview) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *eventReviewRepository) Update(ctx context.Context, review *model.EventReview) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *eventReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.EventReview, error) {
	var review model.EventReview
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *eventReviewRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.EventReview, error) {
	var reviews []model.EventReview
	err := r.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *eventReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.EventReview, error) {
	var reviews []model.EventReview
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *eventReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EventReview{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RatingCounts returns the number of reviews per star value for an event.
func (r *eventReviewRepository) RatingCounts(ctx context.Context, eventID uuid.UUID) (map[int]int, error) {
	type row struct {
		Rate  int
		Count int
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.EventReview{}).
		Select("rate, count(*) as count").
		Where("event_id = ?", eventID).
		Group("rate").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	counts := make(map[int]int, len(rows))
	for _, row := range rows {
		counts[row.Rate] = row.Count
	}
	return counts, nil
}
