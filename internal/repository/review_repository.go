package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourguide/internal/model"
)

// ReviewRepository defines destination review persistence operations.
type ReviewRepository interface {
	Create(ctx context.Context, review *model.Review) error
	Update(ctx context.Context, review *model.Review) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error)
	ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]model.Review, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Review, error)
	Delete(ctx context.Context, id uuid.UUID) error
	RatingCounts(ctx context.Context, destinationID uuid.UUID) (map[int]int, error)
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository builds a GORM-backed repository.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Create(review).Error
}

func (r *reviewRepository) Update(ctx context.Context, review *model.Review) error {
	return r.db.WithContext(ctx).Save(review).Error
}

func (r *reviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	var review model.Review
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&review).Error; err != nil {
		return nil, err
	}
	return &review, nil
}

func (r *reviewRepository) ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("destination_id = ?", destinationID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Review, error) {
	var reviews []model.Review
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// RatingCounts returns the number of reviews per star value for a destination.
func (r *reviewRepository) RatingCounts(ctx context.Context, destinationID uuid.UUID) (map[int]int, error) {
	type row struct {
		Rate  int
		Count int
	}
	var rows []row
	err := r.db.WithContext(ctx).Model(&model.Review{}).
		Select("rate, count(*) as count").
		Where("destination_id = ?", destinationID).
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
