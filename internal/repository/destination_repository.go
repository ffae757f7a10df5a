package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourguide/internal/model"
)

// DestinationRepository defines destination persistence operations.
type DestinationRepository interface {
	Create(ctx context.Context, destination *model.Destination) error
	Update(ctx context.Context, destination *model.Destination) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Destination, error)
	List(ctx context.Context) ([]model.Destination, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type destinationRepository struct {
	db *gorm.DB
}

// NewDestinationRepository builds a GORM-backed repository.
func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(ctx context.Context, destination *model.Destination) error {
	return r.db.WithContext(ctx).Create(destination).Error
}

func (r *destinationRepository) Update(ctx context.Context, destination *model.Destination) error {
	return r.db.WithContext(ctx).Save(destination).Error
}

func (r *destinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Destination, error) {
	var destination model.Destination
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&destination).Error; err != nil {
		return nil, err
	}
	return &destination, nil
}

func (r *destinationRepository) List(ctx context.Context) ([]model.Destination, error) {
	var destinations []model.Destination
	if err := r.db.WithContext(ctx).Order("title").Find(&destinations).Error; err != nil {
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Destination{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
