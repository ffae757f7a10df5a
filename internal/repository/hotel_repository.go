package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourguide/internal/model"
)

// HotelRepository defines hotel listing persistence operations.
type HotelRepository interface {
	Create(ctx context.Context, hotel *model.Hotel) error
	Update(ctx context.Context, hotel *model.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*model.Hotel, error)
	List(ctx context.Context) ([]model.Hotel, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Hotel, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository builds a GORM-backed repository.
func NewHotelRepository(db *gorm.DB) HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	return r.db.WithContext(ctx).Create(hotel).Error
}

func (r *hotelRepository) Update(ctx context.Context, hotel *model.Hotel) error {
	return r.db.WithContext(ctx).Save(hotel).Error
}

func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Hotel, error) {
	var hotel model.Hotel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&hotel).Error; err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) List(ctx context.Context) ([]model.Hotel, error) {
	var hotels []model.Hotel
	if err := r.db.WithContext(ctx).Order("name").Find(&hotels).Error; err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Hotel, error) {
	var hotels []model.Hotel
	err := r.db.WithContext(ctx).
		Where("owner_id = ?", ownerID).
		Order("name").
		Find(&hotels).Error
	if err != nil {
		return nil, err
	}
	return hotels, nil
}

func (r *hotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Hotel{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
