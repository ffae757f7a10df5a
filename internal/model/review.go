package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review represents a rated destination review authored by a user. UserID is
// the owning-user id every ownership check compares against.
type Review struct {
	ID            uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	DestinationID uuid.UUID  `json:"destination_id" gorm:"type:char(36);index;not null"`
	UserID        uuid.UUID  `json:"user_id" gorm:"type:char(36);index;not null"`
	Rate          int        `json:"rate" gorm:"not null"`
	Review        string     `json:"review" gorm:"type:text"`
	ImageURLs     StringList `json:"image_urls" gorm:"type:json"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// RatingSummary aggregates review scores for a destination.
type RatingSummary struct {
	DestinationID uuid.UUID   `json:"destination_id"`
	Average       float64     `json:"average"`
	Count         int64       `json:"count"`
	PerStar       map[int]int `json:"per_star"`
}
