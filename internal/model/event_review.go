package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EventReview represents a rated event review authored by a user. UserID is
// the owning-user id every ownership check compares against.
type EventReview struct {
	ID        uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	EventID   uuid.UUID  `json:"event_id" gorm:"type:char(36);index;not null"`
	UserID    uuid.UUID  `json:"user_id" gorm:"type:char(36);index;not null"`
	Rate      int        `json:"rate" gorm:"not null"`
	Review    string     `json:"review" gorm:"type:text"`
	ImageURLs StringList `json:"image_urls" gorm:"type:json"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (r *EventReview) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}

// EventRatingSummary aggregates review scores for an event.
type EventRatingSummary struct {
	EventID uuid.UUID   `json:"event_id"`
	Average float64     `json:"average"`
	Count   int64       `json:"count"`
	PerStar map[int]int `json:"per_star"`
}
