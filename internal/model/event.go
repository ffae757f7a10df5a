package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Event represents a scheduled happening at some location.
type Event struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title       string     `json:"title" gorm:"size:255;not null;index"`
	Description string     `json:"description" gorm:"type:text"`
	Location    string     `json:"location" gorm:"size:255"`
	Start       time.Time  `json:"start" gorm:"index"`
	End         time.Time  `json:"end"`
	ImageURLs   StringList `json:"image_urls" gorm:"type:json"`
	CreatedBy   uuid.UUID  `json:"created_by" gorm:"type:char(36);index"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (e *Event) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
