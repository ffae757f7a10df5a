package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Hotel represents a lodging listing managed by its owner.
type Hotel struct {
	ID          uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Name        string     `json:"name" gorm:"size:255;not null;index"`
	Description string     `json:"description" gorm:"type:text"`
	Location    string     `json:"location" gorm:"size:255"`
	PriceRange  string     `json:"price_range,omitempty" gorm:"size:50"`
	Amenities   StringList `json:"amenities" gorm:"type:json"`
	ImageURLs   StringList `json:"image_urls" gorm:"type:json"`
	OwnerID     uuid.UUID  `json:"owner_id" gorm:"type:char(36);index;not null"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (h *Hotel) BeforeCreate(tx *gorm.DB) error {
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	return nil
}
