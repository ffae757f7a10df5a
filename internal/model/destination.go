package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Destination represents a place travelers can browse and review.
type Destination struct {
	ID                uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Title             string     `json:"title" gorm:"size:255;not null;index"`
	Description       string     `json:"description" gorm:"type:text"`
	Location          string     `json:"location" gorm:"size:255"`
	Latitude          float64    `json:"latitude"`
	Longitude         float64    `json:"longitude"`
	BestSeasonToVisit string     `json:"best_season_to_visit,omitempty" gorm:"size:100"`
	ImageURLs         StringList `json:"image_urls" gorm:"type:json"`
	CreatedBy         uuid.UUID  `json:"created_by" gorm:"type:char(36);index"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// BeforeCreate sets UUID before creating the record.
func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

// StringList is a list of strings stored as a JSON array column.
type StringList []string

// Value implements driver.Valuer for GORM.
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("marshal string list: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for GORM.
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan string list: unexpected type %T", value)
	}
	return json.Unmarshal(data, l)
}
