package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a registered account. Username and email carry unique
// indexes as the storage-level last line of defense; the repository still
// pre-checks both before insert.
type User struct {
	ID                     uuid.UUID  `json:"id" gorm:"type:char(36);primaryKey"`
	Username               string     `json:"username" gorm:"uniqueIndex;size:20;not null"`
	Email                  string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash           string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	FirstName              string     `json:"first_name,omitempty" gorm:"size:100"`
	LastName               string     `json:"last_name,omitempty" gorm:"size:100"`
	PhoneNumber            string     `json:"phone_number,omitempty" gorm:"size:30"`
	ProfileImageURL        string     `json:"profile_image_url,omitempty" gorm:"size:512"`
	Roles                  Roles      `json:"roles" gorm:"type:json"`
	FavoriteDestinationIDs UUIDSet    `json:"favorite_destination_ids" gorm:"type:json"`
	FavoriteEventIDs       UUIDSet    `json:"favorite_event_ids" gorm:"type:json"`
	Enabled                bool       `json:"enabled" gorm:"default:true;index"`
	AccountLocked          bool       `json:"account_locked" gorm:"default:false"`
	CreatedAt              time.Time  `json:"created_at"`
	UpdatedAt              time.Time  `json:"updated_at"`
	LastLoginAt            *time.Time `json:"last_login_at,omitempty"`
}

// BeforeCreate sets the UUID and guarantees a non-empty role set.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	if len(u.Roles) == 0 {
		u.Roles = Roles{RoleUser}
	}
	return nil
}

// UserSummary is the public-safe projection of a user returned by auth and
// profile endpoints. It never carries the password hash.
type UserSummary struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	Roles     Roles     `json:"roles"`
	Enabled   bool      `json:"enabled"`
}

// Summary builds the public projection of the user.
func (u *User) Summary() UserSummary {
	return UserSummary{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Roles:     u.Roles,
		Enabled:   u.Enabled,
	}
}

// UUIDSet is a set of entity IDs stored as a JSON array column.
type UUIDSet []uuid.UUID

// Has reports whether the set contains id.
func (s UUIDSet) Has(id uuid.UUID) bool {
	for _, have := range s {
		if have == id {
			return true
		}
	}
	return false
}

// Add appends id if not already present.
func (s *UUIDSet) Add(id uuid.UUID) {
	if !s.Has(id) {
		*s = append(*s, id)
	}
}

// Remove deletes id from the set if present.
func (s *UUIDSet) Remove(id uuid.UUID) {
	for i, have := range *s {
		if have == id {
			*s = append((*s)[:i], (*s)[i+1:]...)
			return
		}
	}
}

// Value implements driver.Valuer for GORM.
func (s UUIDSet) Value() (driver.Value, error) {
	if len(s) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("marshal uuid set: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for GORM.
func (s *UUIDSet) Scan(value interface{}) error {
	if value == nil {
		*s = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan uuid set: unexpected type %T", value)
	}
	return json.Unmarshal(data, s)
}
