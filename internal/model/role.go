package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Role is a privilege tag attached to a user.
type Role string

const (
	RoleUser       Role = "USER"
	RoleModerator  Role = "MODERATOR"
	RoleAdmin      Role = "ADMIN"
	RoleHotelOwner Role = "HOTEL_OWNER"
)

// ParseRole maps a requested role string to a known role tag,
// case-insensitively. Unrecognized strings downgrade to RoleUser instead of
// being rejected; open registration must never mint a privileged role by typo.
func ParseRole(s string) Role {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "admin":
		return RoleAdmin
	case "moderator", "mod":
		return RoleModerator
	case "hotel_owner", "hotel-owner":
		return RoleHotelOwner
	default:
		return RoleUser
	}
}

// Roles is a set of role tags. Stored as a JSON array column.
type Roles []Role

// Has reports whether the set contains the given role.
func (r Roles) Has(role Role) bool {
	for _, have := range r {
		if have == role {
			return true
		}
	}
	return false
}

// HasAny reports whether the set intersects the given roles.
func (r Roles) HasAny(roles ...Role) bool {
	for _, want := range roles {
		if r.Has(want) {
			return true
		}
	}
	return false
}

// Add appends a role if not already present and reports whether it was added.
func (r *Roles) Add(role Role) bool {
	if r.Has(role) {
		return false
	}
	*r = append(*r, role)
	return true
}

// Value implements driver.Valuer for GORM.
func (r Roles) Value() (driver.Value, error) {
	if len(r) == 0 {
		return "[]", nil
	}
	data, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("marshal roles: %w", err)
	}
	return string(data), nil
}

// Scan implements sql.Scanner for GORM.
func (r *Roles) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("scan roles: unexpected type %T", value)
	}
	return json.Unmarshal(data, r)
}
