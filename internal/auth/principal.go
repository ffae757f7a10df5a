package auth

import (
	"github.com/google/uuid"

	"tourguide/internal/model"
)

// ContextKey is the Echo context key under which the resolved principal is
// stored for the duration of a request.
const ContextKey = "principal"

// ClaimsContextKey is the Echo context key the JWT middleware stores verified
// claims under before the principal is resolved.
const ClaimsContextKey = "token_claims"

// Principal is the request-scoped identity and privilege snapshot derived
// from a verified token plus the live user record. It is built fresh per
// request and never shared across requests.
type Principal struct {
	ID                     uuid.UUID
	Username               string
	Roles                  model.Roles
	FavoriteDestinationIDs model.UUIDSet
	FavoriteEventIDs       model.UUIDSet
	Enabled                bool
	AccountLocked          bool
}

// NewPrincipal builds a principal from the live user record.
func NewPrincipal(user *model.User) *Principal {
	return &Principal{
		ID:                     user.ID,
		Username:               user.Username,
		Roles:                  user.Roles,
		FavoriteDestinationIDs: user.FavoriteDestinationIDs,
		FavoriteEventIDs:       user.FavoriteEventIDs,
		Enabled:                user.Enabled,
		AccountLocked:          user.AccountLocked,
	}
}

// Active reports whether the account behind the principal may act at all.
func (p *Principal) Active() bool {
	return p != nil && p.Enabled && !p.AccountLocked
}

// HasRole reports whether the principal carries the given role.
func (p *Principal) HasRole(role model.Role) bool {
	return p != nil && p.Roles.Has(role)
}

// IsAdmin reports whether the principal carries the ADMIN role.
func (p *Principal) IsAdmin() bool {
	return p.HasRole(model.RoleAdmin)
}
