package auth

import (
	"github.com/google/uuid"

	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
)

// Requirement describes what an operation demands of the acting principal.
// An empty Roles set means "authenticated only". A non-nil OwnerID adds the
// ownership rule: a principal whose id matches it is allowed regardless of
// role.
type Requirement struct {
	Open    bool
	Roles   model.Roles
	OwnerID uuid.UUID
}

// Authorize evaluates the requirement against the principal. Rules run in
// order, first match wins:
//
//  1. open endpoint: allow
//  2. no principal: ErrUnauthorized
//  3. role intersection: allow
//  4. principal owns the resource: allow
//  5. otherwise: ErrForbidden
func Authorize(p *Principal, req Requirement) error {
	if req.Open {
		return nil
	}
	if p == nil {
		return apperrors.ErrUnauthorized
	}
	if len(req.Roles) > 0 && p.Roles.HasAny(req.Roles...) {
		return nil
	}
	if req.OwnerID != uuid.Nil && p.ID == req.OwnerID {
		return nil
	}
	if len(req.Roles) == 0 && req.OwnerID == uuid.Nil {
		// Authenticated-only endpoint; having a principal is enough.
		return nil
	}
	return apperrors.ErrForbidden
}

// RequireRoles allows principals holding at least one of the given roles.
func RequireRoles(p *Principal, roles ...model.Role) error {
	return Authorize(p, Requirement{Roles: roles})
}

// RequireOwnerOr allows the resource owner or any principal holding one of
// the given roles. Used for edit-class operations such as a user updating
// their own profile or review.
func RequireOwnerOr(p *Principal, ownerID uuid.UUID, roles ...model.Role) error {
	return Authorize(p, Requirement{Roles: roles, OwnerID: ownerID})
}

// CanDeleteAny reports whether the principal carries the moderation
// capability that lets it delete resources on behalf of any owner. Admins
// hold it for every resource type; this is an explicit capability, not an
// identity match.
func CanDeleteAny(p *Principal) bool {
	return p.HasRole(model.RoleAdmin)
}

// RequireOwnerOrModerator gates delete-class operations: the owner may act,
// and so may any principal with the delete-any capability.
func RequireOwnerOrModerator(p *Principal, ownerID uuid.UUID) error {
	if p == nil {
		return apperrors.ErrUnauthorized
	}
	if CanDeleteAny(p) {
		return nil
	}
	return Authorize(p, Requirement{OwnerID: ownerID})
}
