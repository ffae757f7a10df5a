package auth

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
)

func principalWith(roles ...model.Role) *Principal {
	return &Principal{
		ID:       uuid.New(),
		Username: "tester",
		Roles:    roles,
		Enabled:  true,
	}
}

func TestAuthorize(t *testing.T) {
	owner := principalWith(model.RoleUser)
	admin := principalWith(model.RoleAdmin)
	plain := principalWith(model.RoleUser)

	tests := []struct {
		name      string
		principal *Principal
		req       Requirement
		wantErr   error
	}{
		{
			name:      "open endpoint allows anonymous",
			principal: nil,
			req:       Requirement{Open: true},
			wantErr:   nil,
		},
		{
			name:      "no principal on protected endpoint",
			principal: nil,
			req:       Requirement{Roles: model.Roles{model.RoleUser}},
			wantErr:   apperrors.ErrUnauthorized,
		},
		{
			name:      "role intersection allows",
			principal: admin,
			req:       Requirement{Roles: model.Roles{model.RoleAdmin, model.RoleModerator}},
			wantErr:   nil,
		},
		{
			name:      "owner match allows without role",
			principal: owner,
			req:       Requirement{Roles: model.Roles{model.RoleAdmin}, OwnerID: owner.ID},
			wantErr:   nil,
		},
		{
			name:      "authenticated-only endpoint",
			principal: plain,
			req:       Requirement{},
			wantErr:   nil,
		},
		{
			name:      "neither role nor owner",
			principal: plain,
			req:       Requirement{Roles: model.Roles{model.RoleAdmin}, OwnerID: owner.ID},
			wantErr:   apperrors.ErrForbidden,
		},
		{
			name:      "owner-only requirement rejects stranger",
			principal: plain,
			req:       Requirement{OwnerID: owner.ID},
			wantErr:   apperrors.ErrForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Authorize(tt.principal, tt.req)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	admin := principalWith(model.RoleAdmin)
	user := principalWith(model.RoleUser)

	assert.NoError(t, RequireRoles(admin, model.RoleAdmin))
	assert.ErrorIs(t, RequireRoles(user, model.RoleAdmin), apperrors.ErrForbidden)
	assert.ErrorIs(t, RequireRoles(nil, model.RoleAdmin), apperrors.ErrUnauthorized)
}

func TestRequireOwnerOrModerator(t *testing.T) {
	owner := principalWith(model.RoleUser)
	stranger := principalWith(model.RoleUser)
	admin := principalWith(model.RoleAdmin)

	assert.ErrorIs(t, RequireOwnerOrModerator(nil, owner.ID), apperrors.ErrUnauthorized)
	assert.NoError(t, RequireOwnerOrModerator(owner, owner.ID))
	assert.ErrorIs(t, RequireOwnerOrModerator(stranger, owner.ID), apperrors.ErrForbidden)

	// The delete-any capability is role-based, not an identity match.
	assert.NoError(t, RequireOwnerOrModerator(admin, owner.ID))
	assert.True(t, CanDeleteAny(admin))
	assert.False(t, CanDeleteAny(owner))
}

func TestPrincipal_Active(t *testing.T) {
	p := principalWith(model.RoleUser)
	assert.True(t, p.Active())

	p.Enabled = false
	assert.False(t, p.Active())

	p.Enabled = true
	p.AccountLocked = true
	assert.False(t, p.Active())
}
