package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"tourguide/internal/auth"
	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
)

func adminPrincipal() *auth.Principal {
	return &auth.Principal{ID: uuid.New(), Username: "root", Roles: model.Roles{model.RoleAdmin}, Enabled: true}
}

func TestUserService_GetSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the public projection", func(t *testing.T) {
		user := &model.User{
			ID:           uuid.New(),
			Username:     "dave",
			Email:        "dave@example.com",
			PasswordHash: "$2a$10$notarealhash",
			Roles:        model.Roles{model.RoleUser},
			Enabled:      true,
		}
		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)

		svc := NewUserService(users, noCache)
		summary, err := svc.GetSummary(ctx, user.ID)

		assert.NoError(t, err)
		assert.Equal(t, "dave", summary.Username)
	})

	t.Run("missing user maps to not found", func(t *testing.T) {
		users := new(MockUserRepository)
		id := uuid.New()
		users.On("FindByID", ctx, id).Return(nil, gorm.ErrRecordNotFound)

		svc := NewUserService(users, noCache)
		_, err := svc.GetSummary(ctx, id)

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestUserService_UpdateProfile(t *testing.T) {
	ctx := context.Background()

	existing := func() *model.User {
		return &model.User{
			ID:       uuid.New(),
			Username: "erin",
			Email:    "erin@example.com",
			Roles:    model.Roles{model.RoleUser},
			Enabled:  true,
		}
	}

	t.Run("owner updates own profile", func(t *testing.T) {
		user := existing()
		principal := auth.NewPrincipal(user)
		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)
		users.On("Update", ctx, user).Return(nil)

		first := "Erin"
		svc := NewUserService(users, noCache)
		summary, err := svc.UpdateProfile(ctx, principal, user.ID, UpdateProfileInput{FirstName: &first})

		assert.NoError(t, err)
		assert.Equal(t, "Erin", summary.FirstName)
	})

	t.Run("someone else's profile is forbidden", func(t *testing.T) {
		user := existing()
		other := &auth.Principal{ID: uuid.New(), Roles: model.Roles{model.RoleUser}, Enabled: true}
		users := new(MockUserRepository)

		first := "Mallory"
		svc := NewUserService(users, noCache)
		_, err := svc.UpdateProfile(ctx, other, user.ID, UpdateProfileInput{FirstName: &first})

		assert.ErrorIs(t, err, apperrors.ErrForbidden)
		users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("admin may update any profile", func(t *testing.T) {
		user := existing()
		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)
		users.On("Update", ctx, user).Return(nil)

		last := "Updated"
		svc := NewUserService(users, noCache)
		_, err := svc.UpdateProfile(ctx, adminPrincipal(), user.ID, UpdateProfileInput{LastName: &last})

		assert.NoError(t, err)
	})

	t.Run("username change re-checks uniqueness", func(t *testing.T) {
		user := existing()
		principal := auth.NewPrincipal(user)
		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)
		users.On("ExistsByUsername", ctx, "taken").Return(true, nil)

		name := "taken"
		svc := NewUserService(users, noCache)
		_, err := svc.UpdateProfile(ctx, principal, user.ID, UpdateProfileInput{Username: &name})

		assert.ErrorIs(t, err, apperrors.ErrUsernameTaken)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("email change re-checks uniqueness", func(t *testing.T) {
		user := existing()
		principal := auth.NewPrincipal(user)
		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)
		users.On("ExistsByEmail", ctx, "taken@example.com").Return(true, nil)

		email := "taken@example.com"
		svc := NewUserService(users, noCache)
		_, err := svc.UpdateProfile(ctx, principal, user.ID, UpdateProfileInput{Email: &email})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
	})
}

func TestUserService_ToggleEnabled(t *testing.T) {
	ctx := context.Background()

	t.Run("admin flips the flag", func(t *testing.T) {
		user := &model.User{ID: uuid.New(), Username: "frank", Enabled: true, Roles: model.Roles{model.RoleUser}}
		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)
		users.On("Update", ctx, user).Return(nil)

		svc := NewUserService(users, noCache)
		summary, err := svc.ToggleEnabled(ctx, adminPrincipal(), user.ID)

		assert.NoError(t, err)
		assert.False(t, summary.Enabled)
	})

	t.Run("non-admin is forbidden", func(t *testing.T) {
		plain := &auth.Principal{ID: uuid.New(), Roles: model.Roles{model.RoleUser}, Enabled: true}
		svc := NewUserService(new(MockUserRepository), noCache)
		_, err := svc.ToggleEnabled(ctx, plain, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestUserService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("admin only", func(t *testing.T) {
		plain := &auth.Principal{ID: uuid.New(), Roles: model.Roles{model.RoleUser}, Enabled: true}
		svc := NewUserService(new(MockUserRepository), noCache)
		assert.ErrorIs(t, svc.Delete(ctx, plain, uuid.New()), apperrors.ErrForbidden)

		// Even deleting your own account goes through an admin.
		assert.ErrorIs(t, svc.Delete(ctx, plain, plain.ID), apperrors.ErrForbidden)
	})

	t.Run("admin deletes and missing maps to not found", func(t *testing.T) {
		id := uuid.New()
		users := new(MockUserRepository)
		users.On("Delete", ctx, id).Return(gorm.ErrRecordNotFound)

		svc := NewUserService(users, noCache)
		assert.ErrorIs(t, svc.Delete(ctx, adminPrincipal(), id), apperrors.ErrNotFound)
	})
}

func TestUserService_Favorites(t *testing.T) {
	ctx := context.Background()
	destinationID := uuid.New()

	t.Run("add and remove round-trip", func(t *testing.T) {
		user := &model.User{ID: uuid.New(), Username: "gail", Roles: model.Roles{model.RoleUser}, Enabled: true}
		principal := auth.NewPrincipal(user)
		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)
		users.On("Update", ctx, user).Return(nil)

		svc := NewUserService(users, noCache)

		favorites, err := svc.AddFavoriteDestination(ctx, principal, destinationID)
		assert.NoError(t, err)
		assert.True(t, favorites.Has(destinationID))

		// Adding again is idempotent.
		favorites, err = svc.AddFavoriteDestination(ctx, principal, destinationID)
		assert.NoError(t, err)
		assert.Len(t, favorites, 1)

		favorites, err = svc.RemoveFavoriteDestination(ctx, principal, destinationID)
		assert.NoError(t, err)
		assert.False(t, favorites.Has(destinationID))
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		svc := NewUserService(new(MockUserRepository), noCache)
		_, err := svc.AddFavoriteEvent(ctx, nil, uuid.New())
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
