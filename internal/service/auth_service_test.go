package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"tourguide/internal/auth"
	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
)

func testTokens() *auth.TokenService {
	return auth.NewTokenService("test-secret", time.Hour)
}

func storedUser(t *testing.T, password string) *model.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	assert.NoError(t, err)
	return &model.User{
		ID:           uuid.New(),
		Username:     "alice",
		Email:        "alice@example.com",
		PasswordHash: hash,
		Roles:        model.Roles{model.RoleUser},
		Enabled:      true,
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("success mints token and records login time", func(t *testing.T) {
		user := storedUser(t, "secret123")
		users := new(MockUserRepository)
		users.On("FindByUsernameOrEmail", ctx, "alice").Return(user, nil)
		users.On("UpdateLastLogin", ctx, user.ID, mock.AnythingOfType("time.Time")).Return(nil)

		svc := NewAuthService(users, testTokens())
		result, err := svc.Login(ctx, "alice", "secret123")

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, user.ID, result.User.ID)
		assert.Equal(t, "alice", result.User.Username)
		users.AssertExpectations(t)
	})

	t.Run("unknown user yields generic invalid credentials", func(t *testing.T) {
		users := new(MockUserRepository)
		users.On("FindByUsernameOrEmail", ctx, "ghost").Return(nil, gorm.ErrRecordNotFound)

		svc := NewAuthService(users, testTokens())
		_, err := svc.Login(ctx, "ghost", "whatever")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong password yields the same generic error", func(t *testing.T) {
		user := storedUser(t, "secret123")
		users := new(MockUserRepository)
		users.On("FindByUsernameOrEmail", ctx, "alice").Return(user, nil)

		svc := NewAuthService(users, testTokens())
		_, err := svc.Login(ctx, "alice", "wrong-password")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		users.AssertNotCalled(t, "UpdateLastLogin", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("disabled account is reported distinctly", func(t *testing.T) {
		user := storedUser(t, "secret123")
		user.Enabled = false
		users := new(MockUserRepository)
		users.On("FindByUsernameOrEmail", ctx, "alice").Return(user, nil)

		svc := NewAuthService(users, testTokens())
		_, err := svc.Login(ctx, "alice", "secret123")

		assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
	})

	t.Run("locked account is reported as disabled", func(t *testing.T) {
		user := storedUser(t, "secret123")
		user.AccountLocked = true
		users := new(MockUserRepository)
		users.On("FindByUsernameOrEmail", ctx, "alice").Return(user, nil)

		svc := NewAuthService(users, testTokens())
		_, err := svc.Login(ctx, "alice", "secret123")

		assert.ErrorIs(t, err, apperrors.ErrAccountDisabled)
	})

	t.Run("login by email works the same", func(t *testing.T) {
		user := storedUser(t, "secret123")
		users := new(MockUserRepository)
		users.On("FindByUsernameOrEmail", ctx, "alice@example.com").Return(user, nil)
		users.On("UpdateLastLogin", ctx, user.ID, mock.AnythingOfType("time.Time")).Return(nil)

		svc := NewAuthService(users, testTokens())
		result, err := svc.Login(ctx, "alice@example.com", "secret123")

		assert.NoError(t, err)
		assert.NotEmpty(t, result.Token)
	})
}

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a hashed password and defaults to USER", func(t *testing.T) {
		users := new(MockUserRepository)
		var created *model.User
		users.On("Create", ctx, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.User)
		}).Return(nil)

		svc := NewAuthService(users, testTokens())
		summary, err := svc.Register(ctx, RegisterInput{
			Username: "bob",
			Email:    "bob@example.com",
			Password: "secret123",
		})

		assert.NoError(t, err)
		assert.Equal(t, "bob", summary.Username)
		assert.NotEqual(t, "secret123", created.PasswordHash)
		assert.True(t, auth.CheckPassword("secret123", created.PasswordHash))
		assert.Equal(t, model.Roles{model.RoleUser}, created.Roles)
		assert.True(t, created.Enabled)
	})

	t.Run("privileged role requests downgrade to USER", func(t *testing.T) {
		users := new(MockUserRepository)
		var created *model.User
		users.On("Create", ctx, mock.AnythingOfType("*model.User")).Run(func(args mock.Arguments) {
			created = args.Get(1).(*model.User)
		}).Return(nil)

		svc := NewAuthService(users, testTokens())
		_, err := svc.Register(ctx, RegisterInput{
			Username: "mallory",
			Email:    "mallory@example.com",
			Password: "secret123",
			Roles:    []string{"ADMIN", "moderator", "HOTEL_OWNER", "user"},
		})

		assert.NoError(t, err)
		assert.Equal(t, model.Roles{model.RoleUser}, created.Roles)
	})

	t.Run("duplicate username and email surface distinct errors", func(t *testing.T) {
		for _, tt := range []struct {
			name    string
			wantErr error
		}{
			{"username taken", apperrors.ErrUsernameTaken},
			{"email taken", apperrors.ErrEmailTaken},
		} {
			t.Run(tt.name, func(t *testing.T) {
				users := new(MockUserRepository)
				users.On("Create", ctx, mock.AnythingOfType("*model.User")).Return(tt.wantErr)

				svc := NewAuthService(users, testTokens())
				_, err := svc.Register(ctx, RegisterInput{
					Username: "bob",
					Email:    "bob@example.com",
					Password: "secret123",
				})

				assert.ErrorIs(t, err, tt.wantErr)
			})
		}
	})

	t.Run("empty password is rejected before hitting the store", func(t *testing.T) {
		users := new(MockUserRepository)

		svc := NewAuthService(users, testTokens())
		_, err := svc.Register(ctx, RegisterInput{Username: "bob", Email: "bob@example.com"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentialFormat)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctx := context.Background()

	t.Run("re-verifies the current password", func(t *testing.T) {
		user := storedUser(t, "old-secret")
		principal := auth.NewPrincipal(user)
		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)

		svc := NewAuthService(users, testTokens())
		err := svc.ChangePassword(ctx, principal, "not-the-old-secret", "new-secret")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		users.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("stores the new hash on success", func(t *testing.T) {
		user := storedUser(t, "old-secret")
		principal := auth.NewPrincipal(user)
		users := new(MockUserRepository)
		users.On("FindByID", ctx, user.ID).Return(user, nil)
		users.On("Update", ctx, user).Return(nil)

		svc := NewAuthService(users, testTokens())
		err := svc.ChangePassword(ctx, principal, "old-secret", "new-secret")

		assert.NoError(t, err)
		assert.True(t, auth.CheckPassword("new-secret", user.PasswordHash))
		assert.False(t, auth.CheckPassword("old-secret", user.PasswordHash))
	})

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		svc := NewAuthService(new(MockUserRepository), testTokens())
		err := svc.ChangePassword(ctx, nil, "a", "b")
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})
}
