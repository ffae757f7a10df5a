package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"tourguide/internal/auth"
	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
	"tourguide/internal/repository"
)

// LoginResult carries the minted token and the public user summary returned
// to the caller on a successful login.
type LoginResult struct {
	Token string
	User  model.UserSummary
}

// RegisterInput collects everything a signup may provide. Roles holds the raw
// requested role strings; unknown ones downgrade to USER.
type RegisterInput struct {
	Username    string
	Email       string
	Password    string
	FirstName   string
	LastName    string
	PhoneNumber string
	Roles       []string
}

// AuthService orchestrates login, registration and password changes.
type AuthService interface {
	Login(ctx context.Context, usernameOrEmail, password string) (*LoginResult, error)
	Register(ctx context.Context, input RegisterInput) (*model.UserSummary, error)
	ChangePassword(ctx context.Context, principal *auth.Principal, current, next string) error
}

type authService struct {
	users  repository.UserRepository
	tokens *auth.TokenService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, tokens *auth.TokenService) AuthService {
	return &authService{users: users, tokens: tokens}
}

// Login verifies credentials and mints a token. A missing user and a wrong
// password produce the identical ErrInvalidCredentials; only a known but
// blocked account gets the distinct ErrAccountDisabled.
func (s *authService) Login(ctx context.Context, usernameOrEmail, password string) (*LoginResult, error) {
	user, err := s.users.FindByUsernameOrEmail(ctx, usernameOrEmail)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("look up user: %w", err)
	}

	if !user.Enabled || user.AccountLocked {
		return nil, apperrors.ErrAccountDisabled
	}

	if !auth.CheckPassword(password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	// Single-column update; concurrent logins race last-writer-wins.
	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		return nil, fmt.Errorf("record last login: %w", err)
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	return &LoginResult{Token: token, User: user.Summary()}, nil
}

// Register creates a new user with a hashed password and the requested roles
// mapped through model.ParseRole. The repository reports which uniqueness
// constraint collided.
func (s *authService) Register(ctx context.Context, input RegisterInput) (*model.UserSummary, error) {
	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	// Role strings are mapped case-insensitively, but open registration
	// never mints a privileged role: ADMIN, MODERATOR and HOTEL_OWNER
	// requests downgrade to USER. Admins come from the seed tool,
	// HOTEL_OWNER from creating a listing.
	roles := model.Roles{}
	for _, raw := range input.Roles {
		mapped := model.ParseRole(raw)
		if mapped != model.RoleUser {
			log.Printf("registration for %q requested privileged role %q, downgraded to USER", input.Username, raw)
			mapped = model.RoleUser
		}
		roles.Add(mapped)
	}
	if len(roles) == 0 {
		roles = model.Roles{model.RoleUser}
	}

	user := &model.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: hash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PhoneNumber:  input.PhoneNumber,
		Roles:        roles,
		Enabled:      true,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	summary := user.Summary()
	return &summary, nil
}

// ChangePassword re-verifies the caller's current password before storing the
// new hash. Already-issued tokens stay valid for their remaining TTL.
func (s *authService) ChangePassword(ctx context.Context, principal *auth.Principal, current, next string) error {
	if principal == nil {
		return apperrors.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, principal.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrUnauthorized
		}
		return fmt.Errorf("look up user: %w", err)
	}

	if !auth.CheckPassword(current, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}

	hash, err := auth.HashPassword(next)
	if err != nil {
		return err
	}

	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		return fmt.Errorf("store new password: %w", err)
	}
	return nil
}
