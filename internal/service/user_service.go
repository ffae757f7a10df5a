package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tourguide/internal/auth"
	"tourguide/internal/cache"
	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
	"tourguide/internal/repository"
)

const userCacheTTL = 5 * time.Minute

// UpdateProfileInput holds the optional profile fields a user may change.
// Nil pointers mean "leave unchanged".
type UpdateProfileInput struct {
	Username    *string
	Email       *string
	FirstName   *string
	LastName    *string
	PhoneNumber *string
}

// UserService exposes profile and account administration operations.
type UserService interface {
	GetSummary(ctx context.Context, id uuid.UUID) (*model.UserSummary, error)
	GetByUsername(ctx context.Context, username string) (*model.UserSummary, error)
	List(ctx context.Context) ([]model.UserSummary, error)
	UpdateProfile(ctx context.Context, principal *auth.Principal, id uuid.UUID, input UpdateProfileInput) (*model.UserSummary, error)
	Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error
	ToggleEnabled(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.UserSummary, error)
	AddFavoriteDestination(ctx context.Context, principal *auth.Principal, destinationID uuid.UUID) (model.UUIDSet, error)
	RemoveFavoriteDestination(ctx context.Context, principal *auth.Principal, destinationID uuid.UUID) (model.UUIDSet, error)
	AddFavoriteEvent(ctx context.Context, principal *auth.Principal, eventID uuid.UUID) (model.UUIDSet, error)
	RemoveFavoriteEvent(ctx context.Context, principal *auth.Principal, eventID uuid.UUID) (model.UUIDSet, error)
}

type userService struct {
	users repository.UserRepository
	cache *cache.Client
}

// NewUserService builds a UserService with repository and cache.
func NewUserService(users repository.UserRepository, cache *cache.Client) UserService {
	return &userService{users: users, cache: cache}
}

func (s *userService) cacheKey(id uuid.UUID) string {
	return fmt.Sprintf("user:summary:%s", id)
}

// GetSummary returns the public projection of a user, served from cache when
// available.
func (s *userService) GetSummary(ctx context.Context, id uuid.UUID) (*model.UserSummary, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.UserSummary
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	summary := user.Summary()
	if payload, err := json.Marshal(summary); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, userCacheTTL)
	}
	return &summary, nil
}

func (s *userService) GetByUsername(ctx context.Context, username string) (*model.UserSummary, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	summary := user.Summary()
	return &summary, nil
}

func (s *userService) List(ctx context.Context) ([]model.UserSummary, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	summaries := make([]model.UserSummary, 0, len(users))
	for i := range users {
		summaries = append(summaries, users[i].Summary())
	}
	return summaries, nil
}

// UpdateProfile lets the account owner or an admin change profile fields.
// Username and email changes re-check uniqueness.
func (s *userService) UpdateProfile(ctx context.Context, principal *auth.Principal, id uuid.UUID, input UpdateProfileInput) (*model.UserSummary, error) {
	if err := auth.RequireOwnerOr(principal, id, model.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	if input.Username != nil && *input.Username != user.Username {
		taken, err := s.users.ExistsByUsername(ctx, *input.Username)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrUsernameTaken
		}
		user.Username = *input.Username
	}

	if input.Email != nil && *input.Email != user.Email {
		taken, err := s.users.ExistsByEmail(ctx, *input.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, apperrors.ErrEmailTaken
		}
		user.Email = *input.Email
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.PhoneNumber != nil {
		user.PhoneNumber = *input.PhoneNumber
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	summary := user.Summary()
	return &summary, nil
}

// Delete removes a user account. Admin only.
func (s *userService) Delete(ctx context.Context, principal *auth.Principal, id uuid.UUID) error {
	if err := auth.RequireRoles(principal, model.RoleAdmin); err != nil {
		return err
	}
	if err := s.users.Delete(ctx, id); err != nil {
		if repository.IsNotFound(err) {
			return apperrors.ErrNotFound
		}
		return err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// ToggleEnabled flips the enabled flag. Admin only. Outstanding tokens for a
// disabled user keep verifying, but the principal resolver rejects them on
// the next request once it re-reads this record.
func (s *userService) ToggleEnabled(ctx context.Context, principal *auth.Principal, id uuid.UUID) (*model.UserSummary, error) {
	if err := auth.RequireRoles(principal, model.RoleAdmin); err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}

	user.Enabled = !user.Enabled
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, s.cacheKey(id))

	summary := user.Summary()
	return &summary, nil
}

func (s *userService) AddFavoriteDestination(ctx context.Context, principal *auth.Principal, destinationID uuid.UUID) (model.UUIDSet, error) {
	return s.mutateFavorites(ctx, principal, func(user *model.User) model.UUIDSet {
		user.FavoriteDestinationIDs.Add(destinationID)
		return user.FavoriteDestinationIDs
	})
}

func (s *userService) RemoveFavoriteDestination(ctx context.Context, principal *auth.Principal, destinationID uuid.UUID) (model.UUIDSet, error) {
	return s.mutateFavorites(ctx, principal, func(user *model.User) model.UUIDSet {
		user.FavoriteDestinationIDs.Remove(destinationID)
		return user.FavoriteDestinationIDs
	})
}

func (s *userService) AddFavoriteEvent(ctx context.Context, principal *auth.Principal, eventID uuid.UUID) (model.UUIDSet, error) {
	return s.mutateFavorites(ctx, principal, func(user *model.User) model.UUIDSet {
		user.FavoriteEventIDs.Add(eventID)
		return user.FavoriteEventIDs
	})
}

func (s *userService) RemoveFavoriteEvent(ctx context.Context, principal *auth.Principal, eventID uuid.UUID) (model.UUIDSet, error) {
	return s.mutateFavorites(ctx, principal, func(user *model.User) model.UUIDSet {
		user.FavoriteEventIDs.Remove(eventID)
		return user.FavoriteEventIDs
	})
}

func (s *userService) mutateFavorites(ctx context.Context, principal *auth.Principal, mutate func(*model.User) model.UUIDSet) (model.UUIDSet, error) {
	if principal == nil {
		return nil, apperrors.ErrUnauthorized
	}

	user, err := s.users.FindByID(ctx, principal.ID)
	if err != nil {
		if repository.IsNotFound(err) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, err
	}

	result := mutate(user)
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return result, nil
}
