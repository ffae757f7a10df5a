package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"tourguide/internal/auth"
	apperrors "tourguide/internal/errors"
	"tourguide/internal/model"
)

func TestEventService_Create(t *testing.T) {
	ctx := context.Background()
	admin := adminPrincipal()
	plain := &auth.Principal{ID: uuid.New(), Roles: model.Roles{model.RoleUser}, Enabled: true}
	now := time.Now()

	t.Run("mutations are admin only", func(t *testing.T) {
		svc := NewEventService(new(MockEventRepository))

		_, err := svc.Create(ctx, plain, CreateEventInput{Title: "Jazz Night"})
		assert.ErrorIs(t, err, apperrors.ErrForbidden)

		_, err = svc.Create(ctx, nil, CreateEventInput{Title: "Jazz Night"})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("end before start is rejected", func(t *testing.T) {
		svc := NewEventService(new(MockEventRepository))
		_, err := svc.Create(ctx, admin, CreateEventInput{
			Title: "Backwards",
			Start: now,
			End:   now.Add(-time.Hour),
		})
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("open-ended events are allowed", func(t *testing.T) {
		events := new(MockEventRepository)
		events.On("Create", ctx, mock.AnythingOfType("*model.Event")).Return(nil)

		svc := NewEventService(events)
		event, err := svc.Create(ctx, admin, CreateEventInput{Title: "Ongoing Exhibit", Start: now})

		assert.NoError(t, err)
		assert.Equal(t, admin.ID, event.CreatedBy)
	})

	t.Run("creator id is stamped", func(t *testing.T) {
		events := new(MockEventRepository)
		events.On("Create", ctx, mock.AnythingOfType("*model.Event")).Return(nil)

		svc := NewEventService(events)
		event, err := svc.Create(ctx, admin, CreateEventInput{
			Title: "Food Festival",
			Start: now,
			End:   now.Add(48 * time.Hour),
		})

		assert.NoError(t, err)
		assert.Equal(t, "Food Festival", event.Title)
		assert.Equal(t, admin.ID, event.CreatedBy)
	})
}

func TestEventService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("admin only", func(t *testing.T) {
		plain := &auth.Principal{ID: uuid.New(), Roles: model.Roles{model.RoleUser}, Enabled: true}
		svc := NewEventService(new(MockEventRepository))
		assert.ErrorIs(t, svc.Delete(ctx, plain, uuid.New()), apperrors.ErrForbidden)
	})
}
