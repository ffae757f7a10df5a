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

func TestEventReviewService_Create(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	t.Run("anonymous caller is rejected", func(t *testing.T) {
		svc := NewEventReviewService(new(MockEventReviewRepository), new(MockEventRepository), noCache)
		_, err := svc.Create(ctx, nil, CreateEventReviewInput{EventID: eventID, Rate: 4})
		assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
	})

	t.Run("rate outside 1..5 is rejected", func(t *testing.T) {
		svc := NewEventReviewService(new(MockEventReviewRepository), new(MockEventRepository), noCache)
		for _, rate := range []int{0, 6} {
			_, err := svc.Create(ctx, reviewPrincipal(model.RoleUser), CreateEventReviewInput{EventID: eventID, Rate: rate})
			assert.ErrorIs(t, err, apperrors.ErrInvalidInput, "rate=%d", rate)
		}
	})

	t.Run("unknown event is rejected", func(t *testing.T) {
		events := new(MockEventRepository)
		events.On("FindByID", ctx, eventID).Return(nil, gorm.ErrRecordNotFound)

		svc := NewEventReviewService(new(MockEventReviewRepository), events, noCache)
		_, err := svc.Create(ctx, reviewPrincipal(model.RoleUser), CreateEventReviewInput{EventID: eventID, Rate: 4})

		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("review is stamped with the caller's id", func(t *testing.T) {
		alice := reviewPrincipal(model.RoleUser)
		events := new(MockEventRepository)
		events.On("FindByID", ctx, eventID).Return(&model.Event{ID: eventID}, nil)
		reviews := new(MockEventReviewRepository)
		reviews.On("Create", ctx, mock.AnythingOfType("*model.EventReview")).Return(nil)

		svc := NewEventReviewService(reviews, events, noCache)
		review, err := svc.Create(ctx, alice, CreateEventReviewInput{
			EventID: eventID,
			Rate:    5,
			Review:  "great show",
		})

		assert.NoError(t, err)
		assert.Equal(t, alice.ID, review.UserID)
		assert.Equal(t, eventID, review.EventID)
	})
}

func TestEventReviewService_Update(t *testing.T) {
	ctx := context.Background()
	alice := reviewPrincipal(model.RoleUser)
	bob := reviewPrincipal(model.RoleUser)
	admin := reviewPrincipal(model.RoleAdmin)

	existing := func() *model.EventReview {
		return &model.EventReview{
			ID:      uuid.New(),
			EventID: uuid.New(),
			UserID:  alice.ID,
			Rate:    3,
		}
	}

	t.Run("author may edit", func(t *testing.T) {
		review := existing()
		reviews := new(MockEventReviewRepository)
		reviews.On("FindByID", ctx, review.ID).Return(review, nil)
		reviews.On("Update", ctx, review).Return(nil)

		newRate := 4
		svc := NewEventReviewService(reviews, new(MockEventRepository), noCache)
		updated, err := svc.Update(ctx, alice, review.ID, UpdateEventReviewInput{Rate: &newRate})

		assert.NoError(t, err)
		assert.Equal(t, 4, updated.Rate)
	})

	t.Run("neither stranger nor admin may edit", func(t *testing.T) {
		for _, principal := range []*auth.Principal{bob, admin} {
			review := existing()
			reviews := new(MockEventReviewRepository)
			reviews.On("FindByID", ctx, review.ID).Return(review, nil)

			text := "rewritten"
			svc := NewEventReviewService(reviews, new(MockEventRepository), noCache)
			_, err := svc.Update(ctx, principal, review.ID, UpdateEventReviewInput{Review: &text})

			assert.ErrorIs(t, err, apperrors.ErrForbidden)
		}
	})
}

func TestEventReviewService_Delete(t *testing.T) {
	ctx := context.Background()
	alice := reviewPrincipal(model.RoleUser)
	bob := reviewPrincipal(model.RoleUser)
	admin := reviewPrincipal(model.RoleAdmin)

	review := &model.EventReview{
		ID:      uuid.New(),
		EventID: uuid.New(),
		UserID:  alice.ID,
		Rate:    2,
	}

	tests := []struct {
		name      string
		principal *auth.Principal
		wantErr   error
	}{
		{"author deletes own review", alice, nil},
		{"stranger is forbidden", bob, apperrors.ErrForbidden},
		{"admin deletes any review", admin, nil},
		{"anonymous is unauthorized", nil, apperrors.ErrUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reviews := new(MockEventReviewRepository)
			reviews.On("FindByID", ctx, review.ID).Return(review, nil)
			if tt.wantErr == nil {
				reviews.On("Delete", ctx, review.ID).Return(nil)
			}

			svc := NewEventReviewService(reviews, new(MockEventRepository), noCache)
			err := svc.Delete(ctx, tt.principal, review.ID)

			if tt.wantErr == nil {
				assert.NoError(t, err)
				reviews.AssertCalled(t, "Delete", ctx, review.ID)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
				reviews.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			}
		})
	}
}

func TestEventReviewService_RatingSummary(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	reviews := new(MockEventReviewRepository)
	reviews.On("RatingCounts", ctx, eventID).Return(map[int]int{5: 2, 3: 2}, nil)

	svc := NewEventReviewService(reviews, new(MockEventRepository), noCache)
	summary, err := svc.RatingSummary(ctx, eventID)

	assert.NoError(t, err)
	assert.Equal(t, eventID, summary.EventID)
	assert.Equal(t, int64(4), summary.Count)
	assert.InDelta(t, 4.0, summary.Average, 0.001)
}
