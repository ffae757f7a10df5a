package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"tourguide/internal/model"
)

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.User, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	args := m.Called(ctx, username)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) FindByUsernameOrEmail(ctx context.Context, identifier string) (*model.User, error) {
	args := m.Called(ctx, identifier)
	if user := args.Get(0); user != nil {
		return user.(*model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *MockUserRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockUserRepository) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if users := args.Get(0); users != nil {
		return users.([]model.User), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockReviewRepository struct {
	mock.Mock
}

func (m *MockReviewRepository) Create(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) Update(ctx context.Context, review *model.Review) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Review, error) {
	args := m.Called(ctx, id)
	if review := args.Get(0); review != nil {
		return review.(*model.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewRepository) ListByDestination(ctx context.Context, destinationID uuid.UUID) ([]model.Review, error) {
	args := m.Called(ctx, destinationID)
	if reviews := args.Get(0); reviews != nil {
		return reviews.([]model.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.Review, error) {
	args := m.Called(ctx, userID)
	if reviews := args.Get(0); reviews != nil {
		return reviews.([]model.Review), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReviewRepository) RatingCounts(ctx context.Context, destinationID uuid.UUID) (map[int]int, error) {
	args := m.Called(ctx, destinationID)
	if counts := args.Get(0); counts != nil {
		return counts.(map[int]int), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) Create(ctx context.Context, destination *model.Destination) error {
	args := m.Called(ctx, destination)
	return args.Error(0)
}

func (m *MockDestinationRepository) Update(ctx context.Context, destination *model.Destination) error {
	args := m.Called(ctx, destination)
	return args.Error(0)
}

func (m *MockDestinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Destination, error) {
	args := m.Called(ctx, id)
	if destination := args.Get(0); destination != nil {
		return destination.(*model.Destination), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDestinationRepository) List(ctx context.Context) ([]model.Destination, error) {
	args := m.Called(ctx)
	if destinations := args.Get(0); destinations != nil {
		return destinations.([]model.Destination), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDestinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Create(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) Update(ctx context.Context, event *model.Event) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	args := m.Called(ctx, id)
	if event := args.Get(0); event != nil {
		return event.(*model.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) List(ctx context.Context) ([]model.Event, error) {
	args := m.Called(ctx)
	if events := args.Get(0); events != nil {
		return events.([]model.Event), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventReviewRepository struct {
	mock.Mock
}

func (m *MockEventReviewRepository) Create(ctx context.Context, review *model.EventReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockEventReviewRepository) Update(ctx context.Context, review *model.EventReview) error {
	args := m.Called(ctx, review)
	return args.Error(0)
}

func (m *MockEventReviewRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.EventReview, error) {
	args := m.Called(ctx, id)
	if review := args.Get(0); review != nil {
		return review.(*model.EventReview), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventReviewRepository) ListByEvent(ctx context.Context, eventID uuid.UUID) ([]model.EventReview, error) {
	args := m.Called(ctx, eventID)
	if reviews := args.Get(0); reviews != nil {
		return reviews.([]model.EventReview), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventReviewRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.EventReview, error) {
	args := m.Called(ctx, userID)
	if reviews := args.Get(0); reviews != nil {
		return reviews.([]model.EventReview), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventReviewRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockEventReviewRepository) RatingCounts(ctx context.Context, eventID uuid.UUID) (map[int]int, error) {
	args := m.Called(ctx, eventID)
	if counts := args.Get(0); counts != nil {
		return counts.(map[int]int), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockHotelRepository struct {
	mock.Mock
}

func (m *MockHotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelRepository) Update(ctx context.Context, hotel *model.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}

func (m *MockHotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*model.Hotel, error) {
	args := m.Called(ctx, id)
	if hotel := args.Get(0); hotel != nil {
		return hotel.(*model.Hotel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHotelRepository) List(ctx context.Context) ([]model.Hotel, error) {
	args := m.Called(ctx)
	if hotels := args.Get(0); hotels != nil {
		return hotels.([]model.Hotel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHotelRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]model.Hotel, error) {
	args := m.Called(ctx, ownerID)
	if hotels := args.Get(0); hotels != nil {
		return hotels.([]model.Hotel), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockHotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
