package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"gorm.io/datatypes"
	dbm "sankofa/internal/models/db_models"
)

// mock implementations of the repository interfaces

type MockTripRepository struct {
	mock.Mock
}

func (m *MockTripRepository) CreateWithOwner(ctx context.Context, trip *dbm.Trip, owner *dbm.TripMember) error {
	args := m.Called(ctx, trip, owner)
	return args.Error(0)
}

func (m *MockTripRepository) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]dbm.Trip, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dbm.Trip), args.Error(1)
}

func (m *MockTripRepository) GetByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbm.Trip), args.Error(1)
}

func (m *MockTripRepository) GetDetail(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbm.Trip), args.Error(1)
}

func (m *MockTripRepository) GetByShareToken(ctx context.Context, token string) (*dbm.Trip, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbm.Trip), args.Error(1)
}

func (m *MockTripRepository) ListActivities(ctx context.Context, tripID uuid.UUID) ([]dbm.TripActivity, error) {
	args := m.Called(ctx, tripID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dbm.TripActivity), args.Error(1)
}

type MockMembershipRepository struct {
	mock.Mock
}

func (m *MockMembershipRepository) Get(ctx context.Context, tripID, accountID uuid.UUID) (*dbm.TripMember, error) {
	args := m.Called(ctx, tripID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbm.TripMember), args.Error(1)
}

func (m *MockMembershipRepository) GetAccepted(ctx context.Context, tripID, accountID uuid.UUID) (*dbm.TripMember, error) {
	args := m.Called(ctx, tripID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbm.TripMember), args.Error(1)
}

func (m *MockMembershipRepository) FirstOrCreate(ctx context.Context, member *dbm.TripMember) error {
	args := m.Called(ctx, member)
	return args.Error(0)
}

func (m *MockMembershipRepository) UpdateStatus(ctx context.Context, memberID uuid.UUID, status string) error {
	args := m.Called(ctx, memberID, status)
	return args.Error(0)
}

type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) Insert(ctx context.Context, account *dbm.Account) error {
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) FindById(ctx context.Context, id uuid.UUID) (*dbm.Account, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbm.Account), args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*dbm.Account, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbm.Account), args.Error(1)
}

func (m *MockAccountRepository) FindAll(ctx context.Context) ([]dbm.Account, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dbm.Account), args.Error(1)
}

type MockSocialRepository struct {
	mock.Mock
}

func (m *MockSocialRepository) ListMessages(ctx context.Context, activityID uuid.UUID) ([]dbm.ActivityMessage, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dbm.ActivityMessage), args.Error(1)
}

func (m *MockSocialRepository) CreateMessage(ctx context.Context, message *dbm.ActivityMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

func (m *MockSocialRepository) GetReaction(ctx context.Context, activityID, accountID uuid.UUID) (*dbm.ActivityReaction, error) {
	args := m.Called(ctx, activityID, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbm.ActivityReaction), args.Error(1)
}

func (m *MockSocialRepository) CreateReaction(ctx context.Context, reaction *dbm.ActivityReaction) error {
	args := m.Called(ctx, reaction)
	return args.Error(0)
}

func (m *MockSocialRepository) DeleteReaction(ctx context.Context, reactionID uuid.UUID) error {
	args := m.Called(ctx, reactionID)
	return args.Error(0)
}

func (m *MockSocialRepository) CountReactions(ctx context.Context, activityID uuid.UUID) (int64, error) {
	args := m.Called(ctx, activityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSocialRepository) CountMessages(ctx context.Context, activityID uuid.UUID) (int64, error) {
	args := m.Called(ctx, activityID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSocialRepository) CountReactionsByActivity(ctx context.Context, activityIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, activityIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

func (m *MockSocialRepository) CountMessagesByActivity(ctx context.Context, activityIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	args := m.Called(ctx, activityIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[uuid.UUID]int64), args.Error(1)
}

type MockItineraryRepository struct {
	mock.Mock
}

func (m *MockItineraryRepository) NextDayNumber(ctx context.Context, tripID uuid.UUID) (int, error) {
	args := m.Called(ctx, tripID)
	return args.Int(0), args.Error(1)
}

func (m *MockItineraryRepository) UpsertDay(ctx context.Context, tripID uuid.UUID, dayNumber int, date *datatypes.Date, title string) (*dbm.TripDay, error) {
	args := m.Called(ctx, tripID, dayNumber, date, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbm.TripDay), args.Error(1)
}

func (m *MockItineraryRepository) GetOrCreateDay(ctx context.Context, tripID uuid.UUID, dayNumber int) (*dbm.TripDay, error) {
	args := m.Called(ctx, tripID, dayNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbm.TripDay), args.Error(1)
}

func (m *MockItineraryRepository) CreateActivity(ctx context.Context, activity *dbm.TripActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockItineraryRepository) GetActivity(ctx context.Context, activityID uuid.UUID) (*dbm.TripActivity, error) {
	args := m.Called(ctx, activityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dbm.TripActivity), args.Error(1)
}

func (m *MockItineraryRepository) SaveActivity(ctx context.Context, activity *dbm.TripActivity) error {
	args := m.Called(ctx, activity)
	return args.Error(0)
}

func (m *MockItineraryRepository) DeleteActivityCascade(ctx context.Context, activityID uuid.UUID) error {
	args := m.Called(ctx, activityID)
	return args.Error(0)
}

type MockShareTokenCache struct {
	mock.Mock
}

func (m *MockShareTokenCache) Set(token string, tripID uuid.UUID, ttl time.Duration) {
	m.Called(token, tripID, ttl)
}

func (m *MockShareTokenCache) Get(token string) (uuid.UUID, bool) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Bool(1)
}

func acceptedMember(tripID, accountID uuid.UUID, role string) *dbm.TripMember {
	return &dbm.TripMember{
		BaseModel: dbm.BaseModel{ID: uuid.New()},
		TripID:    tripID,
		AccountID: accountID,
		Role:      role,
		Status:    dbm.StatusAccepted,
	}
}
