package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	dbm "sankofa/internal/models/db_models"
	"sankofa/pkg/utils"
)

func newSocialService(
	socialRepo *MockSocialRepository,
	itineraryRepo *MockItineraryRepository,
	accountRepo *MockAccountRepository,
	memberRepo *MockMembershipRepository,
) SocialServiceInterface {
	return NewSocialService(socialRepo, itineraryRepo, accountRepo, NewPermissionGate(memberRepo))
}

func tripActivity(tripID uuid.UUID) *dbm.TripActivity {
	return &dbm.TripActivity{BaseModel: dbm.BaseModel{ID: uuid.New()}, TripID: tripID}
}

// TestPostMessage_EditorSucceeds covers the happy path for posting.
func TestPostMessage_EditorSucceeds(t *testing.T) {
	socialRepo := new(MockSocialRepository)
	itineraryRepo := new(MockItineraryRepository)
	accountRepo := new(MockAccountRepository)
	memberRepo := new(MockMembershipRepository)

	tripID := uuid.New()
	actorID := uuid.New()
	activity := tripActivity(tripID)

	itineraryRepo.On("GetActivity", mock.Anything, activity.ID).Return(activity, nil)
	memberRepo.On("GetAccepted", mock.Anything, tripID, actorID).
		Return(acceptedMember(tripID, actorID, dbm.RoleEditor), nil)
	accountRepo.On("FindById", mock.Anything, actorID).
		Return(&dbm.Account{BaseModel: dbm.BaseModel{ID: actorID}, Name: "Kofi", Email: "kofi@example.com"}, nil)
	socialRepo.On("CreateMessage", mock.Anything, mock.MatchedBy(func(m *dbm.ActivityMessage) bool {
		return m.ActivityID == activity.ID && m.AccountID == actorID && m.Message == "Meet at the gate"
	})).Return(nil)

	svc := newSocialService(socialRepo, itineraryRepo, accountRepo, memberRepo)

	out, err := svc.PostMessage(context.Background(), activity.ID, actorID, "  Meet at the gate  ")

	assert.NoError(t, err)
	assert.Equal(t, "Meet at the gate", out.Message)
	assert.Equal(t, "Kofi", out.User.Name)
	socialRepo.AssertExpectations(t)
}

// TestPostMessage_ViewerForbidden pins the permission split: viewers
// may read and like but not post.
func TestPostMessage_ViewerForbidden(t *testing.T) {
	itineraryRepo := new(MockItineraryRepository)
	memberRepo := new(MockMembershipRepository)

	tripID := uuid.New()
	actorID := uuid.New()
	activity := tripActivity(tripID)

	itineraryRepo.On("GetActivity", mock.Anything, activity.ID).Return(activity, nil)
	memberRepo.On("GetAccepted", mock.Anything, tripID, actorID).
		Return(acceptedMember(tripID, actorID, dbm.RoleViewer), nil)

	svc := newSocialService(new(MockSocialRepository), itineraryRepo, new(MockAccountRepository), memberRepo)

	_, err := svc.PostMessage(context.Background(), activity.ID, actorID, "hi")

	assert.ErrorIs(t, err, utils.ErrNoEditPermission)
}

// TestPostMessage_BlankRejected verifies whitespace-only text is refused.
func TestPostMessage_BlankRejected(t *testing.T) {
	socialRepo := new(MockSocialRepository)
	itineraryRepo := new(MockItineraryRepository)
	memberRepo := new(MockMembershipRepository)

	tripID := uuid.New()
	actorID := uuid.New()
	activity := tripActivity(tripID)

	itineraryRepo.On("GetActivity", mock.Anything, activity.ID).Return(activity, nil)
	memberRepo.On("GetAccepted", mock.Anything, tripID, actorID).
		Return(acceptedMember(tripID, actorID, dbm.RoleOwner), nil)

	svc := newSocialService(socialRepo, itineraryRepo, new(MockAccountRepository), memberRepo)

	_, err := svc.PostMessage(context.Background(), activity.ID, actorID, "   \n\t ")

	assert.ErrorIs(t, err, utils.ErrEmptyMessage)
	socialRepo.AssertNotCalled(t, "CreateMessage", mock.Anything, mock.Anything)
}

// TestListMessages_MemberOnly verifies non-members cannot read threads.
func TestListMessages_MemberOnly(t *testing.T) {
	itineraryRepo := new(MockItineraryRepository)
	memberRepo := new(MockMembershipRepository)

	tripID := uuid.New()
	requesterID := uuid.New()
	activity := tripActivity(tripID)

	itineraryRepo.On("GetActivity", mock.Anything, activity.ID).Return(activity, nil)
	memberRepo.On("GetAccepted", mock.Anything, tripID, requesterID).Return(nil, nil)

	svc := newSocialService(new(MockSocialRepository), itineraryRepo, new(MockAccountRepository), memberRepo)

	_, err := svc.ListMessages(context.Background(), activity.ID, requesterID)

	assert.ErrorIs(t, err, utils.ErrNotTripMember)
}

// TestToggleLike_ViewerCanLike verifies a first toggle from an accepted
// viewer creates the reaction.
func TestToggleLike_ViewerCanLike(t *testing.T) {
	socialRepo := new(MockSocialRepository)
	itineraryRepo := new(MockItineraryRepository)
	memberRepo := new(MockMembershipRepository)

	tripID := uuid.New()
	actorID := uuid.New()
	activity := tripActivity(tripID)

	itineraryRepo.On("GetActivity", mock.Anything, activity.ID).Return(activity, nil)
	memberRepo.On("GetAccepted", mock.Anything, tripID, actorID).
		Return(acceptedMember(tripID, actorID, dbm.RoleViewer), nil)
	socialRepo.On("GetReaction", mock.Anything, activity.ID, actorID).Return(nil, nil)
	socialRepo.On("CreateReaction", mock.Anything, mock.MatchedBy(func(r *dbm.ActivityReaction) bool {
		return r.ActivityID == activity.ID && r.AccountID == actorID
	})).Return(nil)
	socialRepo.On("CountReactions", mock.Anything, activity.ID).Return(int64(1), nil)

	svc := newSocialService(socialRepo, itineraryRepo, new(MockAccountRepository), memberRepo)

	out, err := svc.ToggleLike(context.Background(), activity.ID, actorID)

	assert.NoError(t, err)
	assert.True(t, out.Liked)
	assert.Equal(t, int64(1), out.LikesCount)
}

// TestToggleLike_SecondToggleUnlikes verifies the round trip removes
// the existing reaction.
func TestToggleLike_SecondToggleUnlikes(t *testing.T) {
	socialRepo := new(MockSocialRepository)
	itineraryRepo := new(MockItineraryRepository)
	memberRepo := new(MockMembershipRepository)

	tripID := uuid.New()
	actorID := uuid.New()
	activity := tripActivity(tripID)
	reactionID := uuid.New()

	itineraryRepo.On("GetActivity", mock.Anything, activity.ID).Return(activity, nil)
	memberRepo.On("GetAccepted", mock.Anything, tripID, actorID).
		Return(acceptedMember(tripID, actorID, dbm.RoleEditor), nil)
	socialRepo.On("GetReaction", mock.Anything, activity.ID, actorID).
		Return(&dbm.ActivityReaction{ID: reactionID, ActivityID: activity.ID, AccountID: actorID}, nil)
	socialRepo.On("DeleteReaction", mock.Anything, reactionID).Return(nil)
	socialRepo.On("CountReactions", mock.Anything, activity.ID).Return(int64(0), nil)

	svc := newSocialService(socialRepo, itineraryRepo, new(MockAccountRepository), memberRepo)

	out, err := svc.ToggleLike(context.Background(), activity.ID, actorID)

	assert.NoError(t, err)
	assert.False(t, out.Liked)
	assert.Equal(t, int64(0), out.LikesCount)
	socialRepo.AssertExpectations(t)
}

// TestToggleLike_NonMemberForbidden verifies bare membership is still
// required to react.
func TestToggleLike_NonMemberForbidden(t *testing.T) {
	itineraryRepo := new(MockItineraryRepository)
	memberRepo := new(MockMembershipRepository)

	tripID := uuid.New()
	actorID := uuid.New()
	activity := tripActivity(tripID)

	itineraryRepo.On("GetActivity", mock.Anything, activity.ID).Return(activity, nil)
	memberRepo.On("GetAccepted", mock.Anything, tripID, actorID).Return(nil, nil)

	svc := newSocialService(new(MockSocialRepository), itineraryRepo, new(MockAccountRepository), memberRepo)

	_, err := svc.ToggleLike(context.Background(), activity.ID, actorID)

	assert.ErrorIs(t, err, utils.ErrNotTripMember)
}

// TestToggleLike_MissingActivity verifies reactions need a live activity.
func TestToggleLike_MissingActivity(t *testing.T) {
	itineraryRepo := new(MockItineraryRepository)
	itineraryRepo.On("GetActivity", mock.Anything, mock.Anything).Return(nil, nil)

	svc := newSocialService(new(MockSocialRepository), itineraryRepo, new(MockAccountRepository), new(MockMembershipRepository))

	_, err := svc.ToggleLike(context.Background(), uuid.New(), uuid.New())

	assert.ErrorIs(t, err, utils.ErrActivityNotFound)
}
