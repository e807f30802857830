package services

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"sankofa/internal/models/db_models"
	"sankofa/internal/models/response_models"
	"sankofa/internal/repositories"
	"sankofa/pkg/utils"
)

type SocialServiceInterface interface {
	ListMessages(ctx context.Context, activityID, requesterID uuid.UUID) ([]response_models.MessageResponse, error)
	PostMessage(ctx context.Context, activityID, actorID uuid.UUID, text string) (*response_models.MessageResponse, error)
	ToggleLike(ctx context.Context, activityID, actorID uuid.UUID) (*response_models.LikeToggleResponse, error)
}

type SocialService struct {
	socialRepo    repositories.SocialRepository
	itineraryRepo repositories.ItineraryRepository
	accountRepo   repositories.AccountRepository
	gate          *PermissionGate
}

func NewSocialService(
	socialRepo repositories.SocialRepository,
	itineraryRepo repositories.ItineraryRepository,
	accountRepo repositories.AccountRepository,
	gate *PermissionGate,
) SocialServiceInterface {
	return &SocialService{
		socialRepo:    socialRepo,
		itineraryRepo: itineraryRepo,
		accountRepo:   accountRepo,
		gate:          gate,
	}
}

func (s *SocialService) ListMessages(ctx context.Context, activityID, requesterID uuid.UUID) ([]response_models.MessageResponse, error) {

	activity, err := s.itineraryRepo.GetActivity(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	if _, err := s.gate.RequireMember(ctx, activity.TripID, requesterID); err != nil {
		return nil, err
	}

	messages, err := s.socialRepo.ListMessages(ctx, activity.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.MessageResponse, 0, len(messages))
	for _, m := range messages {
		out = append(out, buildMessageResponse(&m, &m.Account))
	}
	return out, nil
}

// PostMessage needs edit capability while ToggleLike below needs bare
// membership. The asymmetry is deliberate: viewers follow the thread
// and react, editors drive the conversation.
func (s *SocialService) PostMessage(ctx context.Context, activityID, actorID uuid.UUID, text string) (*response_models.MessageResponse, error) {

	activity, err := s.itineraryRepo.GetActivity(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	if _, err := s.gate.RequireEditor(ctx, activity.TripID, actorID); err != nil {
		return nil, err
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return nil, utils.ErrEmptyMessage
	}

	author, err := s.accountRepo.FindById(ctx, actorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if author == nil {
		return nil, utils.ErrAccountNotFound
	}

	message := db_models.ActivityMessage{
		ActivityID: activity.ID,
		AccountID:  actorID,
		Message:    text,
	}
	if err := s.socialRepo.CreateMessage(ctx, &message); err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildMessageResponse(&message, author)
	return &out, nil
}

func (s *SocialService) ToggleLike(ctx context.Context, activityID, actorID uuid.UUID) (*response_models.LikeToggleResponse, error) {

	activity, err := s.itineraryRepo.GetActivity(ctx, activityID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil {
		return nil, utils.ErrActivityNotFound
	}

	if _, err := s.gate.RequireMember(ctx, activity.TripID, actorID); err != nil {
		return nil, err
	}

	liked := false
	existing, err := s.socialRepo.GetReaction(ctx, activity.ID, actorID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	if existing != nil {
		if err := s.socialRepo.DeleteReaction(ctx, existing.ID); err != nil {
			return nil, utils.ErrDatabaseError
		}
	} else {
		reaction := db_models.ActivityReaction{
			ActivityID: activity.ID,
			AccountID:  actorID,
		}
		err := s.socialRepo.CreateReaction(ctx, &reaction)
		// A concurrent toggle may have created the row first; the unique
		// constraint keeps the pair single either way.
		if err != nil && !errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, utils.ErrDatabaseError
		}
		liked = true
	}

	count, err := s.socialRepo.CountReactions(ctx, activity.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.LikeToggleResponse{
		Liked:      liked,
		LikesCount: count,
	}, nil
}

func buildMessageResponse(message *db_models.ActivityMessage, author *db_models.Account) response_models.MessageResponse {
	return response_models.MessageResponse{
		ID:         message.ID,
		ActivityID: message.ActivityID,
		User: response_models.MemberUserBrief{
			ID:    author.ID,
			Name:  author.Name,
			Email: author.Email,
		},
		Message:   message.Message,
		CreatedAt: message.CreatedAt,
	}
}
