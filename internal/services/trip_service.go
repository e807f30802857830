package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"sankofa/internal/models/db_models"
	"sankofa/internal/models/request_models"
	"sankofa/internal/models/response_models"
	"sankofa/internal/repositories"
	mem "sankofa/pkg/memcache"
	"sankofa/pkg/utils"
)

// Share-token lookups are cached this long; tokens never change, so a
// stale entry can only ever point at a deleted trip.
const shareTokenTTL = 10 * time.Minute

type TripServiceInterface interface {
	CreateTrip(ctx context.Context, creatorID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripDetailResponse, error)
	ListTrips(ctx context.Context, accountID uuid.UUID) ([]response_models.TripSummaryResponse, error)
	GetTripDetail(ctx context.Context, tripID, requesterID uuid.UUID) (*response_models.TripDetailResponse, error)
	InviteMembers(ctx context.Context, tripID, inviterID uuid.UUID, userIDs []string) (*response_models.InviteResponse, error)
	AcceptInvite(ctx context.Context, tripID, accountID uuid.UUID) error
	JoinByToken(ctx context.Context, token string, accountID uuid.UUID) (*response_models.JoinTripResponse, error)
}

type TripService struct {
	tripRepo    repositories.TripRepository
	memberRepo  repositories.MembershipRepository
	accountRepo repositories.AccountRepository
	socialRepo  repositories.SocialRepository
	gate        *PermissionGate
	tokenCache  mem.ShareTokenCache
}

func NewTripService(
	tripRepo repositories.TripRepository,
	memberRepo repositories.MembershipRepository,
	accountRepo repositories.AccountRepository,
	socialRepo repositories.SocialRepository,
	gate *PermissionGate,
	tokenCache mem.ShareTokenCache,
) TripServiceInterface {
	return &TripService{
		tripRepo:    tripRepo,
		memberRepo:  memberRepo,
		accountRepo: accountRepo,
		socialRepo:  socialRepo,
		gate:        gate,
		tokenCache:  tokenCache,
	}
}

func (s *TripService) CreateTrip(ctx context.Context, creatorID uuid.UUID, req request_models.CreateTripRequest) (*response_models.TripDetailResponse, error) {

	startDate, err := utils.ParseDate(req.StartDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}
	endDate, err := utils.ParseDate(req.EndDate)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	trip := db_models.Trip{
		Title:       req.Title,
		Destination: req.Destination,
		StartDate:   startDate,
		EndDate:     endDate,
		CreatedByID: creatorID,
		ShareToken:  utils.NewShareToken(),
	}

	// The creator goes straight in as an accepted owner.
	owner := db_models.TripMember{
		AccountID:   creatorID,
		Role:        db_models.RoleOwner,
		Status:      db_models.StatusAccepted,
		InvitedByID: &creatorID,
	}

	if err := s.tripRepo.CreateWithOwner(ctx, &trip, &owner); err != nil {
		return nil, utils.ErrDatabaseError
	}

	s.tokenCache.Set(trip.ShareToken, trip.ID, shareTokenTTL)

	return s.GetTripDetail(ctx, trip.ID, creatorID)
}

func (s *TripService) ListTrips(ctx context.Context, accountID uuid.UUID) ([]response_models.TripSummaryResponse, error) {

	trips, err := s.tripRepo.ListForAccount(ctx, accountID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.TripSummaryResponse, 0, len(trips))
	for _, trip := range trips {
		out = append(out, response_models.TripSummaryResponse{
			ID:          trip.ID,
			Title:       trip.Title,
			Destination: trip.Destination,
			ShareToken:  trip.ShareToken,
		})
	}
	return out, nil
}

func (s *TripService) GetTripDetail(ctx context.Context, tripID, requesterID uuid.UUID) (*response_models.TripDetailResponse, error) {

	trip, err := s.tripRepo.GetDetail(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if _, err := s.gate.RequireMember(ctx, trip.ID, requesterID); err != nil {
		return nil, err
	}

	activities, err := s.tripRepo.ListActivities(ctx, trip.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	activityIDs := make([]uuid.UUID, 0, len(activities))
	for _, a := range activities {
		activityIDs = append(activityIDs, a.ID)
	}

	likes, err := s.socialRepo.CountReactionsByActivity(ctx, activityIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	comments, err := s.socialRepo.CountMessagesByActivity(ctx, activityIDs)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := response_models.TripDetailResponse{
		ID:          trip.ID,
		Title:       trip.Title,
		Destination: trip.Destination,
		StartDate:   utils.FormatDate(trip.StartDate),
		EndDate:     utils.FormatDate(trip.EndDate),
		CreatedBy:   trip.CreatedByID,
		ShareToken:  trip.ShareToken,
		CreatedAt:   trip.CreatedAt,
		Members:     make([]response_models.TripMemberResponse, 0, len(trip.Members)),
		Days:        make([]response_models.TripDayResponse, 0, len(trip.Days)),
		Activities:  make([]response_models.ActivityResponse, 0, len(activities)),
	}

	for _, m := range trip.Members {
		out.Members = append(out.Members, buildMemberResponse(&m, &m.Account))
	}

	for _, d := range trip.Days {
		out.Days = append(out.Days, response_models.TripDayResponse{
			ID:        d.ID,
			DayNumber: d.DayNumber,
			Date:      utils.FormatDate(d.Date),
			Title:     d.Title,
		})
	}

	for _, a := range activities {
		out.Activities = append(out.Activities, buildActivityResponse(&a, likes[a.ID], comments[a.ID]))
	}

	return &out, nil
}

func (s *TripService) InviteMembers(ctx context.Context, tripID, inviterID uuid.UUID, userIDs []string) (*response_models.InviteResponse, error) {

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if _, err := s.gate.RequireEditor(ctx, trip.ID, inviterID); err != nil {
		return nil, err
	}

	invites := make([]response_models.TripMemberResponse, 0, len(userIDs))
	seen := make(map[uuid.UUID]bool, len(userIDs))

	for _, raw := range userIDs {
		targetID, err := uuid.Parse(raw)
		if err != nil {
			continue // malformed ids are skipped like unknown ones
		}
		if targetID == inviterID || seen[targetID] {
			continue
		}
		seen[targetID] = true

		account, err := s.accountRepo.FindById(ctx, targetID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
		if account == nil {
			continue
		}

		member := db_models.TripMember{
			TripID:      trip.ID,
			AccountID:   targetID,
			Role:        db_models.RoleEditor,
			Status:      db_models.StatusInvited,
			InvitedByID: &inviterID,
		}
		if err := s.memberRepo.FirstOrCreate(ctx, &member); err != nil {
			return nil, utils.ErrDatabaseError
		}

		// Re-inviting an accepted member is a no-op; anything still
		// pending goes back out with the response.
		if !member.IsAccepted() {
			invites = append(invites, buildMemberResponse(&member, account))
		}
	}

	return &response_models.InviteResponse{
		ShareToken: trip.ShareToken,
		Invites:    invites,
	}, nil
}

func (s *TripService) AcceptInvite(ctx context.Context, tripID, accountID uuid.UUID) error {

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if trip == nil {
		return utils.ErrTripNotFound
	}

	member, err := s.memberRepo.Get(ctx, trip.ID, accountID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if member == nil {
		return utils.ErrMembershipNotFound
	}

	if member.IsAccepted() {
		return nil
	}
	if err := s.memberRepo.UpdateStatus(ctx, member.ID, db_models.StatusAccepted); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (s *TripService) JoinByToken(ctx context.Context, token string, accountID uuid.UUID) (*response_models.JoinTripResponse, error) {

	var trip *db_models.Trip
	var err error

	if tripID, ok := s.tokenCache.Get(token); ok {
		trip, err = s.tripRepo.GetByID(ctx, tripID)
	} else {
		trip, err = s.tripRepo.GetByShareToken(ctx, token)
	}
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrShareTokenNotFound
	}
	s.tokenCache.Set(token, trip.ID, shareTokenTTL)

	// New joiners come in as accepted viewers; an existing row keeps
	// whatever role it was invited with and is only flipped to accepted.
	member := db_models.TripMember{
		TripID:      trip.ID,
		AccountID:   accountID,
		Role:        db_models.RoleViewer,
		Status:      db_models.StatusAccepted,
		InvitedByID: &trip.CreatedByID,
	}
	if err := s.memberRepo.FirstOrCreate(ctx, &member); err != nil {
		return nil, utils.ErrDatabaseError
	}

	if !member.IsAccepted() {
		if err := s.memberRepo.UpdateStatus(ctx, member.ID, db_models.StatusAccepted); err != nil {
			return nil, utils.ErrDatabaseError
		}
		member.Status = db_models.StatusAccepted
	}

	return &response_models.JoinTripResponse{
		TripID: trip.ID,
		Role:   member.Role,
	}, nil
}

func buildMemberResponse(member *db_models.TripMember, account *db_models.Account) response_models.TripMemberResponse {
	return response_models.TripMemberResponse{
		ID: member.ID,
		User: response_models.MemberUserBrief{
			ID:    account.ID,
			Name:  account.Name,
			Email: account.Email,
		},
		Role:      member.Role,
		Status:    member.Status,
		CreatedAt: member.CreatedAt,
	}
}

func buildActivityResponse(activity *db_models.TripActivity, likes, comments int64) response_models.ActivityResponse {
	startTime := ""
	if activity.StartTime != nil {
		startTime = *activity.StartTime
	}
	return response_models.ActivityResponse{
		ID:            activity.ID,
		DayID:         activity.DayID,
		DayNumber:     activity.Day.DayNumber,
		Title:         activity.Title,
		LocationName:  activity.LocationName,
		StartTime:     startTime,
		SortOrder:     activity.SortOrder,
		CreatedBy:     activity.CreatedByID,
		LikesCount:    likes,
		CommentsCount: comments,
		CreatedAt:     activity.CreatedAt,
	}
}
