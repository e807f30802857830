package services

import (
	"context"

	"github.com/google/uuid"
	"sankofa/internal/models/db_models"
	"sankofa/internal/models/request_models"
	"sankofa/internal/models/response_models"
	"sankofa/internal/repositories"
	"sankofa/pkg/utils"
)

type ItineraryServiceInterface interface {
	AddDay(ctx context.Context, tripID, actorID uuid.UUID, req request_models.AddDayRequest) (*response_models.TripDayResponse, error)
	AddActivity(ctx context.Context, tripID, actorID uuid.UUID, req request_models.AddActivityRequest) (*response_models.ActivityResponse, error)
	UpdateActivity(ctx context.Context, activityID, actorID uuid.UUID, req request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error)
	DeleteActivity(ctx context.Context, activityID, actorID uuid.UUID) error
}

type ItineraryService struct {
	itineraryRepo repositories.ItineraryRepository
	tripRepo      repositories.TripRepository
	socialRepo    repositories.SocialRepository
	gate          *PermissionGate
}

func NewItineraryService(
	itineraryRepo repositories.ItineraryRepository,
	tripRepo repositories.TripRepository,
	socialRepo repositories.SocialRepository,
	gate *PermissionGate,
) ItineraryServiceInterface {
	return &ItineraryService{
		itineraryRepo: itineraryRepo,
		tripRepo:      tripRepo,
		socialRepo:    socialRepo,
		gate:          gate,
	}
}

func (s *ItineraryService) AddDay(ctx context.Context, tripID, actorID uuid.UUID, req request_models.AddDayRequest) (*response_models.TripDayResponse, error) {

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if _, err := s.gate.RequireEditor(ctx, trip.ID, actorID); err != nil {
		return nil, err
	}

	dayNumber := 0
	if req.DayNumber != nil {
		dayNumber = *req.DayNumber
	}
	if dayNumber <= 0 {
		dayNumber, err = s.itineraryRepo.NextDayNumber(ctx, trip.ID)
		if err != nil {
			return nil, utils.ErrDatabaseError
		}
	}

	date, err := utils.ParseDate(req.Date)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	day, err := s.itineraryRepo.UpsertDay(ctx, trip.ID, dayNumber, date, req.Title)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TripDayResponse{
		ID:        day.ID,
		DayNumber: day.DayNumber,
		Date:      utils.FormatDate(day.Date),
		Title:     day.Title,
	}, nil
}

func (s *ItineraryService) AddActivity(ctx context.Context, tripID, actorID uuid.UUID, req request_models.AddActivityRequest) (*response_models.ActivityResponse, error) {

	trip, err := s.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripNotFound
	}

	if _, err := s.gate.RequireEditor(ctx, trip.ID, actorID); err != nil {
		return nil, err
	}

	if req.Day == nil || *req.Day <= 0 {
		return nil, utils.ErrDayRequired
	}

	day, err := s.itineraryRepo.GetOrCreateDay(ctx, trip.ID, *req.Day)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if day.TripID != trip.ID {
		return nil, utils.ErrDayTripMismatch
	}

	var startTime *string
	if req.StartTime != nil && *req.StartTime != "" {
		clock, err := utils.ParseClock(*req.StartTime)
		if err != nil {
			return nil, utils.ErrInvalidInput
		}
		startTime = &clock
	}

	sortOrder := 1
	if req.SortOrder != nil {
		sortOrder = *req.SortOrder
	}

	activity := db_models.TripActivity{
		TripID:       trip.ID,
		DayID:        day.ID,
		Title:        req.Title,
		LocationName: req.LocationName,
		StartTime:    startTime,
		SortOrder:    sortOrder,
		CreatedByID:  &actorID,
	}
	if err := s.itineraryRepo.CreateActivity(ctx, &activity); err != nil {
		return nil, utils.ErrDatabaseError
	}
	activity.Day = *day

	// Brand new, so both social counts are zero.
	out := buildActivityResponse(&activity, 0, 0)
	return &out, nil
}

func (s *ItineraryService) UpdateActivity(ctx context.Context, activityID, actorID uuid.UUID, req request_models.UpdateActivityRequest) (*response_models.ActivityResponse, error) {

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

	if req.Title != nil {
		activity.Title = *req.Title
	}
	if req.LocationName != nil {
		activity.LocationName = *req.LocationName
	}
	if req.StartTime != nil {
		if *req.StartTime == "" {
			activity.StartTime = nil
		} else {
			clock, err := utils.ParseClock(*req.StartTime)
			if err != nil {
				return nil, utils.ErrInvalidInput
			}
			activity.StartTime = &clock
		}
	}
	if req.SortOrder != nil {
		activity.SortOrder = *req.SortOrder
	}

	if err := s.itineraryRepo.SaveActivity(ctx, activity); err != nil {
		return nil, utils.ErrDatabaseError
	}

	likes, err := s.socialRepo.CountReactions(ctx, activity.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	comments, err := s.socialRepo.CountMessages(ctx, activity.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := buildActivityResponse(activity, likes, comments)
	return &out, nil
}

func (s *ItineraryService) DeleteActivity(ctx context.Context, activityID, actorID uuid.UUID) error {

	activity, err := s.itineraryRepo.GetActivity(ctx, activityID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if activity == nil {
		return utils.ErrActivityNotFound
	}

	if _, err := s.gate.RequireEditor(ctx, activity.TripID, actorID); err != nil {
		return err
	}

	if err := s.itineraryRepo.DeleteActivityCascade(ctx, activity.ID); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
