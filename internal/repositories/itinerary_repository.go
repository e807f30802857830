package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	dbm "sankofa/internal/models/db_models"
)

type ItineraryRepository interface {
	NextDayNumber(ctx context.Context, tripID uuid.UUID) (int, error)
	UpsertDay(ctx context.Context, tripID uuid.UUID, dayNumber int, date *datatypes.Date, title string) (*dbm.TripDay, error)
	GetOrCreateDay(ctx context.Context, tripID uuid.UUID, dayNumber int) (*dbm.TripDay, error)
	CreateActivity(ctx context.Context, activity *dbm.TripActivity) error
	GetActivity(ctx context.Context, activityID uuid.UUID) (*dbm.TripActivity, error)
	SaveActivity(ctx context.Context, activity *dbm.TripActivity) error
	DeleteActivityCascade(ctx context.Context, activityID uuid.UUID) error
}

type itineraryRepository struct {
	db *gorm.DB
}

func NewItineraryRepository(db *gorm.DB) ItineraryRepository {
	return &itineraryRepository{db: db}
}

func (r *itineraryRepository) NextDayNumber(ctx context.Context, tripID uuid.UUID) (int, error) {

	var maxDay int
	err := r.db.WithContext(ctx).
		Model(&dbm.TripDay{}).
		Where("trip_id = ?", tripID).
		Select("COALESCE(MAX(day_number), 0)").
		Scan(&maxDay).Error

	if err != nil {
		return 0, err
	}

	return maxDay + 1, nil
}

// UpsertDay creates the (trip, day_number) row or patches date/title on
// the existing one. Re-adding a day never errors.
func (r *itineraryRepository) UpsertDay(ctx context.Context, tripID uuid.UUID, dayNumber int, date *datatypes.Date, title string) (*dbm.TripDay, error) {

	day := dbm.TripDay{}
	err := r.db.WithContext(ctx).
		Where(dbm.TripDay{TripID: tripID, DayNumber: dayNumber}).
		Attrs(dbm.TripDay{Date: date, Title: title}).
		FirstOrCreate(&day).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = r.db.WithContext(ctx).
			Where("trip_id = ? AND day_number = ?", tripID, dayNumber).
			First(&day).Error
	}
	if err != nil {
		return nil, err
	}

	changed := false
	if date != nil {
		day.Date = date
		changed = true
	}
	if title != "" && day.Title != title {
		day.Title = title
		changed = true
	}
	if changed {
		if err := r.db.WithContext(ctx).Save(&day).Error; err != nil {
			return nil, err
		}
	}

	return &day, nil
}

func (r *itineraryRepository) GetOrCreateDay(ctx context.Context, tripID uuid.UUID, dayNumber int) (*dbm.TripDay, error) {

	day := dbm.TripDay{}
	err := r.db.WithContext(ctx).
		Where(dbm.TripDay{TripID: tripID, DayNumber: dayNumber}).
		FirstOrCreate(&day).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		err = r.db.WithContext(ctx).
			Where("trip_id = ? AND day_number = ?", tripID, dayNumber).
			First(&day).Error
	}
	if err != nil {
		return nil, err
	}

	return &day, nil
}

func (r *itineraryRepository) CreateActivity(ctx context.Context, activity *dbm.TripActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *itineraryRepository) GetActivity(ctx context.Context, activityID uuid.UUID) (*dbm.TripActivity, error) {

	var activity dbm.TripActivity
	err := r.db.WithContext(ctx).
		Where("id = ?", activityID).
		Preload("Day").
		First(&activity).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &activity, nil
}

func (r *itineraryRepository) SaveActivity(ctx context.Context, activity *dbm.TripActivity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

// DeleteActivityCascade removes messages and reactions before the
// activity itself, children first, in one transaction.
func (r *itineraryRepository) DeleteActivityCascade(ctx context.Context, activityID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("activity_id = ?", activityID).
			Delete(&dbm.ActivityMessage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("activity_id = ?", activityID).
			Delete(&dbm.ActivityReaction{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", activityID).
			Delete(&dbm.TripActivity{}).Error
	})
}
