// internal/repositories/trip_repo.go
package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "sankofa/internal/models/db_models"
)

type TripRepository interface {
	CreateWithOwner(ctx context.Context, trip *dbm.Trip, owner *dbm.TripMember) error
	ListForAccount(ctx context.Context, accountID uuid.UUID) ([]dbm.Trip, error)
	GetByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error)
	GetDetail(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error)
	GetByShareToken(ctx context.Context, token string) (*dbm.Trip, error)
	ListActivities(ctx context.Context, tripID uuid.UUID) ([]dbm.TripActivity, error)
}

type tripRepository struct {
	db *gorm.DB
}

func NewTripRepository(db *gorm.DB) TripRepository {
	return &tripRepository{db: db}
}

// CreateWithOwner inserts the trip and its owner membership in one
// transaction so a trip is never visible without an accepted owner.
// The owner row is built by the service; only the trip FK is filled in
// here once the trip id exists.
func (r *tripRepository) CreateWithOwner(ctx context.Context, trip *dbm.Trip, owner *dbm.TripMember) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(trip).Error; err != nil {
			return err
		}

		owner.TripID = trip.ID
		return tx.Create(owner).Error
	})
}

func (r *tripRepository) ListForAccount(ctx context.Context, accountID uuid.UUID) ([]dbm.Trip, error) {

	var trips []dbm.Trip
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_members ON trip_members.trip_id = trips.id").
		Where("trip_members.account_id = ? AND trip_members.status = ?", accountID, dbm.StatusAccepted).
		Order("trips.created_at DESC").
		Find(&trips).Error

	if err != nil {
		return nil, err
	}

	return trips, nil
}

func (r *tripRepository) GetByID(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {

	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		First(&trip, "id = ?", tripID).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) GetDetail(ctx context.Context, tripID uuid.UUID) (*dbm.Trip, error) {

	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		Where("id = ?", tripID).
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_members.created_at ASC")
		}).
		Preload("Members.Account").
		Preload("Days", func(db *gorm.DB) *gorm.DB {
			return db.Order("trip_days.day_number ASC")
		}).
		First(&trip).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

func (r *tripRepository) GetByShareToken(ctx context.Context, token string) (*dbm.Trip, error) {

	var trip dbm.Trip
	err := r.db.WithContext(ctx).
		First(&trip, "share_token = ?", token).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &trip, nil
}

// ListActivities returns every activity of the trip flattened across
// days, in itinerary order: (day_number, sort_order, start_time, id).
func (r *tripRepository) ListActivities(ctx context.Context, tripID uuid.UUID) ([]dbm.TripActivity, error) {

	var activities []dbm.TripActivity
	err := r.db.WithContext(ctx).
		Joins("JOIN trip_days ON trip_days.id = trip_activities.day_id").
		Where("trip_activities.trip_id = ?", tripID).
		Order("trip_days.day_number ASC, trip_activities.sort_order ASC, trip_activities.start_time ASC, trip_activities.id ASC").
		Preload("Day").
		Find(&activities).Error

	if err != nil {
		return nil, err
	}

	return activities, nil
}
