package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "sankofa/internal/models/db_models"
)

type MembershipRepository interface {
	Get(ctx context.Context, tripID, accountID uuid.UUID) (*dbm.TripMember, error)
	GetAccepted(ctx context.Context, tripID, accountID uuid.UUID) (*dbm.TripMember, error)
	FirstOrCreate(ctx context.Context, member *dbm.TripMember) error
	UpdateStatus(ctx context.Context, memberID uuid.UUID, status string) error
}

type membershipRepository struct {
	db *gorm.DB
}

func NewMembershipRepository(db *gorm.DB) MembershipRepository {
	return &membershipRepository{db: db}
}

func (r *membershipRepository) Get(ctx context.Context, tripID, accountID uuid.UUID) (*dbm.TripMember, error) {

	var member dbm.TripMember
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND account_id = ?", tripID, accountID).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

func (r *membershipRepository) GetAccepted(ctx context.Context, tripID, accountID uuid.UUID) (*dbm.TripMember, error) {

	var member dbm.TripMember
	err := r.db.WithContext(ctx).
		Where("trip_id = ? AND account_id = ? AND status = ?", tripID, accountID, dbm.StatusAccepted).
		First(&member).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &member, nil
}

// FirstOrCreate resolves the (trip, account) pair under its unique
// constraint: the given role/status/inviter apply only when the row is
// created, an existing row is loaded untouched. A concurrent create
// racing us loses the insert but wins the read.
func (r *membershipRepository) FirstOrCreate(ctx context.Context, member *dbm.TripMember) error {

	lookup := dbm.TripMember{TripID: member.TripID, AccountID: member.AccountID}

	err := r.db.WithContext(ctx).
		Where(&lookup).
		Attrs(dbm.TripMember{
			Role:        member.Role,
			Status:      member.Status,
			InvitedByID: member.InvitedByID,
		}).
		FirstOrCreate(member).Error

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return r.db.WithContext(ctx).
			Where("trip_id = ? AND account_id = ?", member.TripID, member.AccountID).
			First(member).Error
	}

	return err
}

func (r *membershipRepository) UpdateStatus(ctx context.Context, memberID uuid.UUID, status string) error {
	return r.db.WithContext(ctx).
		Model(&dbm.TripMember{}).
		Where("id = ?", memberID).
		Update("status", status).Error
}
