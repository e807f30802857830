package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	dbm "sankofa/internal/models/db_models"
)

type SocialRepository interface {
	ListMessages(ctx context.Context, activityID uuid.UUID) ([]dbm.ActivityMessage, error)
	CreateMessage(ctx context.Context, message *dbm.ActivityMessage) error
	GetReaction(ctx context.Context, activityID, accountID uuid.UUID) (*dbm.ActivityReaction, error)
	CreateReaction(ctx context.Context, reaction *dbm.ActivityReaction) error
	DeleteReaction(ctx context.Context, reactionID uuid.UUID) error
	CountReactions(ctx context.Context, activityID uuid.UUID) (int64, error)
	CountMessages(ctx context.Context, activityID uuid.UUID) (int64, error)
	CountReactionsByActivity(ctx context.Context, activityIDs []uuid.UUID) (map[uuid.UUID]int64, error)
	CountMessagesByActivity(ctx context.Context, activityIDs []uuid.UUID) (map[uuid.UUID]int64, error)
}

type socialRepository struct {
	db *gorm.DB
}

func NewSocialRepository(db *gorm.DB) SocialRepository {
	return &socialRepository{db: db}
}

func (r *socialRepository) ListMessages(ctx context.Context, activityID uuid.UUID) ([]dbm.ActivityMessage, error) {

	var messages []dbm.ActivityMessage
	err := r.db.WithContext(ctx).
		Where("activity_id = ?", activityID).
		Order("created_at ASC, id ASC").
		Preload("Account").
		Find(&messages).Error

	if err != nil {
		return nil, err
	}

	return messages, nil
}

func (r *socialRepository) CreateMessage(ctx context.Context, message *dbm.ActivityMessage) error {
	return r.db.WithContext(ctx).Create(message).Error
}

func (r *socialRepository) GetReaction(ctx context.Context, activityID, accountID uuid.UUID) (*dbm.ActivityReaction, error) {

	var reaction dbm.ActivityReaction
	err := r.db.WithContext(ctx).
		Where("activity_id = ? AND account_id = ?", activityID, accountID).
		First(&reaction).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &reaction, nil
}

func (r *socialRepository) CreateReaction(ctx context.Context, reaction *dbm.ActivityReaction) error {
	return r.db.WithContext(ctx).Create(reaction).Error
}

func (r *socialRepository) DeleteReaction(ctx context.Context, reactionID uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", reactionID).
		Delete(&dbm.ActivityReaction{}).Error
}

func (r *socialRepository) CountReactions(ctx context.Context, activityID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.ActivityReaction{}).
		Where("activity_id = ?", activityID).
		Count(&count).Error
	return count, err
}

func (r *socialRepository) CountMessages(ctx context.Context, activityID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbm.ActivityMessage{}).
		Where("activity_id = ?", activityID).
		Count(&count).Error
	return count, err
}

type activityCount struct {
	ActivityID uuid.UUID
	N          int64
}

func (r *socialRepository) CountReactionsByActivity(ctx context.Context, activityIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return r.groupedCounts(ctx, &dbm.ActivityReaction{}, activityIDs)
}

func (r *socialRepository) CountMessagesByActivity(ctx context.Context, activityIDs []uuid.UUID) (map[uuid.UUID]int64, error) {
	return r.groupedCounts(ctx, &dbm.ActivityMessage{}, activityIDs)
}

func (r *socialRepository) groupedCounts(ctx context.Context, model interface{}, activityIDs []uuid.UUID) (map[uuid.UUID]int64, error) {

	counts := make(map[uuid.UUID]int64, len(activityIDs))
	if len(activityIDs) == 0 {
		return counts, nil
	}

	var rows []activityCount
	err := r.db.WithContext(ctx).
		Model(model).
		Select("activity_id, COUNT(*) AS n").
		Where("activity_id IN ?", activityIDs).
		Group("activity_id").
		Scan(&rows).Error

	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		counts[row.ActivityID] = row.N
	}

	return counts, nil
}
