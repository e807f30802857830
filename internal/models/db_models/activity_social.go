package db_models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ActivityMessage struct {
	BaseModel
	ActivityID uuid.UUID
	AccountID  uuid.UUID
	Account    Account `gorm:"foreignKey:AccountID"`
	Message    string
}

// ActivityReaction is hard-deleted on unlike: a soft-deleted row would
// still occupy the (activity, account) unique index and block re-liking.
type ActivityReaction struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	ActivityID uuid.UUID `gorm:"uniqueIndex:idx_activity_reaction"`
	AccountID  uuid.UUID `gorm:"uniqueIndex:idx_activity_reaction"`
	CreatedAt  int64     `gorm:"autoCreateTime"`
}

func (r *ActivityReaction) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.CreatedAt = time.Now().Unix()
	return nil
}
