package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	RoleOwner  = "owner"
	RoleEditor = "editor"
	RoleViewer = "viewer"

	StatusInvited  = "invited"
	StatusAccepted = "accepted"
)

type Trip struct {
	BaseModel
	Title       string
	Destination string
	StartDate   *datatypes.Date
	EndDate     *datatypes.Date

	CreatedByID uuid.UUID
	CreatedBy   Account `gorm:"foreignKey:CreatedByID"`

	// Immutable after creation, handed out to invitees for viewer joins.
	ShareToken string `gorm:"size:64;uniqueIndex"`

	Members []TripMember
	Days    []TripDay
}

type TripMember struct {
	BaseModel
	TripID    uuid.UUID `gorm:"uniqueIndex:idx_trip_member"`
	AccountID uuid.UUID `gorm:"uniqueIndex:idx_trip_member"`
	Account   Account   `gorm:"foreignKey:AccountID"`

	Role   string `gorm:"size:20;default:'viewer'"`
	Status string `gorm:"size:20;default:'invited'"`

	InvitedByID *uuid.UUID
}

func (m *TripMember) IsAccepted() bool {
	return m.Status == StatusAccepted
}

func (m *TripMember) CanEdit() bool {
	return m.IsAccepted() && (m.Role == RoleOwner || m.Role == RoleEditor)
}
