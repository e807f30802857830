package db_models

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type TripDay struct {
	BaseModel
	TripID    uuid.UUID `gorm:"uniqueIndex:idx_trip_day"`
	DayNumber int       `gorm:"uniqueIndex:idx_trip_day"`
	Date      *datatypes.Date
	Title     string

	Activities []TripActivity `gorm:"foreignKey:DayID"`
}

type TripActivity struct {
	BaseModel
	TripID uuid.UUID
	DayID  uuid.UUID
	Day    TripDay `gorm:"foreignKey:DayID"`

	Title        string
	LocationName string
	// "15:04" wall-clock string, kept sortable as text.
	StartTime *string `gorm:"size:5"`
	SortOrder int     `gorm:"default:1"`

	CreatedByID *uuid.UUID
	CreatedBy   *Account `gorm:"foreignKey:CreatedByID"`
}
