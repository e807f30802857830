package response_models

import (
	"github.com/google/uuid"
)

type TripDayResponse struct {
	ID        uuid.UUID `json:"id"`
	DayNumber int       `json:"day_number"`
	Date      string    `json:"date"` // "2006-01-02", "" when unset
	Title     string    `json:"title"`
}

// Activity flattened out of its day, with live social counts
type ActivityResponse struct {
	ID            uuid.UUID  `json:"id"`
	DayID         uuid.UUID  `json:"day_id"`
	DayNumber     int        `json:"day_number"`
	Title         string     `json:"title"`
	LocationName  string     `json:"location_name"`
	StartTime     string     `json:"start_time,omitempty"` // "15:04"
	SortOrder     int        `json:"sort_order"`
	CreatedBy     *uuid.UUID `json:"created_by"`
	LikesCount    int64      `json:"likes_count"`
	CommentsCount int64      `json:"comments_count"`
	CreatedAt     int64      `json:"created_at"`
}

type MessageResponse struct {
	ID         uuid.UUID       `json:"id"`
	ActivityID uuid.UUID       `json:"activity_id"`
	User       MemberUserBrief `json:"user"`
	Message    string          `json:"message"`
	CreatedAt  int64           `json:"created_at"`
}

type LikeToggleResponse struct {
	Liked      bool  `json:"liked"`
	LikesCount int64 `json:"likes_count"`
}
