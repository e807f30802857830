package response_models

import (
	"github.com/google/uuid"
)

type TripSummaryResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	ShareToken  string    `json:"share_token"`
}

// Top-level payload returned to FE
type TripDetailResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Destination string    `json:"destination"`
	StartDate   string    `json:"start_date"` // "2006-01-02"
	EndDate     string    `json:"end_date"`
	CreatedBy   uuid.UUID `json:"created_by"`
	ShareToken  string    `json:"share_token"`
	CreatedAt   int64     `json:"created_at"`

	Members    []TripMemberResponse `json:"members"`
	Days       []TripDayResponse    `json:"days"`
	Activities []ActivityResponse   `json:"activities"`
}

type TripMemberResponse struct {
	ID        uuid.UUID       `json:"id"`
	User      MemberUserBrief `json:"user"`
	Role      string          `json:"role"`
	Status    string          `json:"status"`
	CreatedAt int64           `json:"created_at"`
}

type MemberUserBrief struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

type InviteResponse struct {
	ShareToken string               `json:"share_token"`
	Invites    []TripMemberResponse `json:"invites"`
}

type JoinTripResponse struct {
	TripID uuid.UUID `json:"trip_id"`
	Role   string    `json:"role"`
}
