package request_models

type CreateTripRequest struct {
	Title       string `json:"title" binding:"required,max=200"`
	Destination string `json:"destination" binding:"max=200"`
	// "2006-01-02"
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type InviteMembersRequest struct {
	UserIDs []string `json:"user_ids" binding:"required,min=1"`
}

type JoinByTokenRequest struct {
	ShareToken string `json:"share_token" binding:"required"`
}
