package request_models

type AddDayRequest struct {
	// Omitted → next free day number on the trip.
	DayNumber *int   `json:"day_number"`
	Date      string `json:"date"`
	Title     string `json:"title" binding:"max=200"`
}

type AddActivityRequest struct {
	Day          *int    `json:"day"`
	Title        string  `json:"title" binding:"required,max=255"`
	LocationName string  `json:"location_name" binding:"max=255"`
	StartTime    *string `json:"start_time"`
	SortOrder    *int    `json:"sort_order"`
}

// UpdateActivityRequest carries only the fields the caller wants to
// change; nil means leave the stored value alone.
type UpdateActivityRequest struct {
	Title        *string `json:"title"`
	LocationName *string `json:"location_name"`
	StartTime    *string `json:"start_time"`
	SortOrder    *int    `json:"sort_order"`
}

type PostMessageRequest struct {
	Message string `json:"message" binding:"required"`
}
