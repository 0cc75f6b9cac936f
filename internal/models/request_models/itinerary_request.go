package request_models

// ActivityScheduleInput is one placement as the trip API expects it.
// Times are "HH:MM" or null.
type ActivityScheduleInput struct {
	ActivityID int64   `json:"activity_id"`
	DayNumber  int     `json:"day_number"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
	OrderInDay int     `json:"order_in_day"`
}

// CreateItineraryRequest is the body of POST /itinerary.
type CreateItineraryRequest struct {
	UserID      int64                   `json:"user_id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	StartDate   string                  `json:"start_date"` // YYYY-MM-DD
	EndDate     string                  `json:"end_date"`   // YYYY-MM-DD
	Activities  []ActivityScheduleInput `json:"activities"`
}

// ModifyItineraryRequest is the body of PUT /itinerary.
type ModifyItineraryRequest struct {
	ID          int64                   `json:"id"`
	Title       string                  `json:"title"`
	Description string                  `json:"description"`
	StartDate   string                  `json:"start_date"`
	EndDate     string                  `json:"end_date"`
	Activities  []ActivityScheduleInput `json:"activities"`
}
