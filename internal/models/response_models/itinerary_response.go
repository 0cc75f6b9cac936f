package response_models

type Itinerary struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// ItineraryActivity is a persisted placement returned by
// GET /activity?itinerary_id=.
type ItineraryActivity struct {
	Activity   Activity `json:"activity"`
	DayNumber  int      `json:"day_number"`
	StartTime  *string  `json:"start_time"`
	EndTime    *string  `json:"end_time"`
	OrderInDay *int     `json:"order_in_day"`
}

// SubmissionResponse is returned after a draft was accepted by the trip API.
type SubmissionResponse struct {
	DraftID   string     `json:"draft_id"`
	Itinerary *Itinerary `json:"itinerary"`
}
