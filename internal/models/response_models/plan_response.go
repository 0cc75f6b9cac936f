package response_models

import "time"

// PlanResponse is the rendering snapshot of a draft itinerary.
type PlanResponse struct {
	ID            string                    `json:"id"`
	ItineraryID   int64                     `json:"itinerary_id,omitempty"`
	Title         string                    `json:"title"`
	Description   string                    `json:"description"`
	DestinationID int64                     `json:"destination_id"`
	StartDate     string                    `json:"start_date"`
	EndDate       string                    `json:"end_date"`
	DayCount      int                       `json:"day_count"`
	ViewingDay    int                       `json:"viewing_day"`
	ViewingDate   string                    `json:"viewing_date"`
	Days          []PlanDayResponse         `json:"days"`
	Orphans       []PlannedActivityResponse `json:"orphans"`
	Catalog       []Activity                `json:"catalog"`
	TripTotal     float64                   `json:"trip_total"`
	UpdatedAt     time.Time                 `json:"updated_at"`
}

type PlanDayResponse struct {
	DayNumber  int                       `json:"day_number"`
	Date       string                    `json:"date"`
	Total      float64                   `json:"total"`
	Activities []PlannedActivityResponse `json:"activities"`
}

type PlannedActivityResponse struct {
	TempID     int64   `json:"temp_id"`
	ActivityID int64   `json:"activity_id"`
	Name       string  `json:"name"`
	Title      string  `json:"title"`
	Address    string  `json:"address"`
	ImageURL   string  `json:"imageurl"`
	Price      float64 `json:"price"`
	DayNumber  int     `json:"day_number"`
	OrderInDay int     `json:"order_in_day"`
	StartTime  *string `json:"start_time"`
	EndTime    *string `json:"end_time"`
}

// PlanSummary is one row of the draft list.
type PlanSummary struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Activities int       `json:"activities"`
	UpdatedAt  time.Time `json:"updated_at"`
}
