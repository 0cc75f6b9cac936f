package request_models

type UpdateTripRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	StartDate   string `json:"start_date" binding:"required"`
	EndDate     string `json:"end_date" binding:"required"`
}

type SelectDestinationRequest struct {
	DestinationID int64 `json:"destination_id" binding:"required,gt=0"`
}

type ViewingDayRequest struct {
	DayNumber int `json:"day_number" binding:"required"`
}

// AddActivityRequest places an activity; without day_number it goes to the
// day currently being viewed.
type AddActivityRequest struct {
	ActivityID int64 `json:"activity_id" binding:"required,gt=0"`
	DayNumber  *int  `json:"day_number"`
}

type MoveActivityRequest struct {
	Direction string `json:"direction" binding:"required,oneof=up down"`
}

type MoveToDayRequest struct {
	DayNumber int `json:"day_number" binding:"required"`
}

// SetActivityTimeRequest sets the start or end of a slot. A null or empty
// time clears it.
type SetActivityTimeRequest struct {
	Slot string  `json:"slot" binding:"required,oneof=start end"`
	Time *string `json:"time"`
}
